package listing

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	MaxNameLength     = 255
	MaxLocationLength = 255
	MaxSlugLength     = 255
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

type Slug struct {
	value string
}

// NewSlug derives a URL-safe slug from a listing name.
func NewSlug(name string) (Slug, error) {
	s := nonSlugChars.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return Slug{}, ErrInvalidSlug
	}
	if len(s) > MaxSlugLength-8 {
		s = strings.TrimRight(s[:MaxSlugLength-8], "-")
	}
	return Slug{value: s}, nil
}

// ParseSlug accepts an existing slug as stored.
func ParseSlug(s string) (Slug, error) {
	if s == "" || len(s) > MaxSlugLength || nonSlugChars.MatchString(strings.ReplaceAll(s, "-", "")) {
		return Slug{}, ErrInvalidSlug
	}
	return Slug{value: s}, nil
}

// WithSuffix returns "<slug>-<n>", used when the base slug is taken.
func (s Slug) WithSuffix(n int) Slug {
	return Slug{value: fmt.Sprintf("%s-%d", s.value, n)}
}

func (s Slug) String() string { return s.value }

type Details struct {
	name        string
	description string
	location    string
}

func NewDetails(name, description, location string) (Details, error) {
	name = strings.TrimSpace(name)
	location = strings.TrimSpace(location)
	if name == "" || len(name) > MaxNameLength {
		return Details{}, ErrInvalidName
	}
	if location == "" || len(location) > MaxLocationLength {
		return Details{}, ErrInvalidLocation
	}
	return Details{name: name, description: strings.TrimSpace(description), location: location}, nil
}

func (d Details) Name() string        { return d.name }
func (d Details) Description() string { return d.description }
func (d Details) Location() string    { return d.location }
