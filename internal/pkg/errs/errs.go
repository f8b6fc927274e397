package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func New(msg string) error {
	return cr.New(msg)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// WithDetail attaches a user-facing detail string that survives wrapping.
func WithDetail(err error, detail string) error {
	if err == nil {
		return nil
	}
	return cr.WithDetail(err, detail)
}

// Details returns the details attached anywhere along the chain.
func Details(err error) []string {
	return cr.GetAllDetails(err)
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}

// Is also recognizes marks added with Mark, which the standard errors.Is does not see.
func Is(err, reference error) bool {
	return cr.Is(err, reference)
}
