package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidRole     = errors.New("invalid role")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters long")
	ErrInvalidUsername = errors.New("username must be 3-150 characters of letters, digits and @.+-_")
	ErrNameTooLong     = errors.New("name exceeds maximum length")
)

const (
	MaxUsernameLength = 150
	MaxNameLength     = 150
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[\w.@+\-]{3,150}$`)
)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

type Username struct {
	value string
}

func NewUsername(s string) (Username, error) {
	s = strings.TrimSpace(s)
	if !usernameRegex.MatchString(s) {
		return Username{}, ErrInvalidUsername
	}
	return Username{value: s}, nil
}

func (u Username) Value() string {
	return u.value
}

// FullName holds optional given and family names.
type FullName struct {
	first string
	last  string
}

func NewFullName(first, last string) (FullName, error) {
	first, last = strings.TrimSpace(first), strings.TrimSpace(last)
	if len(first) > MaxNameLength || len(last) > MaxNameLength {
		return FullName{}, ErrNameTooLong
	}
	return FullName{first: first, last: last}, nil
}

func (n FullName) First() string { return n.first }
func (n FullName) Last() string  { return n.last }

type Credentials struct {
	email    Email
	password Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		email:    email,
		password: password,
	}, nil
}

func (c Credentials) Email() Email {
	return c.email
}

func (c Credentials) Password() Password {
	return c.password
}
