package user

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

const MaxFullNameLength = 100

var (
	ErrInvalidEmail          = errors.New("invalid email format")
	ErrInvalidRole           = errors.New("invalid role")
	ErrRoleNotSelfAssignable = errors.New("role cannot be chosen at registration")
	ErrPasswordTooWeak       = errors.New("password must be at least 8 characters long")
	ErrInvalidFullName       = errors.New("full name must be 1 to 100 characters")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

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

type FullName struct {
	value string
}

func NewFullName(s string) (FullName, error) {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > MaxFullNameLength {
		return FullName{}, ErrInvalidFullName
	}
	return FullName{value: s}, nil
}

func (n FullName) Value() string {
	return n.value
}
