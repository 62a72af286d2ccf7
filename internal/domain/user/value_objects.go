package user

import (
	"errors"
	"net/mail"
	"strings"
)

var (
	ErrInvalidEmail = errors.New("invalid email address")
	ErrInvalidRole  = errors.New("invalid role")
)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	t := strings.TrimSpace(strings.ToLower(s))
	if t == "" {
		return Email{}, ErrInvalidEmail
	}
	if _, err := mail.ParseAddress(t); err != nil {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: t}, nil
}

func (e Email) String() string { return e.value }

type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

func NewRole(s string) (Role, error) {
	switch Role(s) {
	case RoleMember, RoleAdmin:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string { return string(r) }
