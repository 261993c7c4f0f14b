// Package auth implements the app's login check: a plaintext lookup
// against the seeded user list. There is deliberately no password
// hashing or session management; access control is not part of this
// system's threat model.
package auth

import (
	"errors"
	"strings"
)

type Role string

const (
	RoleCriador Role = "CRIADOR"
	RoleCliente Role = "CLIENTE"
)

type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

var ErrInvalidCredentials = errors.New("invalid email or password")

type seededUser struct {
	User
	password string
}

// The seeded accounts, as shipped with the app.
var users = []seededUser{
	{User{ID: 1, Email: "criador@rua.com", Role: RoleCriador}, "admin"},
	{User{ID: 2, Email: "cliente@rua.com", Role: RoleCliente}, "user"},
}

// Authenticate performs the plaintext credential lookup.
func Authenticate(email, password string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range users {
		if strings.ToLower(u.Email) == email && u.password == password {
			return u.User, nil
		}
	}
	return User{}, ErrInvalidCredentials
}

// Lookup returns the seeded user with the given id.
func Lookup(id int64) (User, bool) {
	for _, u := range users {
		if u.ID == id {
			return u.User, true
		}
	}
	return User{}, false
}

// Creator returns the seeded creator account.
func Creator() User {
	for _, u := range users {
		if u.Role == RoleCriador {
			return u.User
		}
	}
	return User{}
}
