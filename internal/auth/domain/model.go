package domain

import (
	"strings"
	"time"
)

// Role is the kind of account a session belongs to.
type Role string

const (
	RoleBrand   Role = "marca"
	RoleCreator Role = "creador"
)

// Roles lists every known role.
var Roles = []Role{RoleBrand, RoleCreator}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleBrand || r == RoleCreator
}

// Identity is the single resident session.
type Identity struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Role       Role      `json:"type"`
	LoggedInAt time.Time `json:"logged_in_at"`
}

// Credential is one entry of the test-credential table.
type Credential struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

// LoginForm carries the raw login fields as submitted.
type LoginForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"type"`
}

// LoginFormErrors holds one message key per login field; empty means valid.
type LoginFormErrors struct {
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
	Role     string `json:"type,omitempty"`
}

// Empty reports whether no field failed validation.
func (e LoginFormErrors) Empty() bool {
	return e == LoginFormErrors{}
}

// Validate checks required fields only; credential matching is the store's job.
func (f LoginForm) Validate() LoginFormErrors {
	var errs LoginFormErrors
	if strings.TrimSpace(f.Email) == "" {
		errs.Email = KeyEmailRequired
	}
	if f.Password == "" {
		errs.Password = KeyPasswordRequired
	}
	if !f.Role.Valid() {
		errs.Role = KeyRoleInvalid
	}
	return errs
}

// Message keys rendered by the i18n label switch.
const (
	KeyEmailRequired    = "login.email.required"
	KeyPasswordRequired = "login.password.required"
	KeyRoleInvalid      = "login.role.invalid"
)
