package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnknownRole        = errors.New("unknown role")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrRoleNotAllowed     = errors.New("role not allowed")
)
