package admin

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingCredentials = errors.New("email and password are required")
	ErrMissingFields      = errors.New("email, password, and name are required")
	ErrEmailExists        = errors.New("admin with this email already exists")
	ErrAdminNotFound      = errors.New("admin not found")
)
