package model

import "errors"

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")

	ErrEmailTaken          = errors.New("user with this email already exists")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrPasswordUnchanged   = errors.New("new password must differ from the current one")
	ErrInvalidRegistration = errors.New("email and password are required")
)
