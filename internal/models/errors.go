package models

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("a user with this email already exists")
	ErrDuplicateNID       = errors.New("a user with this National ID already exists")
)
