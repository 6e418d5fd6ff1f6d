package models

import "errors"

var (
	// ErrNotFound is returned when an operation addresses an unknown client id.
	ErrNotFound = errors.New("client not found")

	// ErrValidation is returned when required fields are missing or empty.
	ErrValidation = errors.New("missing required fields")

	// ErrEmailTaken is returned when a new client reuses an existing login email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned on a failed login at either portal.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNoFile is returned when a document attach carries no file.
	ErrNoFile = errors.New("no file")
)
