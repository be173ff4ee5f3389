package models

import "errors"

var (
	ErrInvalidCountryID   = errors.New("invalid country ID")
	ErrInvalidCountryBody = errors.New("country payload must be a JSON object")

	ErrDatabaseCredentialNotConfigured = errors.New("database credentials not configured")

	ErrRecordNotFound = errors.New("record not found")
)
