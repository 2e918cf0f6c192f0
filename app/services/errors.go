package services

import (
	"errors"

	"quillpress/app/repositories"
)

var (
	// ErrValidation marks missing or malformed required fields.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks operations that target a non-existent record.
	ErrNotFound = repositories.ErrNotFound
)
