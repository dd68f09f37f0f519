package service

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation") // 400
	ErrNotFound   = errors.New("not found")  // 404
	ErrConflict   = errors.New("conflict")   // 409
)

var (
	ErrPasswordTooShort = fmt.Errorf("password is too short, minimum length is %d: %w", PasswordMinLength, ErrValidation)
	ErrPasswordMismatch = fmt.Errorf("password and password confirm do not match: %w", ErrValidation)
	ErrInvalidQuantity  = fmt.Errorf("quantity must be between 1 and %d: %w", MaxLineQuantity, ErrValidation)
	ErrEmptyQuery       = fmt.Errorf("search query is empty: %w", ErrValidation)

	ErrUserNotFound = fmt.Errorf("user %w", ErrNotFound)
	ErrItemNotFound = fmt.Errorf("item %w", ErrNotFound)

	ErrUsernameTaken = fmt.Errorf("username already taken: %w", ErrConflict)
)
