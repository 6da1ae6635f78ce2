package domain

import (
	"errors"
	"time"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateEmail     = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrScopeMissing means a persisted user has neither a CNPJ nor a CPF.
	// This violates the signup invariant and is never expected at runtime.
	ErrScopeMissing = errors.New("user has no tenant scope")
)

// User is an account on the platform. Exactly one of CPF or CNPJ is set;
// whichever is present becomes the tenant scope for all of the user's data.
type User struct {
	ID           string
	Name         string
	CPF          string // 11 digits, empty when the account is a company
	CNPJ         string // 14 digits, empty when the account is a person
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
