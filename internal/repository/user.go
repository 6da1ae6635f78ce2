package repository

import (
	"context"

	"github.com/paclead/platform-backend/internal/domain"
)

type UserRepository interface {
	// Create persists a new user. domain.ErrDuplicateEmail is returned when
	// the email is already taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// GetByEmail looks a user up by normalized email.
	// domain.ErrUserNotFound when absent.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
