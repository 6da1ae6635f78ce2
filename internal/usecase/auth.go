package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/paclead/platform-backend/internal/auth"
	"github.com/paclead/platform-backend/internal/domain"
	"github.com/paclead/platform-backend/internal/email"
	"github.com/paclead/platform-backend/internal/metrics"
	"github.com/paclead/platform-backend/internal/repository"
)

// ErrValidation marks signup input errors. Boundaries map it to a 400 with
// the wrapped message.
var ErrValidation = errors.New("invalid input")

type AuthUsecase struct {
	users  repository.UserRepository
	issuer *auth.Issuer
	email  email.Sender
	logger *slog.Logger
}

func NewAuthUsecase(users repository.UserRepository, issuer *auth.Issuer, emailSender email.Sender, logger *slog.Logger) *AuthUsecase {
	return &AuthUsecase{
		users:  users,
		issuer: issuer,
		email:  emailSender,
		logger: logger.With("component", "auth_usecase"),
	}
}

type SignupInput struct {
	Name     string
	CPF      string
	CNPJ     string
	Email    string
	Password string
}

// Signup validates the tax identifiers, creates the account and returns a
// bearer token so the caller is signed in immediately.
// Exactly one of CPF/CNPJ must be provided; whichever it is becomes the
// account's tenant scope for life.
func (u *AuthUsecase) Signup(ctx context.Context, input SignupInput) (string, error) {
	cpf := auth.NormalizeTaxID(input.CPF)
	cnpj := auth.NormalizeTaxID(input.CNPJ)

	switch {
	case cpf != "" && cnpj != "":
		return "", fmt.Errorf("%w: provide either cpf or cnpj, not both", ErrValidation)
	case cpf == "" && cnpj == "":
		return "", fmt.Errorf("%w: either cpf or cnpj is required", ErrValidation)
	case cpf != "" && len(cpf) != 11:
		return "", fmt.Errorf("%w: cpf must have 11 digits", ErrValidation)
	case cnpj != "" && len(cnpj) != 14:
		return "", fmt.Errorf("%w: cnpj must have 14 digits", ErrValidation)
	}

	emailAddr := strings.ToLower(strings.TrimSpace(input.Email))

	if _, err := u.users.GetByEmail(ctx, emailAddr); err == nil {
		return "", domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", fmt.Errorf("check email: %w", err)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return "", err
	}

	user, err := u.users.Create(ctx, &domain.User{
		Name:         input.Name,
		CPF:          cpf,
		CNPJ:         cnpj,
		Email:        emailAddr,
		PasswordHash: hash,
	})
	if err != nil {
		return "", fmt.Errorf("create user: %w", err)
	}

	scope, err := auth.ResolveScope(user)
	if err != nil {
		return "", fmt.Errorf("resolve scope: %w", err)
	}

	token, err := u.issuer.Issue(user.ID, user.Email, scope)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	// Best effort: a failed welcome email must not fail the signup.
	subject, body := email.Welcome(user.Name)
	if err := u.email.Send(ctx, user.Email, subject, body); err != nil {
		u.logger.ErrorContext(ctx, "send welcome email", "error", err)
	}

	metrics.SignupsTotal.Inc()
	return token, nil
}

// Login verifies the credentials and returns a bearer token.
// Unknown email and wrong password are indistinguishable to the caller.
func (u *AuthUsecase) Login(ctx context.Context, emailAddr, password string) (string, error) {
	emailAddr = strings.ToLower(strings.TrimSpace(emailAddr))

	user, err := u.users.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", domain.ErrInvalidCredentials
	}

	scope, err := auth.ResolveScope(user)
	if err != nil {
		return "", fmt.Errorf("resolve scope: %w", err)
	}

	token, err := u.issuer.Issue(user.ID, user.Email, scope)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return token, nil
}
