package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	dom "github.com/ngchuong/DevHub/internal/domain"
	"github.com/ngchuong/DevHub/internal/repo"
	"github.com/ngchuong/DevHub/internal/utils"
)

// RegisterInput carries the fields of a registration attempt.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Bio      *string
	Location *string
}

// AuthService owns credential verification and registration. Session
// minting stays with the handlers; this service never sees tokens.
type AuthService struct {
	users repo.UserRepo
}

// NewAuthService returns a new AuthService.
func NewAuthService(users repo.UserRepo) *AuthService {
	return &AuthService{users: users}
}

// Register creates a new user with a hashed password. It does not log the
// user in. Uniqueness is enforced by the users table in the same statement
// as the insert, so two concurrent registrations for the same username end
// with exactly one success.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (dom.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	// Bounds are re-checked after trimming; padded input must not shrink
	// below the minimum once stored.
	if n := utf8.RuneCountInString(in.Username); n < 3 || n > 30 {
		return dom.User{}, fmt.Errorf("%w: username must be 3-30 characters", ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return dom.User{}, err
	}
	u, err := s.users.Create(ctx, dom.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Bio:          in.Bio,
		Location:     in.Location,
	})
	if err != nil {
		if name, ok := utils.UniqueConstraint(err); ok {
			if strings.Contains(name, "email") {
				return dom.User{}, ErrEmailTaken
			}
			return dom.User{}, ErrUsernameTaken
		}
		return dom.User{}, err
	}
	return u, nil
}

// ValidateCredentials checks email and password; returns the user if valid.
// An unknown email and a wrong password produce the same error so the
// response cannot be used to enumerate accounts.
func (s *AuthService) ValidateCredentials(ctx context.Context, email, password string) (dom.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return dom.User{}, ErrInvalidCredentials
	}
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrInvalidCredentials
		}
		return dom.User{}, err
	}
	// CompareHashAndPassword also fails on malformed stored hashes, which is
	// normalized to a credential failure rather than a fault.
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return dom.User{}, ErrInvalidCredentials
	}
	return u, nil
}

// CurrentUser resolves a session's user ID to the user record. ErrNotFound
// means the session outlived the user row; callers treat it as a forced
// logout.
func (s *AuthService) CurrentUser(ctx context.Context, userID int64) (dom.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrNotFound
		}
		return dom.User{}, err
	}
	return u, nil
}
