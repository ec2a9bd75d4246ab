package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"

	"github.com/ardakaya/secondbrain-backend/internal/models"
	"github.com/ardakaya/secondbrain-backend/internal/store"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput       = errors.New("invalid inputs")
	ErrDuplicateUser      = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("incorrect credentials")
	ErrInvalidGoogleToken = errors.New("google sign-in failed")
)

// GoogleVerifier validates an externally-issued Google ID token.
type GoogleVerifier interface {
	VerifyToken(idToken, clientID string) (*GoogleJWTClaims, error)
}

type AuthService struct {
	users          store.UserStore
	tokens         *TokenService
	google         GoogleVerifier
	googleClientID string
}

func NewAuthService(users store.UserStore, tokens *TokenService, google GoogleVerifier, googleClientID string) *AuthService {
	return &AuthService{
		users:          users,
		tokens:         tokens,
		google:         google,
		googleClientID: googleClientID,
	}
}

// Signup validates input shape before touching storage, stores a bcrypt hash
// of the password and returns a fresh bearer token for the new account.
func (s *AuthService) Signup(ctx context.Context, username, password, email string) (string, error) {
	if len(username) < 3 {
		return "", fmt.Errorf("%w: username must be at least 3 characters", ErrInvalidInput)
	}
	if len(password) < 6 {
		return "", fmt.Errorf("%w: password must be at least 6 characters", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "", fmt.Errorf("%w: invalid email address", ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Username: username,
		Email:    &email,
		Password: string(hash),
	}
	if err := s.users.Create(ctx, &user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return "", ErrDuplicateUser
		}
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	return s.tokens.Issue(user.ID)
}

// Signin returns the same ErrInvalidCredentials whether the username is
// unknown or the password does not match, so callers cannot enumerate
// accounts. The unknown-username path skips the bcrypt comparison, which
// leaves a measurable timing difference between the two failures.
func (s *AuthService) Signin(ctx context.Context, username, password string) (string, error) {
	if len(username) < 3 || len(password) < 6 {
		return "", ErrInvalidInput
	}

	user, err := s.users.ByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	// Google-only accounts have no password hash and cannot sign in locally.
	if user.Password == "" {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(user.ID)
}

// GoogleSignIn verifies the ID token and resolves or creates the local
// account. Resolution keys on the provider subject id first and falls back to
// the display name; the display name is still the creation key, so two Google
// accounts sharing a name collide onto one local user.
func (s *AuthService) GoogleSignIn(ctx context.Context, idToken string) (string, error) {
	claims, err := s.google.VerifyToken(idToken, s.googleClientID)
	if err != nil {
		slog.Error("google token verification failed", "error", err)
		return "", ErrInvalidGoogleToken
	}

	user, err := s.users.ByGoogleIDOrUsername(ctx, claims.Sub, claims.Name)
	switch {
	case err == nil:
		if user.GoogleID == nil {
			if err := s.users.LinkGoogleID(ctx, user.ID, claims.Sub); err != nil {
				return "", fmt.Errorf("failed to link google account: %w", err)
			}
		}
	case errors.Is(err, store.ErrNotFound):
		user = &models.User{
			Username: claims.Name,
			GoogleID: &claims.Sub,
		}
		if claims.Email != "" {
			email := claims.Email
			user.Email = &email
		}
		if err := s.users.Create(ctx, user); err != nil {
			return "", fmt.Errorf("failed to create google user: %w", err)
		}
	default:
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	return s.tokens.Issue(user.ID)
}
