package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (*AuthService, *fakeUsers, *TokenService, *fakeGoogle) {
	t.Helper()
	users := newFakeUsers()
	tokens := NewTokenService("test-secret", time.Hour)
	google := &fakeGoogle{}
	return NewAuthService(users, tokens, google, "client-id"), users, tokens, google
}

func TestSignupValidation(t *testing.T) {
	svc, users, _, _ := newAuthFixture(t)

	tests := []struct {
		name     string
		username string
		password string
		email    string
	}{
		{"short username", "al", "secret1", "a@x.com"},
		{"short password", "alice", "short", "a@x.com"},
		{"bad email", "alice", "secret1", "not-an-email"},
		{"empty email", "alice", "secret1", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Signup(context.Background(), tt.username, tt.password, tt.email)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	// validation happens before storage is touched
	assert.Empty(t, users.users)
}

func TestSignupIssuesTokenForNewUser(t *testing.T) {
	svc, users, tokens, _ := newAuthFixture(t)

	token, err := svc.Signup(context.Background(), "alice", "secret1", "a@x.com")
	require.NoError(t, err)

	created, err := users.ByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.NotEmpty(t, created.Password)
	assert.NotEqual(t, "secret1", created.Password)

	got, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got)
}

func TestSignupDuplicateUsername(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	_, err := svc.Signup(context.Background(), "alice", "secret1", "a@x.com")
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), "alice", "different", "b@x.com")
	assert.ErrorIs(t, err, ErrDuplicateUser)
}

func TestSigninMatrix(t *testing.T) {
	svc, _, tokens, _ := newAuthFixture(t)

	_, err := svc.Signup(context.Background(), "alice", "secret1", "a@x.com")
	require.NoError(t, err)

	t.Run("correct password", func(t *testing.T) {
		token, err := svc.Signin(context.Background(), "alice", "secret1")
		require.NoError(t, err)
		_, err = tokens.Verify(token)
		assert.NoError(t, err)
	})

	// Unknown username and wrong password yield the identical outcome.
	// Note the unknown-username path returns before the bcrypt comparison,
	// so the two failures are distinguishable by timing.
	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Signin(context.Background(), "alice", "wrong-pass")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := svc.Signin(context.Background(), "nobody", "secret1")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("short input rejected before lookup", func(t *testing.T) {
		_, err := svc.Signin(context.Background(), "al", "secret1")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestSigninGoogleOnlyAccount(t *testing.T) {
	svc, users, _, google := newAuthFixture(t)

	google.claims = &GoogleJWTClaims{Sub: "sub-1", Email: "g@x.com", Name: "google-user"}
	_, err := svc.GoogleSignIn(context.Background(), "id-token")
	require.NoError(t, err)

	created, err := users.ByUsername(context.Background(), "google-user")
	require.NoError(t, err)
	assert.Empty(t, created.Password)

	// no hash stored, so any password must fail
	_, err = svc.Signin(context.Background(), "google-user", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGoogleSignInCreatesAndReuses(t *testing.T) {
	svc, users, tokens, google := newAuthFixture(t)

	google.claims = &GoogleJWTClaims{Sub: "sub-1", Email: "g@x.com", Name: "Jane Doe"}

	first, err := svc.GoogleSignIn(context.Background(), "id-token")
	require.NoError(t, err)
	second, err := svc.GoogleSignIn(context.Background(), "id-token")
	require.NoError(t, err)

	firstID, err := tokens.Verify(first)
	require.NoError(t, err)
	secondID, err := tokens.Verify(second)
	require.NoError(t, err)
	assert.Equal(t, firstID, secondID)
	assert.Len(t, users.users, 1)

	created, err := users.ByUsername(context.Background(), "Jane Doe")
	require.NoError(t, err)
	require.NotNil(t, created.GoogleID)
	assert.Equal(t, "sub-1", *created.GoogleID)
}

func TestGoogleSignInLinksPasswordAccount(t *testing.T) {
	svc, users, _, google := newAuthFixture(t)

	_, err := svc.Signup(context.Background(), "alice", "secret1", "a@x.com")
	require.NoError(t, err)

	google.claims = &GoogleJWTClaims{Sub: "sub-9", Email: "a@x.com", Name: "alice"}
	_, err = svc.GoogleSignIn(context.Background(), "id-token")
	require.NoError(t, err)

	linked, err := users.ByUsername(context.Background(), "alice")
	require.NoError(t, err)
	require.NotNil(t, linked.GoogleID)
	assert.Equal(t, "sub-9", *linked.GoogleID)
	assert.NotEmpty(t, linked.Password)
	assert.Len(t, users.users, 1)
}

func TestGoogleSignInPrefersSubjectOverName(t *testing.T) {
	svc, users, tokens, google := newAuthFixture(t)

	google.claims = &GoogleJWTClaims{Sub: "sub-1", Name: "Jane Doe"}
	token, err := svc.GoogleSignIn(context.Background(), "id-token")
	require.NoError(t, err)
	janeID, err := tokens.Verify(token)
	require.NoError(t, err)

	// Same subject id comes back with a changed display name; the existing
	// account must be reused, not a new one created.
	google.claims = &GoogleJWTClaims{Sub: "sub-1", Name: "Jane Smith"}
	token, err = svc.GoogleSignIn(context.Background(), "id-token")
	require.NoError(t, err)
	got, err := tokens.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, janeID, got)
	assert.Len(t, users.users, 1)
}

func TestGoogleSignInVerificationFailure(t *testing.T) {
	svc, users, _, google := newAuthFixture(t)

	google.err = errors.New("signature verification failed")
	_, err := svc.GoogleSignIn(context.Background(), "bad-token")
	assert.ErrorIs(t, err, ErrInvalidGoogleToken)
	assert.Empty(t, users.users)
}
