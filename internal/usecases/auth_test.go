package usecases

import (
	"context"
	"strings"
	"testing"
	"time"

	"creovibe/internal/pkg/config"
	appErrors "creovibe/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testAdminConfig(t *testing.T) config.AdminConfig {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("creovibe123"), bcrypt.MinCost)
	require.NoError(t, err)
	return config.AdminConfig{
		Username:      "admin",
		PasswordHash:  string(hash),
		SessionSecret: strings.Repeat("s", 32),
		SessionTTL:    time.Hour,
		Issuer:        "creovibe",
	}
}

func TestLogin_IssuesVerifiableToken(t *testing.T) {
	svc := NewAuthService(testAdminConfig(t), nil)

	token, err := svc.Login(context.Background(), "admin", "creovibe123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, "creovibe", claims.Issuer)
	assert.Equal(t, time.Hour, svc.TTL())
}

func TestLogin_RejectsBadCredentialsGenerically(t *testing.T) {
	svc := NewAuthService(testAdminConfig(t), nil)
	ctx := context.Background()

	_, wrongPass := svc.Login(ctx, "admin", "nope")
	_, wrongUser := svc.Login(ctx, "root", "creovibe123")

	for _, err := range []error{wrongPass, wrongUser} {
		ae, ok := appErrors.As(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.CodeUnauthorized, ae.Code)
		assert.Equal(t, "Invalid credentials!", ae.Message)
	}
}

func TestVerify_RejectsTamperedAndExpired(t *testing.T) {
	cfg := testAdminConfig(t)
	svc := NewAuthService(cfg, nil).(*authService)

	_, err := svc.Verify("")
	assert.True(t, appErrors.IsCode(err, appErrors.CodeUnauthorized))

	token, err := svc.Login(context.Background(), "admin", "creovibe123")
	require.NoError(t, err)
	_, err = svc.Verify(token + "x")
	assert.True(t, appErrors.IsCode(err, appErrors.CodeUnauthorized))

	other := cfg
	other.SessionSecret = strings.Repeat("o", 32)
	_, err = NewAuthService(other, nil).Verify(token)
	assert.True(t, appErrors.IsCode(err, appErrors.CodeUnauthorized))

	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = svc.Verify(token)
	assert.True(t, appErrors.IsCode(err, appErrors.CodeUnauthorized))
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("secret")))

	_, err = HashPassword("")
	assert.Error(t, err)
}
