package usecases

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"creovibe/internal/pkg/config"
	appErrors "creovibe/pkg/errors"
	"creovibe/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var jwtSigningMethod = jwt.SigningMethodHS256

// AdminClaims is the payload of the admin session cookie. Subject holds the
// admin username.
type AdminClaims struct {
	jwt.RegisteredClaims
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
	Verify(token string) (*AdminClaims, error)
	TTL() time.Duration
}

type authService struct {
	cfg  config.AdminConfig
	now  func() time.Time
	logg *logger.Logger
}

func NewAuthService(cfg config.AdminConfig, logg *logger.Logger) AuthService {
	if logg == nil {
		logg = logger.Nop()
	}
	return &authService{cfg: cfg, now: time.Now, logg: logg}
}

// HashPassword produces the value expected in ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password is required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// Login never tells a wrong username apart from a wrong password.
func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.Username)) == 1
	passErr := bcrypt.CompareHashAndPassword([]byte(s.cfg.PasswordHash), []byte(password))
	if !userOK || passErr != nil {
		s.logg.Warn(s.logg.WithField(ctx, "username", username), "admin login rejected")
		return "", appErrors.ErrInvalidCredentials()
	}

	token, err := s.mint(s.now())
	if err != nil {
		return "", appErrors.ErrInternal(err)
	}
	s.logg.Info(ctx, "admin logged in")
	return token, nil
}

func (s *authService) mint(now time.Time) (string, error) {
	if s.cfg.SessionSecret == "" {
		return "", errors.New("session secret is required")
	}
	claims := AdminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.cfg.Username,
			Issuer:    s.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.SessionTTL)),
		},
	}
	signed, err := jwt.NewWithClaims(jwtSigningMethod, claims).SignedString([]byte(s.cfg.SessionSecret))
	if err != nil {
		return "", fmt.Errorf("signing session token: %w", err)
	}
	return signed, nil
}

func (s *authService) Verify(token string) (*AdminClaims, error) {
	if token == "" {
		return nil, appErrors.ErrUnauthorized(errors.New("missing session token"))
	}

	claims := &AdminClaims{}
	_, err := jwt.ParseWithClaims(
		token,
		claims,
		func(t *jwt.Token) (interface{}, error) {
			return []byte(s.cfg.SessionSecret), nil
		},
		jwt.WithValidMethods([]string{jwtSigningMethod.Alg()}),
		jwt.WithIssuer(s.cfg.Issuer),
		jwt.WithSubject(s.cfg.Username),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, appErrors.ErrUnauthorized(err)
	}
	return claims, nil
}

func (s *authService) TTL() time.Duration {
	return s.cfg.SessionTTL
}
