package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned on any failed login. The same error
// covers a wrong username and a wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService gates admin operations behind a single configured credential
// pair. A successful login issues a signed token recorded in the token
// store; the token's presence there is the authenticated flag.
type AuthService struct {
	username     string
	passwordHash []byte
	jwtSecret    []byte
	tokens       TokenStore
	sessionTTL   time.Duration
}

func NewAuthService(username, password, jwtSecret string, tokens TokenStore, sessionTTL time.Duration) (*AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AuthService{
		username:     username,
		passwordHash: hash,
		jwtSecret:    []byte(jwtSecret),
		tokens:       tokens,
		sessionTTL:   sessionTTL,
	}, nil
}

// Authenticate checks the credential pair and, on success, issues a session
// token.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (string, error) {
	if username != s.username {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": username,
		"iat": now.Unix(),
		"exp": now.Add(s.sessionTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", err
	}

	if err := s.tokens.Put(ctx, token, s.sessionTTL); err != nil {
		return "", err
	}
	return token, nil
}

// IsAuthenticated reports whether the token belongs to a live admin
// session: valid signature, not expired, and not logged out.
func (s *AuthService) IsAuthenticated(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.jwtSecret, nil
	})
	if err != nil || !parsed.Valid {
		return false
	}

	exists, err := s.tokens.Exists(ctx, token)
	if err != nil {
		log.Printf("Failed to check session token: %v", err)
		return false
	}
	return exists
}

// Logout clears the session flag for the token.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.tokens.Delete(ctx, token)
}
