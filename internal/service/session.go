package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidSession is returned for a token that cannot be verified.
	ErrInvalidSession = errors.New("invalid session token")
	// ErrSessionExpired is returned for a well-formed token past its expiry.
	ErrSessionExpired = errors.New("session expired")
)

// Session is what the storefront knows about the shopper's login.
type Session struct {
	Subject   string
	ExpiresAt time.Time
}

// SessionServiceInterface exposes the session capability the cart UI may query.
type SessionServiceInterface interface {
	Validate(token string) (*Session, error)
	Issue(subject string) (string, time.Time, error)
}

// SessionConfig holds the signing settings for session tokens.
type SessionConfig struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

// SessionService verifies HMAC-signed session tokens issued by the
// storefront's login flow.
type SessionService struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewSessionService creates a session service. An empty secret is rejected.
func NewSessionService(cfg SessionConfig) (*SessionService, error) {
	if strings.TrimSpace(cfg.Secret) == "" {
		return nil, errors.New("session secret is required")
	}
	if cfg.TTL <= 0 {
		cfg.TTL = time.Hour
	}
	return &SessionService{
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
		ttl:    cfg.TTL,
	}, nil
}

// Issue signs a token for subject.
func (s *SessionService) Issue(subject string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session token: %w", err)
	}
	return token, expiresAt, nil
}

// Validate parses token and returns the session it describes.
func (s *SessionService) Validate(token string) (*Session, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired()}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, opts...)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return nil, ErrSessionExpired
	}
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidSession
	}
	if claims.Subject == "" {
		return nil, ErrInvalidSession
	}

	return &Session{
		Subject:   claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
