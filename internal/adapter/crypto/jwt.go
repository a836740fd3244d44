package crypto

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"gitlab.com/contact-site.net/internal/config"
	"gitlab.com/contact-site.net/internal/core/ports/primary"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrNoSecret     = errors.New("admin jwt secret is not configured")
)

const adminSubject = "admin"

var _ primary.AdminTokenService = (*AdminTokenService)(nil)

// AdminTokenService mints and checks HMAC tokens that grant read access to submissions.
type AdminTokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewAdminTokenService(jwtConfig *config.JwtConfig) *AdminTokenService {
	return &AdminTokenService{
		secret: []byte(jwtConfig.Secret),
		ttl:    jwtConfig.TokenTTL,
		now:    time.Now,
	}
}

// Enabled reports whether a secret is configured
func (s *AdminTokenService) Enabled() bool {
	return s != nil && len(s.secret) > 0
}

// GenerateToken signs a token for the admin subject
func (s *AdminTokenService) GenerateToken() (string, error) {
	if !s.Enabled() {
		return "", ErrNoSecret
	}
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:  adminSubject,
		IssuedAt: jwt.NewNumericDate(now),
	}
	if s.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.secret)
}

// VerifyToken checks signature, expiry and subject
func (s *AdminTokenService) VerifyToken(token string) error {
	if !s.Enabled() {
		return ErrNoSecret
	}
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.Subject != adminSubject {
		return ErrInvalidToken
	}
	return nil
}
