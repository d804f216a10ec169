// Package token issues and verifies HS256-signed JWT access tokens.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/carolinafmacedo/workflowmanagement/internal/domain"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/user"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/idx"
	"github.com/carolinafmacedo/workflowmanagement/internal/ports"
)

// MinSecretLength is the shortest signing secret accepted.
const MinSecretLength = 32

// DefaultLeeway absorbs clock skew between issuer and verifier.
const DefaultLeeway = 30 * time.Second

// ErrWeakSecret is returned by New for a secret shorter than MinSecretLength.
var ErrWeakSecret = errors.New("token: signing secret too short")

// Compile-time check that Service implements ports.TokenService.
var _ ports.TokenService = (*Service)(nil)

// Claims are the access-token claims.
type Claims struct {
	jwt.RegisteredClaims

	// Email is the user's login email at issue time.
	Email string `json:"email,omitempty"`

	// Role is the user's role name at issue time. Authorization re-reads
	// the role from the directory; this is informational for clients.
	Role string `json:"role,omitempty"`
}

// Service signs and verifies tokens with a shared secret.
type Service struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// New creates a Service. ttl must be positive.
func New(secret, issuer string, ttl time.Duration) (*Service, error) {
	if len(secret) < MinSecretLength {
		return nil, fmt.Errorf("%w: need at least %d bytes", ErrWeakSecret, MinSecretLength)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token: ttl must be positive, got %s", ttl)
	}
	return &Service{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    func() time.Time { return time.Now().UTC() },
	}, nil
}

// Issue signs a token for u.
func (s *Service) Issue(u *user.User, roleName string) (ports.AccessToken, error) {
	now := s.now()
	expires := now.Add(s.ttl)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   u.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
			ID:        idx.NewAt(now).String(),
		},
		Email: u.Email,
		Role:  roleName,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return ports.AccessToken{}, fmt.Errorf("token: sign: %w", err)
	}
	return ports.AccessToken{Token: signed, ExpiresAt: expires}, nil
}

// Verify parses raw and returns its subject. Every failure wraps
// domain.ErrUnauthenticated.
func (s *Service) Verify(raw string) (idx.ID, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(DefaultLeeway),
		jwt.WithTimeFunc(s.now),
	)

	claims := &Claims{}
	tok, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		return idx.Zero, fmt.Errorf("%w: %w", domain.ErrUnauthenticated, err)
	}
	if !tok.Valid {
		return idx.Zero, fmt.Errorf("%w: invalid token", domain.ErrUnauthenticated)
	}

	id, err := idx.Parse(claims.Subject)
	if err != nil {
		return idx.Zero, fmt.Errorf("%w: bad subject: %w", domain.ErrUnauthenticated, err)
	}
	return id, nil
}
