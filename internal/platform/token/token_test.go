package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carolinafmacedo/workflowmanagement/internal/domain"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/user"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/idx"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newService(t *testing.T, secret, issuer string) *Service {
	t.Helper()
	s, err := New(secret, issuer, 15*time.Minute)
	require.NoError(t, err)
	return s
}

func TestNew_RejectsWeakConfig(t *testing.T) {
	t.Parallel()

	_, err := New("short", "wm", time.Minute)
	if !errors.Is(err, ErrWeakSecret) {
		t.Errorf("New() error = %v, want ErrWeakSecret", err)
	}

	_, err = New(testSecret, "wm", 0)
	assert.Error(t, err)
}

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	s := newService(t, testSecret, "workflowmanagement")
	u := &user.User{ID: idx.New(), Name: "Ana"}

	tok, err := s.Issue(u, user.RoleManager)
	require.NoError(t, err)
	assert.NotEmpty(t, tok.Token)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), tok.ExpiresAt, time.Minute)

	subject, err := s.Verify(tok.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, subject)
}

func TestIssue_Claims(t *testing.T) {
	t.Parallel()

	s := newService(t, testSecret, "workflowmanagement")
	u := &user.User{ID: idx.New(), Name: "Ana", Email: "ana@example.com"}

	tok, err := s.Issue(u, user.RoleManager)
	require.NoError(t, err)

	claims := &Claims{}
	_, err = jwt.NewParser().ParseWithClaims(tok.Token, claims, func(*jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)

	assert.Equal(t, u.ID.String(), claims.Subject)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, user.RoleManager, claims.Role)
	assert.Equal(t, "workflowmanagement", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestVerify_Rejects(t *testing.T) {
	t.Parallel()

	u := &user.User{ID: idx.New(), Name: "Ana"}
	s := newService(t, testSecret, "workflowmanagement")

	expired := newService(t, testSecret, "workflowmanagement")
	expired.now = func() time.Time { return time.Now().Add(-time.Hour) }
	expiredTok, err := expired.Issue(u, user.RoleAdmin)
	require.NoError(t, err)

	otherSecret, err := newService(t, "ffffffffffffffffffffffffffffffff", "workflowmanagement").Issue(u, "")
	require.NoError(t, err)

	otherIssuer, err := newService(t, testSecret, "someone-else").Issue(u, "")
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Issuer:    "workflowmanagement",
		Subject:   u.ID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "workflowmanagement",
		Subject:   "not-a-ulid",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"garbage", "not.a.token"},
		{"expired", expiredTok.Token},
		{"wrong secret", otherSecret.Token},
		{"wrong issuer", otherIssuer.Token},
		{"alg none", unsigned},
		{"bad subject", badSubject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := s.Verify(tt.raw)
			if !errors.Is(err, domain.ErrUnauthenticated) {
				t.Errorf("Verify() error = %v, want ErrUnauthenticated", err)
			}
		})
	}
}
