// Package user defines directory entities: users, roles, and the permission
// set a role grants.
package user

import (
	"net/mail"
	"strings"
	"time"

	"github.com/carolinafmacedo/workflowmanagement/internal/domain"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/idx"
)

// MinPasswordLength is the shortest plaintext password accepted at registration.
const MinPasswordLength = 8

// User is a registered account. PasswordHash is an Argon2id PHC string and
// never leaves the service.
type User struct {
	ID           idx.ID
	Name         string
	Email        string
	PasswordHash string
	JobTitle     string
	RoleID       idx.ID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Registration carries the fields needed to create a user.
type Registration struct {
	Name     string
	Email    string
	Password string
	JobTitle string
	RoleID   idx.ID
}

// Validate checks registration input before any lookup.
func (r *Registration) Validate() error {
	fields := domain.Fields{}

	if strings.TrimSpace(r.Name) == "" {
		fields.Add("name", domain.MsgRequired)
	}
	if strings.TrimSpace(r.Email) == "" {
		fields.Add("email", domain.MsgRequired)
	} else if _, err := mail.ParseAddress(r.Email); err != nil {
		fields.Add("email", domain.MsgInvalid)
	}
	if len(r.Password) < MinPasswordLength {
		fields.Add("password", "must be at least 8 characters")
	}
	if r.RoleID.IsZero() {
		fields.Add("role_id", domain.MsgRequired)
	}

	return fields.Err()
}

// NormalizeEmail lowercases and trims an email for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ProfileUpdate holds optional profile changes. Nil fields are left as is.
type ProfileUpdate struct {
	Name     *string
	JobTitle *string
}

// Validate rejects an explicitly blank name.
func (p *ProfileUpdate) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return domain.NewValidationError("name", "must not be blank")
	}
	return nil
}

// Apply copies the non-nil fields of p onto u.
func (p *ProfileUpdate) Apply(u *User) {
	if p.Name != nil {
		u.Name = strings.TrimSpace(*p.Name)
	}
	if p.JobTitle != nil {
		u.JobTitle = strings.TrimSpace(*p.JobTitle)
	}
}
