package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/carolinafmacedo/workflowmanagement/internal/domain"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/access"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/user"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/idx"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/password"
	"github.com/carolinafmacedo/workflowmanagement/internal/ports"
)

// Compile-time check that DirectoryService implements ports.DirectoryService.
var _ ports.DirectoryService = (*DirectoryService)(nil)

// DirectoryService implements ports.DirectoryService: registration,
// credential checks, profiles, and role lookup.
type DirectoryService struct {
	store  ports.Store
	hasher *password.Hasher
	now    Clock
	logger *slog.Logger

	// dummyHash is verified against when the email is unknown so both
	// failure paths cost one argon2 evaluation.
	dummyOnce sync.Once
	dummyHash string
}

// NewDirectoryService creates a DirectoryService.
func NewDirectoryService(store ports.Store, hasher *password.Hasher, logger *slog.Logger) *DirectoryService {
	return &DirectoryService{
		store:  store,
		hasher: hasher,
		now:    utcNow,
		logger: orDiscard(logger),
	}
}

// SeedRoles inserts the default roles when the roles table is empty.
func (s *DirectoryService) SeedRoles(ctx context.Context) error {
	return s.store.WithTx(ctx, func(tx ports.Repositories) error {
		empty, err := tx.Roles().IsEmpty(ctx)
		if err != nil {
			return fmt.Errorf("checking roles: %w", err)
		}
		if !empty {
			return nil
		}

		now := s.now()
		for _, r := range user.DefaultRoles() {
			r.ID = idx.NewAt(now)
			r.CreatedAt = now
			if err := tx.Roles().Create(ctx, &r); err != nil {
				return fmt.Errorf("seeding role %s: %w", r.Name, err)
			}
			s.logger.InfoContext(ctx, "seeded role", slog.String("role", r.Name))
		}
		return nil
	})
}

// Register validates the registration, hashes the password, and stores the
// user.
func (s *DirectoryService) Register(ctx context.Context, reg user.Registration) (*user.User, error) {
	s.logger.InfoContext(ctx, "registering user", slog.String("role_id", reg.RoleID.String()))

	if err := reg.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(reg.Password)
	if err != nil {
		logFailure(ctx, s.logger, "Register", err)
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	now := s.now()
	u := &user.User{
		ID:           idx.NewAt(now),
		Name:         strings.TrimSpace(reg.Name),
		Email:        user.NormalizeEmail(reg.Email),
		PasswordHash: hash,
		JobTitle:     strings.TrimSpace(reg.JobTitle),
		RoleID:       reg.RoleID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.store.WithTx(ctx, func(tx ports.Repositories) error {
		if _, err := tx.Roles().FindByID(ctx, reg.RoleID); err != nil {
			return fmt.Errorf("loading role %s: %w", reg.RoleID, err)
		}
		taken, err := tx.Users().ExistsByEmail(ctx, u.Email)
		if err != nil {
			return fmt.Errorf("checking email: %w", err)
		}
		if taken {
			return fmt.Errorf("%w: email already registered", domain.ErrConflict)
		}
		return tx.Users().Create(ctx, u)
	})
	if err != nil {
		logFailure(ctx, s.logger, "Register", err)
		return nil, err
	}

	return u, nil
}

// Authenticate resolves the user and role for a credential pair.
func (s *DirectoryService) Authenticate(ctx context.Context, email, plain string) (*user.User, *user.Role, error) {
	u, err := s.store.Users().FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		_ = s.hasher.Verify(plain, s.unknownUserHash())
		return nil, nil, domain.ErrUnauthenticated
	}
	if err != nil {
		logFailure(ctx, s.logger, "Authenticate", err)
		return nil, nil, fmt.Errorf("loading user: %w", err)
	}

	if err := s.hasher.Verify(plain, u.PasswordHash); err != nil {
		if !errors.Is(err, password.ErrMismatch) {
			logFailure(ctx, s.logger, "Authenticate", err, slog.String("user_id", u.ID.String()))
		}
		return nil, nil, domain.ErrUnauthenticated
	}

	role, err := s.store.Roles().FindByID(ctx, u.RoleID)
	if err != nil {
		logFailure(ctx, s.logger, "Authenticate", err, slog.String("user_id", u.ID.String()))
		return nil, nil, fmt.Errorf("loading role: %w", err)
	}

	s.logger.InfoContext(ctx, "user authenticated", slog.String("user_id", u.ID.String()))
	return u, role, nil
}

func (s *DirectoryService) unknownUserHash() string {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = s.hasher.Hash("unknown-user-placeholder")
	})
	return s.dummyHash
}

// GetUser returns a user by ID.
func (s *DirectoryService) GetUser(ctx context.Context, id idx.ID) (*user.User, error) {
	u, err := s.store.Users().FindByID(ctx, id)
	if err != nil {
		logFailure(ctx, s.logger, "GetUser", err, slog.String("id", id.String()))
		return nil, err
	}
	return u, nil
}

// UpdateProfile changes the user's name and job title.
func (s *DirectoryService) UpdateProfile(ctx context.Context, id idx.ID, upd user.ProfileUpdate) (*user.User, error) {
	s.logger.InfoContext(ctx, "updating profile", slog.String("id", id.String()))

	if err := upd.Validate(); err != nil {
		return nil, err
	}

	var updated *user.User
	err := s.store.WithTx(ctx, func(tx ports.Repositories) error {
		u, err := tx.Users().FindByID(ctx, id)
		if err != nil {
			return err
		}
		upd.Apply(u)
		u.UpdatedAt = s.now()
		if err := tx.Users().Update(ctx, u); err != nil {
			return err
		}
		updated = u
		return nil
	})
	if err != nil {
		logFailure(ctx, s.logger, "UpdateProfile", err, slog.String("id", id.String()))
		return nil, err
	}
	return updated, nil
}

// DeleteUser removes a user that nothing references any more.
func (s *DirectoryService) DeleteUser(ctx context.Context, id, executorID idx.ID) error {
	s.logger.InfoContext(ctx, "deleting user",
		slog.String("id", id.String()),
		slog.String("executor_id", executorID.String()),
	)

	err := s.store.WithTx(ctx, func(tx ports.Repositories) error {
		actor, err := loadActor(ctx, tx, executorID)
		if err != nil {
			return err
		}
		if !access.CanDeleteUser(actor) {
			return forbidden("delete users")
		}
		if _, err := tx.Users().FindByID(ctx, id); err != nil {
			return err
		}
		referenced, err := tx.Users().IsReferenced(ctx, id)
		if err != nil {
			return fmt.Errorf("checking references: %w", err)
		}
		if referenced {
			return fmt.Errorf("%w: user is still referenced by projects, tasks, comments, or hours", domain.ErrConflict)
		}
		return tx.Users().DeleteByID(ctx, id)
	})
	if err != nil {
		logFailure(ctx, s.logger, "DeleteUser", err, slog.String("id", id.String()))
		return err
	}
	return nil
}

// ListRoles returns every role ordered by name.
func (s *DirectoryService) ListRoles(ctx context.Context) ([]user.Role, error) {
	roles, err := s.store.Roles().List(ctx)
	if err != nil {
		logFailure(ctx, s.logger, "ListRoles", err)
		return nil, err
	}
	return roles, nil
}
