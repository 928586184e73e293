package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/merchantry/storefront-api/internal/core/domain"
	"github.com/merchantry/storefront-api/internal/core/ports"
	"github.com/merchantry/storefront-api/internal/pkg/credential"
)

// Default credential for the first-run administrator. Deployments are
// expected to change the password immediately after first login.
const (
	DefaultAdminEmail    = "admin@storefront.local"
	DefaultAdminName     = "Administrator"
	defaultAdminPassword = "Admin@12345"
)

// BootstrapAdmin guarantees a fresh deployment has a way in: when no admin
// account exists and the default email is free, it creates one with the
// default credential. The existence check plus the unique email index make
// it safe under concurrent first starts; no in-memory flag is involved.
func BootstrapAdmin(ctx context.Context, accounts ports.AccountRepository, audit ports.AuditRecorder, logger zerolog.Logger) error {
	admins, err := accounts.CountByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return err
	}
	if admins > 0 {
		return nil
	}

	// The default email may be held by a non-admin account from an earlier
	// deployment. Never overwrite it.
	if existing, err := accounts.FindByEmail(ctx, DefaultAdminEmail); err == nil {
		logger.Warn().
			Str("email", DefaultAdminEmail).
			Str("role", existing.Role).
			Msg("default admin email taken by non-admin account, skipping bootstrap")
		return nil
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return err
	}

	hash, err := credential.Hash(defaultAdminPassword)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = accounts.Create(ctx, &domain.Account{
		Email:        DefaultAdminEmail,
		Name:         DefaultAdminName,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		// Another instance won the race; the unique index rejected ours.
		if errors.Is(err, domain.ErrAccountExists) {
			return nil
		}
		return err
	}

	if audit != nil {
		audit.Record(domain.AuditEvent{
			Email:     DefaultAdminEmail,
			Kind:      domain.AuditBootstrap,
			Timestamp: now,
		})
	}
	logger.Info().Str("email", DefaultAdminEmail).Msg("bootstrap admin account created")
	return nil
}
