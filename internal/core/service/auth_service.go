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

const customerMinPasswordLen = 6

// AuthService implements registration, login, and credential changes for
// staff and customer accounts.
type AuthService struct {
	accounts ports.AccountRepository
	tokens   *TokenService
	limiter  ports.LoginLimiter
	audit    ports.AuditRecorder
	logger   zerolog.Logger
}

func NewAuthService(
	accounts ports.AccountRepository,
	tokens *TokenService,
	limiter ports.LoginLimiter,
	audit ports.AuditRecorder,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		accounts: accounts,
		tokens:   tokens,
		limiter:  limiter,
		audit:    audit,
		logger:   logger,
	}
}

// RegisterStaff creates a back-office account. Once any staff account
// exists, only an admin principal may create further ones; the very first
// registration on an empty database needs no token (initial setup).
func (s *AuthService) RegisterStaff(ctx context.Context, input ports.RegisterStaffInput) (*domain.Account, error) {
	if !domain.IsStaffRole(input.Role) {
		return nil, domain.ErrInvalidInput
	}
	if !credential.StrongPassword(input.Password) {
		return nil, domain.ErrInvalidInput
	}

	// A taken email is a conflict regardless of who is asking; checking it
	// before the acting-role gate keeps the answer stable between the
	// token-less first registration and every retry after it. The unique
	// index still backs this lookup against races.
	if _, err := s.accounts.FindByEmail(ctx, credential.Email(input.Email)); err == nil {
		return nil, domain.ErrAccountExists
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, err
	}

	staffCount, err := s.countStaff(ctx)
	if err != nil {
		return nil, err
	}
	if staffCount > 0 && input.ActingRole != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	account, err := s.createAccount(ctx, accountFields{
		email:    input.Email,
		name:     input.Name,
		password: input.Password,
		role:     input.Role,
	})
	if err != nil {
		return nil, err
	}

	s.record(domain.AuditRegistered, account.Email, "role="+account.Role)
	s.logger.Info().Str("email", account.Email).Str("role", account.Role).Msg("staff account registered")
	return account, nil
}

// RegisterCustomer creates a storefront customer account. The contact
// number is mandatory; customer passwords only need the minimum length,
// not the staff complexity policy.
func (s *AuthService) RegisterCustomer(ctx context.Context, input ports.RegisterCustomerInput) (*domain.Account, error) {
	if input.ContactNumber == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(input.Password) < customerMinPasswordLen {
		return nil, domain.ErrInvalidInput
	}

	account, err := s.createAccount(ctx, accountFields{
		email:         input.Email,
		name:          input.Name,
		password:      input.Password,
		role:          domain.RoleCustomer,
		contactNumber: input.ContactNumber,
	})
	if err != nil {
		return nil, err
	}

	s.record(domain.AuditRegistered, account.Email, "role=customer")
	s.logger.Info().Str("email", account.Email).Msg("customer account registered")
	return account, nil
}

// Login verifies credentials and issues a role-scoped token. A wrong
// password and an unknown email both surface as ErrInvalidCredentials so
// the response cannot be used to probe for registered emails.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Account, error) {
	email = credential.Email(email)
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		locked, err := s.limiter.TooManyFailures(ctx, email)
		if err != nil {
			s.logger.Warn().Err(err).Msg("login limiter unavailable, continuing")
		} else if locked {
			s.record(domain.AuditLoginFailed, email, "locked out")
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			s.recordLoginFailure(ctx, email, "unknown email")
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !credential.Verify(password, account.PasswordHash) {
		s.recordLoginFailure(ctx, email, "wrong password")
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(account.Email, account.Role)
	if err != nil {
		return "", nil, err
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, email); err != nil {
			s.logger.Warn().Err(err).Msg("login limiter reset failed")
		}
	}
	s.record(domain.AuditLoginOK, email, "")
	return token, account, nil
}

// ChangePassword verifies the current password and applies the
// role-dependent policy to the new one: full complexity for staff, a
// relaxed minimum length for customers.
func (s *AuthService) ChangePassword(ctx context.Context, principal *domain.Principal, current, next string) error {
	account, err := s.accounts.FindByEmail(ctx, principal.Email)
	if err != nil {
		return err
	}
	if !credential.Verify(current, account.PasswordHash) {
		return domain.ErrInvalidCredentials
	}

	if account.Role == domain.RoleCustomer {
		if len(next) < customerMinPasswordLen {
			return domain.ErrInvalidInput
		}
	} else if !credential.StrongPassword(next) {
		return domain.ErrInvalidInput
	}

	hash, err := credential.Hash(next)
	if err != nil {
		return err
	}
	if _, err := s.accounts.UpdateByEmail(ctx, account.Email, ports.AccountPatch{PasswordHash: &hash}); err != nil {
		return err
	}

	s.record(domain.AuditPasswordChange, account.Email, "")
	s.logger.Info().Str("email", account.Email).Msg("password changed")
	return nil
}

// ChangeEmail moves the principal's account to a new address after checking
// the address is not already taken.
func (s *AuthService) ChangeEmail(ctx context.Context, principal *domain.Principal, next string) (*domain.Account, error) {
	next = credential.Email(next)
	if next == "" {
		return nil, domain.ErrInvalidInput
	}
	if next == principal.Email {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.accounts.FindByEmail(ctx, next); err == nil {
		return nil, domain.ErrAccountExists
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, err
	}

	updated, err := s.accounts.UpdateByEmail(ctx, principal.Email, ports.AccountPatch{Email: &next})
	if err != nil {
		return nil, err
	}

	s.record(domain.AuditEmailChange, principal.Email, "new="+next)
	s.logger.Info().Str("old", principal.Email).Str("new", next).Msg("email changed")
	return updated, nil
}

type accountFields struct {
	email         string
	name          string
	password      string
	role          string
	contactNumber string
}

func (s *AuthService) createAccount(ctx context.Context, f accountFields) (*domain.Account, error) {
	email := credential.Email(f.email)
	name := credential.Name(f.name)
	if email == "" || name == "" {
		return nil, domain.ErrInvalidInput
	}

	hash, err := credential.Hash(f.password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return s.accounts.Create(ctx, &domain.Account{
		Email:         email,
		Name:          name,
		PasswordHash:  hash,
		Role:          f.role,
		ContactNumber: f.contactNumber,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
}

func (s *AuthService) countStaff(ctx context.Context) (int64, error) {
	var total int64
	for _, role := range []string{domain.RoleAdmin, domain.RoleEditor, domain.RoleUser} {
		n, err := s.accounts.CountByRole(ctx, role)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

func (s *AuthService) recordLoginFailure(ctx context.Context, email, detail string) {
	if s.limiter != nil {
		if err := s.limiter.RecordFailure(ctx, email); err != nil {
			s.logger.Warn().Err(err).Msg("login limiter record failed")
		}
	}
	s.record(domain.AuditLoginFailed, email, detail)
}

func (s *AuthService) record(kind, email, detail string) {
	if s.audit == nil {
		return
	}
	s.audit.Record(domain.AuditEvent{
		Email:     email,
		Kind:      kind,
		Detail:    detail,
		Timestamp: time.Now().UTC(),
	})
}
