package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/merchantry/storefront-api/internal/core/domain"
	"github.com/merchantry/storefront-api/internal/core/ports"
	"github.com/merchantry/storefront-api/internal/pkg/credential"
)

type stubAccountRepo struct {
	accounts map[string]*domain.Account
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{accounts: make(map[string]*domain.Account)}
}

func cloneAccount(a *domain.Account) *domain.Account {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	if a, ok := r.accounts[email]; ok {
		return cloneAccount(a), nil
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	if _, exists := r.accounts[account.Email]; exists {
		return nil, domain.ErrAccountExists
	}
	copy := cloneAccount(account)
	if copy.ID == "" {
		copy.ID = account.Email
	}
	r.accounts[copy.Email] = cloneAccount(copy)
	return cloneAccount(copy), nil
}

func (r *stubAccountRepo) CountByRole(_ context.Context, role string) (int64, error) {
	var n int64
	for _, a := range r.accounts {
		if a.Role == role {
			n++
		}
	}
	return n, nil
}

func (r *stubAccountRepo) UpdateByEmail(_ context.Context, email string, patch ports.AccountPatch) (*domain.Account, error) {
	a, ok := r.accounts[email]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	if patch.Email != nil {
		if _, taken := r.accounts[*patch.Email]; taken {
			return nil, domain.ErrAccountExists
		}
		delete(r.accounts, a.Email)
		a.Email = *patch.Email
		r.accounts[a.Email] = a
	}
	if patch.Name != nil {
		a.Name = *patch.Name
	}
	if patch.Avatar != nil {
		a.Avatar = *patch.Avatar
	}
	if patch.PasswordHash != nil {
		a.PasswordHash = *patch.PasswordHash
	}
	if patch.ContactNumber != nil {
		a.ContactNumber = *patch.ContactNumber
	}
	return cloneAccount(a), nil
}

func (r *stubAccountRepo) List(_ context.Context, role string) ([]domain.Account, error) {
	var out []domain.Account
	for _, a := range r.accounts {
		if role == "" || a.Role == role {
			out = append(out, *cloneAccount(a))
		}
	}
	return out, nil
}

func newTestAuthService(repo *stubAccountRepo) *AuthService {
	tokens := NewTokenService("staff-secret", "customer-secret")
	return NewAuthService(repo, tokens, nil, nil, zerolog.Nop())
}

func TestAuthService_RegisterStaff_FirstAccountNeedsNoActor(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestAuthService(repo)

	account, err := svc.RegisterStaff(context.Background(), ports.RegisterStaffInput{
		Email:    "A@b.com",
		Name:     "A",
		Password: "Abcdef1!",
		Role:     domain.RoleEditor,
	})
	if err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if account.Email != "a@b.com" {
		t.Fatalf("email not normalized: %q", account.Email)
	}
	if account.PasswordHash == "Abcdef1!" || account.PasswordHash == "" {
		t.Fatalf("password not hashed")
	}
	if !credential.Verify("Abcdef1!", account.PasswordHash) {
		t.Fatalf("stored hash does not match password")
	}
}

func TestAuthService_RegisterStaff_RequiresAdminAfterFirst(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestAuthService(repo)

	if _, err := svc.RegisterStaff(context.Background(), ports.RegisterStaffInput{
		Email: "a@b.com", Name: "A", Password: "Abcdef1!", Role: domain.RoleEditor,
	}); err != nil {
		t.Fatalf("seed registration failed: %v", err)
	}

	_, err := svc.RegisterStaff(context.Background(), ports.RegisterStaffInput{
		Email: "b@b.com", Name: "B", Password: "Abcdef1!", Role: domain.RoleUser,
	})
	if err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden without acting admin, got %v", err)
	}

	if _, err := svc.RegisterStaff(context.Background(), ports.RegisterStaffInput{
		Email: "b@b.com", Name: "B", Password: "Abcdef1!", Role: domain.RoleUser, ActingRole: domain.RoleAdmin,
	}); err != nil {
		t.Fatalf("admin-created registration failed: %v", err)
	}
}

func TestAuthService_RegisterStaff_Validation(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestAuthService(repo)

	if _, err := svc.RegisterStaff(context.Background(), ports.RegisterStaffInput{
		Email: "a@b.com", Name: "A", Password: "Abcdef1!", Role: "customer",
	}); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for customer role, got %v", err)
	}

	if _, err := svc.RegisterStaff(context.Background(), ports.RegisterStaffInput{
		Email: "a@b.com", Name: "A", Password: "weak", Role: domain.RoleAdmin,
	}); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for weak password, got %v", err)
	}
}

func TestAuthService_RegisterStaff_DuplicateEmail(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestAuthService(repo)

	first := ports.RegisterStaffInput{Email: "a@b.com", Name: "A", Password: "Abcdef1!", Role: domain.RoleEditor}
	if _, err := svc.RegisterStaff(context.Background(), first); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}

	// An identical retry without a token must still answer "taken", not
	// "forbidden": the conflict outranks the acting-role gate.
	if _, err := svc.RegisterStaff(context.Background(), first); err != domain.ErrAccountExists {
		t.Fatalf("expected ErrAccountExists on token-less retry, got %v", err)
	}

	first.ActingRole = domain.RoleAdmin
	if _, err := svc.RegisterStaff(context.Background(), first); err != domain.ErrAccountExists {
		t.Fatalf("expected ErrAccountExists, got %v", err)
	}
}

func TestAuthService_RegisterCustomer_RequiresContactNumber(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestAuthService(repo)

	if _, err := svc.RegisterCustomer(context.Background(), ports.RegisterCustomerInput{
		Email: "c@b.com", Name: "C", Password: "Abcdef1!",
	}); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput without contact number, got %v", err)
	}

	account, err := svc.RegisterCustomer(context.Background(), ports.RegisterCustomerInput{
		Email: "c@b.com", Name: "C", Password: "Abcdef1!", ContactNumber: "555-0101",
	})
	if err != nil {
		t.Fatalf("customer registration failed: %v", err)
	}
	if account.Role != domain.RoleCustomer {
		t.Fatalf("expected customer role, got %q", account.Role)
	}
}

func TestAuthService_RegisterCustomer_RelaxedPasswordPolicy(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestAuthService(repo)

	// Six plain characters pass for customers, unlike staff.
	if _, err := svc.RegisterCustomer(context.Background(), ports.RegisterCustomerInput{
		Email: "c@b.com", Name: "C", Password: "simple", ContactNumber: "555-0101",
	}); err != nil {
		t.Fatalf("customer registration with simple password failed: %v", err)
	}

	if _, err := svc.RegisterCustomer(context.Background(), ports.RegisterCustomerInput{
		Email: "d@b.com", Name: "D", Password: "short", ContactNumber: "555-0102",
	}); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for short password, got %v", err)
	}
}

func TestAuthService_Login_WrongPasswordIsGeneric(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestAuthService(repo)

	if _, err := svc.RegisterStaff(context.Background(), ports.RegisterStaffInput{
		Email: "a@b.com", Name: "A", Password: "Abcdef1!", Role: domain.RoleEditor,
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	_, _, err := svc.Login(context.Background(), "a@b.com", "WrongPass1!")
	if err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}

	// Unknown email must fail with the exact same error.
	_, _, err = svc.Login(context.Background(), "ghost@b.com", "Abcdef1!")
	if err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestAuthService_Login_IssuesRoleScopedToken(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestAuthService(repo)
	tokens := NewTokenService("staff-secret", "customer-secret")

	if _, err := svc.RegisterCustomer(context.Background(), ports.RegisterCustomerInput{
		Email: "c@b.com", Name: "C", Password: "Abcdef1!", ContactNumber: "555-0101",
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	token, account, err := svc.Login(context.Background(), "c@b.com", "Abcdef1!")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if account.Role != domain.RoleCustomer {
		t.Fatalf("unexpected role: %q", account.Role)
	}
	if _, err := tokens.Verify(token, "customer-secret"); err != nil {
		t.Fatalf("customer token did not verify with customer secret: %v", err)
	}
	if _, err := tokens.Verify(token, "staff-secret"); err == nil {
		t.Fatalf("customer token verified with staff secret")
	}
}

func TestAuthService_ChangePassword_RoleDependentPolicy(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	if _, err := svc.RegisterStaff(ctx, ports.RegisterStaffInput{
		Email: "staff@b.com", Name: "S", Password: "Abcdef1!", Role: domain.RoleEditor,
	}); err != nil {
		t.Fatalf("seed staff: %v", err)
	}
	if _, err := svc.RegisterCustomer(ctx, ports.RegisterCustomerInput{
		Email: "cust@b.com", Name: "C", Password: "Abcdef1!", ContactNumber: "555-0101",
	}); err != nil {
		t.Fatalf("seed customer: %v", err)
	}

	staff := &domain.Principal{Email: "staff@b.com", Role: domain.RoleEditor}
	customer := &domain.Principal{Email: "cust@b.com", Role: domain.RoleCustomer}

	// "simple6" fails the staff complexity policy but passes the relaxed
	// customer minimum.
	if err := svc.ChangePassword(ctx, staff, "Abcdef1!", "simple6"); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for weak staff password, got %v", err)
	}
	if err := svc.ChangePassword(ctx, customer, "Abcdef1!", "simple6"); err != nil {
		t.Fatalf("customer relaxed policy rejected: %v", err)
	}
	if err := svc.ChangePassword(ctx, customer, "simple6", "abc"); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput below customer minimum, got %v", err)
	}
	if err := svc.ChangePassword(ctx, staff, "wrong-current", "Abcdef2!"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for wrong current password, got %v", err)
	}
	if err := svc.ChangePassword(ctx, staff, "Abcdef1!", "Abcdef2!"); err != nil {
		t.Fatalf("staff password change failed: %v", err)
	}
	if _, _, err := svc.Login(ctx, "staff@b.com", "Abcdef2!"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
}

func TestAuthService_ChangeEmail_Collision(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	if _, err := svc.RegisterStaff(ctx, ports.RegisterStaffInput{
		Email: "a@b.com", Name: "A", Password: "Abcdef1!", Role: domain.RoleEditor,
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := svc.RegisterStaff(ctx, ports.RegisterStaffInput{
		Email: "b@b.com", Name: "B", Password: "Abcdef1!", Role: domain.RoleUser, ActingRole: domain.RoleAdmin,
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	principal := &domain.Principal{Email: "a@b.com", Role: domain.RoleEditor}

	if _, err := svc.ChangeEmail(ctx, principal, "b@b.com"); err != domain.ErrAccountExists {
		t.Fatalf("expected ErrAccountExists on collision, got %v", err)
	}

	updated, err := svc.ChangeEmail(ctx, principal, "A2@b.com")
	if err != nil {
		t.Fatalf("change email failed: %v", err)
	}
	if updated.Email != "a2@b.com" {
		t.Fatalf("email not normalized on change: %q", updated.Email)
	}
}

type lockedLimiter struct{ locked bool }

func (l *lockedLimiter) TooManyFailures(context.Context, string) (bool, error) { return l.locked, nil }
func (l *lockedLimiter) RecordFailure(context.Context, string) error           { return nil }
func (l *lockedLimiter) Reset(context.Context, string) error                   { return nil }

func TestAuthService_Login_LockedOut(t *testing.T) {
	repo := newStubAccountRepo()
	tokens := NewTokenService("staff-secret", "customer-secret")
	svc := NewAuthService(repo, tokens, &lockedLimiter{locked: true}, nil, zerolog.Nop())

	if _, _, err := svc.Login(context.Background(), "a@b.com", "Abcdef1!"); err != domain.ErrTooManyAttempts {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}
