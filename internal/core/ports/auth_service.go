package ports

import (
	"context"

	"github.com/merchantry/storefront-api/internal/core/domain"
)

// RegisterStaffInput carries a validated staff registration. Role must be
// one of the staff roles. ActingRole is the caller's role, or empty when
// the request carried no token — acceptable only while no staff account
// exists yet (initial setup).
type RegisterStaffInput struct {
	Email      string
	Name       string
	Password   string
	Role       string
	ActingRole string
}

// RegisterCustomerInput carries a customer self-registration. The role is
// always customer and never client-supplied.
type RegisterCustomerInput struct {
	Email         string
	Name          string
	Password      string
	ContactNumber string
}

// AuthService implements login, registration, and credential changes.
type AuthService interface {
	RegisterStaff(ctx context.Context, input RegisterStaffInput) (*domain.Account, error)
	RegisterCustomer(ctx context.Context, input RegisterCustomerInput) (*domain.Account, error)
	Login(ctx context.Context, email, password string) (string, *domain.Account, error)
	ChangePassword(ctx context.Context, principal *domain.Principal, current, next string) error
	ChangeEmail(ctx context.Context, principal *domain.Principal, next string) (*domain.Account, error)
}
