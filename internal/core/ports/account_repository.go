package ports

import (
	"context"

	"github.com/merchantry/storefront-api/internal/core/domain"
)

// AccountPatch is an explicit optional-field update. A nil field means
// "leave unchanged"; a non-nil pointer to an empty string means "set empty".
type AccountPatch struct {
	Email         *string
	Name          *string
	Avatar        *string
	PasswordHash  *string
	ContactNumber *string
}

// AccountRepository is the persistence contract for accounts. The backing
// store must enforce a unique index on email; Create returns
// domain.ErrAccountExists on a duplicate.
type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	CountByRole(ctx context.Context, role string) (int64, error)
	UpdateByEmail(ctx context.Context, email string, patch AccountPatch) (*domain.Account, error)
	List(ctx context.Context, role string) ([]domain.Account, error)
}
