package domain

import "time"

// Staff roles plus the storefront customer role. Customers authenticate
// against a separate signing secret and never appear in the policy table.
const (
	RoleAdmin    = "admin"
	RoleEditor   = "editor"
	RoleUser     = "user"
	RoleCustomer = "customer"
)

// IsStaffRole reports whether role is one of the back-office roles.
func IsStaffRole(role string) bool {
	switch role {
	case RoleAdmin, RoleEditor, RoleUser:
		return true
	}
	return false
}

// Account models any authenticated actor: back-office staff or a
// storefront customer. ContactNumber is populated only for customers.
type Account struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Avatar        string    `json:"avatar,omitempty"`
	PasswordHash  string    `json:"-"`
	Role          string    `json:"role"`
	ContactNumber string    `json:"contact_number,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Principal is the authenticated account attached to a request after the
// auth middleware succeeds. The credential hash is never carried over.
type Principal struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// AsPrincipal strips the account down to what request handlers may see.
func (a *Account) AsPrincipal() *Principal {
	return &Principal{
		ID:    a.ID,
		Email: a.Email,
		Name:  a.Name,
		Role:  a.Role,
	}
}
