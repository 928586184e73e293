package handler

// --- Request types ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerStaffRequest struct {
	Email           string `json:"email"            validate:"required,email"`
	Name            string `json:"name"             validate:"required"`
	Password        string `json:"password"         validate:"required,staffpassword"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	Role            string `json:"role"             validate:"required,oneof=admin editor user"`
}

// registerCustomerRequest carries no role field: customers cannot choose
// one. Customer passwords only need a minimum length, unlike staff.
type registerCustomerRequest struct {
	Email           string `json:"email"            validate:"required,email"`
	Name            string `json:"name"             validate:"required"`
	Password        string `json:"password"         validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	ContactNumber   string `json:"contact_number"   validate:"required"`
}

// changePasswordRequest defers the new-password policy to the service,
// which applies the role-dependent rule.
type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required"`
}

type changeEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// --- Response types ---

type authResponse struct {
	Token string `json:"token,omitempty"`
	User  any    `json:"user,omitempty"`
}
