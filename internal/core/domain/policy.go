package domain

// Action is an operation a staff role may be granted on back-office resources.
type Action string

const (
	ActionView   Action = "view"
	ActionAdd    Action = "add"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
	// ActionManage covers site-wide administration: settings, the staff
	// roster and the audit trail.
	ActionManage Action = "manage"
)

// rolePermissions is the single source of truth for staff authorization.
// Every route-level role check goes through IsPermitted; handlers never
// compare roles inline.
var rolePermissions = map[string]map[Action]struct{}{
	RoleAdmin: {
		ActionView:   {},
		ActionAdd:    {},
		ActionEdit:   {},
		ActionDelete: {},
		ActionManage: {},
	},
	RoleEditor: {
		ActionView: {},
		ActionAdd:  {},
		ActionEdit: {},
	},
	RoleUser: {
		ActionView: {},
	},
}

// IsPermitted reports whether role may perform action. Unknown roles and
// unknown actions are denied, including the customer role.
func IsPermitted(role string, action Action) bool {
	perms, ok := rolePermissions[role]
	if !ok {
		return false
	}
	_, ok = perms[action]
	return ok
}

// RolesPermitted returns the staff roles allowed to perform action, in
// privilege order. Used to phrase authorization failures.
func RolesPermitted(action Action) []string {
	var roles []string
	for _, role := range []string{RoleAdmin, RoleEditor, RoleUser} {
		if IsPermitted(role, action) {
			roles = append(roles, role)
		}
	}
	return roles
}
