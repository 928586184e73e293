package domain

import "testing"

func TestIsPermitted(t *testing.T) {
	cases := []struct {
		role   string
		action Action
		want   bool
	}{
		{RoleAdmin, ActionView, true},
		{RoleAdmin, ActionAdd, true},
		{RoleAdmin, ActionEdit, true},
		{RoleAdmin, ActionDelete, true},
		{RoleAdmin, ActionManage, true},
		{RoleEditor, ActionView, true},
		{RoleEditor, ActionAdd, true},
		{RoleEditor, ActionEdit, true},
		{RoleEditor, ActionDelete, false},
		{RoleEditor, ActionManage, false},
		{RoleUser, ActionView, true},
		{RoleUser, ActionAdd, false},
		{RoleUser, ActionEdit, false},
		{RoleUser, ActionDelete, false},
		{RoleCustomer, ActionView, false},
		{"", ActionView, false},
		{RoleAdmin, Action("publish"), false},
	}
	for _, tc := range cases {
		if got := IsPermitted(tc.role, tc.action); got != tc.want {
			t.Fatalf("IsPermitted(%q, %q) = %v, want %v", tc.role, tc.action, got, tc.want)
		}
	}
}

func TestRolesPermitted(t *testing.T) {
	roles := RolesPermitted(ActionDelete)
	if len(roles) != 1 || roles[0] != RoleAdmin {
		t.Fatalf("expected only admin for delete, got %v", roles)
	}

	roles = RolesPermitted(ActionAdd)
	if len(roles) != 2 || roles[0] != RoleAdmin || roles[1] != RoleEditor {
		t.Fatalf("expected admin and editor for add, got %v", roles)
	}
}
