// Package access maps session roles to the actions the client offers. The
// check only hides actions the server would reject; authorization is always
// enforced server-side.
package access

// Roles issued by the backend.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleViewer  = "viewer"
)

// Actions gated in the client.
const (
	ActionView   = "view"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

var allowed = map[string]map[string]bool{
	RoleAdmin: {
		ActionView:   true,
		ActionCreate: true,
		ActionUpdate: true,
		ActionDelete: true,
	},
	RoleManager: {
		ActionView:   true,
		ActionCreate: true,
		ActionUpdate: true,
	},
	RoleViewer: {
		ActionView: true,
	},
}

// CanPerform reports whether any of the roles permits the action. Unknown
// roles grant nothing.
func CanPerform(action string, roles []string) bool {
	for _, role := range roles {
		if allowed[role][action] {
			return true
		}
	}
	return false
}
