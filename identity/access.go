package identity

// CheckModuleAccess is the coarse gate for a feature area. Tenant-admin roles
// pass unconditionally; everyone else needs the exact module string. An empty
// requirement always grants: routes are open unless they declare one.
func CheckModuleAccess(ident *CurrentIdentity, module string) bool {
	if module == "" {
		return true
	}
	if ident == nil || ident.Role == nil {
		return false
	}
	if ident.Role.IsAdmin {
		return true
	}
	return ident.Role.Modules.Contains(module)
}

// CheckPermissions is the fine-grained per-action gate: every required
// permission must be present. Unlike CheckModuleAccess there is no
// tenant-admin bypass here; admin roles carry the full module list instead.
func CheckPermissions(ident *CurrentIdentity, required ...string) bool {
	if len(required) == 0 {
		return true
	}
	if ident == nil || ident.Role == nil {
		return false
	}
	for _, perm := range required {
		if !ident.Role.Modules.Contains(perm) {
			return false
		}
	}
	return true
}
