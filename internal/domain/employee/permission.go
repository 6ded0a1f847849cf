package employee

// UpdatableFields maps roles to the profile fields an update request may
// touch. Fields outside the caller's whitelist are silently dropped rather
// than rejected, matching the form behaviour the frontend expects.
var UpdatableFields = map[Role][]string{
	RoleAdmin: {
		"firstName",
		"lastName",
		"email",
		"podName",
		"position",
		"role",
		"phone",
		"address",
	},
	RoleManager: {
		"firstName",
		"lastName",
		"email",
		"phone",
		"address",
	},
	RoleEmployee: {
		"firstName",
		"lastName",
		"email",
		"phone",
		"address",
	},
}

// CanUpdateField consults the per-role whitelist.
func CanUpdateField(role Role, field string) bool {
	for _, f := range UpdatableFields[role] {
		if f == field {
			return true
		}
	}
	return false
}
