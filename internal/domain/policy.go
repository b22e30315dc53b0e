package domain

// CanEdit decides whether actor may edit target. It is a pure function of
// its inputs:
//
//   - nil actor (unauthenticated): never
//   - administrator: any target
//   - manager: only targets with the plain user role
//   - user: only themselves
//
// The switch is exhaustive over the Role enumeration; an unrecognized role
// (which Validate should have rejected upstream) gets no edit rights.
func CanEdit(actor, target *User) bool {
	if actor == nil || target == nil {
		return false
	}

	switch actor.Role {
	case RoleAdministrator:
		return true
	case RoleManager:
		return target.Role == RoleUser
	case RoleUser:
		return actor.ID == target.ID
	default:
		return false
	}
}
