package domain

// Role is the single authorization axis. Roles are totally ordered:
// user < contributor < admin.
type Role string

const (
	RoleUser        Role = "user"
	RoleContributor Role = "contributor"
	RoleAdmin       Role = "admin"
)

var roleRank = map[Role]int{
	RoleUser:        0,
	RoleContributor: 1,
	RoleAdmin:       2,
}

func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether r grants at least the permissions of required.
// An unknown role never satisfies any requirement.
func (r Role) AtLeast(required Role) bool {
	rank, ok := roleRank[r]
	if !ok {
		return false
	}
	return rank >= roleRank[required]
}
