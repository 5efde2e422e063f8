package user

type Role string

const (
	RoleGroomer Role = "groomer"
	RoleAdmin   Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleGroomer, RoleAdmin:
		return true
	default:
		return false
	}
}

// Level orders roles for "at least" checks; unknown roles rank lowest.
func (r Role) Level() int {
	switch r {
	case RoleAdmin:
		return 2
	case RoleGroomer:
		return 1
	default:
		return 0
	}
}

func (r Role) AtLeast(min Role) bool {
	return r.IsValid() && r.Level() >= min.Level()
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
