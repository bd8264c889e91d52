package staff

type Role string

const (
	RoleClerk   Role = "clerk"
	RoleManager Role = "manager"
)

var roleLevel = map[Role]int{
	RoleClerk:   1,
	RoleManager: 2,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleLevel[r]
	return ok
}

// AtLeast reports whether r ranks at or above min. Unknown roles rank below
// everything.
func (r Role) AtLeast(min Role) bool {
	have, ok := roleLevel[r]
	want, known := roleLevel[min]
	return ok && known && have >= want
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
