package auth

// Roles
const (
	RoleAdmin   = "Admin"
	RoleTeacher = "Teacher"
)

var Roles = []string{RoleAdmin, RoleTeacher}

// User is the staff identity acting in the current session. It is supplied
// by an external identity source and is never created, mutated nor persisted
// by this module.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Email string `json:"email"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ValidRole reports whether role is one of Roles.
func ValidRole(role string) bool {
	for _, r := range Roles {
		if role == r {
			return true
		}
	}
	return false
}
