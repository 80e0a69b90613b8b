package domain

import "time"

// RoleAdmin is the administrative role, lazily created the first time an
// admin registration needs it.
const RoleAdmin = "Admin"

// User models an account held in the credential store. The password itself
// never appears here; the store keeps only the bcrypt hash.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	Roles        []string  `json:"roles"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasRole reports whether the user belongs to the named role.
func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r == name {
			return true
		}
	}
	return false
}

// Role is a named authorization grouping users may be assigned to.
type Role struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Token is a signed, time-bounded credential. Immutable once issued; the
// service keeps no record of issued tokens.
type Token struct {
	Value   string    `json:"token"`
	ValidTo time.Time `json:"validTo"`
}
