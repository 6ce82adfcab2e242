package domain

import "time"

// Role is the account type a user picks before completing a profile.
type Role string

const (
	RoleResident Role = "RESIDENT"
	RoleWorker   Role = "WORKER"
)

// Valid reports whether r is one of the selectable roles.
func (r Role) Valid() bool {
	return r == RoleResident || r == RoleWorker
}

// Identity is what the identity provider vouches for after verifying a bearer token.
type Identity struct {
	Subject string
	Email   string
}

// User is the application-side account bound to an external identity.
// AuthID never changes once set; Role may be empty until the user picks one.
type User struct {
	ID        string    `json:"id"`
	AuthID    string    `json:"authId"`
	Email     string    `json:"email,omitempty"`
	Role      Role      `json:"role,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasRole reports whether the user has selected a role.
func (u *User) HasRole() bool {
	return u != nil && u.Role.Valid()
}

// Me is the enriched self view returned by /me and /auth/sync.
type Me struct {
	User          *User          `json:"user"`
	Profile       *Profile       `json:"profile"`
	WorkerProfile *WorkerProfile `json:"workerProfile"`
}
