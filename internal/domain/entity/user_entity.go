package entity

import "time"

// Role is the authorization role of an account.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User is an account record as stored in the users document.
// Password holds a bcrypt hash, never the plain secret.
type User struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	Role        Role       `json:"role"`
	Password    string     `json:"password,omitempty"`
	DateCreated time.Time  `json:"dateCreated"`
	LastLogin   *time.Time `json:"lastLogin,omitempty"`
}

// IsAdmin reports whether the account carries the admin role.
func (u *User) IsAdmin() bool { return u != nil && u.Role == RoleAdmin }

// Public returns a copy of the account with the credential hash stripped,
// safe to hand to the presentation layer or to persist as the session record.
func (u User) Public() User {
	u.Password = ""
	return u
}

// NewUser carries the fields submitted at registration.
type NewUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
