package domain

// User status codes. A single usuarios table holds both roles; admin records
// additionally carry AccessLevel (tagged variant, no sub-type).
const (
	StatusAdmin   = 1
	StatusRegular = 2
)

// User models an authenticated actor in the system.
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"nome"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Status       int    `json:"status"`
	AccessLevel  string `json:"nivelAcesso,omitempty"`
}

// IsAdmin reports whether the user holds the administrator role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Status == StatusAdmin
}

// CanAccessUser reports whether the user may read or update the user record
// with the given id: admins may touch anyone, others only themselves.
func (u *User) CanAccessUser(id int64) bool {
	return u.IsAdmin() || (u != nil && u.ID == id)
}
