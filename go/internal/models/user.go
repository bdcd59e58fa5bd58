package models

// User roles. Admins see the management screens, users the public ones.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a dashboard account.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}
