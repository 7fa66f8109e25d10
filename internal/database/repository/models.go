package repository

import "time"

type Status string

const (
	StatusActive   Status = "active"
	StatusPending  Status = "pending"
	StatusInactive Status = "inactive"
)

// User is one row of the demo users table.
type User struct {
	ID        string
	Name      string
	Username  string
	Email     string
	Role      string
	Status    Status
	SortOrder int
	CreatedAt time.Time
}

// Fields flattens u into the field map used by table records.
func (u User) Fields() map[string]any {
	return map[string]any{
		"id":       u.ID,
		"name":     u.Name,
		"username": u.Username,
		"email":    u.Email,
		"role":     u.Role,
		"status":   string(u.Status),
	}
}
