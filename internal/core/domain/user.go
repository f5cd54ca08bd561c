package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleHR    = "hr"
)

// User models an authenticated staff member operating the pipeline.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
