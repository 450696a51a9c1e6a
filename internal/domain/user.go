package domain

import "time"

// Role is the coarse permission label attached to a user. The set is open at
// the data layer; these constants cover the roles the API checks against.
type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
	RoleAdmin Role = "admin"
)

// User is the domain model for authenticated accounts.
type User struct {
	ID             int64
	Email          string
	HashedPassword string
	FullName       *string
	Role           Role
	IsActive       bool
	CreatedAt      time.Time
}
