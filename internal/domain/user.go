package domain

import "time"

// Role is the coarse-grained permission tag carried by a user and its token.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User is the domain model for registered accounts. The core only reads it;
// creation happens at registration and the record is immutable afterwards.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}
