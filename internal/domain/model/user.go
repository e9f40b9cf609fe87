package model

import "time"

// Role is the authorization role carried in auth tokens and passed
// explicitly into engine entry points.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents a registered customer or administrator.
type User struct {
	ID           int64
	Login        string
	PasswordHash string
	Role         Role
	ReferralCode string
	ReferredBy   *int64
	CreatedAt    time.Time
}
