package models

import "time"

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin RoleType = "ADMIN"
)

// User represents an account that can manage catalog content.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	RoleType     RoleType  `json:"roleType"`
	CreatedAt    time.Time `json:"createdAt"`
}
