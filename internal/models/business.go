package models

import "time"

// Business represents a row of the businesses table.
type Business struct {
	BusinessID  string  `db:"business_id"`
	Name        string  `db:"name"`
	Description string  `db:"description"`
	GSTIN       *string `db:"gstin"`
	IsActive    bool    `db:"is_active"`
	AuditFields
}

// UserBusiness is a membership row of user_businesses.
type UserBusiness struct {
	UserID     string    `db:"user_id"`
	BusinessID string    `db:"business_id"`
	Role       string    `db:"role"`
	JoinedAt   time.Time `db:"joined_at"`
}
