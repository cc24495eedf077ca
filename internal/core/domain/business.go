package domain

import "time"

// Business is the tenant boundary: ledgers, vouchers and numbering series all belong to one.
type Business struct {
	BusinessID  string  `json:"businessID"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	GSTIN       *string `json:"gstin"` // Optional tax registration number
	IsActive    bool    `json:"isActive"`
	AuditFields
}

// UserBusinessRole defines the possible roles a user can have within a business.
type UserBusinessRole string

const (
	RoleAdmin    UserBusinessRole = "ADMIN"
	RoleMember   UserBusinessRole = "MEMBER"
	RoleReadOnly UserBusinessRole = "READONLY"
)

var roleRank = map[UserBusinessRole]int{
	RoleReadOnly: 1,
	RoleMember:   2,
	RoleAdmin:    3,
}

// Satisfies reports whether r is at least as privileged as required.
// Unknown roles satisfy nothing.
func (r UserBusinessRole) Satisfies(required UserBusinessRole) bool {
	have, ok := roleRank[r]
	if !ok {
		return false
	}
	return have >= roleRank[required]
}

// UserBusiness represents the membership of a User in a Business.
type UserBusiness struct {
	UserID     string           `json:"userID"`
	BusinessID string           `json:"businessID"`
	Role       UserBusinessRole `json:"role"`
	JoinedAt   time.Time        `json:"joinedAt"`
}
