package model

import "github.com/google/uuid"

type UserRole string

const (
	UserRoleAdmin     UserRole = "ADMIN"
	UserRoleEstimator UserRole = "ESTIMATOR"
)

type Principal struct {
	UserID uuid.UUID
	Role   UserRole
}

func (p Principal) IsAdmin() bool {
	return p.Role == UserRoleAdmin
}

func (p Principal) IsEstimator() bool {
	return p.Role == UserRoleEstimator
}

// IsStaff reports whether the principal may use the internal document routes.
func (p Principal) IsStaff() bool {
	return p.IsAdmin() || p.IsEstimator()
}
