package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleNone       Role = ""
	RoleEmployee   Role = "Employee"
	RoleSupervisor Role = "Supervisor"
	RoleHR         Role = "HR"
)

func ParseRole(s string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "employee":
		return RoleEmployee, true
	case "supervisor":
		return RoleSupervisor, true
	case "hr":
		return RoleHR, true
	default:
		return RoleNone, false
	}
}

type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Department   *string
	Position     *string
	HireDate     time.Time
	IsApproved   bool
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Rankable reports whether the account belongs in the candidate pool.
func (u User) Rankable() bool {
	return u.IsApproved && (u.Role == RoleEmployee || u.Role == RoleSupervisor)
}
