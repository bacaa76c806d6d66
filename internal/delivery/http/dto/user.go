package dto

import (
	"time"

	"talent-match/internal/domain/user"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Email      string  `json:"email"`
	Password   string  `json:"password"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	Department *string `json:"department"`
	Position   *string `json:"position"`
	HireDate   string  `json:"hireDate"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ApproveUserRequest struct {
	UserID uuid.UUID `json:"userId"`
	Role   string    `json:"role"`
}

// UpdateProfileRequest leaves absent fields unchanged; an empty department
// or position clears it.
type UpdateProfileRequest struct {
	FirstName  *string `json:"firstName"`
	LastName   *string `json:"lastName"`
	Department *string `json:"department"`
	Position   *string `json:"position"`
}

type UserResponse struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	FullName   string    `json:"fullName"`
	Department *string   `json:"department"`
	Position   *string   `json:"position"`
	HireDate   string    `json:"hireDate"`
	IsApproved bool      `json:"isApproved"`
	Role       *string   `json:"role"`
	CreatedAt  time.Time `json:"createdAt"`
}

type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type LoginResponse struct {
	User UserResponse `json:"user"`
	TokenResponse
}

func NewUserResponse(u user.User) UserResponse {
	var role *string
	if u.Role != user.RoleNone {
		r := string(u.Role)
		role = &r
	}
	return UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		FullName:   u.FullName(),
		Department: u.Department,
		Position:   u.Position,
		HireDate:   FormatDate(u.HireDate),
		IsApproved: u.IsApproved,
		Role:       role,
		CreatedAt:  u.CreatedAt,
	}
}

func NewUserResponses(in []user.User) []UserResponse {
	out := make([]UserResponse, 0, len(in))
	for _, u := range in {
		out = append(out, NewUserResponse(u))
	}
	return out
}

type DashboardStatsResponse struct {
	PendingUsersCount        int `json:"pendingUsersCount"`
	OpenJobOffersCount       int `json:"openJobOffersCount"`
	PendingApplicationsCount int `json:"pendingApplicationsCount"`
}
