package dto

import (
	"github.com/kudzaim/shopmate_backend/internal/core/domain"
)

// CreateUserRequest defines data for registering a new user.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateUserRequest struct {
	Name *string `json:"name"` // Only name is updatable for now
}

// UserResponse defines data returned for a user.
type UserResponse struct {
	UserID           string  `json:"userID"`
	Username         string  `json:"username"`
	Name             string  `json:"name"`
	ActiveBusinessID *string `json:"activeBusinessID,omitempty"`
}

// ToUserResponse converts domain.User to DTO.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:           user.UserID,
		Username:         user.Username,
		Name:             user.Name,
		ActiveBusinessID: user.ActiveBusinessID,
	}
}
