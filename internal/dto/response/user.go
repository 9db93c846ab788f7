package response

import (
	"time"

	"fleet-booking/internal/data/entity"
)

type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Company   *string   `json:"company,omitempty"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		FullName:  user.FullName,
		Company:   user.Company,
		AvatarURL: user.AvatarURL,
		Role:      string(user.Role),
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}

// ExportedUser is the portable profile shape used by the admin export and
// import endpoints. Password hashes are deliberately not exported.
type ExportedUser struct {
	Email    string  `json:"email"`
	FullName string  `json:"full_name"`
	Company  *string `json:"company,omitempty"`
	Role     string  `json:"role"`
}

func UserToExported(user *entity.User) ExportedUser {
	return ExportedUser{
		Email:    user.Email,
		FullName: user.FullName,
		Company:  user.Company,
		Role:     string(user.Role),
	}
}
