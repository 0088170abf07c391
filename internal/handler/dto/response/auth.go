package response

import (
	"time"

	"rental-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	FullName  string     `json:"fullName"`
	Role      string     `json:"role"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

func FromAuthorizedUserView(v *queries.AuthorizedUserView) *UserResponse {
	return &UserResponse{
		ID:        v.ID,
		Email:     v.Email,
		FullName:  v.FullName,
		Role:      v.Role,
		LastLogin: v.LastLogin,
		CreatedAt: v.CreatedAt,
	}
}

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	UserID      uuid.UUID `json:"user_id"`
	Role        string    `json:"role"`
}

type RegisterResponse struct {
	ID uuid.UUID `json:"id"`
}
