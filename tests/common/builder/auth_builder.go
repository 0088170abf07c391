//go:build unit || e2e

package builder

import (
	reqdto "rental-booking/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email    string
	Password string
	FullName string
	Role     string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "test@example.com",
		Password: "password123",
		FullName: "Test Guest",
		Role:     "guest",
	}
}

func (a *AuthBuilder) AsHost() *AuthBuilder {
	a.Role = "host"
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Email:    a.Email,
		Password: a.Password,
		FullName: a.FullName,
		Role:     a.Role,
	}
}
