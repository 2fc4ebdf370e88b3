package dto

import "enhancives/internal/domain"

type AuthRequest struct {
	Username string `json:"username" validate:"required,min=3,max=20"`
	Password string `json:"password" validate:"required,min=3,max=64"`
}

type AuthUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type AuthResponse struct {
	User  AuthUser `json:"user"`
	Token string   `json:"token"`
}

func AuthResponseFromDomain(user *domain.User, token string) *AuthResponse {
	return &AuthResponse{
		User:  AuthUser{ID: user.ID.String(), Username: user.Username},
		Token: token,
	}
}
