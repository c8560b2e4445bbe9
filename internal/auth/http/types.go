package http

import (
	"context"

	"github.com/flowpad-app/flowpad-backend/internal/auth/domain"
	"github.com/flowpad-app/flowpad-backend/internal/auth/service"
)

// AuthService is the slice of the auth service the handlers use.
type AuthService interface {
	Register(ctx context.Context, in service.RegisterInput) (*service.AuthResult, error)
	Login(ctx context.Context, in service.LoginInput) (*service.AuthResult, error)
	Identify(ctx context.Context, token string) (*domain.User, error)
	UpdateEmail(ctx context.Context, userID int, newEmail string) error
	DeleteAccount(ctx context.Context, userID int) error
}

type Handler struct {
	authService AuthService
}

func New(authService AuthService) *Handler {
	return &Handler{authService: authService}
}

type registerReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateEmailReq struct {
	Email string `json:"email"`
}

type authResp struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    *domain.User `json:"user"`
}
