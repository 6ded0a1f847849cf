package auth

import (
	"context"

	"github.com/bizsupportc/teamtrack-backend-go/internal/domain/employee"
)

// TokenPair carries the short-lived access token and the refresh token
// the handler sets as an http-only cookie.
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	RefreshExpiresAt int64
}

type AuthService interface {
	Register(ctx context.Context, req *RegisterRequest) (*employee.Employee, *TokenPair, error)
	Login(ctx context.Context, req *LoginRequest) (*employee.Employee, *TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	Me(ctx context.Context) (*employee.Employee, error)
}
