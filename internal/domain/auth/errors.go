package auth

import "errors"

var (
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrEmailDomainNotAllowed = errors.New("email domain is not allowed to register")
	ErrInvalidRefreshToken   = errors.New("refresh token is invalid or expired")
	ErrTokenRevoked          = errors.New("token has been revoked")
)
