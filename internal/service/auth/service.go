package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bizsupportc/teamtrack-backend-go/internal/domain/auth"
	"github.com/bizsupportc/teamtrack-backend-go/internal/domain/employee"
	"github.com/bizsupportc/teamtrack-backend-go/internal/pkg/jwt"
	"github.com/bizsupportc/teamtrack-backend-go/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	employee.EmployeeRepository
	jwtService     jwt.Service
	allowedDomains []string
}

func NewAuthService(repo employee.EmployeeRepository, jwtService jwt.Service, allowedDomains []string) auth.AuthService {
	return &AuthServiceImpl{
		EmployeeRepository: repo,
		jwtService:         jwtService,
		allowedDomains:     allowedDomains,
	}
}

// Register implements auth.AuthService. New accounts always start with
// the employee role; promotion is a separate admin action.
func (s *AuthServiceImpl) Register(ctx context.Context, req *auth.RegisterRequest) (*employee.Employee, *auth.TokenPair, error) {
	if err := req.Validate(); err != nil {
		return nil, nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !s.domainAllowed(email) {
		return nil, nil, auth.ErrEmailDomainNotAllowed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	emp := employee.Employee{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        email,
		PasswordHash: string(hash),
		Role:         employee.RoleEmployee,
		PodName:      req.PodName,
		Position:     req.Position,
	}

	created, err := s.EmployeeRepository.Create(ctx, emp)
	if err != nil {
		return nil, nil, err
	}

	pair, err := s.issueTokens(created)
	if err != nil {
		return nil, nil, err
	}

	return &created, pair, nil
}

// Login implements auth.AuthService. Unknown email and wrong password
// collapse into the same error.
func (s *AuthServiceImpl) Login(ctx context.Context, req *auth.LoginRequest) (*employee.Employee, *auth.TokenPair, error) {
	if err := req.Validate(); err != nil {
		return nil, nil, err
	}

	emp, err := s.EmployeeRepository.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, nil, auth.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return nil, nil, auth.ErrInvalidCredentials
	}

	pair, err := s.issueTokens(emp)
	if err != nil {
		return nil, nil, err
	}

	return &emp, pair, nil
}

// Refresh implements auth.AuthService. Rotates the refresh token: the
// presented one is revoked and a fresh pair is issued.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	if s.jwtService.IsTokenRevoked(refreshToken) {
		return nil, auth.ErrTokenRevoked
	}

	employeeID, err := s.jwtService.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, auth.ErrInvalidRefreshToken
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return nil, auth.ErrInvalidRefreshToken
	}

	s.jwtService.RevokeToken(refreshToken)

	return s.issueTokens(emp)
}

// Logout implements auth.AuthService.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken != "" {
		s.jwtService.RevokeToken(refreshToken)
	}
	return nil
}

// Me implements auth.AuthService.
func (s *AuthServiceImpl) Me(ctx context.Context) (*employee.Employee, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return nil, fmt.Errorf("employee_id claim is missing or invalid")
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	return &emp, nil
}

func (s *AuthServiceImpl) domainAllowed(email string) bool {
	if len(s.allowedDomains) == 0 {
		return true
	}

	domain := validator.EmailDomain(email)
	for _, allowed := range s.allowedDomains {
		// Accept both "example.com" and "@example.com" in the allowlist.
		if strings.EqualFold(domain, strings.TrimPrefix(strings.TrimSpace(allowed), "@")) {
			return true
		}
	}

	return false
}

func (s *AuthServiceImpl) issueTokens(emp employee.Employee) (*auth.TokenPair, error) {
	access, _, err := s.jwtService.GenerateAccessToken(emp.ID, emp.Email, emp.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refresh, refreshExp, err := s.jwtService.GenerateRefreshToken(emp.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &auth.TokenPair{
		AccessToken:      access,
		RefreshToken:     refresh,
		RefreshExpiresAt: refreshExp,
	}, nil
}
