package auth

import (
	"context"
	"testing"

	"github.com/bizsupportc/teamtrack-backend-go/internal/domain/auth"
	"github.com/bizsupportc/teamtrack-backend-go/internal/domain/employee"
	"github.com/bizsupportc/teamtrack-backend-go/internal/pkg/jwt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	byEmail map[string]employee.Employee
	byID    map[string]employee.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{
		byEmail: make(map[string]employee.Employee),
		byID:    make(map[string]employee.Employee),
	}
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	if _, exists := f.byEmail[emp.Email]; exists {
		return employee.Employee{}, employee.ErrEmailExists
	}
	emp.ID = uuid.NewString()
	f.byEmail[emp.Email] = emp
	f.byID[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if emp, ok := f.byID[id]; ok {
		return emp, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	if emp, ok := f.byEmail[email]; ok {
		return emp, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) { return nil, nil }

func (f *fakeEmployeeRepo) ListByPod(ctx context.Context, podName string) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error { return nil }

func (f *fakeEmployeeRepo) UpdateRole(ctx context.Context, id string, role employee.Role) error {
	return nil
}

func (f *fakeEmployeeRepo) UpdatePod(ctx context.Context, id string, podName string) error {
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error { return nil }

func (f *fakeEmployeeRepo) CountByRole(ctx context.Context, role employee.Role) (int64, error) {
	return 0, nil
}

func (f *fakeEmployeeRepo) CountByPod(ctx context.Context, podName string) (int64, error) {
	return 0, nil
}

func newTestService(domains []string) (*AuthServiceImpl, *fakeEmployeeRepo) {
	repo := newFakeEmployeeRepo()
	jwtService := jwt.NewJWTService("test-secret", "15m", "168h")
	return &AuthServiceImpl{
		EmployeeRepository: repo,
		jwtService:         jwtService,
		allowedDomains:     domains,
	}, repo
}

func registerReq() *auth.RegisterRequest {
	return &auth.RegisterRequest{
		FirstName: "Ana",
		LastName:  "Silva",
		Email:     "ana.silva@example.com",
		Password:  "correct-horse",
		Position:  "Engineer",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestService(nil)
	ctx := context.Background()

	emp, pair, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)
	assert.Equal(t, employee.RoleEmployee, emp.Role)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, "correct-horse", emp.PasswordHash)

	logged, pair2, err := svc.Login(ctx, &auth.LoginRequest{
		Email:    "ana.silva@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, emp.ID, logged.ID)
	assert.NotEmpty(t, pair2.AccessToken)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestService(nil)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, &auth.LoginRequest{
		Email:    "ana.silva@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newTestService(nil)

	_, _, err := svc.Login(context.Background(), &auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRegisterDomainAllowlist(t *testing.T) {
	svc, _ := newTestService([]string{"example.com"})
	ctx := context.Background()

	_, _, err := svc.Register(ctx, registerReq())
	assert.NoError(t, err)

	outsider := registerReq()
	outsider.Email = "mallory@elsewhere.net"
	_, _, err = svc.Register(ctx, outsider)
	assert.ErrorIs(t, err, auth.ErrEmailDomainNotAllowed)
}

func TestRegisterDomainAllowlistPrefixedEntries(t *testing.T) {
	svc, _ := newTestService([]string{"@example.com"})

	_, _, err := svc.Register(context.Background(), registerReq())
	assert.NoError(t, err)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestService(nil)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, registerReq())
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestRefreshRotatesToken(t *testing.T) {
	svc, _ := newTestService(nil)
	ctx := context.Background()

	_, pair, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)

	fresh, err := svc.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, fresh.AccessToken)

	// The presented token was revoked during rotation.
	_, err = svc.Refresh(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrTokenRevoked)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, _ := newTestService(nil)
	ctx := context.Background()

	_, pair, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, pair.AccessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidRefreshToken)
}

func TestLogoutRevokes(t *testing.T) {
	svc, _ := newTestService(nil)
	ctx := context.Background()

	_, pair, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, pair.RefreshToken))

	_, err = svc.Refresh(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrTokenRevoked)
}
