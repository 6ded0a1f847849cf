package leave

import (
	"context"
	"testing"
	"time"

	"github.com/bizsupportc/teamtrack-backend-go/internal/domain/employee"
	"github.com/bizsupportc/teamtrack-backend-go/internal/domain/leave"
	"github.com/bizsupportc/teamtrack-backend-go/internal/pkg/database"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLeaveRepo struct {
	requests map[string]*leave.LeaveRequest
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{requests: make(map[string]*leave.LeaveRequest)}
}

func (f *fakeLeaveRepo) Create(ctx context.Context, lr *leave.LeaveRequest) error {
	lr.ID = uuid.NewString()
	stored := *lr
	f.requests[lr.ID] = &stored
	return nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (*leave.LeaveRequest, error) {
	if lr, ok := f.requests[id]; ok {
		found := *lr
		return &found, nil
	}
	return nil, leave.ErrLeaveNotFound
}

func (f *fakeLeaveRepo) List(ctx context.Context, filter leave.ListFilter) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, lr := range f.requests {
		if filter.EmployeeID != "" && lr.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.Status != "" && string(lr.Status) != filter.Status {
			continue
		}
		out = append(out, *lr)
	}
	return out, nil
}

func (f *fakeLeaveRepo) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	return f.List(ctx, leave.ListFilter{EmployeeID: employeeID})
}

func (f *fakeLeaveRepo) HasApprovedOverlap(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	for _, lr := range f.requests {
		if lr.EmployeeID == employeeID && lr.Status == leave.StatusApproved &&
			leave.Overlaps(start, end, lr.StartDate, lr.EndDate) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeLeaveRepo) UpdateStatus(ctx context.Context, id string, status leave.Status, reviewerID string, managerNotes *string) error {
	lr, ok := f.requests[id]
	if !ok {
		return leave.ErrLeaveNotFound
	}
	lr.Status = status
	lr.ApprovedByID = &reviewerID
	lr.ManagerNotes = managerNotes
	return nil
}

func (f *fakeLeaveRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.requests[id]; !ok {
		return leave.ErrLeaveNotFound
	}
	delete(f.requests, id)
	return nil
}

func (f *fakeLeaveRepo) ListApprovedInRange(ctx context.Context, employeeIDs []string, start, end time.Time) ([]leave.LeaveRequest, error) {
	return nil, nil
}

func (f *fakeLeaveRepo) DeleteByEmployee(ctx context.Context, employeeID string) error {
	for id, lr := range f.requests {
		if lr.EmployeeID == employeeID {
			delete(f.requests, id)
		}
	}
	return nil
}

func (f *fakeLeaveRepo) NullifyApprover(ctx context.Context, employeeID string) error {
	for _, lr := range f.requests {
		if lr.ApprovedByID != nil && *lr.ApprovedByID == employeeID {
			lr.ApprovedByID = nil
		}
	}
	return nil
}

var testAuth = jwtauth.New("HS256", []byte("test-secret"), nil)

func authedContext(t *testing.T, employeeID string, role employee.Role) context.Context {
	t.Helper()
	token, _, err := testAuth.Encode(map[string]interface{}{
		"employee_id": employeeID,
		"role":        string(role),
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func newService(repo leave.LeaveRepository) *LeaveServiceImpl {
	return &LeaveServiceImpl{
		LeaveRepository: repo,
		runInTx: func(ctx context.Context, db *database.DB, fn func(context.Context) error) error {
			return fn(ctx)
		},
	}
}

func TestSubmitDerivesDayCount(t *testing.T) {
	svc := newService(newFakeLeaveRepo())
	ctx := authedContext(t, uuid.NewString(), employee.RoleEmployee)

	lr, err := svc.Submit(ctx, &leave.SubmitLeaveRequest{
		Type:      "vacation",
		StartDate: "2025-01-10",
		EndDate:   "2025-01-12",
		Reason:    "long weekend",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, lr.DayCount())
	assert.Equal(t, leave.StatusPending, lr.Status)
}

func TestSubmitRejectsOverlapWithApproved(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newService(repo)
	employeeID := uuid.NewString()
	ctx := authedContext(t, employeeID, employee.RoleEmployee)

	existing := &leave.LeaveRequest{
		EmployeeID: employeeID,
		Type:       leave.TypeVacation,
		StartDate:  time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC),
		Status:     leave.StatusApproved,
	}
	require.NoError(t, repo.Create(ctx, existing))

	_, err := svc.Submit(ctx, &leave.SubmitLeaveRequest{
		Type:      "personal",
		StartDate: "2025-01-12",
		EndDate:   "2025-01-16",
		Reason:    "moving day",
	})
	assert.ErrorIs(t, err, leave.ErrOverlappingLeave)
}

func TestSubmitAllowsOverlapWithPending(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newService(repo)
	employeeID := uuid.NewString()
	ctx := authedContext(t, employeeID, employee.RoleEmployee)

	existing := &leave.LeaveRequest{
		EmployeeID: employeeID,
		Type:       leave.TypeVacation,
		StartDate:  time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC),
		Status:     leave.StatusPending,
	}
	require.NoError(t, repo.Create(ctx, existing))

	_, err := svc.Submit(ctx, &leave.SubmitLeaveRequest{
		Type:      "personal",
		StartDate: "2025-01-12",
		EndDate:   "2025-01-16",
		Reason:    "moving day",
	})
	assert.NoError(t, err)
}

func TestReviewOnlyOnce(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newService(repo)
	employeeID := uuid.NewString()

	lr, err := svc.Submit(authedContext(t, employeeID, employee.RoleEmployee), &leave.SubmitLeaveRequest{
		Type:      "sick",
		StartDate: "2025-02-03",
		EndDate:   "2025-02-04",
		Reason:    "flu",
	})
	require.NoError(t, err)

	managerCtx := authedContext(t, uuid.NewString(), employee.RoleManager)

	approved, err := svc.Review(managerCtx, &leave.ReviewLeaveRequest{ID: lr.ID, Status: "approved"})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, approved.Status)
	assert.NotNil(t, approved.ApprovedByID)

	_, err = svc.Review(managerCtx, &leave.ReviewLeaveRequest{ID: lr.ID, Status: "rejected"})
	assert.ErrorIs(t, err, leave.ErrLeaveAlreadyProcessed)
}

func TestReviewForbiddenForEmployee(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newService(repo)
	employeeID := uuid.NewString()
	ctx := authedContext(t, employeeID, employee.RoleEmployee)

	lr, err := svc.Submit(ctx, &leave.SubmitLeaveRequest{
		Type:      "sick",
		StartDate: "2025-02-03",
		EndDate:   "2025-02-04",
		Reason:    "flu",
	})
	require.NoError(t, err)

	_, err = svc.Review(ctx, &leave.ReviewLeaveRequest{ID: lr.ID, Status: "approved"})
	assert.ErrorIs(t, err, employee.ErrForbidden)
}

func TestCancelPendingOnly(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newService(repo)
	employeeID := uuid.NewString()
	ctx := authedContext(t, employeeID, employee.RoleEmployee)

	lr, err := svc.Submit(ctx, &leave.SubmitLeaveRequest{
		Type:      "vacation",
		StartDate: "2025-03-01",
		EndDate:   "2025-03-02",
		Reason:    "trip",
	})
	require.NoError(t, err)

	managerCtx := authedContext(t, uuid.NewString(), employee.RoleManager)
	_, err = svc.Review(managerCtx, &leave.ReviewLeaveRequest{ID: lr.ID, Status: "approved"})
	require.NoError(t, err)

	err = svc.Cancel(ctx, lr.ID)
	assert.ErrorIs(t, err, leave.ErrCancelProcessed)
}

func TestCancelOtherEmployeesRequest(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newService(repo)

	lr, err := svc.Submit(authedContext(t, uuid.NewString(), employee.RoleEmployee), &leave.SubmitLeaveRequest{
		Type:      "vacation",
		StartDate: "2025-03-01",
		EndDate:   "2025-03-02",
		Reason:    "trip",
	})
	require.NoError(t, err)

	err = svc.Cancel(authedContext(t, uuid.NewString(), employee.RoleEmployee), lr.ID)
	assert.ErrorIs(t, err, leave.ErrNotRequestOwner)
}

func TestListScopesNonElevatedCallers(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newService(repo)
	first := uuid.NewString()
	second := uuid.NewString()

	_, err := svc.Submit(authedContext(t, first, employee.RoleEmployee), &leave.SubmitLeaveRequest{
		Type:      "vacation",
		StartDate: "2025-03-01",
		EndDate:   "2025-03-02",
		Reason:    "trip",
	})
	require.NoError(t, err)
	_, err = svc.Submit(authedContext(t, second, employee.RoleEmployee), &leave.SubmitLeaveRequest{
		Type:      "sick",
		StartDate: "2025-03-05",
		EndDate:   "2025-03-05",
		Reason:    "flu",
	})
	require.NoError(t, err)

	mine, err := svc.List(authedContext(t, first, employee.RoleEmployee), leave.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	all, err := svc.List(authedContext(t, uuid.NewString(), employee.RoleAdmin), leave.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSubmitKeepsBackupColleague(t *testing.T) {
	svc := newService(newFakeLeaveRepo())
	ctx := authedContext(t, uuid.NewString(), employee.RoleEmployee)

	backup := "Priya Nair"
	lr, err := svc.Submit(ctx, &leave.SubmitLeaveRequest{
		Type:        "vacation",
		StartDate:   "2025-02-03",
		EndDate:     "2025-02-05",
		Reason:      "family visit",
		BackupSpoke: &backup,
	})
	require.NoError(t, err)
	require.NotNil(t, lr.BackupSpoke)
	assert.Equal(t, "Priya Nair", *lr.BackupSpoke)

	resp := leave.ToResponse(lr)
	require.NotNil(t, resp.BackupSpoke)
	assert.Equal(t, "Priya Nair", *resp.BackupSpoke)
}
