package employee

import (
	"context"
	"testing"
	"time"

	"github.com/bizsupportc/teamtrack-backend-go/internal/domain/employee"
	"github.com/bizsupportc/teamtrack-backend-go/internal/domain/leave"
	"github.com/bizsupportc/teamtrack-backend-go/internal/domain/task"
	"github.com/bizsupportc/teamtrack-backend-go/internal/domain/timecard"
	"github.com/bizsupportc/teamtrack-backend-go/internal/pkg/database"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cascadeLog records the order of cascade calls across the fakes so the
// delete path can be asserted end to end.
type cascadeLog struct {
	calls []string
}

type fakeEmployeeRepo struct {
	log       *cascadeLog
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo(log *cascadeLog) *fakeEmployeeRepo {
	return &fakeEmployeeRepo{log: log, employees: make(map[string]employee.Employee)}
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.Email == email {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	out := make([]employee.Employee, 0, len(f.employees))
	for _, emp := range f.employees {
		out = append(out, emp)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) ListByPod(ctx context.Context, podName string) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error {
	f.employees[emp.ID] = emp
	return nil
}

func (f *fakeEmployeeRepo) UpdateRole(ctx context.Context, id string, role employee.Role) error {
	emp := f.employees[id]
	emp.Role = role
	f.employees[id] = emp
	return nil
}

func (f *fakeEmployeeRepo) UpdatePod(ctx context.Context, id string, podName string) error {
	emp := f.employees[id]
	emp.PodName = &podName
	f.employees[id] = emp
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	f.log.calls = append(f.log.calls, "employee.Delete")
	delete(f.employees, id)
	return nil
}

func (f *fakeEmployeeRepo) CountByRole(ctx context.Context, role employee.Role) (int64, error) {
	return 0, nil
}

func (f *fakeEmployeeRepo) CountByPod(ctx context.Context, podName string) (int64, error) {
	return 0, nil
}

type fakeTimeCardRepo struct {
	log *cascadeLog
}

func (f *fakeTimeCardRepo) Create(ctx context.Context, tc timecard.TimeCard) (timecard.TimeCard, error) {
	return tc, nil
}

func (f *fakeTimeCardRepo) GetByID(ctx context.Context, id string) (timecard.TimeCard, error) {
	return timecard.TimeCard{}, timecard.ErrTimecardNotFound
}

func (f *fakeTimeCardRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, workDate time.Time) (*timecard.TimeCard, error) {
	return nil, nil
}

func (f *fakeTimeCardRepo) CloseSession(ctx context.Context, tc timecard.TimeCard) error { return nil }

func (f *fakeTimeCardRepo) UpdateStatus(ctx context.Context, id string, status timecard.ReviewStatus) error {
	return nil
}

func (f *fakeTimeCardRepo) ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]timecard.TimeCard, error) {
	return nil, nil
}

func (f *fakeTimeCardRepo) ListByRange(ctx context.Context, start, end time.Time) ([]timecard.TimeCard, error) {
	return nil, nil
}

func (f *fakeTimeCardRepo) ListByEmployeeIDsAndDate(ctx context.Context, employeeIDs []string, workDate time.Time) ([]timecard.TimeCard, error) {
	return nil, nil
}

func (f *fakeTimeCardRepo) DeleteByEmployee(ctx context.Context, employeeID string) error {
	f.log.calls = append(f.log.calls, "timecard.DeleteByEmployee")
	return nil
}

type fakeLeaveRepo struct {
	log *cascadeLog
}

func (f *fakeLeaveRepo) Create(ctx context.Context, lr *leave.LeaveRequest) error { return nil }

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (*leave.LeaveRequest, error) {
	return nil, leave.ErrLeaveNotFound
}

func (f *fakeLeaveRepo) List(ctx context.Context, filter leave.ListFilter) ([]leave.LeaveRequest, error) {
	return nil, nil
}

func (f *fakeLeaveRepo) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	return nil, nil
}

func (f *fakeLeaveRepo) HasApprovedOverlap(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	return false, nil
}

func (f *fakeLeaveRepo) UpdateStatus(ctx context.Context, id string, status leave.Status, reviewerID string, managerNotes *string) error {
	return nil
}

func (f *fakeLeaveRepo) Delete(ctx context.Context, id string) error { return nil }

func (f *fakeLeaveRepo) ListApprovedInRange(ctx context.Context, employeeIDs []string, start, end time.Time) ([]leave.LeaveRequest, error) {
	return nil, nil
}

func (f *fakeLeaveRepo) DeleteByEmployee(ctx context.Context, employeeID string) error {
	f.log.calls = append(f.log.calls, "leave.DeleteByEmployee")
	return nil
}

func (f *fakeLeaveRepo) NullifyApprover(ctx context.Context, employeeID string) error {
	f.log.calls = append(f.log.calls, "leave.NullifyApprover")
	return nil
}

type fakeTaskRepo struct {
	log *cascadeLog
}

func (f *fakeTaskRepo) Create(ctx context.Context, t *task.Task) error { return nil }

func (f *fakeTaskRepo) GetByID(ctx context.Context, id string) (*task.Task, error) {
	return nil, task.ErrTaskNotFound
}

func (f *fakeTaskRepo) List(ctx context.Context, filter task.ListFilter) ([]task.Task, error) {
	return nil, nil
}

func (f *fakeTaskRepo) Update(ctx context.Context, t *task.Task) error { return nil }

func (f *fakeTaskRepo) MaterializeOngoing(ctx context.Context, id string) error { return nil }

func (f *fakeTaskRepo) UpdateStatus(ctx context.Context, id string, status task.Status, completedAt *time.Time) error {
	return nil
}

func (f *fakeTaskRepo) Delete(ctx context.Context, id string) error { return nil }

func (f *fakeTaskRepo) CountOpenByAssignee(ctx context.Context, employeeID string) (int, error) {
	return 0, nil
}

func (f *fakeTaskRepo) DeleteByAssignee(ctx context.Context, employeeID string) error {
	f.log.calls = append(f.log.calls, "task.DeleteByAssignee")
	return nil
}

func (f *fakeTaskRepo) NullifyAssigner(ctx context.Context, employeeID string) error {
	f.log.calls = append(f.log.calls, "task.NullifyAssigner")
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

func newService(empRepo *fakeEmployeeRepo, log *cascadeLog) *EmployeeServiceImpl {
	return &EmployeeServiceImpl{
		EmployeeRepository: empRepo,
		timeCardRepo:       &fakeTimeCardRepo{log: log},
		leaveRepo:          &fakeLeaveRepo{log: log},
		taskRepo:           &fakeTaskRepo{log: log},
		runInTx: func(ctx context.Context, db *database.DB, fn func(context.Context) error) error {
			return fn(ctx)
		},
	}
}

func seedEmployee(repo *fakeEmployeeRepo, role employee.Role) employee.Employee {
	emp := employee.Employee{
		ID:        uuid.NewString(),
		FirstName: "Dana",
		LastName:  "Reyes",
		Email:     "dana.reyes@example.com",
		Role:      role,
		Position:  "Engineer",
	}
	repo.employees[emp.ID] = emp
	return emp
}

func TestUpdateOwnProfileDropsRestrictedFields(t *testing.T) {
	log := &cascadeLog{}
	repo := newFakeEmployeeRepo(log)
	svc := newService(repo, log)

	emp := seedEmployee(repo, employee.RoleEmployee)
	ctx := authedContext(t, emp.ID, employee.RoleEmployee)

	phone := "+62811223344"
	adminRole := string(employee.RoleAdmin)
	resp, err := svc.Update(ctx, employee.UpdateEmployeeRequest{
		ID:    emp.ID,
		Phone: &phone,
		Role:  &adminRole,
	})
	require.NoError(t, err)

	assert.Equal(t, &phone, resp.Phone)
	assert.Equal(t, string(employee.RoleEmployee), resp.Role)
}

func TestUpdateOtherProfileForbiddenForEmployee(t *testing.T) {
	log := &cascadeLog{}
	repo := newFakeEmployeeRepo(log)
	svc := newService(repo, log)

	target := seedEmployee(repo, employee.RoleEmployee)
	ctx := authedContext(t, uuid.NewString(), employee.RoleEmployee)

	name := "Chris"
	_, err := svc.Update(ctx, employee.UpdateEmployeeRequest{ID: target.ID, FirstName: &name})
	assert.ErrorIs(t, err, employee.ErrForbidden)
}

func TestUpdateRoleAdminOnly(t *testing.T) {
	log := &cascadeLog{}
	repo := newFakeEmployeeRepo(log)
	svc := newService(repo, log)

	target := seedEmployee(repo, employee.RoleEmployee)

	managerCtx := authedContext(t, uuid.NewString(), employee.RoleManager)
	_, err := svc.UpdateRole(managerCtx, employee.UpdateRoleRequest{ID: target.ID, Role: "manager"})
	assert.ErrorIs(t, err, employee.ErrForbidden)

	adminCtx := authedContext(t, uuid.NewString(), employee.RoleAdmin)
	resp, err := svc.UpdateRole(adminCtx, employee.UpdateRoleRequest{ID: target.ID, Role: "manager"})
	require.NoError(t, err)
	assert.Equal(t, "manager", resp.Role)
}

func TestDeleteCascadesOwnedRecords(t *testing.T) {
	log := &cascadeLog{}
	repo := newFakeEmployeeRepo(log)
	svc := newService(repo, log)

	target := seedEmployee(repo, employee.RoleEmployee)
	ctx := authedContext(t, uuid.NewString(), employee.RoleAdmin)

	require.NoError(t, svc.Delete(ctx, target.ID))

	assert.Equal(t, []string{
		"timecard.DeleteByEmployee",
		"leave.DeleteByEmployee",
		"leave.NullifyApprover",
		"task.DeleteByAssignee",
		"task.NullifyAssigner",
		"employee.Delete",
	}, log.calls)
	_, err := repo.GetByID(context.Background(), target.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestDeleteSelfRejected(t *testing.T) {
	log := &cascadeLog{}
	repo := newFakeEmployeeRepo(log)
	svc := newService(repo, log)

	admin := seedEmployee(repo, employee.RoleAdmin)
	ctx := authedContext(t, admin.ID, employee.RoleAdmin)

	err := svc.Delete(ctx, admin.ID)
	assert.ErrorIs(t, err, employee.ErrSelfDeletion)
	assert.Empty(t, log.calls)
}

func TestDeleteRequiresAdmin(t *testing.T) {
	log := &cascadeLog{}
	repo := newFakeEmployeeRepo(log)
	svc := newService(repo, log)

	target := seedEmployee(repo, employee.RoleEmployee)
	ctx := authedContext(t, uuid.NewString(), employee.RoleManager)

	err := svc.Delete(ctx, target.ID)
	assert.ErrorIs(t, err, employee.ErrForbidden)
	assert.Empty(t, log.calls)
}

func TestDeleteMissingEmployee(t *testing.T) {
	log := &cascadeLog{}
	repo := newFakeEmployeeRepo(log)
	svc := newService(repo, log)

	ctx := authedContext(t, uuid.NewString(), employee.RoleAdmin)

	err := svc.Delete(ctx, uuid.NewString())
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.Empty(t, log.calls)
}

func TestGetScopedToSelfForEmployees(t *testing.T) {
	log := &cascadeLog{}
	repo := newFakeEmployeeRepo(log)
	svc := newService(repo, log)

	emp := seedEmployee(repo, employee.RoleEmployee)
	other := seedEmployee(repo, employee.RoleEmployee)

	own, err := svc.Get(authedContext(t, emp.ID, employee.RoleEmployee), emp.ID)
	require.NoError(t, err)
	assert.Equal(t, emp.ID, own.ID)

	_, err = svc.Get(authedContext(t, emp.ID, employee.RoleEmployee), other.ID)
	assert.ErrorIs(t, err, employee.ErrForbidden)

	viewed, err := svc.Get(authedContext(t, uuid.NewString(), employee.RoleManager), other.ID)
	require.NoError(t, err)
	assert.Equal(t, other.ID, viewed.ID)
}

func TestListRequiresElevatedRole(t *testing.T) {
	log := &cascadeLog{}
	repo := newFakeEmployeeRepo(log)
	svc := newService(repo, log)
	seedEmployee(repo, employee.RoleEmployee)

	_, err := svc.List(authedContext(t, uuid.NewString(), employee.RoleEmployee))
	assert.ErrorIs(t, err, employee.ErrForbidden)

	out, err := svc.List(authedContext(t, uuid.NewString(), employee.RoleManager))
	require.NoError(t, err)
	assert.Len(t, out, 1)
}
