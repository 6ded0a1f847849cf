package timecard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bizsupportc/teamtrack-backend-go/internal/domain/employee"
	"github.com/bizsupportc/teamtrack-backend-go/internal/domain/timecard"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTimeCardRepo struct {
	cards map[string]*timecard.TimeCard
}

func newFakeTimeCardRepo() *fakeTimeCardRepo {
	return &fakeTimeCardRepo{cards: make(map[string]*timecard.TimeCard)}
}

func (f *fakeTimeCardRepo) key(employeeID string, workDate time.Time) string {
	return employeeID + "|" + workDate.Format("2006-01-02")
}

func (f *fakeTimeCardRepo) Create(ctx context.Context, tc timecard.TimeCard) (timecard.TimeCard, error) {
	k := f.key(tc.EmployeeID, tc.WorkDate)
	if _, exists := f.cards[k]; exists {
		return timecard.TimeCard{}, timecard.ErrAlreadyClockedIn
	}
	tc.ID = uuid.NewString()
	stored := tc
	f.cards[k] = &stored
	return tc, nil
}

func (f *fakeTimeCardRepo) GetByID(ctx context.Context, id string) (timecard.TimeCard, error) {
	for _, tc := range f.cards {
		if tc.ID == id {
			return *tc, nil
		}
	}
	return timecard.TimeCard{}, timecard.ErrTimecardNotFound
}

func (f *fakeTimeCardRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, workDate time.Time) (*timecard.TimeCard, error) {
	if tc, ok := f.cards[f.key(employeeID, workDate)]; ok {
		found := *tc
		return &found, nil
	}
	return nil, nil
}

func (f *fakeTimeCardRepo) CloseSession(ctx context.Context, tc timecard.TimeCard) error {
	stored, ok := f.cards[f.key(tc.EmployeeID, tc.WorkDate)]
	if !ok {
		return timecard.ErrTimecardNotFound
	}
	stored.ClockOut = tc.ClockOut
	stored.TotalHours = tc.TotalHours
	return nil
}

func (f *fakeTimeCardRepo) UpdateStatus(ctx context.Context, id string, status timecard.ReviewStatus) error {
	for _, tc := range f.cards {
		if tc.ID == id {
			tc.Status = status
			return nil
		}
	}
	return timecard.ErrTimecardNotFound
}

func (f *fakeTimeCardRepo) ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]timecard.TimeCard, error) {
	var out []timecard.TimeCard
	for _, tc := range f.cards {
		if tc.EmployeeID == employeeID && !tc.WorkDate.Before(start) && !tc.WorkDate.After(end) {
			out = append(out, *tc)
		}
	}
	return out, nil
}

func (f *fakeTimeCardRepo) ListByRange(ctx context.Context, start, end time.Time) ([]timecard.TimeCard, error) {
	var out []timecard.TimeCard
	for _, tc := range f.cards {
		if !tc.WorkDate.Before(start) && !tc.WorkDate.After(end) {
			out = append(out, *tc)
		}
	}
	return out, nil
}

func (f *fakeTimeCardRepo) ListByEmployeeIDsAndDate(ctx context.Context, employeeIDs []string, workDate time.Time) ([]timecard.TimeCard, error) {
	var out []timecard.TimeCard
	for _, id := range employeeIDs {
		if tc, ok := f.cards[f.key(id, workDate)]; ok {
			out = append(out, *tc)
		}
	}
	return out, nil
}

func (f *fakeTimeCardRepo) DeleteByEmployee(ctx context.Context, employeeID string) error {
	for k, tc := range f.cards {
		if tc.EmployeeID == employeeID {
			delete(f.cards, k)
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

func newServiceAt(repo timecard.TimeCardRepository, at time.Time) *TimeCardServiceImpl {
	return &TimeCardServiceImpl{
		TimeCardRepository: repo,
		now:                func() time.Time { return at },
	}
}

func TestClockInThenOut(t *testing.T) {
	repo := newFakeTimeCardRepo()
	employeeID := uuid.NewString()

	clockIn := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)
	svc := newServiceAt(repo, clockIn)
	ctx := authedContext(t, employeeID, employee.RoleEmployee)

	office := "Office"
	resp, err := svc.ClockIn(ctx, timecard.ClockInRequest{Location: &office})
	require.NoError(t, err)
	assert.Equal(t, employeeID, resp.EmployeeID)
	assert.Equal(t, "2025-03-12", resp.WorkDate)
	assert.Nil(t, resp.ClockOut)

	svc.now = func() time.Time { return time.Date(2025, 3, 12, 17, 30, 0, 0, time.UTC) }

	out, err := svc.ClockOut(ctx)
	require.NoError(t, err)
	require.NotNil(t, out.ClockOut)
	assert.Equal(t, 8.5, out.TotalHours)
}

func TestClockInTwiceSameDay(t *testing.T) {
	repo := newFakeTimeCardRepo()
	employeeID := uuid.NewString()

	svc := newServiceAt(repo, time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC))
	ctx := authedContext(t, employeeID, employee.RoleEmployee)

	_, err := svc.ClockIn(ctx, timecard.ClockInRequest{})
	require.NoError(t, err)

	_, err = svc.ClockIn(ctx, timecard.ClockInRequest{})
	assert.ErrorIs(t, err, timecard.ErrAlreadyClockedIn)
}

type noCreateRepo struct {
	*fakeTimeCardRepo
}

func (r *noCreateRepo) Create(ctx context.Context, tc timecard.TimeCard) (timecard.TimeCard, error) {
	return timecard.TimeCard{}, errors.New("create should not be reached")
}

func TestClockInRejectsExistingSessionBeforeCreate(t *testing.T) {
	repo := newFakeTimeCardRepo()
	employeeID := uuid.NewString()

	now := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)
	existing := timecard.TimeCard{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		WorkDate:   timecard.WorkDateOf(now),
		ClockIn:    now.Add(-time.Hour),
		Status:     timecard.ReviewPending,
	}
	repo.cards[repo.key(employeeID, existing.WorkDate)] = &existing

	svc := newServiceAt(&noCreateRepo{repo}, now)
	ctx := authedContext(t, employeeID, employee.RoleEmployee)

	_, err := svc.ClockIn(ctx, timecard.ClockInRequest{})
	assert.ErrorIs(t, err, timecard.ErrAlreadyClockedIn)
}

func TestClockOutWithoutSession(t *testing.T) {
	repo := newFakeTimeCardRepo()
	svc := newServiceAt(repo, time.Date(2025, 3, 12, 17, 0, 0, 0, time.UTC))
	ctx := authedContext(t, uuid.NewString(), employee.RoleEmployee)

	_, err := svc.ClockOut(ctx)
	assert.ErrorIs(t, err, timecard.ErrNoActiveSession)
}

func TestClockOutTwice(t *testing.T) {
	repo := newFakeTimeCardRepo()
	employeeID := uuid.NewString()

	svc := newServiceAt(repo, time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC))
	ctx := authedContext(t, employeeID, employee.RoleEmployee)

	_, err := svc.ClockIn(ctx, timecard.ClockInRequest{})
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2025, 3, 12, 17, 0, 0, 0, time.UTC) }

	_, err = svc.ClockOut(ctx)
	require.NoError(t, err)

	_, err = svc.ClockOut(ctx)
	assert.ErrorIs(t, err, timecard.ErrAlreadyClockedOut)
}

func TestClockInInvalidLocation(t *testing.T) {
	repo := newFakeTimeCardRepo()
	svc := newServiceAt(repo, time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC))
	ctx := authedContext(t, uuid.NewString(), employee.RoleEmployee)

	bad := "Remote"
	_, err := svc.ClockIn(ctx, timecard.ClockInRequest{Location: &bad})
	assert.Error(t, err)
}

func TestReview(t *testing.T) {
	repo := newFakeTimeCardRepo()
	employeeID := uuid.NewString()

	svc := newServiceAt(repo, time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC))
	empCtx := authedContext(t, employeeID, employee.RoleEmployee)

	created, err := svc.ClockIn(empCtx, timecard.ClockInRequest{})
	require.NoError(t, err)

	managerCtx := authedContext(t, uuid.NewString(), employee.RoleManager)

	reviewed, err := svc.Review(managerCtx, timecard.ReviewRequest{ID: created.ID, Status: "approved"})
	require.NoError(t, err)
	assert.Equal(t, "approved", reviewed.Status)

	// Clock state untouched by the review.
	stored, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.ClockOut)

	_, err = svc.Review(managerCtx, timecard.ReviewRequest{ID: created.ID, Status: "rejected"})
	assert.ErrorIs(t, err, timecard.ErrAlreadyReviewed)
}

func TestReviewForbiddenForEmployee(t *testing.T) {
	repo := newFakeTimeCardRepo()
	employeeID := uuid.NewString()

	svc := newServiceAt(repo, time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC))
	ctx := authedContext(t, employeeID, employee.RoleEmployee)

	created, err := svc.ClockIn(ctx, timecard.ClockInRequest{})
	require.NoError(t, err)

	_, err = svc.Review(ctx, timecard.ReviewRequest{ID: created.ID, Status: "approved"})
	assert.ErrorIs(t, err, employee.ErrForbidden)
}

func TestListElevatedSeesAll(t *testing.T) {
	repo := newFakeTimeCardRepo()
	day := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)
	svc := newServiceAt(repo, day)

	first := uuid.NewString()
	second := uuid.NewString()

	_, err := svc.ClockIn(authedContext(t, first, employee.RoleEmployee), timecard.ClockInRequest{})
	require.NoError(t, err)
	_, err = svc.ClockIn(authedContext(t, second, employee.RoleEmployee), timecard.ClockInRequest{})
	require.NoError(t, err)

	filter := timecard.RangeFilter{StartDate: "2025-03-12", EndDate: "2025-03-12"}

	all, err := svc.List(authedContext(t, uuid.NewString(), employee.RoleAdmin), filter)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	own, err := svc.List(authedContext(t, first, employee.RoleEmployee), filter)
	require.NoError(t, err)
	assert.Len(t, own, 1)
}
