package timecard

import (
	"context"
	"fmt"
	"time"

	"github.com/bizsupportc/teamtrack-backend-go/internal/domain/employee"
	"github.com/bizsupportc/teamtrack-backend-go/internal/domain/timecard"
	"github.com/go-chi/jwtauth/v5"
)

type TimeCardServiceImpl struct {
	timecard.TimeCardRepository
	now func() time.Time
}

func NewTimeCardService(repo timecard.TimeCardRepository) timecard.TimeCardService {
	return &TimeCardServiceImpl{
		TimeCardRepository: repo,
		now:                time.Now,
	}
}

func callerFromContext(ctx context.Context) (string, employee.Role, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", "", fmt.Errorf("employee_id claim is missing or invalid")
	}

	role, _ := claims["role"].(string)

	return employeeID, employee.Role(role), nil
}

// ClockIn implements timecard.TimeCardService. Double clock-ins are caught
// here first, and the repository's unique constraint on
// (employee_id, work_date) closes the race between concurrent submissions.
func (s *TimeCardServiceImpl) ClockIn(ctx context.Context, req timecard.ClockInRequest) (timecard.TimeCardResponse, error) {
	if err := req.Validate(); err != nil {
		return timecard.TimeCardResponse{}, err
	}

	employeeID, _, err := callerFromContext(ctx)
	if err != nil {
		return timecard.TimeCardResponse{}, err
	}

	now := s.now()

	existing, err := s.TimeCardRepository.GetByEmployeeAndDate(ctx, employeeID, timecard.WorkDateOf(now))
	if err != nil {
		return timecard.TimeCardResponse{}, fmt.Errorf("failed to load today's time card: %w", err)
	}
	if existing != nil {
		return timecard.TimeCardResponse{}, timecard.ErrAlreadyClockedIn
	}

	var location *timecard.Location
	if req.Location != nil {
		loc := timecard.Location(*req.Location)
		location = &loc
	}

	tc := timecard.TimeCard{
		EmployeeID: employeeID,
		WorkDate:   timecard.WorkDateOf(now),
		ClockIn:    now,
		Status:     timecard.ReviewPending,
		Location:   location,
		Notes:      req.Notes,
	}

	created, err := s.TimeCardRepository.Create(ctx, tc)
	if err != nil {
		return timecard.TimeCardResponse{}, err
	}

	return timecard.ToResponse(created), nil
}

// ClockOut implements timecard.TimeCardService.
func (s *TimeCardServiceImpl) ClockOut(ctx context.Context) (timecard.TimeCardResponse, error) {
	employeeID, _, err := callerFromContext(ctx)
	if err != nil {
		return timecard.TimeCardResponse{}, err
	}

	now := s.now()

	tc, err := s.TimeCardRepository.GetByEmployeeAndDate(ctx, employeeID, timecard.WorkDateOf(now))
	if err != nil {
		return timecard.TimeCardResponse{}, fmt.Errorf("failed to load today's time card: %w", err)
	}
	if tc == nil {
		return timecard.TimeCardResponse{}, timecard.ErrNoActiveSession
	}
	if tc.ClockOut != nil {
		return timecard.TimeCardResponse{}, timecard.ErrAlreadyClockedOut
	}

	tc.ClockOut = &now
	tc.TotalHours = timecard.TotalHoursBetween(tc.ClockIn, now)

	if err := s.TimeCardRepository.CloseSession(ctx, *tc); err != nil {
		return timecard.TimeCardResponse{}, err
	}

	return timecard.ToResponse(*tc), nil
}

// Today implements timecard.TimeCardService.
func (s *TimeCardServiceImpl) Today(ctx context.Context) (*timecard.TimeCardResponse, error) {
	employeeID, _, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	tc, err := s.TimeCardRepository.GetByEmployeeAndDate(ctx, employeeID, timecard.WorkDateOf(s.now()))
	if err != nil {
		return nil, fmt.Errorf("failed to load today's time card: %w", err)
	}
	if tc == nil {
		return nil, nil
	}

	resp := timecard.ToResponse(*tc)
	return &resp, nil
}

// History implements timecard.TimeCardService.
func (s *TimeCardServiceImpl) History(ctx context.Context, filter timecard.RangeFilter) ([]timecard.TimeCardResponse, error) {
	employeeID, _, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	start, end, err := filter.Parse()
	if err != nil {
		return nil, err
	}

	cards, err := s.TimeCardRepository.ListByEmployeeAndRange(ctx, employeeID, start, end)
	if err != nil {
		return nil, err
	}

	return toResponses(cards), nil
}

// List implements timecard.TimeCardService. Elevated callers see every
// employee's records; everyone else gets their own history.
func (s *TimeCardServiceImpl) List(ctx context.Context, filter timecard.RangeFilter) ([]timecard.TimeCardResponse, error) {
	employeeID, role, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	start, end, err := filter.Parse()
	if err != nil {
		return nil, err
	}

	var cards []timecard.TimeCard
	if role.Elevated() {
		cards, err = s.TimeCardRepository.ListByRange(ctx, start, end)
	} else {
		cards, err = s.TimeCardRepository.ListByEmployeeAndRange(ctx, employeeID, start, end)
	}
	if err != nil {
		return nil, err
	}

	return toResponses(cards), nil
}

// ListForEmployee implements timecard.TimeCardService.
func (s *TimeCardServiceImpl) ListForEmployee(ctx context.Context, employeeID string, filter timecard.RangeFilter) ([]timecard.TimeCardResponse, error) {
	_, role, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !role.Elevated() {
		return nil, employee.ErrForbidden
	}

	start, end, err := filter.Parse()
	if err != nil {
		return nil, err
	}

	cards, err := s.TimeCardRepository.ListByEmployeeAndRange(ctx, employeeID, start, end)
	if err != nil {
		return nil, err
	}

	return toResponses(cards), nil
}

// Review implements timecard.TimeCardService. Reviewing never touches the
// clock state of the record.
func (s *TimeCardServiceImpl) Review(ctx context.Context, req timecard.ReviewRequest) (timecard.TimeCardResponse, error) {
	if err := req.Validate(); err != nil {
		return timecard.TimeCardResponse{}, err
	}

	_, role, err := callerFromContext(ctx)
	if err != nil {
		return timecard.TimeCardResponse{}, err
	}
	if !role.Elevated() {
		return timecard.TimeCardResponse{}, employee.ErrForbidden
	}

	tc, err := s.TimeCardRepository.GetByID(ctx, req.ID)
	if err != nil {
		return timecard.TimeCardResponse{}, err
	}
	if tc.Status != timecard.ReviewPending {
		return timecard.TimeCardResponse{}, timecard.ErrAlreadyReviewed
	}

	status := timecard.ReviewStatus(req.Status)
	if err := s.TimeCardRepository.UpdateStatus(ctx, tc.ID, status); err != nil {
		return timecard.TimeCardResponse{}, err
	}

	tc.Status = status
	return timecard.ToResponse(tc), nil
}

func toResponses(cards []timecard.TimeCard) []timecard.TimeCardResponse {
	out := make([]timecard.TimeCardResponse, 0, len(cards))
	for _, tc := range cards {
		out = append(out, timecard.ToResponse(tc))
	}
	return out
}
