package pod

import (
	"context"
	"fmt"
	"strings"

	"github.com/bizsupportc/teamtrack-backend-go/internal/domain/employee"
	"github.com/bizsupportc/teamtrack-backend-go/internal/domain/pod"
	"github.com/go-chi/jwtauth/v5"
)

type PodServiceImpl struct {
	pod.PodRepository
	employeeRepo employee.EmployeeRepository
}

func NewPodService(repo pod.PodRepository, employeeRepo employee.EmployeeRepository) pod.PodService {
	return &PodServiceImpl{
		PodRepository: repo,
		employeeRepo:  employeeRepo,
	}
}

func callerRole(ctx context.Context) (employee.Role, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	role, _ := claims["role"].(string)
	return employee.Role(role), nil
}

// Create implements pod.PodService. Admin only.
func (s *PodServiceImpl) Create(ctx context.Context, req *pod.CreatePodRequest) (*pod.Pod, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	role, err := callerRole(ctx)
	if err != nil {
		return nil, err
	}
	if role != employee.RoleAdmin {
		return nil, employee.ErrForbidden
	}

	p := &pod.Pod{Name: strings.TrimSpace(req.Name)}
	if err := s.PodRepository.Create(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// List implements pod.PodService. Member counts ride along so the admin
// screen shows which pods are safe to remove.
func (s *PodServiceImpl) List(ctx context.Context) ([]pod.PodResponse, error) {
	pods, err := s.PodRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]pod.PodResponse, 0, len(pods))
	for _, p := range pods {
		count, err := s.employeeRepo.CountByPod(ctx, p.Name)
		if err != nil {
			return nil, err
		}
		out = append(out, pod.PodResponse{
			ID:          p.ID,
			Name:        p.Name,
			MemberCount: int(count),
		})
	}

	return out, nil
}

// Delete implements pod.PodService. A pod with members assigned cannot be
// removed; reassign the members first.
func (s *PodServiceImpl) Delete(ctx context.Context, name string) error {
	role, err := callerRole(ctx)
	if err != nil {
		return err
	}
	if role != employee.RoleAdmin {
		return employee.ErrForbidden
	}

	if _, err := s.PodRepository.GetByName(ctx, name); err != nil {
		return err
	}

	count, err := s.employeeRepo.CountByPod(ctx, name)
	if err != nil {
		return err
	}
	if count > 0 {
		return pod.ErrPodInUse
	}

	return s.PodRepository.Delete(ctx, name)
}
