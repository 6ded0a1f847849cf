package pod

import (
	"context"
	"testing"

	"github.com/bizsupportc/teamtrack-backend-go/internal/domain/employee"
	"github.com/bizsupportc/teamtrack-backend-go/internal/domain/pod"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePodRepo struct {
	pods    map[string]pod.Pod
	deleted []string
}

func newFakePodRepo() *fakePodRepo {
	return &fakePodRepo{pods: make(map[string]pod.Pod)}
}

func (f *fakePodRepo) Create(ctx context.Context, p *pod.Pod) error {
	if _, ok := f.pods[p.Name]; ok {
		return pod.ErrPodExists
	}
	f.pods[p.Name] = *p
	return nil
}

func (f *fakePodRepo) GetByName(ctx context.Context, name string) (*pod.Pod, error) {
	p, ok := f.pods[name]
	if !ok {
		return nil, pod.ErrPodNotFound
	}
	return &p, nil
}

func (f *fakePodRepo) List(ctx context.Context) ([]pod.Pod, error) {
	out := make([]pod.Pod, 0, len(f.pods))
	for _, p := range f.pods {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePodRepo) Delete(ctx context.Context, name string) error {
	delete(f.pods, name)
	f.deleted = append(f.deleted, name)
	return nil
}

type fakeMemberCounter struct {
	employee.EmployeeRepository
	counts map[string]int64
}

func (f *fakeMemberCounter) CountByPod(ctx context.Context, podName string) (int64, error) {
	return f.counts[podName], nil
}

var testAuth = jwtauth.New("HS256", []byte("test-secret"), nil)

func roleContext(t *testing.T, role employee.Role) context.Context {
	t.Helper()
	token, _, err := testAuth.Encode(map[string]interface{}{
		"employee_id": "caller-id",
		"role":        string(role),
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func newService(repo *fakePodRepo, counts map[string]int64) *PodServiceImpl {
	return &PodServiceImpl{
		PodRepository: repo,
		employeeRepo:  &fakeMemberCounter{counts: counts},
	}
}

func TestCreateTrimsNameAndRequiresAdmin(t *testing.T) {
	repo := newFakePodRepo()
	svc := newService(repo, nil)

	_, err := svc.Create(roleContext(t, employee.RoleManager), &pod.CreatePodRequest{Name: "Platform"})
	assert.ErrorIs(t, err, employee.ErrForbidden)

	p, err := svc.Create(roleContext(t, employee.RoleAdmin), &pod.CreatePodRequest{Name: "  Platform  "})
	require.NoError(t, err)
	assert.Equal(t, "Platform", p.Name)
}

func TestCreateDuplicateName(t *testing.T) {
	repo := newFakePodRepo()
	svc := newService(repo, nil)
	ctx := roleContext(t, employee.RoleAdmin)

	_, err := svc.Create(ctx, &pod.CreatePodRequest{Name: "Platform"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &pod.CreatePodRequest{Name: "Platform"})
	assert.ErrorIs(t, err, pod.ErrPodExists)
}

func TestListIncludesMemberCounts(t *testing.T) {
	repo := newFakePodRepo()
	repo.pods["Platform"] = pod.Pod{ID: "p1", Name: "Platform"}
	svc := newService(repo, map[string]int64{"Platform": 4})

	pods, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, pods, 1)
	assert.Equal(t, 4, pods[0].MemberCount)
}

func TestDeletePodWithMembers(t *testing.T) {
	repo := newFakePodRepo()
	repo.pods["Platform"] = pod.Pod{ID: "p1", Name: "Platform"}
	svc := newService(repo, map[string]int64{"Platform": 2})

	err := svc.Delete(roleContext(t, employee.RoleAdmin), "Platform")
	assert.ErrorIs(t, err, pod.ErrPodInUse)
	assert.Empty(t, repo.deleted)
}

func TestDeleteEmptyPod(t *testing.T) {
	repo := newFakePodRepo()
	repo.pods["Platform"] = pod.Pod{ID: "p1", Name: "Platform"}
	svc := newService(repo, nil)

	require.NoError(t, svc.Delete(roleContext(t, employee.RoleAdmin), "Platform"))
	assert.Equal(t, []string{"Platform"}, repo.deleted)
}

func TestDeleteMissingPod(t *testing.T) {
	repo := newFakePodRepo()
	svc := newService(repo, nil)

	err := svc.Delete(roleContext(t, employee.RoleAdmin), "Ghost")
	assert.ErrorIs(t, err, pod.ErrPodNotFound)
}
