package pod

import "context"

type PodRepository interface {
	Create(ctx context.Context, p *Pod) error
	GetByName(ctx context.Context, name string) (*Pod, error)
	List(ctx context.Context) ([]Pod, error)
	Delete(ctx context.Context, name string) error
}

type PodService interface {
	Create(ctx context.Context, req *CreatePodRequest) (*Pod, error)
	List(ctx context.Context) ([]PodResponse, error)
	Delete(ctx context.Context, name string) error
}
