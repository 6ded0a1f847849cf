package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/bizsupportc/teamtrack-backend-go/internal/domain/pod"
	"github.com/bizsupportc/teamtrack-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type podRepository struct {
	db *database.DB
}

// Create implements pod.PodRepository.
func (r *podRepository) Create(ctx context.Context, p *pod.Pod) error {
	q := GetQuerier(ctx, r.db)

	query := `INSERT INTO pods (name) VALUES ($1) RETURNING id, created_at`

	err := q.QueryRow(ctx, query, p.Name).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return pod.ErrPodExists
		}
		return fmt.Errorf("failed to create pod: %w", err)
	}

	return nil
}

// GetByName implements pod.PodRepository.
func (r *podRepository) GetByName(ctx context.Context, name string) (*pod.Pod, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, created_at FROM pods WHERE name = $1`

	var p pod.Pod
	err := q.QueryRow(ctx, query, name).Scan(&p.ID, &p.Name, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pod.ErrPodNotFound
		}
		return nil, fmt.Errorf("failed to get pod: %w", err)
	}

	return &p, nil
}

// List implements pod.PodRepository.
func (r *podRepository) List(ctx context.Context) ([]pod.Pod, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, created_at FROM pods ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pods: %w", err)
	}
	defer rows.Close()

	var pods []pod.Pod
	for rows.Next() {
		var p pod.Pod
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan pod: %w", err)
		}
		pods = append(pods, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read pod rows: %w", err)
	}

	return pods, nil
}

// Delete implements pod.PodRepository.
func (r *podRepository) Delete(ctx context.Context, name string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM pods WHERE name = $1`

	commandTag, err := q.Exec(ctx, query, name)
	if err != nil {
		return fmt.Errorf("failed to delete pod: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return pod.ErrPodNotFound
	}

	return nil
}

func NewPodRepository(db *database.DB) pod.PodRepository {
	return &podRepository{db: db}
}
