package out

import (
	"context"

	"studydash/internal/modules/board/domain"
)

type TaskStore interface {
	Load(ctx context.Context) ([]domain.Task, error)
	Save(ctx context.Context, tasks []domain.Task) error
}

type FilterStore interface {
	Load(ctx context.Context) (domain.Filter, error)
	Save(ctx context.Context, filter domain.Filter) error
}

// TaskIndexProjector mirrors the task snapshot into a queryable read model.
type TaskIndexProjector interface {
	UpsertTask(ctx context.Context, task domain.Task) error
	DeleteTask(ctx context.Context, id string) error
	Reset(ctx context.Context) error
}
