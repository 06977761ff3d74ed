package in

import (
	"context"

	"studydash/internal/modules/board/dto"
)

type Usecase interface {
	AddTask(ctx context.Context, input dto.AddTaskInput) (dto.TaskOutput, error)
	UpdateTask(ctx context.Context, input dto.UpdateTaskInput) (dto.TaskOutput, error)
	RemoveTask(ctx context.Context, id string) error
	ToggleTask(ctx context.Context, id string) (dto.TaskOutput, error)
	SetStatusFilter(ctx context.Context, status string) (dto.FilterOutput, error)
	SetCategoryFilter(ctx context.Context, category string) (dto.FilterOutput, error)
	Overview(ctx context.Context) (dto.OverviewOutput, error)
	Reindex(ctx context.Context) error
}
