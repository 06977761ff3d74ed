package in

import (
	"context"

	"studydash/internal/modules/board/dto"
	boardin "studydash/internal/modules/board/port/in"
)

type CLIHandler struct {
	usecase boardin.Usecase
}

func NewCLIHandler(usecase boardin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) AddTask(ctx context.Context, title, category, dueDate string) (dto.TaskOutput, error) {
	return h.usecase.AddTask(ctx, dto.AddTaskInput{Title: title, Category: category, DueDate: dueDate})
}

func (h CLIHandler) UpdateTask(ctx context.Context, id, title, category, dueDate string) (dto.TaskOutput, error) {
	return h.usecase.UpdateTask(ctx, dto.UpdateTaskInput{ID: id, Title: title, Category: category, DueDate: dueDate})
}

func (h CLIHandler) RemoveTask(ctx context.Context, id string) error {
	return h.usecase.RemoveTask(ctx, id)
}

func (h CLIHandler) ToggleTask(ctx context.Context, id string) (dto.TaskOutput, error) {
	return h.usecase.ToggleTask(ctx, id)
}

func (h CLIHandler) SetStatusFilter(ctx context.Context, status string) (dto.FilterOutput, error) {
	return h.usecase.SetStatusFilter(ctx, status)
}

func (h CLIHandler) SetCategoryFilter(ctx context.Context, category string) (dto.FilterOutput, error) {
	return h.usecase.SetCategoryFilter(ctx, category)
}

func (h CLIHandler) Overview(ctx context.Context) (dto.OverviewOutput, error) {
	return h.usecase.Overview(ctx)
}

func (h CLIHandler) Reindex(ctx context.Context) error {
	return h.usecase.Reindex(ctx)
}
