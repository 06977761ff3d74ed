package usecase

import (
	"context"

	"studydash/internal/modules/board/domain"
	"studydash/internal/modules/board/dto"
	boardin "studydash/internal/modules/board/port/in"
	"studydash/internal/modules/board/service"
)

type Interactor struct {
	svc *service.BoardService
}

func NewInteractor(svc *service.BoardService) boardin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) AddTask(ctx context.Context, input dto.AddTaskInput) (dto.TaskOutput, error) {
	task, err := i.svc.AddTask(ctx, input.Title, input.Category, input.DueDate)
	if err != nil {
		return dto.TaskOutput{}, err
	}
	return toTaskOutput(task), nil
}

func (i *Interactor) UpdateTask(ctx context.Context, input dto.UpdateTaskInput) (dto.TaskOutput, error) {
	task, err := i.svc.UpdateTask(ctx, input.ID, input.Title, input.Category, input.DueDate)
	if err != nil {
		return dto.TaskOutput{}, err
	}
	return toTaskOutput(task), nil
}

func (i *Interactor) RemoveTask(ctx context.Context, id string) error {
	return i.svc.RemoveTask(ctx, id)
}

func (i *Interactor) ToggleTask(ctx context.Context, id string) (dto.TaskOutput, error) {
	task, err := i.svc.ToggleTask(ctx, id)
	if err != nil {
		return dto.TaskOutput{}, err
	}
	return toTaskOutput(task), nil
}

func (i *Interactor) SetStatusFilter(ctx context.Context, status string) (dto.FilterOutput, error) {
	filter, err := i.svc.SetStatusFilter(ctx, status)
	if err != nil {
		return dto.FilterOutput{}, err
	}
	return dto.FilterOutput{Status: filter.Status, Category: filter.Category}, nil
}

func (i *Interactor) SetCategoryFilter(ctx context.Context, category string) (dto.FilterOutput, error) {
	filter, err := i.svc.SetCategoryFilter(ctx, category)
	if err != nil {
		return dto.FilterOutput{}, err
	}
	return dto.FilterOutput{Status: filter.Status, Category: filter.Category}, nil
}

// Overview recomputes every derived view from the current task and filter
// state. Nothing is cached between calls.
func (i *Interactor) Overview(ctx context.Context) (dto.OverviewOutput, error) {
	tasks, err := i.svc.Tasks(ctx)
	if err != nil {
		return dto.OverviewOutput{}, err
	}
	filter, err := i.svc.Filter(ctx)
	if err != nil {
		return dto.OverviewOutput{}, err
	}

	filtered := domain.ApplyFilter(tasks, filter)
	tally := domain.Counts(tasks)
	chart := domain.ChartData(tasks)

	out := dto.OverviewOutput{
		Filter:     dto.FilterOutput{Status: filter.Status, Category: filter.Category},
		Categories: domain.Categories(tasks),
		Tally: dto.TallyOutput{
			Open:       tally.Open,
			Completed:  tally.Completed,
			Total:      tally.Total,
			Percentage: tally.Percentage,
		},
		Tasks: make([]dto.TaskOutput, 0, len(filtered)),
		Chart: make([]dto.ChartPointOutput, 0, len(chart)),
	}
	for _, task := range filtered {
		out.Tasks = append(out.Tasks, toTaskOutput(task))
	}
	for _, point := range chart {
		out.Chart = append(out.Chart, dto.ChartPointOutput{
			Name:        point.Name,
			Completed:   point.Completed,
			Placeholder: point.Placeholder,
		})
	}
	return out, nil
}

func (i *Interactor) Reindex(ctx context.Context) error {
	return i.svc.Reindex(ctx)
}

func toTaskOutput(task domain.Task) dto.TaskOutput {
	return dto.TaskOutput{
		ID:        task.ID,
		Title:     task.Title,
		Category:  task.Category,
		DueDate:   task.DueDate,
		Completed: task.Completed,
	}
}
