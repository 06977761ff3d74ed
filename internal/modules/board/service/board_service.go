package service

import (
	"context"
	"strings"

	"studydash/internal/modules/board/domain"
	boardout "studydash/internal/modules/board/port/out"
	apperrors "studydash/internal/platform/errors"
	"studydash/internal/platform/id"
)

// BoardService orchestrates task and filter mutations. Every mutation
// persists the whole task snapshot and mirrors the change into the index
// projector, so derived views always observe a consistent post-mutation
// state. Invalid input and absent ids leave the store untouched and are
// reported as sentinels for the caller to surface or swallow.
type BoardService struct {
	idGen     id.Generator
	tasks     boardout.TaskStore
	filters   boardout.FilterStore
	projector boardout.TaskIndexProjector
}

func NewBoardService(idGen id.Generator, tasks boardout.TaskStore, filters boardout.FilterStore, projector boardout.TaskIndexProjector) *BoardService {
	return &BoardService{idGen: idGen, tasks: tasks, filters: filters, projector: projector}
}

func (s *BoardService) AddTask(ctx context.Context, title, category, dueDate string) (domain.Task, error) {
	list, err := s.tasks.Load(ctx)
	if err != nil {
		return domain.Task{}, err
	}
	next, ok := domain.Add(list, s.idGen.New(), title, category, dueDate)
	if !ok {
		return domain.Task{}, apperrors.ErrInvalidInput
	}
	if err := s.tasks.Save(ctx, next); err != nil {
		return domain.Task{}, err
	}
	task := next[0]
	if err := s.projector.UpsertTask(ctx, task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

func (s *BoardService) UpdateTask(ctx context.Context, taskID, title, category, dueDate string) (domain.Task, error) {
	list, err := s.tasks.Load(ctx)
	if err != nil {
		return domain.Task{}, err
	}
	if _, ok := domain.Find(list, taskID); !ok {
		return domain.Task{}, apperrors.ErrNotFound
	}
	next, ok := domain.Update(list, taskID, title, category, dueDate)
	if !ok {
		return domain.Task{}, apperrors.ErrInvalidInput
	}
	if err := s.tasks.Save(ctx, next); err != nil {
		return domain.Task{}, err
	}
	task, _ := domain.Find(next, taskID)
	if err := s.projector.UpsertTask(ctx, task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

func (s *BoardService) RemoveTask(ctx context.Context, taskID string) error {
	list, err := s.tasks.Load(ctx)
	if err != nil {
		return err
	}
	next, ok := domain.Remove(list, taskID)
	if !ok {
		return apperrors.ErrNotFound
	}
	if err := s.tasks.Save(ctx, next); err != nil {
		return err
	}
	return s.projector.DeleteTask(ctx, taskID)
}

func (s *BoardService) ToggleTask(ctx context.Context, taskID string) (domain.Task, error) {
	list, err := s.tasks.Load(ctx)
	if err != nil {
		return domain.Task{}, err
	}
	next, ok := domain.Toggle(list, taskID)
	if !ok {
		return domain.Task{}, apperrors.ErrNotFound
	}
	if err := s.tasks.Save(ctx, next); err != nil {
		return domain.Task{}, err
	}
	task, _ := domain.Find(next, taskID)
	if err := s.projector.UpsertTask(ctx, task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

func (s *BoardService) Tasks(ctx context.Context) ([]domain.Task, error) {
	return s.tasks.Load(ctx)
}

func (s *BoardService) Filter(ctx context.Context) (domain.Filter, error) {
	filter, err := s.filters.Load(ctx)
	if err != nil {
		return domain.Filter{}, err
	}
	return filter.Normalize(), nil
}

func (s *BoardService) SetStatusFilter(ctx context.Context, status string) (domain.Filter, error) {
	if !domain.ValidStatus(status) {
		return domain.Filter{}, apperrors.ErrInvalidInput
	}
	filter, err := s.Filter(ctx)
	if err != nil {
		return domain.Filter{}, err
	}
	filter.Status = status
	if err := s.filters.Save(ctx, filter); err != nil {
		return domain.Filter{}, err
	}
	return filter, nil
}

func (s *BoardService) SetCategoryFilter(ctx context.Context, category string) (domain.Filter, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return domain.Filter{}, apperrors.ErrInvalidInput
	}
	filter, err := s.Filter(ctx)
	if err != nil {
		return domain.Filter{}, err
	}
	filter.Category = category
	if err := s.filters.Save(ctx, filter); err != nil {
		return domain.Filter{}, err
	}
	return filter, nil
}

func (s *BoardService) Reindex(ctx context.Context) error {
	if err := s.projector.Reset(ctx); err != nil {
		return err
	}
	list, err := s.tasks.Load(ctx)
	if err != nil {
		return err
	}
	for _, task := range list {
		if err := s.projector.UpsertTask(ctx, task); err != nil {
			return err
		}
	}
	return nil
}
