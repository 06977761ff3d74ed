package usecase

import (
	"context"

	"studydash/internal/modules/timer/domain"
	"studydash/internal/modules/timer/dto"
	timerin "studydash/internal/modules/timer/port/in"
	"studydash/internal/modules/timer/service"
)

type Interactor struct {
	svc *service.TimerService
}

func NewInteractor(svc *service.TimerService) timerin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Load(ctx context.Context) (dto.State, error) {
	snapshot, err := i.svc.Load(ctx)
	if err != nil {
		return dto.State{}, err
	}
	return toState(snapshot), nil
}

func (i *Interactor) Toggle(ctx context.Context, state dto.State) (dto.State, error) {
	snapshot, err := i.svc.Toggle(ctx, toSnapshot(state))
	if err != nil {
		return dto.State{}, err
	}
	return toState(snapshot), nil
}

func (i *Interactor) Tick(ctx context.Context, state dto.State) (dto.State, error) {
	snapshot, err := i.svc.Tick(ctx, toSnapshot(state))
	if err != nil {
		return dto.State{}, err
	}
	return toState(snapshot), nil
}

func (i *Interactor) Reset(ctx context.Context) (dto.State, error) {
	snapshot, err := i.svc.Reset(ctx)
	if err != nil {
		return dto.State{}, err
	}
	return toState(snapshot), nil
}

func toState(s domain.Snapshot) dto.State {
	return dto.State{Running: s.Running, WorkSession: s.WorkSession, Remaining: s.Remaining}
}

func toSnapshot(s dto.State) domain.Snapshot {
	return domain.Snapshot{Running: s.Running, WorkSession: s.WorkSession, Remaining: s.Remaining}
}
