package in

import (
	"context"

	"studydash/internal/modules/timer/dto"
)

type Usecase interface {
	Load(ctx context.Context) (dto.State, error)
	Toggle(ctx context.Context, state dto.State) (dto.State, error)
	Tick(ctx context.Context, state dto.State) (dto.State, error)
	Reset(ctx context.Context) (dto.State, error)
}
