package in

import (
	"context"

	"studydash/internal/modules/timer/dto"
	timerin "studydash/internal/modules/timer/port/in"
)

type CLIHandler struct {
	usecase timerin.Usecase
}

func NewCLIHandler(usecase timerin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Load(ctx context.Context) (dto.State, error) {
	return h.usecase.Load(ctx)
}

func (h CLIHandler) Toggle(ctx context.Context, state dto.State) (dto.State, error) {
	return h.usecase.Toggle(ctx, state)
}

// ToggleNow rehydrates first so a one-shot CLI invocation acts on what the
// timer looks like now, not on the stale persisted record.
func (h CLIHandler) ToggleNow(ctx context.Context) (dto.State, error) {
	state, err := h.usecase.Load(ctx)
	if err != nil {
		return dto.State{}, err
	}
	return h.usecase.Toggle(ctx, state)
}

func (h CLIHandler) Tick(ctx context.Context, state dto.State) (dto.State, error) {
	return h.usecase.Tick(ctx, state)
}

func (h CLIHandler) Reset(ctx context.Context) (dto.State, error) {
	return h.usecase.Reset(ctx)
}
