package bootstrap

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	boardinadapter "studydash/internal/modules/board/adapter/in"
	boardoutadapter "studydash/internal/modules/board/adapter/out"
	boardin "studydash/internal/modules/board/port/in"
	boardservice "studydash/internal/modules/board/service"
	boardusecase "studydash/internal/modules/board/usecase"
	timerinadapter "studydash/internal/modules/timer/adapter/in"
	timeroutadapter "studydash/internal/modules/timer/adapter/out"
	timerin "studydash/internal/modules/timer/port/in"
	timerservice "studydash/internal/modules/timer/service"
	timerusecase "studydash/internal/modules/timer/usecase"
	"studydash/internal/platform/clock"
	"studydash/internal/platform/config"
	"studydash/internal/platform/id"
	uiapp "studydash/internal/ui/app"
)

type App struct {
	BoardCLI boardinadapter.CLIHandler
	TimerCLI timerinadapter.CLIHandler

	board boardin.Usecase
	timer timerin.Usecase
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.UUID{}

	projector, err := boardoutadapter.NewSQLiteTaskProjector(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new task projector: %w", err)
	}
	boardSvc := boardservice.NewBoardService(
		ids,
		boardoutadapter.NewFileTaskStore(cfg.StatePath),
		boardoutadapter.NewFileFilterStore(cfg.StatePath),
		projector,
	)
	boardUC := boardusecase.NewInteractor(boardSvc)

	timerSvc := timerservice.NewTimerService(
		clk,
		timeroutadapter.NewFileSnapshotStore(cfg.StatePath),
		timeroutadapter.NewFileFocusLogStore(cfg.LogDir),
	)
	timerUC := timerusecase.NewInteractor(timerSvc)

	return &App{
		BoardCLI: boardinadapter.NewCLIHandler(boardUC),
		TimerCLI: timerinadapter.NewCLIHandler(timerUC),
		board:    boardUC,
		timer:    timerUC,
	}, nil
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.board, app.timer)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
