package stats

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	boarddto "studydash/internal/modules/board/dto"
	"studydash/internal/ui/theme"
)

type StatsPort interface {
	Overview(ctx context.Context) (boarddto.OverviewOutput, error)
}

type LoadedMsg struct {
	Overview boarddto.OverviewOutput
	Err      error
}

// Model renders the completions-per-category bar chart and the tally.
type Model struct {
	port     StatsPort
	overview boarddto.OverviewOutput
	loaded   bool
	width    int
	height   int
}

func New(port StatsPort) Model {
	return Model{port: port}
}

func (m Model) Init() tea.Cmd {
	return m.Reload()
}

func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		overview, err := m.port.Overview(context.Background())
		return LoadedMsg{Overview: overview, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case LoadedMsg:
		if msg.Err == nil {
			m.overview = msg.Overview
			m.loaded = true
		}
	}
	return m, nil
}

func (m Model) View() string {
	if !m.loaded {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			theme.Muted.Render("Loading stats…"))
	}

	var sb strings.Builder
	tally := m.overview.Tally
	sb.WriteString(theme.Title.Render("Completions by category") + "\n\n")
	sb.WriteString(fmt.Sprintf("%s %d open   %s %d done   %s %d%%\n\n",
		theme.Muted.Render("◌"), tally.Open,
		theme.Done.Render("●"), tally.Completed,
		theme.Hot.Render("▸"), tally.Percentage))

	maxCount := 0
	nameW := 0
	for _, p := range m.overview.Chart {
		if p.Completed > maxCount {
			maxCount = p.Completed
		}
		if len(p.Name) > nameW {
			nameW = len(p.Name)
		}
	}

	barSpace := m.width - nameW - 12
	if barSpace < 8 {
		barSpace = 8
	}
	for _, p := range m.overview.Chart {
		if p.Placeholder {
			sb.WriteString(theme.Muted.Render(p.Name) + "\n")
			continue
		}
		barW := p.Completed * barSpace / maxCount
		if barW < 1 {
			barW = 1
		}
		sb.WriteString(fmt.Sprintf("%-*s %s %d\n",
			nameW, p.Name,
			theme.Bar.Render(strings.Repeat("█", barW)),
			p.Completed))
	}

	return theme.Pane.Width(m.width - 2).Render(sb.String())
}
