package timer

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	timerdomain "studydash/internal/modules/timer/domain"
	timerdto "studydash/internal/modules/timer/dto"
	"studydash/internal/ui/theme"
)

// Model renders the countdown. The live timer state and the tick chain are
// owned by the app model, which pushes every change down via SetState so the
// countdown keeps moving while another tab is focused.
type Model struct {
	state    timerdto.State
	progress progress.Model
	width    int
	height   int
}

func New() Model {
	p := progress.New(progress.WithGradient(string(theme.Lavender), string(theme.Sapphire)))
	p.ShowPercentage = false
	return Model{progress: p}
}

func (m *Model) SetState(state timerdto.State) {
	m.state = state
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		w := m.width - 16
		if w < 10 {
			w = 10
		}
		m.progress.Width = w
	}
	return m, nil
}

func (m Model) View() string {
	label := "Break"
	if m.state.WorkSession {
		label = "Focus"
	}
	status := "paused"
	style := theme.Muted
	if m.state.Running {
		status = "running"
		style = theme.Hot
	}

	total := timerdomain.SessionDuration(m.state.WorkSession)
	done := float64(total-m.state.Remaining) / float64(total)

	face := fmt.Sprintf("%02d:%02d", m.state.Remaining/60, m.state.Remaining%60)
	block := lipgloss.JoinVertical(lipgloss.Center,
		theme.Title.Render(label+" session"),
		"",
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(face),
		style.Render(status),
		"",
		m.progress.ViewAs(done),
		"",
		theme.Muted.Render("space: start/pause  r: reset"),
	)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, block)
}
