package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	boarddto "studydash/internal/modules/board/dto"
	timerdto "studydash/internal/modules/timer/dto"
	"studydash/internal/ui/components"
	"studydash/internal/ui/theme"
	statsview "studydash/internal/ui/views/stats"
	tasksview "studydash/internal/ui/views/tasks"
	timerview "studydash/internal/ui/views/timer"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type boardPort interface {
	Overview(ctx context.Context) (boarddto.OverviewOutput, error)
	AddTask(ctx context.Context, input boarddto.AddTaskInput) (boarddto.TaskOutput, error)
	UpdateTask(ctx context.Context, input boarddto.UpdateTaskInput) (boarddto.TaskOutput, error)
	RemoveTask(ctx context.Context, id string) error
	ToggleTask(ctx context.Context, id string) (boarddto.TaskOutput, error)
	SetStatusFilter(ctx context.Context, status string) (boarddto.FilterOutput, error)
	SetCategoryFilter(ctx context.Context, category string) (boarddto.FilterOutput, error)
}

type timerPort interface {
	Load(ctx context.Context) (timerdto.State, error)
	Toggle(ctx context.Context, state timerdto.State) (timerdto.State, error)
	Tick(ctx context.Context, state timerdto.State) (timerdto.State, error)
	Reset(ctx context.Context) (timerdto.State, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabTasks tabID = iota
	tabTimer
	tabStats
	tabCount
)

var tabLabels = [tabCount]string{"Tasks", "Timer", "Stats"}

// ─── async messages ───────────────────────────────────────────────────────────

type timerLoadedMsg struct {
	state timerdto.State
	err   error
}

// tickMsg carries the generation of the tick chain that produced it; ticks
// from a superseded chain are dropped so pause/resume never stacks timers.
type tickMsg struct{ seq int }

type paletteDoneMsg struct {
	status string
	reload bool
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Toggle  key.Binding
	Reset   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Toggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "start/pause timer")),
		Reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset timer")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Toggle, k.Reset},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the live timer
// snapshot and its tick chain, the help overlay, and the command palette.
// Timer mutations run synchronously inside Update so a tick and a user
// action can never interleave mid-update.
type Model struct {
	board boardPort
	timer timerPort

	tasksView tasksview.Model
	timerView timerview.Model
	statsView statsview.Model

	activeTab  tabID
	keys       keyMap
	help       help.Model
	showHelp   bool
	palette    components.Palette
	timerState timerdto.State
	tickSeq    int
	status     string
	width      int
	height     int
}

func NewModel(board boardPort, timer timerPort) Model {
	return Model{
		board:     board,
		timer:     timer,
		tasksView: tasksview.New(board),
		timerView: timerview.New(),
		statsView: statsview.New(board),
		activeTab: tabTasks,
		keys:      defaultKeys(),
		help:      help.New(),
		palette:   components.NewPalette(),
		status:    "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.tasksView.Init(),
		m.statsView.Init(),
		m.loadTimerCmd(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all input while open.
	if m.palette.Visible() {
		if _, ok := msg.(tea.KeyMsg); ok {
			var cmd tea.Cmd
			m.palette, cmd = m.palette.Update(msg)
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()

	case timerLoadedMsg:
		if msg.err != nil {
			m.status = "timer load: " + msg.err.Error()
			return m, nil
		}
		m.timerState = msg.state
		m.timerView.SetState(m.timerState)
		if m.timerState.Running {
			m.status = "timer recovered, still running"
			cmd := m.restartTicks()
			return m, cmd
		}

	case tickMsg:
		if msg.seq != m.tickSeq || !m.timerState.Running {
			return m, nil
		}
		next, err := m.timer.Tick(context.Background(), m.timerState)
		if err != nil {
			m.status = "timer tick: " + err.Error()
			return m, nil
		}
		finished := m.timerState.WorkSession && !next.WorkSession
		m.timerState = next
		m.timerView.SetState(m.timerState)
		if finished {
			m.status = "focus session complete — take a break"
		}
		if m.timerState.Running {
			return m, m.tickCmd(msg.seq)
		}

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"

	case paletteDoneMsg:
		m.status = msg.status
		if msg.reload {
			cmds = append(cmds, m.tasksView.Reload(), m.statsView.Reload())
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		// Yield to the tasks view while its search filter or form is open.
		if m.activeTab == tabTasks && (m.tasksView.Filtering() || m.tasksView.Editing()) {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
			if m.activeTab == tabStats {
				cmds = append(cmds, m.statsView.Reload())
			}
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			if m.activeTab == tabStats {
				cmds = append(cmds, m.statsView.Reload())
			}
		case "?":
			m.showHelp = !m.showHelp
		case ":":
			cmd := m.palette.Open()
			return m, cmd
		case " ":
			if m.activeTab == tabTimer {
				return m.toggleTimer()
			}
		case "r":
			if m.activeTab == tabTimer {
				return m.resetTimer()
			}
		}
	}

	// Propagate the message to the active tab's sub-view.
	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabTasks:
		m.tasksView, tabCmd = m.tasksView.Update(msg)
	case tabTimer:
		m.timerView, tabCmd = m.timerView.Update(msg)
	case tabStats:
		m.statsView, tabCmd = m.statsView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── timer control ────────────────────────────────────────────────────────────

func (m Model) toggleTimer() (tea.Model, tea.Cmd) {
	next, err := m.timer.Toggle(context.Background(), m.timerState)
	if err != nil {
		m.status = "timer toggle: " + err.Error()
		return m, nil
	}
	m.timerState = next
	m.timerView.SetState(m.timerState)
	if m.timerState.Running {
		m.status = "timer running"
		cmd := m.restartTicks()
		return m, cmd
	}
	m.tickSeq++ // invalidate the current chain
	m.status = "timer paused"
	return m, nil
}

func (m Model) resetTimer() (tea.Model, tea.Cmd) {
	next, err := m.timer.Reset(context.Background())
	if err != nil {
		m.status = "timer reset: " + err.Error()
		return m, nil
	}
	m.tickSeq++
	m.timerState = next
	m.timerView.SetState(m.timerState)
	m.status = "timer reset"
	return m, nil
}

// restartTicks invalidates any previous chain and arms a fresh one, so at
// most one tick source is live per running state.
func (m *Model) restartTicks() tea.Cmd {
	m.tickSeq++
	return m.tickCmd(m.tickSeq)
}

func (m Model) tickCmd(seq int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{seq: seq}
	})
}

func (m Model) loadTimerCmd() tea.Cmd {
	return func() tea.Msg {
		state, err := m.timer.Load(context.Background())
		return timerLoadedMsg{state: state, err: err}
	}
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabTasks:
		return m.tasksView.View()
	case tabTimer:
		return m.timerView.View()
	case tabStats:
		return m.statsView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "studydash  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.timerState.Running {
		face := fmt.Sprintf("%02d:%02d", m.timerState.Remaining/60, m.timerState.Remaining%60)
		left = theme.Hot.Render("◔ "+face) + "  " + left
	}
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)

	switch parts[0] {
	case "task:add":
		if len(parts) < 3 {
			m.status = "usage: task:add <category> <title…>"
			return m, nil
		}
		category := parts[1]
		title := strings.TrimSpace(strings.TrimPrefix(input, parts[0]+" "+parts[1]))
		return m, m.addTaskCmd(title, category)

	case "task:done":
		if len(parts) != 2 {
			m.status = "usage: task:done <n>"
			return m, nil
		}
		n, err := strconv.Atoi(parts[1])
		if err != nil || n < 1 {
			m.status = "invalid task number"
			return m, nil
		}
		return m, m.toggleNthCmd(n)

	case "task:rm":
		if len(parts) != 2 {
			m.status = "usage: task:rm <n>"
			return m, nil
		}
		n, err := strconv.Atoi(parts[1])
		if err != nil || n < 1 {
			m.status = "invalid task number"
			return m, nil
		}
		return m, m.removeNthCmd(n)

	case "filter:status":
		if len(parts) != 2 {
			m.status = "usage: filter:status <all|open|done>"
			return m, nil
		}
		return m, m.setStatusCmd(parts[1])

	case "filter:category":
		if len(parts) != 2 {
			m.status = "usage: filter:category <name|all>"
			return m, nil
		}
		return m, m.setCategoryCmd(parts[1])

	case "timer:toggle":
		return m.toggleTimer()

	case "timer:reset":
		return m.resetTimer()

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

func (m Model) addTaskCmd(title, category string) tea.Cmd {
	return func() tea.Msg {
		task, err := m.board.AddTask(context.Background(), boarddto.AddTaskInput{Title: title, Category: category})
		if err != nil {
			return paletteDoneMsg{status: "add failed: " + err.Error()}
		}
		return paletteDoneMsg{status: "added: " + task.Title, reload: true}
	}
}

func (m Model) toggleNthCmd(n int) tea.Cmd {
	return func() tea.Msg {
		id, title, err := m.nthTask(n)
		if err != nil {
			return paletteDoneMsg{status: err.Error()}
		}
		if _, err := m.board.ToggleTask(context.Background(), id); err != nil {
			return paletteDoneMsg{status: "toggle failed: " + err.Error()}
		}
		return paletteDoneMsg{status: "toggled: " + title, reload: true}
	}
}

func (m Model) removeNthCmd(n int) tea.Cmd {
	return func() tea.Msg {
		id, title, err := m.nthTask(n)
		if err != nil {
			return paletteDoneMsg{status: err.Error()}
		}
		if err := m.board.RemoveTask(context.Background(), id); err != nil {
			return paletteDoneMsg{status: "remove failed: " + err.Error()}
		}
		return paletteDoneMsg{status: "removed: " + title, reload: true}
	}
}

// nthTask resolves a 1-based position in the currently filtered list.
func (m Model) nthTask(n int) (string, string, error) {
	overview, err := m.board.Overview(context.Background())
	if err != nil {
		return "", "", err
	}
	if n > len(overview.Tasks) {
		return "", "", fmt.Errorf("no task #%d in the filtered list", n)
	}
	task := overview.Tasks[n-1]
	return task.ID, task.Title, nil
}

func (m Model) setStatusCmd(status string) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.board.SetStatusFilter(context.Background(), status); err != nil {
			return paletteDoneMsg{status: "filter failed: " + err.Error()}
		}
		return paletteDoneMsg{status: "status filter: " + status, reload: true}
	}
}

func (m Model) setCategoryCmd(category string) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.board.SetCategoryFilter(context.Background(), category); err != nil {
			return paletteDoneMsg{status: "filter failed: " + err.Error()}
		}
		return paletteDoneMsg{status: "category filter: " + category, reload: true}
	}
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.tasksView, _ = m.tasksView.Update(sz)
	m.timerView, _ = m.timerView.Update(sz)
	m.statsView, _ = m.statsView.Update(sz)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
