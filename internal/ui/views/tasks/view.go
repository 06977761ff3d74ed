package tasks

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	boarddto "studydash/internal/modules/board/dto"
	"studydash/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type BoardPort interface {
	Overview(ctx context.Context) (boarddto.OverviewOutput, error)
	AddTask(ctx context.Context, input boarddto.AddTaskInput) (boarddto.TaskOutput, error)
	UpdateTask(ctx context.Context, input boarddto.UpdateTaskInput) (boarddto.TaskOutput, error)
	RemoveTask(ctx context.Context, id string) error
	ToggleTask(ctx context.Context, id string) (boarddto.TaskOutput, error)
	SetStatusFilter(ctx context.Context, status string) (boarddto.FilterOutput, error)
	SetCategoryFilter(ctx context.Context, category string) (boarddto.FilterOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type OverviewLoadedMsg struct {
	Overview boarddto.OverviewOutput
	Err      error
}

type mutationDoneMsg struct{ err error }

// ─── list item ───────────────────────────────────────────────────────────────

type taskItem struct {
	task boarddto.TaskOutput
}

func (i taskItem) Title() string {
	mark := "○"
	if i.task.Completed {
		mark = "✓"
	}
	return mark + " " + i.task.Title
}

func (i taskItem) Description() string {
	if i.task.DueDate == "" {
		return i.task.Category
	}
	return i.task.Category + "  due " + i.task.DueDate
}

func (i taskItem) FilterValue() string { return i.task.Title }

// ─── form ────────────────────────────────────────────────────────────────────

const (
	fieldTitle = iota
	fieldCategory
	fieldDue
	fieldCount
)

type form struct {
	inputs    [fieldCount]textinput.Model
	focused   int
	editingID string
	active    bool
}

func newForm() form {
	f := form{}
	labels := [fieldCount]string{"title", "category", "due date (optional)"}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = labels[i]
		ti.CharLimit = 120
		f.inputs[i] = ti
	}
	return f
}

func (f *form) open(task boarddto.TaskOutput) tea.Cmd {
	f.active = true
	f.editingID = task.ID
	f.inputs[fieldTitle].SetValue(task.Title)
	f.inputs[fieldCategory].SetValue(task.Category)
	f.inputs[fieldDue].SetValue(task.DueDate)
	f.focused = fieldTitle
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	return f.inputs[fieldTitle].Focus()
}

func (f *form) close() {
	f.active = false
	f.editingID = ""
	for i := range f.inputs {
		f.inputs[i].Blur()
		f.inputs[i].SetValue("")
	}
}

func (f *form) cycle(delta int) tea.Cmd {
	f.inputs[f.focused].Blur()
	f.focused = (f.focused + delta + fieldCount) % fieldCount
	return f.inputs[f.focused].Focus()
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port     BoardPort
	list     list.Model
	overview boarddto.OverviewOutput
	form     form
	loaded   bool
	width    int
	height   int
}

func New(port BoardPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Tasks"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return Model{port: port, list: l, form: newForm()}
}

func (m Model) Init() tea.Cmd {
	return m.Reload()
}

// Reload re-derives the whole board view from current state.
func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		overview, err := m.port.Overview(context.Background())
		return OverviewLoadedMsg{Overview: overview, Err: err}
	}
}

// Filtering reports whether the list's search filter is currently active.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// Editing reports whether the add/edit form is open and consuming keys.
func (m Model) Editing() bool {
	return m.form.active
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case OverviewLoadedMsg:
		m.loaded = true
		if msg.Err != nil {
			m.list.Title = "Tasks — " + msg.Err.Error()
			return m, nil
		}
		m.overview = msg.Overview
		m.list.Title = fmt.Sprintf("Tasks — status:%s  category:%s",
			msg.Overview.Filter.Status, msg.Overview.Filter.Category)
		items := make([]list.Item, len(msg.Overview.Tasks))
		for i, t := range msg.Overview.Tasks {
			items[i] = taskItem{task: t}
		}
		cmds = append(cmds, m.list.SetItems(items))
		return m, tea.Batch(cmds...)

	case mutationDoneMsg:
		// Invalid input and absent ids are silent no-ops; reloading is
		// enough either way.
		return m, m.Reload()

	case tea.KeyMsg:
		if m.form.active {
			return m.updateForm(msg)
		}
		if !m.Filtering() {
			switch msg.String() {
			case "a":
				cmd := m.form.open(boarddto.TaskOutput{})
				return m, cmd
			case "e":
				if item, ok := m.list.SelectedItem().(taskItem); ok {
					cmd := m.form.open(item.task)
					return m, cmd
				}
			case "d":
				if item, ok := m.list.SelectedItem().(taskItem); ok {
					return m, m.removeCmd(item.task.ID)
				}
			case "enter":
				if item, ok := m.list.SelectedItem().(taskItem); ok {
					return m, m.toggleCmd(item.task.ID)
				}
			case "s":
				return m, m.cycleStatusCmd()
			case "c":
				return m, m.cycleCategoryCmd()
			}
		}
	}

	var lCmd tea.Cmd
	m.list, lCmd = m.list.Update(msg)
	cmds = append(cmds, lCmd)
	return m, tea.Batch(cmds...)
}

func (m Model) updateForm(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.form.close()
		return m, nil
	case "tab", "down":
		cmd := m.form.cycle(1)
		return m, cmd
	case "shift+tab", "up":
		cmd := m.form.cycle(-1)
		return m, cmd
	case "enter":
		title := m.form.inputs[fieldTitle].Value()
		category := m.form.inputs[fieldCategory].Value()
		due := m.form.inputs[fieldDue].Value()
		editingID := m.form.editingID
		if strings.TrimSpace(title) == "" || strings.TrimSpace(category) == "" {
			// Empty required fields: the form stays open, nothing mutates.
			return m, nil
		}
		m.form.close()
		return m, m.submitCmd(editingID, title, category, due)
	}
	var cmd tea.Cmd
	m.form.inputs[m.form.focused], cmd = m.form.inputs[m.form.focused].Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.loaded {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			theme.Muted.Render("Loading tasks…"))
	}

	listW := m.width * 6 / 10
	sideW := m.width - listW

	listPane := lipgloss.NewStyle().
		Width(listW).
		Height(m.height).
		Render(m.list.View())

	var side string
	if m.form.active {
		side = m.renderForm()
	} else {
		side = m.renderDetail()
	}
	sidePane := theme.Pane.
		Width(sideW - 2).
		Height(m.height - 2).
		Render(side)

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, sidePane)
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	listW := m.width * 6 / 10
	m.list.SetSize(listW, m.height)
	for i := range m.form.inputs {
		m.form.inputs[i].Width = m.width - listW - 8
	}
}

func (m Model) renderForm() string {
	var sb strings.Builder
	header := "New task"
	if m.form.editingID != "" {
		header = "Edit task"
	}
	sb.WriteString(theme.Title.Render(header) + "\n\n")
	labels := [fieldCount]string{"Title    ", "Category ", "Due      "}
	for i, ti := range m.form.inputs {
		sb.WriteString(theme.Muted.Render(labels[i]) + ti.View() + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("enter: save  tab: next field  esc: cancel"))
	return sb.String()
}

func (m Model) renderDetail() string {
	var sb strings.Builder
	tally := m.overview.Tally
	sb.WriteString(theme.Title.Render("Board") + "\n\n")
	sb.WriteString(theme.Muted.Render("open:      ") + fmt.Sprintf("%d", tally.Open) + "\n")
	sb.WriteString(theme.Muted.Render("completed: ") + fmt.Sprintf("%d", tally.Completed) + "\n")
	sb.WriteString(theme.Muted.Render("progress:  ") + fmt.Sprintf("%d%%", tally.Percentage) + "\n")
	if len(m.overview.Categories) > 0 {
		sb.WriteString(theme.Muted.Render("categories:") + " " + strings.Join(m.overview.Categories, ", ") + "\n")
	}

	if item, ok := m.list.SelectedItem().(taskItem); ok {
		t := item.task
		sb.WriteString("\n" + theme.Title.Render(t.Title) + "\n")
		sb.WriteString(theme.Muted.Render("category: ") + t.Category + "\n")
		if t.DueDate != "" {
			sb.WriteString(theme.Muted.Render("due:      ") + t.DueDate + "\n")
		}
		status := "open"
		if t.Completed {
			status = "done"
		}
		sb.WriteString(theme.Muted.Render("status:   ") + status + "\n")
	}

	sb.WriteString("\n" + theme.Muted.Render("a: add  e: edit  d: delete  enter: toggle\ns: cycle status  c: cycle category"))
	return sb.String()
}

func (m Model) submitCmd(editingID, title, category, due string) tea.Cmd {
	return func() tea.Msg {
		var err error
		if editingID == "" {
			_, err = m.port.AddTask(context.Background(), boarddto.AddTaskInput{
				Title: title, Category: category, DueDate: due,
			})
		} else {
			_, err = m.port.UpdateTask(context.Background(), boarddto.UpdateTaskInput{
				ID: editingID, Title: title, Category: category, DueDate: due,
			})
		}
		return mutationDoneMsg{err: err}
	}
}

func (m Model) removeCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return mutationDoneMsg{err: m.port.RemoveTask(context.Background(), id)}
	}
}

func (m Model) toggleCmd(id string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.port.ToggleTask(context.Background(), id)
		return mutationDoneMsg{err: err}
	}
}

func (m Model) cycleStatusCmd() tea.Cmd {
	next := map[string]string{"all": "open", "open": "done", "done": "all"}[m.overview.Filter.Status]
	if next == "" {
		next = "all"
	}
	return func() tea.Msg {
		_, err := m.port.SetStatusFilter(context.Background(), next)
		return mutationDoneMsg{err: err}
	}
}

func (m Model) cycleCategoryCmd() tea.Cmd {
	// all → first category → … → last category → all.
	next := "all"
	cats := m.overview.Categories
	current := m.overview.Filter.Category
	if current == "all" && len(cats) > 0 {
		next = cats[0]
	} else {
		for i, c := range cats {
			if c == current && i+1 < len(cats) {
				next = cats[i+1]
				break
			}
		}
	}
	return func() tea.Msg {
		_, err := m.port.SetCategoryFilter(context.Background(), next)
		return mutationDoneMsg{err: err}
	}
}
