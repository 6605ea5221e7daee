package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dreamer2trader-boop/MindForge/internal/engine"
	"github.com/dreamer2trader-boop/MindForge/internal/storage"
	"github.com/dreamer2trader-boop/MindForge/internal/ui"
)

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	profile *storage.Profile
	tasks   []storage.Task
	xpBar   progress.Model

	selected int
	lastLog  string
	loading  bool
	err      error
}

type loadedMsg struct {
	profile *storage.Profile
	tasks   []storage.Task
	err     error
}

type completedMsg struct {
	res *engine.CompleteResult
	err error
}

type uncompletedMsg struct {
	res *engine.UncompleteResult
	err error
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		xpBar:   progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		loading: true,
		lastLog: "Loading…",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		if _, err := m.svc.CheckRollover(m.ctx); err != nil {
			return loadedMsg{err: err}
		}
		p, err := m.svc.Profile(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		tasks, err := m.svc.TasksForToday(m.ctx, engine.Filter{})
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{profile: p, tasks: tasks}
	}
}

func (m boardModel) completeCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.CompleteTask(m.ctx, id)
		return completedMsg{res: res, err: err}
	}
}

func (m boardModel) uncompleteCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.UncompleteTask(m.ctx, id)
		return uncompletedMsg{res: res, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.xpBar.Width = min(m.width-20, 40)
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.profile = msg.profile
		m.tasks = msg.tasks
		if m.selected >= len(m.tasks) {
			m.selected = len(m.tasks) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case completedMsg:
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = fmt.Sprintf("%s %s +%d XP", ui.IconDone, msg.res.TaskName, msg.res.XPAwarded)
		if msg.res.LevelUp {
			m.lastLog += " " + ui.BadgeLevelUp
		}
		for _, a := range msg.res.Unlocked {
			m.lastLog += fmt.Sprintf("  %s %s", ui.IconTrophy, a.Title)
		}
		return m, m.loadCmd()
	case uncompletedMsg:
		if msg.err != nil {
			m.lastLog = "Undo failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = fmt.Sprintf("%s %s -%d XP", ui.IconUndo, msg.res.TaskName, msg.res.XPDeducted)
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.tasks)-1 {
				m.selected++
			}
			return m, nil
		case "c", " ", "enter":
			if t := m.selectedTask(); t != nil {
				if t.Completed {
					m.lastLog = "Already done. Press u to undo."
					return m, nil
				}
				return m, m.completeCmd(t.ID)
			}
			return m, nil
		case "u":
			if t := m.selectedTask(); t != nil {
				if !t.Completed {
					m.lastLog = "Not completed yet."
					return m, nil
				}
				return m, m.uncompleteCmd(t.ID)
			}
			return m, nil
		}
	}
	return m, nil
}

func (m boardModel) selectedTask() *storage.Task {
	if m.selected < 0 || m.selected >= len(m.tasks) {
		return nil
	}
	return &m.tasks[m.selected]
}

func (m boardModel) View() string {
	var b strings.Builder

	b.WriteString(ui.Heading(ui.IconSparkle, "MindForge") + "\n")

	if m.err != nil {
		b.WriteString(ui.Bad.Render(ui.IconError+" "+m.err.Error()) + "\n")
		return b.String()
	}
	if m.loading || m.profile == nil {
		b.WriteString(ui.Muted.Render("Loading…") + "\n")
		return b.String()
	}

	p := m.profile
	pct := 0.0
	if p.XPToNext > 0 {
		pct = float64(p.XP) / float64(p.XPToNext)
	}
	b.WriteString(fmt.Sprintf("%s %s  %s\n",
		ui.Key.Render(fmt.Sprintf("Lv %d", p.Level)),
		ui.Muted.Render(engine.LevelTitle(p.Level)),
		ui.Gold.Render(fmt.Sprintf("%s %d", ui.IconFlame, p.CurrentStreak)),
	))
	b.WriteString(m.xpBar.ViewAs(pct) + ui.Muted.Render(fmt.Sprintf(" %d/%d XP", p.XP, p.XPToNext)) + "\n\n")

	if len(m.tasks) == 0 {
		b.WriteString(ui.Muted.Render("Nothing scheduled today. Add a task with: mf add") + "\n")
	}
	for i, t := range m.tasks {
		line := fmt.Sprintf("%s #%d %s %s %s", ui.Checkbox(t.Completed), t.ID, t.Name, ui.Muted.Render(t.Category), ui.Stars(t.Difficulty))
		if i == m.selected {
			line = ui.SelectedRow.Render("▸ ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + ui.Muted.Render(m.lastLog) + "\n")
	b.WriteString(ui.Muted.Render("↑/↓ move · space complete · u undo · r refresh · q quit") + "\n")
	return b.String()
}
