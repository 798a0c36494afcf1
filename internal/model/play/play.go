// Package play is the local playground: it drives the same processor a
// workflow run uses, one key press per move.
package play

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/issuewalk/internal/move"
	"github.com/vinser/issuewalk/internal/render"
	"github.com/vinser/issuewalk/internal/state"
	"github.com/vinser/issuewalk/internal/style"
)

type keyMap struct {
	Up   key.Binding
	Help key.Binding
	Quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up}, {k.Help, k.Quit}}
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", move.Up),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// LoadedMsg carries the position read at startup.
type LoadedMsg struct {
	Pos state.Position
	Err error
}

// MovedMsg carries the outcome of one processed move.
type MovedMsg struct {
	Move string
	Pos  state.Position
	Err  error
}

type Model struct {
	width      int
	height     int
	termWidth  int
	termHeight int

	ctx   context.Context
	proc  *move.Processor
	store move.Store
	keys  keyMap
	help  help.Model

	pos   state.Position
	moves int
	busy  bool
	err   error
}

// New returns a model that runs moves under ctx, so cancelling the program
// also cancels a move in flight.
func New(ctx context.Context, proc *move.Processor, store move.Store, width, height int) Model {
	return Model{
		ctx:    ctx,
		width:  width,
		height: height,
		proc:   proc,
		store:  store,
		keys:   keys,
		help:   help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		pos, err := store.Load()
		return LoadedMsg{Pos: pos, Err: err}
	}
}

func processCmd(ctx context.Context, proc *move.Processor, mv string) tea.Cmd {
	return func() tea.Msg {
		pos, err := proc.Process(ctx, mv)
		return MovedMsg{Move: mv, Pos: pos, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case LoadedMsg:
		m.pos, m.err = msg.Pos, msg.Err
		return m, nil
	case MovedMsg:
		m.busy = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.pos = msg.Pos
		m.moves++
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Up):
			// one move in flight at a time, the store has no locking
			if m.busy {
				return m, nil
			}
			m.busy = true
			return m, processCmd(m.ctx, m.proc, move.Up)
		}
	}
	return m, nil
}

// Pos returns the last known position.
func (m Model) Pos() state.Position {
	return m.pos
}

// Moves returns how many moves were applied this session.
func (m Model) Moves() int {
	return m.moves
}

func (m Model) View() string {
	content := render.Board(m.pos, render.DefaultCols, render.DefaultRows)
	if m.err != nil {
		content = lipgloss.JoinVertical(lipgloss.Center, content, style.Error.Render(m.err.Error()))
	}
	width := max(m.width, lipgloss.Width(content))
	return render.Page("issuewalk", content, m.help.View(m.keys), width, m.height, m.termWidth, m.termHeight)
}
