package play

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vinser/issuewalk/internal/move"
	"github.com/vinser/issuewalk/internal/state"
)

func newTestModel(t *testing.T, start state.Position) (Model, *state.File) {
	t.Helper()
	return newTestModelContext(t, context.Background(), start)
}

func newTestModelContext(t *testing.T, ctx context.Context, start state.Position) (Model, *state.File) {
	t.Helper()
	store := state.NewFile(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, store.Init(start))
	noop := move.RendererFunc(func(context.Context, state.Position) error { return nil })
	return New(ctx, move.NewProcessor(store, noop), store, 40, 20), store
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	pm, ok := next.(Model)
	require.True(t, ok)
	return pm, cmd
}

func TestInitLoadsPosition(t *testing.T) {
	m, _ := newTestModel(t, state.Position{X: 3, Y: 5})
	msg := m.Init()()
	m, _ = update(t, m, msg)
	assert.Equal(t, state.Position{X: 3, Y: 5}, m.Pos())
	assert.Contains(t, m.View(), "walker at (3, 5)")
}

func TestUpKeyMovesWalker(t *testing.T) {
	m, store := newTestModel(t, state.Position{X: 3, Y: 5})
	m, _ = update(t, m, m.Init()())

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	require.NotNil(t, cmd)

	// a second press while the first is in flight is dropped
	_, dropped := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	assert.Nil(t, dropped)

	m, _ = update(t, m, cmd())
	assert.Equal(t, state.Position{X: 3, Y: 4}, m.Pos())
	assert.Equal(t, 1, m.Moves())

	saved, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, state.Position{X: 3, Y: 4}, saved)
}

func TestUpKeyHonoursProgramContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	m, store := newTestModelContext(t, ctx, state.Position{X: 3, Y: 5})
	m, _ = update(t, m, m.Init()())
	cancel()

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	require.NotNil(t, cmd)
	msg, ok := cmd().(MovedMsg)
	require.True(t, ok)
	assert.True(t, errors.Is(msg.Err, context.Canceled))

	saved, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, state.Position{X: 3, Y: 5}, saved)
}

func TestMoveErrorIsShown(t *testing.T) {
	m, _ := newTestModel(t, state.Position{})
	m, _ = update(t, m, MovedMsg{Move: move.Up, Err: errors.New("store gone")})
	assert.Contains(t, m.View(), "store gone")
	assert.Zero(t, m.Moves())
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, state.Position{})
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestHelpToggle(t *testing.T) {
	m, _ := newTestModel(t, state.Position{})
	assert.False(t, m.help.ShowAll)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	assert.True(t, m.help.ShowAll)
}
