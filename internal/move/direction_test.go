package move

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vinser/issuewalk/internal/state"
)

func TestParse(t *testing.T) {
	dir, ok := Parse(Up)
	assert.True(t, ok)
	assert.Equal(t, North, dir)

	for _, mv := range []string{"", "move_down", "move_left", "Move_Up", "move_up\n"} {
		dir, ok := Parse(mv)
		assert.False(t, ok, mv)
		assert.Equal(t, No, dir, mv)
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name    string
		pos     state.Position
		move    string
		want    state.Position
		changed bool
	}{
		{"up", state.Position{X: 3, Y: 5}, Up, state.Position{X: 3, Y: 4}, true},
		{"up past zero", state.Position{X: 0, Y: 0}, Up, state.Position{X: 0, Y: -1}, true},
		{"unknown", state.Position{X: 0, Y: 0}, "move_down", state.Position{X: 0, Y: 0}, false},
		{"empty", state.Position{X: -4, Y: 8}, "", state.Position{X: -4, Y: 8}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := Apply(tt.pos, tt.move)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.changed, changed)
		})
	}
}

func TestApply_TwiceIsTwoSteps(t *testing.T) {
	pos, _ := Apply(state.Position{X: 1, Y: 10}, Up)
	pos, _ = Apply(pos, Up)
	assert.Equal(t, state.Position{X: 1, Y: 8}, pos)
}

func TestCanStep(t *testing.T) {
	assert.True(t, North.CanStep(state.Position{Y: 0}))
	assert.True(t, North.CanStep(state.Position{Y: math.MaxInt}))
	assert.False(t, North.CanStep(state.Position{X: 3, Y: math.MinInt}))
	assert.True(t, No.CanStep(state.Position{Y: math.MinInt}))
}
