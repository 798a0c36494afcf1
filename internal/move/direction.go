package move

import (
	"math"

	"github.com/rotisserie/eris"
	"github.com/vinser/issuewalk/internal/state"
)

// ErrOutOfRange is returned when a step would overflow a coordinate.
var ErrOutOfRange = eris.New("move: position out of range")

// Up is the only move identifier with defined behaviour.
const Up = "move_up"

// Direction represents a walker step.
type Direction int

const (
	No Direction = iota
	North
)

// Parse maps a move identifier to a direction. Unknown and empty
// identifiers map to No with ok set to false.
func Parse(move string) (dir Direction, ok bool) {
	switch move {
	case Up:
		return North, true
	default:
		return No, false
	}
}

// Step returns pos moved one cell in dir. Screen coordinates: north is y-1.
func (d Direction) Step(pos state.Position) state.Position {
	switch d {
	case North:
		pos.Y--
	}
	return pos
}

// CanStep reports whether pos can move one cell in dir without overflowing.
func (d Direction) CanStep(pos state.Position) bool {
	return d != North || pos.Y != math.MinInt
}

// Apply returns the position after move and whether any coordinate changed.
func Apply(pos state.Position, move string) (state.Position, bool) {
	dir, _ := Parse(move)
	next := dir.Step(pos)
	return next, next != pos
}
