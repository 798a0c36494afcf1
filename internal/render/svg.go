// Package render draws the walker board: as an SVG file for the README and
// as styled text for the terminal.
package render

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	svg "github.com/ajstarks/svgo"
	"github.com/rotisserie/eris"
	"github.com/vinser/issuewalk/internal/state"
	"github.com/vinser/issuewalk/internal/style"
)

const (
	DefaultPath = "walker.svg"
	DefaultCols = 16
	DefaultRows = 9
	DefaultCell = 32

	captionHeight = 28
)

// SVG writes the board picture to Path each time Render is called.
type SVG struct {
	Path string
	Cols int
	Rows int
	Cell int
	// Sky reports ambient light in [0.0, 1.0]; nil means full daylight.
	Sky func(time.Time) float64
	// Now defaults to time.Now.
	Now func() time.Time
}

// NewSVG returns an SVG renderer with the default board geometry.
func NewSVG(path string, sky func(time.Time) float64) *SVG {
	if path == "" {
		path = DefaultPath
	}
	return &SVG{
		Path: path,
		Cols: DefaultCols,
		Rows: DefaultRows,
		Cell: DefaultCell,
		Sky:  sky,
		Now:  time.Now,
	}
}

func (s *SVG) Render(ctx context.Context, pos state.Position) error {
	commit, err := s.Stage(ctx, pos)
	if err != nil {
		return err
	}
	return commit()
}

// Stage draws the board in memory. Nothing is written until commit runs.
func (s *SVG) Stage(ctx context.Context, pos state.Position) (func() error, error) {
	if err := ctx.Err(); err != nil {
		return nil, eris.Wrap(err, "render cancelled")
	}
	var buf bytes.Buffer
	s.Write(&buf, pos, s.palette())
	commit := func() error {
		if err := os.WriteFile(s.Path, buf.Bytes(), 0644); err != nil {
			return eris.Wrapf(err, "writing %s", s.Path)
		}
		return nil
	}
	return commit, nil
}

func (s *SVG) palette() style.Palette {
	if s.Sky == nil {
		return style.Day
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return style.Blend(s.Sky(now()))
}

// Write draws the board with pal onto w.
func (s *SVG) Write(w io.Writer, pos state.Position, pal style.Palette) {
	cols, rows, cell := s.geometry()
	width := cols * cell
	height := rows*cell + captionHeight

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Title("walker at " + pos.String())
	canvas.Rect(0, 0, width, height, "fill:"+pal.Background.Hex())

	canvas.Gid("grid")
	gridStyle := "stroke:" + pal.Grid.Hex() + ";stroke-width:1"
	for c := 0; c <= cols; c++ {
		canvas.Line(c*cell, 0, c*cell, rows*cell, gridStyle)
	}
	for r := 0; r <= rows; r++ {
		canvas.Line(0, r*cell, width, r*cell, gridStyle)
	}
	canvas.Gend()

	cx, cy := Cell(pos, cols, rows)
	canvas.Circle(cx*cell+cell/2, cy*cell+cell/2, cell*3/8, "fill:"+pal.Walker.Hex())

	canvas.Text(width/2, rows*cell+captionHeight-9, fmt.Sprintf("x=%d y=%d", pos.X, pos.Y),
		"text-anchor:middle;font-family:monospace;font-size:14px;fill:"+pal.Text.Hex())
	canvas.End()
}

func (s *SVG) geometry() (cols, rows, cell int) {
	cols, rows, cell = s.Cols, s.Rows, s.Cell
	if cols <= 0 {
		cols = DefaultCols
	}
	if rows <= 0 {
		rows = DefaultRows
	}
	if cell <= 0 {
		cell = DefaultCell
	}
	return cols, rows, cell
}

// Cell maps an unbounded position onto a cols x rows board. Coordinates
// wrap around the edges.
func Cell(pos state.Position, cols, rows int) (int, int) {
	return wrap(pos.X, cols), wrap(pos.Y, rows)
}

func wrap(v, n int) int {
	return ((v % n) + n) % n
}
