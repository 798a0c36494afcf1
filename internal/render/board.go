package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/issuewalk/internal/state"
	"github.com/vinser/issuewalk/internal/style"
)

const (
	cellSprite   = "·"
	walkerSprite = "●"
)

// Board renders pos on a cols x rows grid for the terminal.
func Board(pos state.Position, cols, rows int) string {
	if cols <= 0 {
		cols = DefaultCols
	}
	if rows <= 0 {
		rows = DefaultRows
	}
	wx, wy := Cell(pos, cols, rows)

	lines := make([]string, rows)
	for y := 0; y < rows; y++ {
		var sb strings.Builder
		for x := 0; x < cols; x++ {
			if x > 0 {
				sb.WriteString(" ")
			}
			if x == wx && y == wy {
				sb.WriteString(style.BoardWalker.Render(walkerSprite))
			} else {
				sb.WriteString(style.BoardCell.Render(cellSprite))
			}
		}
		lines[y] = sb.String()
	}

	grid := style.BoardFrame.Render(strings.Join(lines, "\n"))
	caption := style.Caption.Render("walker at " + pos.String())
	return lipgloss.JoinVertical(lipgloss.Center, grid, caption)
}

// Page renders page with title at the top, content block and footer at the bottom.
// Content style is left intact. The page is centered in the terminal when its size is known.
func Page(title, content, footer string, width, height, termWidth, termHeight int) string {
	top := style.TopPattern.Render(strings.Repeat("/", width))
	renderedTitle := style.Title.Render(title)
	renderedFooter := style.Footer.Render(footer)

	available := height - lipgloss.Height(top) - lipgloss.Height(renderedTitle) - lipgloss.Height(renderedFooter)
	centered := lipgloss.PlaceVertical(available, lipgloss.Center, content)

	view := lipgloss.JoinVertical(lipgloss.Left, top, renderedTitle, centered, renderedFooter)
	if termWidth > 0 && termHeight > 0 {
		return lipgloss.Place(termWidth, termHeight, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}
