package style

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Terminal board
	BoardCell   = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	BoardWalker = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true) // Bright yellow
	BoardFrame  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("204"))
	Caption     = lipgloss.NewStyle().Foreground(lipgloss.Color("82")) // Green

	// Page styles
	TopPattern = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))            // Pinkish-reddish purple
	Title      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("228")) // Bright yellow
	Footer     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	Error      = lipgloss.NewStyle().Foreground(lipgloss.Color("9")) // Bright red
)

type RGB struct {
	R int
	G int
	B int
}

// Hex formats the color as #RRGGBB.
func (c RGB) Hex() string {
	return GenerateHexColor(c.R, c.G, c.B)
}

// Palette colors one rendering of the board.
type Palette struct {
	Background RGB
	Grid       RGB
	Walker     RGB
	Text       RGB
}

var (
	Day = Palette{
		Background: RGB{250, 246, 227},
		Grid:       RGB{214, 205, 170},
		Walker:     RGB{255, 0, 135},
		Text:       RGB{60, 60, 60},
	}
	Night = Palette{
		Background: RGB{13, 17, 40},
		Grid:       RGB{44, 52, 96},
		Walker:     RGB{255, 255, 0},
		Text:       RGB{200, 200, 220},
	}
)

// Blend returns the palette for intensity in [0.0, 1.0], 0 being Night
// and 1 being Day. Out of range values are clamped.
func Blend(intensity float64) Palette {
	t := max(0.0, min(1.0, intensity))
	return Palette{
		Background: mix(Night.Background, Day.Background, t),
		Grid:       mix(Night.Grid, Day.Grid, t),
		Walker:     mix(Night.Walker, Day.Walker, t),
		Text:       mix(Night.Text, Day.Text, t),
	}
}

func mix(a, b RGB, t float64) RGB {
	lerp := func(x, y int) int {
		return x + int(math.Round(float64(y-x)*t))
	}
	return RGB{lerp(a.R, b.R), lerp(a.G, b.G), lerp(a.B, b.B)}
}

// GenerateHexColor generates hexadecimal string for a given RGB values. r, g, b should be in the range 0-255
// Format: #RRGGBB
func GenerateHexColor(r, g, b int) string {
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}
