package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/seal-arcade/internal/core"
)

// palette maps core.Color to lipgloss styles, indexed by color value.
var palette = func() []lipgloss.Style {
	codes := map[core.Color]string{
		core.ColorRed:           "1",
		core.ColorGreen:         "2",
		core.ColorYellow:        "3",
		core.ColorBlue:          "4",
		core.ColorMagenta:       "5",
		core.ColorCyan:          "6",
		core.ColorWhite:         "7",
		core.ColorBrightRed:     "9",
		core.ColorBrightGreen:   "10",
		core.ColorBrightYellow:  "11",
		core.ColorBrightBlue:    "12",
		core.ColorBrightMagenta: "13",
		core.ColorBrightCyan:    "14",
		core.ColorBrightWhite:   "15",
		core.ColorOrange:        "208",
		core.ColorGray:          "245",
	}
	styles := make([]lipgloss.Style, core.ColorGray+1)
	for i := range styles {
		styles[i] = lipgloss.NewStyle()
	}
	for c, code := range codes {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return styles
}()

func styleFor(c core.Color) lipgloss.Style {
	if int(c) < len(palette) {
		return palette[c]
	}
	return palette[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color are rendered as one run to keep the
// number of escape sequences down.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			if color == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}
