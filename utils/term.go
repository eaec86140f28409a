package utils

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	mapart "github.com/AK1089/minecraftMapArt"
)

// ForceTrueColor makes lipgloss emit 24-bit colours even when the output is
// not detected as a terminal.
func ForceTrueColor() {
	lipgloss.SetColorProfile(termenv.TrueColor)
}

// RenderTerminal draws the grid with upper half blocks, two map rows per
// text line. step > 1 samples every step-th cell to fit narrow terminals.
// Transparent cells are left blank.
func RenderTerminal(grid *mapart.Grid, p *mapart.Palette, step int) string {
	if step <= 0 {
		step = 1
	}
	hex := func(x, z int) string {
		if z >= mapart.GridSize {
			return ""
		}
		e, ok := p.Lookup(grid.At(x, z))
		if !ok {
			return ""
		}
		return e.Hex()
	}

	var b strings.Builder
	for z := 0; z < mapart.GridSize; z += 2 * step {
		for x := 0; x < mapart.GridSize; x += step {
			top, bottom := hex(x, z), hex(x, z+step)
			switch {
			case top == "" && bottom == "":
				b.WriteByte(' ')
			case top == "":
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(bottom)).Render("▄"))
			default:
				style := lipgloss.NewStyle().Foreground(lipgloss.Color(top))
				if bottom != "" {
					style = style.Background(lipgloss.Color(bottom))
				}
				b.WriteString(style.Render("▀"))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
