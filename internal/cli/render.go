package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// One style per face letter, matching the conventional center colors.
var faceletStyles = map[byte]lipgloss.Style{
	'U': lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("0")), // white
	'R': lipgloss.NewStyle().Background(lipgloss.Color("160")).Foreground(lipgloss.Color("255")), // red
	'F': lipgloss.NewStyle().Background(lipgloss.Color("34")).Foreground(lipgloss.Color("255")),  // green
	'D': lipgloss.NewStyle().Background(lipgloss.Color("220")).Foreground(lipgloss.Color("0")),   // yellow
	'L': lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("0")),   // orange
	'B': lipgloss.NewStyle().Background(lipgloss.Color("27")).Foreground(lipgloss.Color("255")),  // blue
}

var headerStyle = lipgloss.NewStyle().Bold(true)

func sticker(ch byte) string {
	if style, ok := faceletStyles[ch]; ok {
		return style.Render(" " + string(ch) + " ")
	}
	return " " + string(ch) + " "
}

// renderNet draws a facelet string as the usual unfolded cube net:
// U on top, then the L F R B band, then D.
func renderNet(facelets string) string {
	if len(facelets) != 54 {
		return facelets
	}

	face := func(f int) []string {
		rows := make([]string, 3)
		for r := 0; r < 3; r++ {
			var b strings.Builder
			for c := 0; c < 3; c++ {
				b.WriteString(sticker(facelets[f*9+r*3+c]))
			}
			rows[r] = b.String()
		}
		return rows
	}

	// Face offsets in the string: U=0, R=1, F=2, D=3, L=4, B=5.
	u, r, f, d, l, b := face(0), face(1), face(2), face(3), face(4), face(5)

	indent := strings.Repeat(" ", 9)
	var out strings.Builder
	for _, row := range u {
		out.WriteString(indent + row + "\n")
	}
	for i := 0; i < 3; i++ {
		out.WriteString(l[i] + f[i] + r[i] + b[i] + "\n")
	}
	for _, row := range d {
		out.WriteString(indent + row + "\n")
	}
	return out.String()
}
