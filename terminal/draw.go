// File: terminal/draw.go
package terminal

import "github.com/gdamore/tcell/v2"

var (
	styleDefault = tcell.StyleDefault
	styleBorder  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePaddle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleBall    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

func styleFor(r rune) tcell.Style {
	switch r {
	case '+', '-', '|', ':':
		return styleBorder
	case '#':
		return stylePaddle
	case 'O':
		return styleBall
	default:
		return styleDefault
	}
}

// Draw clears screen and writes lines from the top-left corner, clipped to the screen.
// The first line is the header and keeps the default style. The caller shows the screen.
func Draw(screen tcell.Screen, lines []string) {
	screen.Clear()
	width, height := screen.Size()
	for y, line := range lines {
		if y >= height {
			break
		}
		x := 0
		for _, r := range line {
			if x >= width {
				break
			}
			style := styleDefault
			if y > 0 {
				style = styleFor(r)
			}
			screen.SetContent(x, y, r, nil, style)
			x++
		}
	}
}
