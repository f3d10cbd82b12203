// File: render/ascii.go
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/lguibr/pongsim/game"
)

const (
	MinCols = 20
	MinRows = 8
)

// Glyphs used by the rasterizer.
const (
	BallGlyph       = 'O'
	PaddleGlyph     = '#'
	CenterLineGlyph = ':'
	BorderGlyph     = '-'
	SideGlyph       = '|'
	CornerGlyph     = '+'
)

// ASCII rasterizes snap into rows lines of cols characters: a score header, the
// bordered field with its center line, paddles and ball, and a status banner when
// the game is not running. Sizes below MinCols x MinRows are raised to the minimum.
func ASCII(snap game.Snapshot, cols, rows int) []string {
	if cols < MinCols {
		cols = MinCols
	}
	if rows < MinRows {
		rows = MinRows
	}

	width, height := cols-2, rows-3
	field := make([][]rune, height)
	for r := range field {
		field[r] = []rune(strings.Repeat(" ", width))
	}
	grid := mapper{snap.Field, width, height}

	middle := width / 2
	for r := 0; r < height; r += 2 {
		field[r][middle] = CenterLineGlyph
	}

	for _, p := range snap.Paddles {
		c := grid.col(p.X)
		top, bottom := grid.row(p.Y+p.Height/2), grid.row(p.Y-p.Height/2)
		for r := top; r <= bottom; r++ {
			field[r][c] = PaddleGlyph
		}
	}

	field[grid.row(snap.Ball.Y)][grid.col(snap.Ball.X)] = BallGlyph

	if banner := statusBanner(snap); banner != "" {
		overlay(field[height/2], banner)
	}

	border := string(CornerGlyph) + strings.Repeat(string(BorderGlyph), width) + string(CornerGlyph)
	lines := make([]string, 0, rows)
	lines = append(lines, center(header(snap), cols), border)
	for _, line := range field {
		lines = append(lines, string(SideGlyph)+string(line)+string(SideGlyph))
	}
	return append(lines, border)
}

// String is ASCII joined by newlines.
func String(snap game.Snapshot, cols, rows int) string {
	return strings.Join(ASCII(snap, cols, rows), "\n")
}

func header(snap game.Snapshot) string {
	return fmt.Sprintf("%s %d : %d %s", snap.Names[0], snap.Scores.Player0, snap.Scores.Player1, snap.Names[1])
}

func statusBanner(snap game.Snapshot) string {
	switch {
	case snap.Stopped:
		return " STOPPED "
	case snap.State == game.StateGameOver && snap.Winner >= 0 && snap.Winner < len(snap.Names):
		return fmt.Sprintf(" %s WINS ", snap.Names[snap.Winner])
	case snap.State == game.StatePaused:
		return " PAUSED "
	case snap.State == game.StateIdle:
		return " READY "
	}
	return ""
}

// mapper converts field coordinates (origin at center, y up) into cells.
type mapper struct {
	field         game.FieldState
	width, height int
}

func (m mapper) col(x float64) int {
	if m.field.HalfWidth <= 0 {
		return m.width / 2
	}
	ratio := (x + m.field.HalfWidth) / (2 * m.field.HalfWidth)
	return clampIndex(ratio*float64(m.width-1), m.width)
}

func (m mapper) row(y float64) int {
	if m.field.HalfHeight <= 0 {
		return m.height / 2
	}
	ratio := (m.field.HalfHeight - y) / (2 * m.field.HalfHeight)
	return clampIndex(ratio*float64(m.height-1), m.height)
}

func clampIndex(value float64, size int) int {
	if math.IsNaN(value) {
		return size / 2
	}
	index := int(math.Round(value))
	if index < 0 {
		return 0
	}
	if index >= size {
		return size - 1
	}
	return index
}

// overlay writes text centered over line, truncated to fit.
func overlay(line []rune, text string) {
	runes := []rune(text)
	if len(runes) > len(line) {
		runes = runes[:len(line)]
	}
	start := (len(line) - len(runes)) / 2
	copy(line[start:], runes)
}

// center pads or truncates text to exactly width runes.
func center(text string, width int) string {
	line := []rune(strings.Repeat(" ", width))
	overlay(line, text)
	return string(line)
}
