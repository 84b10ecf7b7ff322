package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/geoquiz/internal/content"
	"github.com/vovakirdan/geoquiz/internal/core"
)

// Button is a clickable option: its screen bounds, caption, the value it
// selects, and an optional flag drawn before the caption.
type Button struct {
	Bounds core.Rect
	Label  string
	Key    string
	Flag   string
}

// caption returns the button text without styling.
func (b Button) caption() string {
	if b.Flag == "" {
		return b.Label
	}
	return content.FlagEmoji(b.Flag) + " " + b.Label
}

// drawButton renders any button; active buttons are highlighted.
func drawButton(b Button, active bool, theme Theme) string {
	style := theme.Button
	if active {
		style = theme.ButtonActive
	}
	return style.Render(b.caption())
}

// frame is a screen laid out line by line. Button bounds are recorded as
// lines are added, so mouse hits map to the same rows that are drawn.
type frame struct {
	width   int
	theme   Theme
	lines   []string
	buttons []Button
}

func newFrame(width int, theme Theme) *frame {
	return &frame{width: width, theme: theme}
}

// blank adds an empty line.
func (f *frame) blank() {
	f.lines = append(f.lines, "")
}

// text adds centered, styled text, wrapping it to the frame width.
func (f *frame) text(s string, style lipgloss.Style) {
	maxW := f.width - 4
	if maxW < 10 {
		maxW = 10
	}
	if lipgloss.Width(s) > maxW {
		style = style.Width(maxW)
	}
	for _, line := range strings.Split(style.Render(s), "\n") {
		f.lines = append(f.lines, centerText(line, f.width))
	}
}

// button adds an option button on its own line.
func (f *frame) button(label, key, flag string, active bool) {
	b := Button{Label: label, Key: key, Flag: flag}
	rendered := drawButton(b, active, f.theme)
	b.Bounds = core.CenteredRow(len(f.lines), lipgloss.Width(rendered), f.width)
	f.lines = append(f.lines, strings.Repeat(" ", b.Bounds.X)+rendered)
	f.buttons = append(f.buttons, b)
}

// block appends a multi-line block, centered as a whole.
func (f *frame) block(s string) {
	w := lipgloss.Width(s)
	pad := 0
	if w < f.width {
		pad = (f.width - w) / 2
	}
	for _, line := range strings.Split(s, "\n") {
		f.lines = append(f.lines, strings.Repeat(" ", pad)+line)
	}
}

// hit returns the index of the button at (x, y), or -1.
func (f *frame) hit(x, y int) int {
	rects := make([]core.Rect, len(f.buttons))
	for i, b := range f.buttons {
		rects[i] = b.Bounds
	}
	return core.HitIndex(rects, x, y)
}

func (f *frame) String() string {
	return strings.Join(f.lines, "\n")
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
