package game

import "github.com/miyoosquare/square/internal/core"

// menu is a minimal vertical cursor menu used by the menu states. Item
// labels are produced per frame so language changes show up immediately.
type menu struct {
	count  int
	cursor int
}

func newMenu(count int) *menu {
	return &menu{count: count}
}

func (m *menu) up() {
	if m.cursor > 0 {
		m.cursor--
	}
}

func (m *menu) down() {
	if m.cursor < m.count-1 {
		m.cursor++
	}
}

func (m *menu) reset() {
	m.cursor = 0
}

// render draws the items centered, starting at row y, highlighting the
// cursor line.
func (m *menu) render(dst *core.Screen, y int, items []string) {
	for i, label := range items {
		color := core.ColorGray
		text := "  " + label + "  "
		if i == m.cursor {
			color = core.ColorBrightWhite
			text = "> " + label + " <"
		}
		dst.DrawTextCentered(y+i*2, text, color)
	}
}
