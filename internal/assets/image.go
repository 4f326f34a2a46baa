package assets

import (
	"fmt"
	"os"
	"strings"

	"github.com/miyoosquare/square/internal/core"
)

// Image is a text sprite: a rectangular block of runes loaded from a plain
// file. Width is the longest line; shorter lines are padded with spaces.
type Image struct {
	meta
	rows   []string
	width  int
	height int
}

// LoadImage reads a text sprite from disk.
func LoadImage(key, path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot load image %q: %w", key, err)
	}

	raw := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	width := 0
	for _, line := range raw {
		if n := len([]rune(line)); n > width {
			width = n
		}
	}

	rows := make([]string, len(raw))
	for i, line := range raw {
		if pad := width - len([]rune(line)); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		rows[i] = line
	}

	return &Image{
		meta:   newMeta(key, KindImage, path),
		rows:   rows,
		width:  width,
		height: len(rows),
	}, nil
}

// Width returns the sprite width in characters.
func (img *Image) Width() int {
	return img.width
}

// Height returns the sprite height in rows.
func (img *Image) Height() int {
	return img.height
}

// Draw blits the sprite onto the screen with its top-left corner at (x, y).
// Space cells are transparent.
func (img *Image) Draw(dst *core.Screen, x, y int, c core.Color) {
	for dy, row := range img.rows {
		for dx, r := range []rune(row) {
			if r == ' ' {
				continue
			}
			dst.SetCell(x+dx, y+dy, r, c)
		}
	}
}
