package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type rect struct {
	x, y, width, height int
}

func (that rect) contains(x, y int) bool {
	return x >= that.x && x < that.x+that.width && y >= that.y && y < that.y+that.height
}

// centered returns the placement of a box of the given size centred over a base of baseWidth x baseHeight.
func centered(baseWidth, baseHeight, width, height int) rect {
	return rect{
		x:      max(0, (baseWidth-width)/2),
		y:      max(0, (baseHeight-height)/2),
		width:  width,
		height: height,
	}
}

// overlayAt composites overlay on top of base with its top-left corner at (x, y).
func overlayAt(base, overlay string, x, y int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")

	for len(baseLines) < y+len(overlayLines) {
		baseLines = append(baseLines, "")
	}

	for i, line := range overlayLines {
		row := y + i
		target := baseLines[row]

		left := ansi.Truncate(target, x, "")
		if gap := x - ansi.StringWidth(left); gap > 0 {
			left += strings.Repeat(" ", gap)
		}

		right := ansi.TruncateLeft(target, x+ansi.StringWidth(line), "")

		baseLines[row] = left + line + right
	}

	return strings.Join(baseLines, "\n")
}
