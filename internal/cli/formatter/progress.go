package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

func clampBar(pct float64, width int) (float64, int) {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if width < 2 {
		width = 2
	}
	return pct, width
}

func barBlocks(pct float64, width int) string {
	filled := min(int(pct*float64(width)), width)
	return strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
}

// RenderProgress renders a progress bar like [████░░░░] 45%.
// The bar is colored based on percentage: green >66%, yellow 33-66%, red <33%.
func RenderProgress(pct float64, width int) string {
	pct, width = clampBar(pct, width)

	style := StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %3.0f%%", style.Render(barBlocks(pct, width)), pct*100)
}

// RenderCompactBar renders a bare bar with no brackets or percentage, in the
// accent color or dimmed.
func RenderCompactBar(pct float64, width int, dim bool) string {
	pct, width = clampBar(pct, width)
	if dim {
		return StyleDim.Render(barBlocks(pct, width))
	}
	return StyleBlue.Render(barBlocks(pct, width))
}
