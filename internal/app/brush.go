package app

import "sand-ca/internal/core"

// strokeLine stamps the brush at every grid point between the previous and
// current cursor positions so fast drags leave no gaps.
func strokeLine(p core.Painter, x0, y0, x1, y1, radius int, kind uint8) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		p.Paint(x0, y0, radius, kind)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
