package screen

type point struct{ x, y int }

// FloodFill replaces the 4-connected region of pixels sharing the color at
// (x, y) with the draw color.
func (buf *Buffer) FloodFill(x, y int) {
	legal := buf.Get(x, y)
	color := buf.color
	if legal == color {
		return
	}

	var (
		p     point
		width = buf.width
		stack = []point{{x, y}}
	)

	isLegal := func(p point) bool {
		return buf.pix[p.y*width+p.x] == legal
	}

	push := func(x, y int) {
		if down := (point{x, y + 1}); down.y < buf.height && isLegal(down) {
			stack = append(stack, down)
		}
		if up := (point{x, y - 1}); up.y >= 0 && isLegal(up) {
			stack = append(stack, up)
		}
	}

	for len(stack) > 0 {
		p, stack = stack[len(stack)-1], stack[:len(stack)-1]
		if !isLegal(p) {
			continue
		}

		buf.pix[p.y*width+p.x] = color
		push(p.x, p.y)

		// flood right
		for dx := p.x + 1; dx < width && isLegal(point{dx, p.y}); dx++ {
			buf.pix[p.y*width+dx] = color
			push(dx, p.y)
		}

		// flood left
		for dx := p.x - 1; dx >= 0 && isLegal(point{dx, p.y}); dx-- {
			buf.pix[p.y*width+dx] = color
			push(dx, p.y)
		}
	}
}
