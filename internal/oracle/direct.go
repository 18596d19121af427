// Package oracle provides straightforward Game of Life steppers for a
// bounded w×h grid. They scan every cell and share no code with the
// active-set implementation, which makes them useful for cross-checking it.
//
// Grids are row-major []uint8 of 0/1 values; everything outside the grid is
// dead.
package oracle

// Direct writes the generation after src into dst by counting the eight
// neighbors of every cell.
func Direct(dst, src []uint8, w, h int) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := x+dx, y+dy
					if nx < 0 || nx >= w || ny < 0 || ny >= h {
						continue
					}
					neighbors += int(src[ny*w+nx])
				}
			}
			idx := y*w + x
			alive := src[idx] == 1
			dst[idx] = 0
			if neighbors == 3 || (alive && neighbors == 2) {
				dst[idx] = 1
			}
		}
	}
}
