package tetris

// Position is a cell coordinate on the board. Y grows upward, row 0 is the floor.
type Position struct {
	X, Y int
}

// Add returns the position offset by (dx, dy)
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Cells holds the four cells of a piece. The index of each cell is significant:
// rotation deltas are defined per index.
type Cells [4]Position

// Shift returns the cells moved uniformly by (dx, dy)
func (c Cells) Shift(dx, dy int) Cells {
	for i := range c {
		c[i] = c[i].Add(dx, dy)
	}
	return c
}

// MinX returns the smallest column occupied by the cells
func (c Cells) MinX() int {
	m := c[0].X
	for _, p := range c[1:] {
		m = min(m, p.X)
	}
	return m
}

// MaxX returns the largest column occupied by the cells
func (c Cells) MaxX() int {
	m := c[0].X
	for _, p := range c[1:] {
		m = max(m, p.X)
	}
	return m
}

// MinY returns the lowest row occupied by the cells
func (c Cells) MinY() int {
	m := c[0].Y
	for _, p := range c[1:] {
		m = min(m, p.Y)
	}
	return m
}

// MaxY returns the highest row occupied by the cells
func (c Cells) MaxY() int {
	m := c[0].Y
	for _, p := range c[1:] {
		m = max(m, p.Y)
	}
	return m
}

// Contains reports whether p is one of the cells
func (c Cells) Contains(p Position) bool {
	for _, q := range c {
		if q == p {
			return true
		}
	}
	return false
}

// Distinct reports whether all four cells differ
func (c Cells) Distinct() bool {
	for i := range c {
		for j := i + 1; j < len(c); j++ {
			if c[i] == c[j] {
				return false
			}
		}
	}
	return true
}

// InColumns reports whether every cell lies within the board's columns
func (c Cells) InColumns() bool {
	return c.MinX() >= 0 && c.MaxX() < BoardWidth
}

// InRows reports whether every cell lies within the board's rows, hidden rows included
func (c Cells) InRows() bool {
	return c.MinY() >= 0 && c.MaxY() < BoardHeight
}

// Set returns the cells as a set, ignoring their order
func (c Cells) Set() map[Position]struct{} {
	set := make(map[Position]struct{}, len(c))
	for _, p := range c {
		set[p] = struct{}{}
	}
	return set
}
