package mines

// Cell holds the state of one board position. Neighbor mine counts are not
// stored here; the board derives them from the current mine placement.
type Cell struct {
	x, y     int
	mined    bool
	revealed bool
	selected bool
}

func newCell(x, y int) Cell {
	return Cell{x: x, y: y}
}

func (c *Cell) MarkMined() {
	c.mined = true
}

func (c *Cell) Reveal() {
	c.revealed = true
}

func (c *Cell) Select() {
	c.selected = true
}

func (c Cell) X() int { return c.x }
func (c Cell) Y() int { return c.y }

func (c Cell) Mined() bool {
	return c.mined
}

func (c Cell) Revealed() bool {
	return c.revealed
}

func (c Cell) Covered() bool {
	return !c.revealed
}

func (c Cell) WasSelected() bool {
	return c.selected
}
