package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type CellState int8

const (
	Unknown       CellState = -2
	ExplodedMine  CellState = 65
	UnflaggedMine CellState = 67
	/*
	 * Each item in a `Grid' is one of the following values:
	 *
	 * 	- 0 to 8 mean the square is open and has a surrounding mine
	 * 	  count.
	 *
	 * 	- -2 means the square is still covered.
	 *
	 * 	- 65 means the square is a revealed mine the player selected.
	 *
	 * 	- 67 means the square is a mine revealed at the end of the game.
	 */
)

func (s CellState) String() string {
	switch {
	case s == Unknown:
		return "-"
	case s == ExplodedMine:
		return "X"
	case s == UnflaggedMine:
		return "*"
	case 0 <= s && s <= 8:
		return strconv.Itoa(int(s))
	default:
		return "!"
	}
}

// Grid is the player's view of a board in row-major order.
type Grid []CellState

func (g Grid) ToString(width int) string {
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			i := y*width + x
			if i >= len(g) {
				break
			}
			fmt.Fprint(&b, g[i].String()+" ")
		}
		fmt.Fprint(&b, "\n")

	}
	return b.String()
}

func (b *Board) PlayerGrid() Grid {
	grid := make(Grid, b.Width*b.Height)
	for y := range b.Height {
		for x := range b.Width {
			c := b.cells[x][y]
			i := y*b.Width + x
			switch {
			case c.Covered():
				grid[i] = Unknown
			case c.Mined() && c.WasSelected():
				grid[i] = ExplodedMine
			case c.Mined():
				grid[i] = UnflaggedMine
			default:
				grid[i] = CellState(b.neighborMineCount(x, y))
			}
		}
	}
	return grid
}
