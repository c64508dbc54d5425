package mines

import (
	"fmt"
	"math/rand/v2"

	"github.com/vancomm/minesweeper/internal/stack"
)

type Point struct {
	X, Y int
}

// Board owns the cell grid, indexed cells[x][y]. All cell mutation goes
// through Board so that revealed counts stay in sync with the grid.
type Board struct {
	GameParams
	cells    [][]Cell
	revealed int
}

func newEmptyBoard(params GameParams) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	cells := make([][]Cell, params.Width)
	for x := range cells {
		cells[x] = make([]Cell, params.Height)
		for y := range cells[x] {
			cells[x][y] = newCell(x, y)
		}
	}
	return &Board{GameParams: params, cells: cells}, nil
}

// NewBoard allocates a covered board and scatters MineCount mines by
// independent draws. Draws may hit the same cell more than once, so the board
// can end up with fewer distinct mines than requested.
func NewBoard(params GameParams, r *rand.Rand) (*Board, error) {
	b, err := newEmptyBoard(params)
	if err != nil {
		return nil, err
	}
	for range params.MineCount {
		b.cells[r.IntN(params.Width)][r.IntN(params.Height)].MarkMined()
	}
	return b, nil
}

// NewBoardFromLayout builds a board from a text picture, one string per row
// from top to bottom: '*' is a mine, '.' is a safe cell.
func NewBoardFromLayout(rows []string) (*Board, error) {
	if len(rows) == 0 {
		return nil, &InvalidParamsError{}
	}
	params := GameParams{Width: len(rows[0]), Height: len(rows)}
	b, err := newEmptyBoard(params)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != params.Width {
			return nil, fmt.Errorf(
				"%w: row %d has width %d, expected %d",
				ErrInvalidParams, y, len(row), params.Width,
			)
		}
		for x, ch := range row {
			switch ch {
			case '*':
				b.cells[x][y].MarkMined()
				b.MineCount++
			case '.':
			default:
				return nil, fmt.Errorf(
					"%w: unexpected %q at (%d, %d)", ErrInvalidParams, ch, x, y,
				)
			}
		}
	}
	return b, nil
}

func (b *Board) cell(x, y int) (*Cell, error) {
	if err := b.checkBounds(x, y); err != nil {
		return nil, err
	}
	return &b.cells[x][y], nil
}

// Cell returns a copy of the cell at (x, y).
func (b *Board) Cell(x, y int) (Cell, error) {
	c, err := b.cell(x, y)
	if err != nil {
		return Cell{}, err
	}
	return *c, nil
}

func (b *Board) IsMined(x, y int) (bool, error) {
	c, err := b.cell(x, y)
	if err != nil {
		return false, err
	}
	return c.Mined(), nil
}

func (b *Board) IsCovered(x, y int) (bool, error) {
	c, err := b.cell(x, y)
	if err != nil {
		return false, err
	}
	return c.Covered(), nil
}

func (b *Board) HasBeenSelected(x, y int) (bool, error) {
	c, err := b.cell(x, y)
	if err != nil {
		return false, err
	}
	return c.WasSelected(), nil
}

// IsBlank reports whether (x, y) has no mined neighbors. A mined cell can be
// blank too.
func (b *Board) IsBlank(x, y int) (bool, error) {
	n, err := b.NeighborMineCount(x, y)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

func (b *Board) NeighborMineCount(x, y int) (int, error) {
	if err := b.checkBounds(x, y); err != nil {
		return 0, err
	}
	return b.neighborMineCount(x, y), nil
}

// neighborRange clips the 3x3 window around (x, y) to the board.
func (b *Board) neighborRange(x, y int) (fromX, toX, fromY, toY int) {
	fromX, toX = max(0, x-1), min(x+1, b.Width-1)
	fromY, toY = max(0, y-1), min(y+1, b.Height-1)
	return
}

func (b *Board) neighborMineCount(x, y int) (n int) {
	fromX, toX, fromY, toY := b.neighborRange(x, y)
	for xx := fromX; xx <= toX; xx++ {
		for yy := fromY; yy <= toY; yy++ {
			if (xx != x || yy != y) && b.cells[xx][yy].Mined() {
				n++
			}
		}
	}
	return n
}

func (b *Board) Reveal(x, y int) error {
	c, err := b.cell(x, y)
	if err != nil {
		return err
	}
	c.Reveal()
	b.revealed = b.countRevealed()
	return nil
}

func (b *Board) Select(x, y int) error {
	c, err := b.cell(x, y)
	if err != nil {
		return err
	}
	c.Select()
	return nil
}

func (b *Board) RevealAll() {
	for x := range b.cells {
		for y := range b.cells[x] {
			b.cells[x][y].Reveal()
		}
	}
	b.revealed = b.countRevealed()
}

func (b *Board) countRevealed() (n int) {
	for x := range b.cells {
		for y := range b.cells[x] {
			if b.cells[x][y].Revealed() {
				n++
			}
		}
	}
	return n
}

func (b *Board) RevealedCount() int {
	return b.revealed
}

// MinedCount is the number of cells actually mined, which may be lower than
// MineCount.
func (b *Board) MinedCount() (n int) {
	for x := range b.cells {
		for y := range b.cells[x] {
			if b.cells[x][y].Mined() {
				n++
			}
		}
	}
	return n
}

func (b *Board) IsFinished() bool {
	total := b.Width * b.Height
	return b.revealed == total-b.MinedCount() || b.revealed == total
}

// ClearZone uncovers the region around a blank cell: every covered neighbor
// of a blank cell is revealed, and newly revealed blank cells are expanded in
// turn. Every cell is pushed at most once since only covered cells are pushed.
// The revealed count is rescanned once the flood is done.
func (b *Board) ClearZone(x, y int) error {
	if err := b.checkBounds(x, y); err != nil {
		return err
	}

	todo := stack.New[Point](b.Width * b.Height)
	todo.Push(Point{x, y})

	for !todo.IsEmpty() {
		p, _ := todo.Pop()
		fromX, toX, fromY, toY := b.neighborRange(p.X, p.Y)
		for xx := fromX; xx <= toX; xx++ {
			for yy := fromY; yy <= toY; yy++ {
				c := &b.cells[xx][yy]
				if !c.Covered() {
					continue
				}
				c.Reveal()
				if b.neighborMineCount(xx, yy) == 0 {
					todo.Push(Point{xx, yy})
				}
			}
		}
	}
	b.revealed = b.countRevealed()
	return nil
}
