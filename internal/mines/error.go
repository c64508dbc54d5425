package mines

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidParams = errors.New("invalid game params")
	ErrOutOfBounds   = errors.New("cell out of bounds")
)

type InvalidParamsError struct {
	Width, Height, MineCount int
}

// [InvalidParamsError] implements [error]
func (e InvalidParamsError) Error() string {
	switch {
	case e.Width <= 0:
		return fmt.Sprintf("cannot create a board with width %d", e.Width)
	case e.Height <= 0:
		return fmt.Sprintf("cannot create a board with height %d", e.Height)
	case e.MineCount < 0:
		return fmt.Sprintf("cannot create a board with %d mines", e.MineCount)
	default:
		return "cannot create a board"
	}
}

func (e InvalidParamsError) Is(target error) bool {
	return target == ErrInvalidParams
}

type OutOfBoundsError struct {
	X, Y          int
	Width, Height int
}

// [OutOfBoundsError] implements [error]
func (e OutOfBoundsError) Error() string {
	return fmt.Sprintf(
		"cell (%d, %d) is outside of %dx%d board", e.X, e.Y, e.Width, e.Height,
	)
}

func (e OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}
