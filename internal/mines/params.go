package mines

import (
	"fmt"
	"strings"

	"github.com/gorilla/schema"
)

type GameParams struct {
	Width     int `schema:"width,required" yaml:"width"`
	Height    int `schema:"height,required" yaml:"height"`
	MineCount int `schema:"mine_count,required" yaml:"mine_count"`
}

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

// DecodeParams reads params from form-style values, e.g. the parsed form of
// "width=9&height=9&mine_count=10".
func DecodeParams(src map[string][]string) (*GameParams, error) {
	var p GameParams
	if err := decoder.Decode(&p, src); err != nil {
		return nil, fmt.Errorf("unable to decode game params: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p GameParams) Unpack() (w int, h int, mc int) {
	return p.Width, p.Height, p.MineCount
}

func (p GameParams) Validate() error {
	if p.Width <= 0 || p.Height <= 0 || p.MineCount < 0 {
		return &InvalidParamsError{p.Width, p.Height, p.MineCount}
	}
	return nil
}

func (p GameParams) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Width, p.Height, p.MineCount)
}

func ParseSeed(seed string) (*GameParams, error) {
	p := &GameParams{}
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d %d", &p.Width, &p.Height, &p.MineCount)
	if n != 3 || err != nil {
		return nil, fmt.Errorf(
			`invalid game params seed (sseed = "%s", n = %d, err = %w)`,
			sseed, n, err,
		)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p GameParams) PointInBounds(x, y int) bool {
	return 0 <= x && x < p.Width && 0 <= y && y < p.Height
}

func (p GameParams) checkBounds(x, y int) error {
	if !p.PointInBounds(x, y) {
		return &OutOfBoundsError{x, y, p.Width, p.Height}
	}
	return nil
}
