package mines

import (
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type Status int

const (
	Ongoing Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

type Outcome struct {
	Status Status
	Steps  int
}

// Session is one playthrough of a fixed board size. It is not safe for
// concurrent use.
type Session struct {
	id     uuid.UUID
	params GameParams
	rnd    *rand.Rand
	board  *Board
	steps  int
	status Status
}

func NewSession(params GameParams, r *rand.Rand) (*Session, error) {
	board, err := NewBoard(params, r)
	if err != nil {
		return nil, err
	}
	s := &Session{id: uuid.New(), params: params, rnd: r, board: board}
	s.logger().Info("new session")
	return s, nil
}

// NewSessionFromBoard starts a session on a prepared board. r is used by
// [Session.Reset].
func NewSessionFromBoard(board *Board, r *rand.Rand) *Session {
	s := &Session{id: uuid.New(), params: board.GameParams, rnd: r, board: board}
	s.logger().Info("new session")
	return s
}

func (s *Session) logger() *logrus.Entry {
	return Log.WithFields(logrus.Fields{
		"session": s.id.String(),
		"params":  s.params.Seed(),
	})
}

func (s *Session) outcome() Outcome {
	return Outcome{Status: s.status, Steps: s.steps}
}

// Select plays the cell at (x, y). Selecting a cell that is already revealed,
// or playing on a finished session, changes nothing and reports the current
// outcome.
func (s *Session) Select(x, y int) (Outcome, error) {
	covered, err := s.board.IsCovered(x, y)
	if err != nil {
		return s.outcome(), err
	}
	if !covered || s.status != Ongoing {
		s.logger().WithFields(logrus.Fields{"x": x, "y": y}).Debug("ignored selection")
		return s.outcome(), nil
	}

	s.steps++
	log := s.logger().WithFields(logrus.Fields{"x": x, "y": y, "steps": s.steps})
	log.Debug("select")

	if err := s.board.Select(x, y); err != nil {
		return s.outcome(), err
	}
	if err := s.board.Reveal(x, y); err != nil {
		return s.outcome(), err
	}

	if mined, _ := s.board.IsMined(x, y); mined {
		s.board.RevealAll()
		s.status = Lost
		log.Info("session lost")
		return s.outcome(), nil
	}

	if blank, _ := s.board.IsBlank(x, y); blank {
		if err := s.board.ClearZone(x, y); err != nil {
			return s.outcome(), err
		}
		log.WithField("revealed", s.board.RevealedCount()).Debug("cleared zone")
	}

	if s.board.IsFinished() {
		s.status = Won
		log.Info("session won")
	}
	return s.outcome(), nil
}

// Forfeit reveals the board and ends an ongoing session as lost.
func (s *Session) Forfeit() Outcome {
	if s.status == Ongoing {
		s.status = Lost
		s.logger().WithField("steps", s.steps).Info("session forfeited")
	}
	s.board.RevealAll()
	return s.outcome()
}

// Reset replaces the board with a freshly mined one of the same params.
func (s *Session) Reset() error {
	board, err := NewBoard(s.params, s.rnd)
	if err != nil {
		return err
	}
	s.board = board
	s.steps = 0
	s.status = Ongoing
	s.logger().Info("session reset")
	return nil
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

func (s *Session) Params() GameParams {
	return s.params
}

// Board exposes the current board for read-only queries. It is replaced on
// every [Session.Reset].
func (s *Session) Board() *Board {
	return s.board
}

func (s *Session) Status() Status {
	return s.status
}

func (s *Session) StepCount() int {
	return s.steps
}

func (s *Session) Width() int {
	return s.params.Width
}

func (s *Session) Height() int {
	return s.params.Height
}

func (s *Session) IsCovered(x, y int) (bool, error) {
	return s.board.IsCovered(x, y)
}

func (s *Session) IsMined(x, y int) (bool, error) {
	return s.board.IsMined(x, y)
}

func (s *Session) NeighborMineCount(x, y int) (int, error) {
	return s.board.NeighborMineCount(x, y)
}

func (s *Session) IsFinished() bool {
	return s.board.IsFinished()
}
