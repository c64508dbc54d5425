package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/url"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper/internal/mines"
)

type command string

const (
	cmdDraw    command = "g"
	cmdOpen    command = "o"
	cmdReset   command = "n"
	cmdParams  command = "p"
	cmdForfeit command = "r" // =)
	cmdQuit    command = "q"
)

var errQuit = errors.New("quit")

// Console plays a session from line-based text commands:
//
//	o X Y        select cell (X, Y)
//	g            redraw the board
//	n            restart with the same params
//	p QUERY      start over with params, e.g. p width=9&height=9&mine_count=10
//	r            forfeit
//	q            quit
type Console struct {
	log     *logrus.Logger
	session *mines.Session
	rnd     *rand.Rand
	in      io.Reader
	out     io.Writer
}

func New(
	log *logrus.Logger,
	session *mines.Session,
	rnd *rand.Rand,
	in io.Reader,
	out io.Writer,
) *Console {
	return &Console{
		log:     log,
		session: session,
		rnd:     rnd,
		in:      in,
		out:     out,
	}
}

func (c *Console) Session() *mines.Session {
	return c.session
}

func parseXY(args []string) (x int, y int, err error) {
	if len(args) != 2 {
		err = fmt.Errorf("invalid args")
		return
	}
	if x, err = strconv.Atoi(args[0]); err != nil {
		err = fmt.Errorf("first argument must be an int")
		return
	}
	if y, err = strconv.Atoi(args[1]); err != nil {
		err = fmt.Errorf("second argument must be an int")
		return
	}
	return
}

func (c *Console) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(c.out, format, args...); err != nil {
		c.log.WithError(err).Error("unable to write output")
	}
}

func (c *Console) draw() {
	s := c.session
	c.printf("steps: %d, status: %s\n", s.StepCount(), s.Status())
	c.printf("%s", s.Board().PlayerGrid().ToString(s.Width()))
}

func (c *Console) report(before mines.Status, outcome mines.Outcome) {
	if before != mines.Ongoing {
		c.printf("game is over, n to play again\n")
		return
	}
	switch outcome.Status {
	case mines.Won:
		c.printf("you won in %d steps\n", outcome.Steps)
	case mines.Lost:
		c.printf("you lost in %d steps\n", outcome.Steps)
	}
}

func (c *Console) openCell(args []string) error {
	x, y, err := parseXY(args)
	if err != nil {
		return err
	}
	before := c.session.Status()
	outcome, err := c.session.Select(x, y)
	if err != nil {
		return err
	}
	c.draw()
	c.report(before, outcome)
	return nil
}

func (c *Console) reset() error {
	if err := c.session.Reset(); err != nil {
		return err
	}
	c.draw()
	return nil
}

func (c *Console) newGame(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("invalid args")
	}
	query, err := url.ParseQuery(args[0])
	if err != nil {
		return fmt.Errorf("invalid params query: %w", err)
	}
	params, err := mines.DecodeParams(query)
	if err != nil {
		return err
	}
	session, err := mines.NewSession(*params, c.rnd)
	if err != nil {
		return err
	}
	c.session = session
	c.draw()
	return nil
}

func (c *Console) forfeit() error {
	before := c.session.Status()
	outcome := c.session.Forfeit()
	c.draw()
	c.report(before, outcome)
	return nil
}

func (c *Console) execute(line string) error {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil
	}
	c.log.WithField("command", line).Debug("execute")

	cmd, args := command(tokens[0]), tokens[1:]
	switch cmd {
	case cmdDraw:
		c.draw()
		return nil
	case cmdOpen:
		return c.openCell(args)
	case cmdReset:
		return c.reset()
	case cmdParams:
		return c.newGame(args)
	case cmdForfeit:
		return c.forfeit()
	case cmdQuit:
		return errQuit
	default:
		return fmt.Errorf("unknown command %q", tokens[0])
	}
}

// Run draws the board and executes commands until the input ends, a quit
// command is read or ctx is done. Command errors are printed and do not stop
// the loop.
func (c *Console) Run(ctx context.Context) error {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
		close(lines)
	}()

	c.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return <-readErr
			}
			err := c.execute(line)
			if errors.Is(err, errQuit) {
				return nil
			}
			if err != nil {
				c.log.WithError(err).Debug("command failed")
				c.printf("error: %s\n", err)
			}
		}
	}
}
