package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/mcoot/connectgame-go/internal/model"
	"github.com/mcoot/connectgame-go/internal/services/game"
)

// MaxLineLength is the longest input line considered; longer lines are discarded
const MaxLineLength = 1024

var errUnrecognisedInput = errors.New("unrecognised input")

// ConsoleInput reads moves line by line. It satisfies game.MoveProvider.
type ConsoleInput struct {
	reader *bufio.Reader
	out    *Output
}

// NewConsoleInput creates a console move provider reading from in
func NewConsoleInput(in io.Reader, out *Output) *ConsoleInput {
	return &ConsoleInput{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// NextMove prompts until a line parses as a move. Unparseable lines are
// reported and retried; the column range is checked by the engine.
// It returns io.EOF when the input ends.
func (c *ConsoleInput) NextMove(ctx context.Context, prompt game.Prompt) (model.Move, error) {
	for {
		if err := ctx.Err(); err != nil {
			return model.Move{}, err
		}

		c.out.ShowPrompt(prompt)
		line, tooLong, err := c.readLine()
		if err != nil {
			return model.Move{}, err
		}
		if tooLong {
			c.out.ShowStatus(fmt.Sprintf("Input longer than %d characters, please select a valid column.", MaxLineLength))
			continue
		}

		text := strings.TrimSpace(line)
		move, err := ParseMove(text)
		if err == nil || errors.Is(err, model.ErrGameAbandoned) {
			return move, err
		}
		c.out.ShowStatus(fmt.Sprintf("Invalid column: [%s], please select a valid column.", text))
	}
}

// readLine returns the next line without its terminator. A line over
// MaxLineLength is consumed in full and reported as too long.
func (c *ConsoleInput) readLine() (string, bool, error) {
	var line []byte
	tooLong := false
	for {
		chunk, isPrefix, err := c.reader.ReadLine()
		if err != nil {
			return "", false, err
		}
		if !tooLong {
			line = append(line, chunk...)
			if len(line) > MaxLineLength {
				tooLong = true
				line = nil
			}
		}
		if !isPrefix {
			return string(line), tooLong, nil
		}
	}
}

// ParseMove interprets one line of player input
func ParseMove(text string) (model.Move, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "u", "undo":
		return model.UndoMove(), nil
	case "q", "quit":
		return model.Move{}, model.ErrGameAbandoned
	}

	column, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return model.Move{}, errUnrecognisedInput
	}
	return model.DropMove(column), nil
}
