package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/connectgame-go/internal/model"
	"github.com/mcoot/connectgame-go/internal/services/game"
)

type ConsoleSuite struct {
	suite.Suite
	out    *bytes.Buffer
	prompt game.Prompt
}

func TestConsoleSuite(t *testing.T) {
	suite.Run(t, new(ConsoleSuite))
}

func (s *ConsoleSuite) SetupTest() {
	s.out = &bytes.Buffer{}
	s.prompt = game.Prompt{
		Player:    model.Player{Name: "Alice", Marker: model.NewMarker("RED")},
		MinColumn: 1,
		MaxColumn: 7,
	}
}

func (s *ConsoleSuite) console(input string) *ConsoleInput {
	return NewConsoleInput(strings.NewReader(input), NewOutput(OutputText, s.out))
}

func (s *ConsoleSuite) TestParseMove() {
	move, err := ParseMove("4")
	s.Require().NoError(err)
	s.Equal(model.DropMove(4), move)

	move, err = ParseMove(" U ")
	s.Require().NoError(err)
	s.Equal(model.UndoMove(), move)

	move, err = ParseMove("undo")
	s.Require().NoError(err)
	s.Equal(model.UndoMove(), move)

	_, err = ParseMove("Quit")
	s.ErrorIs(err, model.ErrGameAbandoned)

	// range checks belong to the grid
	move, err = ParseMove("-3")
	s.Require().NoError(err)
	s.Equal(model.DropMove(-3), move)

	_, err = ParseMove("four")
	s.Error(err)
}

func (s *ConsoleSuite) TestNextMovePromptsAndParses() {
	move, err := s.console("3\n").NextMove(context.Background(), s.prompt)
	s.Require().NoError(err)
	s.Equal(model.DropMove(3), move)
	s.Equal("Alice [RED] - choose column (1-7): ", s.out.String())
}

func (s *ConsoleSuite) TestNextMoveRetriesInvalidInput() {
	move, err := s.console("abc\n\nu\n").NextMove(context.Background(), s.prompt)
	s.Require().NoError(err)
	s.Equal(model.UndoMove(), move)

	out := s.out.String()
	s.Contains(out, "Invalid column: [abc], please select a valid column.\n")
	s.Contains(out, "Invalid column: [], please select a valid column.\n")
	s.Equal(3, strings.Count(out, "choose column"))
}

func (s *ConsoleSuite) TestNextMoveSkipsOverlongLine() {
	input := strings.Repeat("9", 70000) + "\n3\n"

	move, err := s.console(input).NextMove(context.Background(), s.prompt)
	s.Require().NoError(err)
	s.Equal(model.DropMove(3), move)

	out := s.out.String()
	s.Contains(out, "Input longer than 1024 characters, please select a valid column.\n")
	s.Equal(2, strings.Count(out, "choose column"))
	s.NotContains(out, "999")
}

func (s *ConsoleSuite) TestNextMoveLastLineWithoutNewline() {
	move, err := s.console("u").NextMove(context.Background(), s.prompt)
	s.Require().NoError(err)
	s.Equal(model.UndoMove(), move)
}

func (s *ConsoleSuite) TestNextMoveQuit() {
	_, err := s.console("q\n").NextMove(context.Background(), s.prompt)
	s.ErrorIs(err, model.ErrGameAbandoned)
}

func (s *ConsoleSuite) TestNextMoveEOF() {
	_, err := s.console("").NextMove(context.Background(), s.prompt)
	s.ErrorIs(err, io.EOF)
}

func (s *ConsoleSuite) TestNextMoveCancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.console("1\n").NextMove(ctx, s.prompt)
	s.ErrorIs(err, context.Canceled)
	s.Empty(s.out.String())
}

type OutputSuite struct {
	suite.Suite
	buf *bytes.Buffer
}

func TestOutputSuite(t *testing.T) {
	suite.Run(t, new(OutputSuite))
}

func (s *OutputSuite) SetupTest() {
	s.buf = &bytes.Buffer{}
}

func (s *OutputSuite) TestTextGrid() {
	out := NewOutput(OutputText, s.buf)
	out.ShowGrid([]string{"| | |", "|R| |"})
	out.ShowStatus("Nothing to undo.")

	s.Equal("| | |\n|R| |\n\nNothing to undo.\n", s.buf.String())
}

func (s *OutputSuite) TestJSONLines() {
	out := NewOutput(OutputJSON, s.buf)
	out.ShowGrid([]string{"|R|"})
	out.ShowStatus("It is a draw game!")

	lines := strings.Split(strings.TrimSpace(s.buf.String()), "\n")
	s.Require().Len(lines, 2)

	var grid gridEvent
	s.Require().NoError(json.Unmarshal([]byte(lines[0]), &grid))
	s.Equal("grid", grid.Type)
	s.Equal([]string{"|R|"}, grid.Rows)

	var status messageEvent
	s.Require().NoError(json.Unmarshal([]byte(lines[1]), &status))
	s.Equal("status", status.Type)
	s.Equal("It is a draw game!", status.Message)
}

func (s *OutputSuite) TestStandingsIncludePlayersWithoutWins() {
	players := []model.Player{
		{Name: "Alice", Marker: model.NewMarker("RED")},
		{Name: "Bob", Marker: model.NewMarker("GREEN")},
	}
	standings := game.Standings{Games: 3, Draws: 1, Wins: map[string]int{"Alice": 2}}

	NewOutput(OutputText, s.buf).PrintStandings(standings, players)

	s.Equal("Games played: 3\n  Alice [RED]: 2 wins\n  Bob [GREEN]: 0 wins\nDraws: 1\n", s.buf.String())
}

func (s *OutputSuite) TestJSONStandings() {
	players := []model.Player{{Name: "Alice"}, {Name: "Bob"}}
	standings := game.Standings{Games: 1, Wins: map[string]int{"Bob": 1}}

	NewOutput(OutputJSON, s.buf).PrintStandings(standings, players)

	var event standingsEvent
	s.Require().NoError(json.Unmarshal(s.buf.Bytes(), &event))
	s.Equal("standings", event.Type)
	s.Equal(map[string]int{"Alice": 0, "Bob": 1}, event.Wins)
}
