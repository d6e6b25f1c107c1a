package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mcoot/connectgame-go/internal/model"
	"github.com/mcoot/connectgame-go/internal/services/game"
)

// Output handles formatting output based on the configured format.
// It satisfies game.Display.
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

type gridEvent struct {
	Type string   `json:"type"`
	Rows []string `json:"rows"`
}

type messageEvent struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type standingsEvent struct {
	Type  string         `json:"type"`
	Games int            `json:"games"`
	Draws int            `json:"draws"`
	Wins  map[string]int `json:"wins"`
}

// ShowGrid prints the grid, top row first
func (o *Output) ShowGrid(rows []string) {
	if o.format == OutputJSON {
		o.printJSON(gridEvent{Type: "grid", Rows: rows})
		return
	}
	for _, row := range rows {
		fmt.Fprintln(o.w, row)
	}
	fmt.Fprintln(o.w)
}

// ShowStatus prints a single status line
func (o *Output) ShowStatus(line string) {
	if o.format == OutputJSON {
		o.printJSON(messageEvent{Type: "status", Message: line})
		return
	}
	fmt.Fprintln(o.w, line)
}

// ShowPrompt asks the current player for input
func (o *Output) ShowPrompt(prompt game.Prompt) {
	if o.format == OutputJSON {
		o.printJSON(messageEvent{Type: "prompt", Message: prompt.String()})
		return
	}
	fmt.Fprint(o.w, prompt.String())
}

// PrintStandings prints the tally across rounds, including players without a win
func (o *Output) PrintStandings(standings game.Standings, players []model.Player) {
	wins := make(map[string]int, len(players))
	for _, p := range players {
		wins[p.Name] = standings.Wins[p.Name]
	}

	if o.format == OutputJSON {
		o.printJSON(standingsEvent{
			Type:  "standings",
			Games: standings.Games,
			Draws: standings.Draws,
			Wins:  wins,
		})
		return
	}

	fmt.Fprintf(o.w, "Games played: %d\n", standings.Games)
	for _, p := range players {
		fmt.Fprintf(o.w, "  %s: %d wins\n", p, wins[p.Name])
	}
	fmt.Fprintf(o.w, "Draws: %d\n", standings.Draws)
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == OutputJSON {
		o.printJSON(messageEvent{Type: "error", Message: err.Error()})
		return
	}
	fmt.Fprintf(o.w, "Error: %s\n", err)
}

func (o *Output) printJSON(data any) {
	// one event per line
	_ = json.NewEncoder(o.w).Encode(data)
}
