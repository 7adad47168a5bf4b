package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case PlayerList:
		for _, p := range v.Players {
			o.printPlayer(p)
		}
		fmt.Printf("%d profile(s)\n", v.Count)
	case Session:
		o.printSession(v)
	case []Session:
		for i, s := range v {
			if i > 0 {
				fmt.Println()
			}
			o.printSession(s)
		}
	case SetValueResult:
		o.printSession(v.Session)
		if v.LimitReached != nil {
			fmt.Printf("\nLimit reached: %s at %s\n", v.LimitReached.PlayerID, formatNumber(v.LimitReached.Total))
		}
	case []GameSummary:
		o.printGameList(v)
	case GameRecord:
		o.printGameRecord(v)
	case EndResult:
		o.printRanking(v.Ranking)
	case HealthResult:
		fmt.Printf("Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// PlayerList response type
type PlayerList struct {
	Players []Player `json:"players"`
	Count   int      `json:"count"`
}

// Cell response type
type Cell struct {
	Text   string   `json:"text"`
	Number *float64 `json:"number,omitempty"`
}

// Line response type
type Line struct {
	ID       string          `json:"id"`
	Values   map[string]Cell `json:"values"`
	Complete bool            `json:"complete"`
}

// Session response type
type Session struct {
	ID              string             `json:"id"`
	Title           string             `json:"title,omitempty"`
	Players         []Player           `json:"players"`
	Lines           []Line             `json:"lines"`
	Totals          map[string]float64 `json:"totals"`
	Goal            string             `json:"goal"`
	Limit           *float64           `json:"limit,omitempty"`
	LimitExceptions []string           `json:"limit_exceptions,omitempty"`
}

// LimitAlert response type
type LimitAlert struct {
	PlayerID string  `json:"player_id"`
	Total    float64 `json:"total"`
}

// SetValueResult response type
type SetValueResult struct {
	Session      Session     `json:"session"`
	LimitReached *LimitAlert `json:"limit_reached,omitempty"`
}

// Rank response type
type Rank struct {
	Position int     `json:"position"`
	Player   Player  `json:"player"`
	Total    float64 `json:"total"`
}

// GameSummary response type
type GameSummary struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Players  []string `json:"players"`
	Finished bool     `json:"finished"`
	SavedAt  string   `json:"saved_at"`
}

// GameRecord response type
type GameRecord struct {
	ID       string             `json:"id"`
	Title    string             `json:"title"`
	Players  []Player           `json:"players"`
	Lines    []Line             `json:"lines"`
	Totals   map[string]float64 `json:"totals"`
	Goal     string             `json:"goal"`
	Finished bool               `json:"finished"`
	Ranking  []Rank             `json:"ranking,omitempty"`
}

// EndResult response type
type EndResult struct {
	Ranking []Rank     `json:"ranking"`
	Game    GameRecord `json:"game"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("%s  %s  %s\n", p.ID, p.Name, p.Color)
}

func (o *Output) printSession(s Session) {
	if s.Title != "" {
		fmt.Printf("Session: %s (%s)\n", s.Title, s.ID)
	} else {
		fmt.Printf("Session: %s\n", s.ID)
	}
	fmt.Printf("Goal: %s\n", s.Goal)
	if s.Limit != nil {
		fmt.Printf("Limit: %s\n", formatNumber(*s.Limit))
	}
	o.printScoreTable(s.Players, s.Lines, s.Totals)
}

func (o *Output) printScoreTable(players []Player, lines []Line, totals map[string]float64) {
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Name
	}
	fmt.Printf("\n%-8s %s\n", "", strings.Join(pad(names), " "))

	for i, line := range lines {
		cells := make([]string, len(players))
		for j, p := range players {
			cells[j] = line.Values[p.ID].Text
		}
		fmt.Printf("%-8d %s\n", i+1, strings.Join(pad(cells), " "))
	}

	totalCells := make([]string, len(players))
	for j, p := range players {
		totalCells[j] = formatNumber(totals[p.ID])
	}
	fmt.Printf("%-8s %s\n", "Total", strings.Join(pad(totalCells), " "))
}

func (o *Output) printGameList(games []GameSummary) {
	if len(games) == 0 {
		fmt.Println("No recorded games")
		return
	}
	for _, g := range games {
		state := "in progress"
		if g.Finished {
			state = "finished"
		}
		fmt.Printf("%s  %s  [%s]  %s\n", g.ID, g.Title, state, strings.Join(g.Players, ", "))
	}
}

func (o *Output) printGameRecord(g GameRecord) {
	fmt.Printf("Game: %s (%s)\n", g.Title, g.ID)
	fmt.Printf("Goal: %s\n", g.Goal)
	o.printScoreTable(g.Players, g.Lines, g.Totals)
	if len(g.Ranking) > 0 {
		fmt.Println()
		o.printRanking(g.Ranking)
	}
}

func (o *Output) printRanking(ranking []Rank) {
	fmt.Println("Final standings:")
	for _, r := range ranking {
		fmt.Printf("  %d. %s - %s\n", r.Position, r.Player.Name, formatNumber(r.Total))
	}
}

// pad right-pads every string to a shared column width
func pad(cells []string) []string {
	width := 8
	for _, c := range cells {
		if len(c) > width {
			width = len(c)
		}
	}
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = fmt.Sprintf("%-*s", width, c)
	}
	return out
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
