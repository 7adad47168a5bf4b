package response

import (
	"time"

	"github.com/mlaroche/scoretally/internal/ledger"
	"github.com/mlaroche/scoretally/internal/model"
)

// Player represents a player in API responses
type Player struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:    string(p.ID),
		Name:  p.Name,
		Color: p.Color,
	}
}

// PlayerList is the profile listing response
type PlayerList struct {
	Players []Player `json:"players"`
	Count   int      `json:"count"`
}

// Cell is one score entry. Text carries what the player typed
// (normalized); Number is set only when the text parses.
type Cell struct {
	Text   string   `json:"text"`
	Number *float64 `json:"number,omitempty"`
}

// CellFromModel converts a model.CellValue
func CellFromModel(c model.CellValue) Cell {
	cell := Cell{Text: c.Text}
	if c.IsParsed() {
		n := c.Number
		cell.Number = &n
	}
	return cell
}

// Line is one score line in entry order
type Line struct {
	ID       string          `json:"id"`
	Values   map[string]Cell `json:"values"`
	Complete bool            `json:"complete"`
}

// LineFromModel converts a model.ScoreLine
func LineFromModel(l *model.ScoreLine, players []model.Player) Line {
	values := make(map[string]Cell, len(l.Values))
	for id, v := range l.Values {
		values[string(id)] = CellFromModel(v)
	}
	return Line{
		ID:       string(l.ID),
		Values:   values,
		Complete: l.Complete(players),
	}
}

// Session represents a live session in API responses
type Session struct {
	ID              string             `json:"id"`
	Title           string             `json:"title,omitempty"`
	Players         []Player           `json:"players"`
	Lines           []Line             `json:"lines"`
	Totals          map[string]float64 `json:"totals"`
	Goal            string             `json:"goal"`
	Limit           *float64           `json:"limit,omitempty"`
	LimitExceptions []string           `json:"limit_exceptions,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// SessionFromModel converts a model.Session
func SessionFromModel(s *model.Session) Session {
	players := make([]Player, len(s.Players))
	for i := range s.Players {
		players[i] = PlayerFromModel(&s.Players[i])
	}

	lines := make([]Line, 0, len(s.LineOrder))
	for _, l := range s.OrderedLines() {
		lines = append(lines, LineFromModel(l, s.Players))
	}

	totals := make(map[string]float64, len(s.Totals))
	for id, t := range s.Totals {
		totals[string(id)] = t
	}

	var exceptions []string
	for _, id := range s.Registered {
		if s.LimitExceptions[id] {
			exceptions = append(exceptions, string(id))
		}
	}

	out := Session{
		ID:              string(s.ID),
		Title:           s.Title,
		Players:         players,
		Lines:           lines,
		Totals:          totals,
		Goal:            string(s.Goal),
		LimitExceptions: exceptions,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
	if s.Limit != nil {
		l := *s.Limit
		out.Limit = &l
	}
	return out
}

// LimitAlert reports that a player's total crossed the session limit
type LimitAlert struct {
	PlayerID string  `json:"player_id"`
	Total    float64 `json:"total"`
}

// SetValueResponse is the response for a value entry
type SetValueResponse struct {
	Session      Session     `json:"session"`
	LimitReached *LimitAlert `json:"limit_reached,omitempty"`
}

// SetValueResponseFromResult builds the response for a value entry
func SetValueResponseFromResult(session *model.Session, reached *ledger.LimitReached) SetValueResponse {
	resp := SetValueResponse{Session: SessionFromModel(session)}
	if reached != nil {
		resp.LimitReached = &LimitAlert{
			PlayerID: string(reached.PlayerID),
			Total:    reached.Total,
		}
	}
	return resp
}

// Rank is one entry of a final ranking
type Rank struct {
	Position int     `json:"position"`
	Player   Player  `json:"player"`
	Total    float64 `json:"total"`
}

// RankingFromModel converts a model.Ranking
func RankingFromModel(r model.Ranking) []Rank {
	out := make([]Rank, len(r))
	for i, rank := range r {
		out[i] = Rank{
			Position: rank.Position,
			Player:   PlayerFromModel(&rank.Player),
			Total:    rank.Total,
		}
	}
	return out
}

// GameRecord is one recorded game, full detail
type GameRecord struct {
	ID        string             `json:"id"`
	Title     string             `json:"title"`
	Players   []Player           `json:"players"`
	Lines     []Line             `json:"lines"`
	Totals    map[string]float64 `json:"totals"`
	Goal      string             `json:"goal"`
	Limit     *float64           `json:"limit,omitempty"`
	Finished  bool               `json:"finished"`
	Ranking   []Rank             `json:"ranking,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	SavedAt   time.Time          `json:"saved_at"`
}

// GameRecordFromModel converts a model.Snapshot
func GameRecordFromModel(sn *model.Snapshot) GameRecord {
	players := make([]Player, len(sn.Players))
	for i := range sn.Players {
		players[i] = PlayerFromModel(&sn.Players[i])
	}

	lines := make([]Line, 0, len(sn.LineOrder))
	for _, id := range sn.LineOrder {
		if l, ok := sn.Lines[id]; ok {
			lines = append(lines, LineFromModel(l, sn.Players))
		}
	}

	totals := make(map[string]float64, len(sn.Totals))
	for id, t := range sn.Totals {
		totals[string(id)] = t
	}

	record := GameRecord{
		ID:        string(sn.ID),
		Title:     sn.Title,
		Players:   players,
		Lines:     lines,
		Totals:    totals,
		Goal:      string(sn.Goal),
		Finished:  sn.Finished,
		CreatedAt: sn.CreatedAt,
		SavedAt:   sn.SavedAt,
	}
	if sn.Limit != nil {
		l := *sn.Limit
		record.Limit = &l
	}
	if len(sn.Ranking) > 0 {
		record.Ranking = RankingFromModel(sn.Ranking)
	}
	return record
}

// GameSummary is one recorded game as listed in the history
type GameSummary struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Players  []string  `json:"players"`
	Finished bool      `json:"finished"`
	SavedAt  time.Time `json:"saved_at"`
}

// GameSummaryFromModel converts a model.Snapshot to its list form
func GameSummaryFromModel(sn *model.Snapshot) GameSummary {
	names := make([]string, len(sn.Players))
	for i, p := range sn.Players {
		names[i] = p.Name
	}
	return GameSummary{
		ID:       string(sn.ID),
		Title:    sn.Title,
		Players:  names,
		Finished: sn.Finished,
		SavedAt:  sn.SavedAt,
	}
}

// EndGameResponse is the response for ending a game
type EndGameResponse struct {
	Ranking []Rank     `json:"ranking"`
	Game    GameRecord `json:"game"`
}
