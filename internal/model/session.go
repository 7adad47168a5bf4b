package model

import "time"

// SessionID uniquely identifies a game session (and its snapshot)
type SessionID string

// LineID identifies one score line within a session
type LineID string

// Goal is the ranking direction for a game
type Goal string

const (
	GoalHighest Goal = "highest" // highest total wins
	GoalLowest  Goal = "lowest"  // lowest total wins
)

// ValidGoal reports whether g is a known ranking direction
func ValidGoal(g Goal) bool {
	return g == GoalHighest || g == GoalLowest
}

// ScoreLine is one round of per-player point entries
type ScoreLine struct {
	ID     LineID
	Values map[PlayerID]CellValue
}

// Complete reports whether every given player has a parsed value on this line
func (l *ScoreLine) Complete(players []Player) bool {
	for _, p := range players {
		if !l.Values[p.ID].IsParsed() {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the line
func (l *ScoreLine) Clone() *ScoreLine {
	values := make(map[PlayerID]CellValue, len(l.Values))
	for id, v := range l.Values {
		values[id] = v
	}
	return &ScoreLine{ID: l.ID, Values: values}
}

// Session is a live score ledger for a chosen set of players.
// Lines are the source of truth; Totals are recomputed from them on
// every line mutation and never trusted independently.
type Session struct {
	ID    SessionID
	Title string

	// Players in display order; copies of the profiles at selection time
	Players []Player

	// Registration order, used to break ranking ties. Reordering columns
	// changes Players but never this.
	Registered []PlayerID

	LineOrder []LineID
	Lines     map[LineID]*ScoreLine
	NextLine  int

	Goal  Goal
	Limit *float64 // optional score ceiling; nil means unlimited

	Totals map[PlayerID]float64

	// Players already prompted about the limit; sticky until Reset
	LimitExceptions map[PlayerID]bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasPlayer reports whether id is in the active player set
func (s *Session) HasPlayer(id PlayerID) bool {
	for _, p := range s.Players {
		if p.ID == id {
			return true
		}
	}
	return false
}

// Line returns the line with the given id, or nil
func (s *Session) Line(id LineID) *ScoreLine {
	return s.Lines[id]
}

// OrderedLines returns the session's lines in entry order
func (s *Session) OrderedLines() []*ScoreLine {
	lines := make([]*ScoreLine, 0, len(s.LineOrder))
	for _, id := range s.LineOrder {
		if l, ok := s.Lines[id]; ok {
			lines = append(lines, l)
		}
	}
	return lines
}

// Clone returns a deep copy of the session
func (s *Session) Clone() *Session {
	c := &Session{
		ID:              s.ID,
		Title:           s.Title,
		Players:         append([]Player(nil), s.Players...),
		Registered:      append([]PlayerID(nil), s.Registered...),
		LineOrder:       append([]LineID(nil), s.LineOrder...),
		Lines:           make(map[LineID]*ScoreLine, len(s.Lines)),
		NextLine:        s.NextLine,
		Goal:            s.Goal,
		Totals:          make(map[PlayerID]float64, len(s.Totals)),
		LimitExceptions: make(map[PlayerID]bool, len(s.LimitExceptions)),
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
	if s.Limit != nil {
		limit := *s.Limit
		c.Limit = &limit
	}
	for id, l := range s.Lines {
		c.Lines[id] = l.Clone()
	}
	for id, t := range s.Totals {
		c.Totals[id] = t
	}
	for id, granted := range s.LimitExceptions {
		c.LimitExceptions[id] = granted
	}
	return c
}
