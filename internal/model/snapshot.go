package model

import "time"

// Rank is one entry of a final ranking. Tied totals share a position.
type Rank struct {
	Position int
	Player   Player
	Total    float64
}

// Ranking is a final ordering of players, best first
type Ranking []Rank

// Snapshot is the fully denormalized persisted form of a session.
// Players are copied by value and Totals are stored for display on
// load, but the lines remain the source of truth.
type Snapshot struct {
	ID        SessionID
	Title     string
	Players   []Player
	LineOrder []LineID
	Lines     map[LineID]*ScoreLine
	NextLine  int
	Goal      Goal
	Limit     *float64
	Totals    map[PlayerID]float64

	// Finished marks a game ended via the results flow; an unfinished
	// snapshot is an in-progress save that can be resumed
	Finished bool
	Ranking  Ranking

	CreatedAt time.Time
	SavedAt   time.Time
}

// Snapshot produces a persistable deep copy of the session
func (s *Session) Snapshot(now time.Time) *Snapshot {
	c := s.Clone()
	return &Snapshot{
		ID:        c.ID,
		Title:     c.Title,
		Players:   c.Players,
		LineOrder: c.LineOrder,
		Lines:     c.Lines,
		NextLine:  c.NextLine,
		Goal:      c.Goal,
		Limit:     c.Limit,
		Totals:    c.Totals,
		CreatedAt: c.CreatedAt,
		SavedAt:   now,
	}
}

// Session rebuilds a live session from a persisted snapshot, recomputing
// nothing: line data is carried as stored, and the caller is expected to
// recompute totals before trusting them
func (sn *Snapshot) Session() *Session {
	s := &Session{
		ID:              sn.ID,
		Title:           sn.Title,
		Players:         append([]Player(nil), sn.Players...),
		LineOrder:       append([]LineID(nil), sn.LineOrder...),
		Lines:           make(map[LineID]*ScoreLine, len(sn.Lines)),
		NextLine:        sn.NextLine,
		Goal:            sn.Goal,
		Totals:          make(map[PlayerID]float64, len(sn.Totals)),
		LimitExceptions: make(map[PlayerID]bool),
		CreatedAt:       sn.CreatedAt,
		UpdatedAt:       sn.SavedAt,
	}
	if sn.Limit != nil {
		limit := *sn.Limit
		s.Limit = &limit
	}
	for _, p := range sn.Players {
		s.Registered = append(s.Registered, p.ID)
	}
	for id, l := range sn.Lines {
		s.Lines[id] = l.Clone()
	}
	for id, t := range sn.Totals {
		s.Totals[id] = t
	}
	return s
}
