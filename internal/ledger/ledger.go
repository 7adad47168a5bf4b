// Package ledger implements the score-ledger state machine: ordered
// score lines, derived per-player totals, the auto-extend rule for the
// trailing entry row, and limit detection. All operations are pure,
// synchronous mutations of a session passed in by the caller; nothing
// here touches storage.
package ledger

import (
	"fmt"

	"github.com/mlaroche/scoretally/internal/model"
)

// LimitReached signals that a player's running total crossed the
// session's limit. The ledger never acts on it; the caller decides
// whether to end the game or grant a one-time exception.
type LimitReached struct {
	PlayerID model.PlayerID
	Total    float64
}

// Init sets up a session's ledger state: zeroed totals and exactly one
// empty line ready for entry. Players, Goal and Limit must already be
// set on the session.
func Init(s *model.Session) error {
	if len(s.Players) < 2 {
		return model.ErrInsufficientPlayers
	}
	if !model.ValidGoal(s.Goal) {
		return model.ErrInvalidGoal
	}

	s.Registered = make([]model.PlayerID, 0, len(s.Players))
	s.Totals = make(map[model.PlayerID]float64, len(s.Players))
	for _, p := range s.Players {
		s.Registered = append(s.Registered, p.ID)
		s.Totals[p.ID] = 0
	}

	s.Lines = make(map[model.LineID]*model.ScoreLine)
	s.LineOrder = nil
	s.NextLine = 1
	s.LimitExceptions = make(map[model.PlayerID]bool)
	appendLine(s)

	return nil
}

// SetValue records raw input for one player on one line and recomputes
// that player's total from scratch over all lines. If the update makes
// the line complete and no other line is incomplete, a fresh empty line
// is appended so the ledger always has a row ready for the next round.
func SetValue(s *model.Session, lineID model.LineID, playerID model.PlayerID, raw string) error {
	line := s.Line(lineID)
	if line == nil {
		return model.ErrLineNotFound
	}
	if !s.HasPlayer(playerID) {
		return model.ErrPlayerNotInSession
	}

	line.Values[playerID] = model.ParseCell(raw)
	s.Totals[playerID] = totalFor(s, playerID)

	if line.Complete(s.Players) && incompleteCount(s) == 0 {
		appendLine(s)
	}

	return nil
}

// DeleteLine removes a line outright and recomputes every total.
// It never appends a replacement row: the user removed a line, they did
// not signal "done entering". Callers wanting a fresh row use AddLine.
func DeleteLine(s *model.Session, lineID model.LineID) error {
	if s.Line(lineID) == nil {
		return model.ErrLineNotFound
	}

	delete(s.Lines, lineID)
	for i, id := range s.LineOrder {
		if id == lineID {
			s.LineOrder = append(s.LineOrder[:i], s.LineOrder[i+1:]...)
			break
		}
	}

	recomputeTotals(s)
	return nil
}

// AddLine appends a fresh empty line and returns its id
func AddLine(s *model.Session) model.LineID {
	return appendLine(s)
}

// CheckLimit reports whether the player's total has reached the
// session's limit. Returns nil when no limit is set, the limit is not
// reached, or the player already holds a sticky exception.
func CheckLimit(s *model.Session, playerID model.PlayerID) *LimitReached {
	if s.Limit == nil || !s.HasPlayer(playerID) {
		return nil
	}
	if s.LimitExceptions[playerID] {
		return nil
	}
	total := s.Totals[playerID]
	if total < *s.Limit {
		return nil
	}
	return &LimitReached{PlayerID: playerID, Total: total}
}

// GrantException records a sticky "continue past the limit" exception
// for the player. It is cleared only by Reset.
func GrantException(s *model.Session, playerID model.PlayerID) error {
	if !s.HasPlayer(playerID) {
		return model.ErrPlayerNotInSession
	}
	s.LimitExceptions[playerID] = true
	return nil
}

// AddPlayer joins a player to a running session. Every existing line
// gains an empty cell for them, so previously complete lines become
// incomplete until backfilled.
func AddPlayer(s *model.Session, p model.Player) error {
	if s.HasPlayer(p.ID) {
		return model.ErrPlayerInSession
	}

	s.Players = append(s.Players, p)
	s.Registered = append(s.Registered, p.ID)
	s.Totals[p.ID] = 0
	for _, line := range s.Lines {
		line.Values[p.ID] = model.EmptyCell()
	}
	return nil
}

// RemovePlayer drops a player from a running session, re-keying lines
// and totals for the reduced set. The session must keep at least 2
// players.
func RemovePlayer(s *model.Session, playerID model.PlayerID) error {
	if !s.HasPlayer(playerID) {
		return model.ErrPlayerNotInSession
	}
	if len(s.Players) <= 2 {
		return model.ErrInsufficientPlayers
	}

	for i, p := range s.Players {
		if p.ID == playerID {
			s.Players = append(s.Players[:i], s.Players[i+1:]...)
			break
		}
	}
	for i, id := range s.Registered {
		if id == playerID {
			s.Registered = append(s.Registered[:i], s.Registered[i+1:]...)
			break
		}
	}
	delete(s.Totals, playerID)
	delete(s.LimitExceptions, playerID)
	for _, line := range s.Lines {
		delete(line.Values, playerID)
	}
	return nil
}

// Reorder changes the display order of the players' columns. Lines and
// totals are keyed by player id and are untouched; ranking tie-breaks
// keep following the registration order.
func Reorder(s *model.Session, newOrder []model.PlayerID) error {
	if len(newOrder) != len(s.Players) {
		return model.ErrNotAPermutation
	}

	byID := make(map[model.PlayerID]model.Player, len(s.Players))
	for _, p := range s.Players {
		byID[p.ID] = p
	}

	reordered := make([]model.Player, 0, len(newOrder))
	for _, id := range newOrder {
		p, ok := byID[id]
		if !ok {
			return model.ErrNotAPermutation
		}
		delete(byID, id)
		reordered = append(reordered, p)
	}

	s.Players = reordered
	return nil
}

// Reset discards all lines, zeroes every total, clears limit exceptions
// and seeds one fresh empty line. Players are retained and line
// numbering restarts.
func Reset(s *model.Session) {
	for _, p := range s.Players {
		s.Totals[p.ID] = 0
	}
	s.Lines = make(map[model.LineID]*model.ScoreLine)
	s.LineOrder = nil
	s.NextLine = 1
	s.LimitExceptions = make(map[model.PlayerID]bool)
	appendLine(s)
}

func appendLine(s *model.Session) model.LineID {
	id := model.LineID(fmt.Sprintf("line_%d", s.NextLine))
	s.NextLine++

	values := make(map[model.PlayerID]model.CellValue, len(s.Players))
	for _, p := range s.Players {
		values[p.ID] = model.EmptyCell()
	}

	s.Lines[id] = &model.ScoreLine{ID: id, Values: values}
	s.LineOrder = append(s.LineOrder, id)
	return id
}

// totalFor recomputes one player's total from scratch: the sum of their
// parsed values across all lines, empty and raw cells contributing zero
func totalFor(s *model.Session, playerID model.PlayerID) float64 {
	var total float64
	for _, line := range s.Lines {
		if v := line.Values[playerID]; v.IsParsed() {
			total += v.Number
		}
	}
	return total
}

func recomputeTotals(s *model.Session) {
	for _, p := range s.Players {
		s.Totals[p.ID] = totalFor(s, p.ID)
	}
}

func incompleteCount(s *model.Session) int {
	count := 0
	for _, line := range s.Lines {
		if !line.Complete(s.Players) {
			count++
		}
	}
	return count
}
