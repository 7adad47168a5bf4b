package model

import (
	"regexp"
	"time"
)

// PlayerID uniquely identifies a player profile across the system
type PlayerID string

// Player is a registered profile: a display name plus a color tag.
// Sessions and snapshots store copies of players, not references, so
// editing or deleting a profile never rewrites recorded games.
type Player struct {
	ID        PlayerID
	Name      string
	Color     string // hex, #RRGGBB
	CreatedAt time.Time
}

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidColor reports whether s is a #RRGGBB hex color
func ValidColor(s string) bool {
	return colorPattern.MatchString(s)
}
