package redis

import (
	"fmt"

	"github.com/mlaroche/scoretally/internal/model"
)

// Key prefix for all scoretally data
const keyPrefix = "scoretally"

// profileKey returns the Redis key for a Player profile
func profileKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:profile:%s", keyPrefix, id)
}

// profileIndexKey returns the Redis key for the SET of profile ids
func profileIndexKey() string {
	return fmt.Sprintf("%s:idx:profiles", keyPrefix)
}

// sessionKey returns the Redis key for a live Session
func sessionKey(id model.SessionID) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, id)
}

// sessionIndexKey returns the Redis key for the SET of live session ids
func sessionIndexKey() string {
	return fmt.Sprintf("%s:idx:sessions", keyPrefix)
}

// snapshotKey returns the Redis key for a game history Snapshot
func snapshotKey(id model.SessionID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// snapshotIndexKey returns the Redis key for the SET of snapshot ids
func snapshotIndexKey() string {
	return fmt.Sprintf("%s:idx:games", keyPrefix)
}
