package request

// CreateProfileRequest is the request body for creating a profile
type CreateProfileRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// UpdateProfileRequest is the request body for editing a profile
type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// CreateSessionRequest is the request body for starting a session
type CreateSessionRequest struct {
	Title   string   `json:"title,omitempty"`
	Players []string `json:"players"`
	Goal    string   `json:"goal"`
	Limit   *float64 `json:"limit,omitempty"`
}

// SetValueRequest is the request body for entering a score value
type SetValueRequest struct {
	Value string `json:"value"`
}

// AddPlayerRequest is the request body for joining a player mid-game
type AddPlayerRequest struct {
	PlayerID string `json:"player_id"`
}

// ReorderRequest is the request body for reordering player columns
type ReorderRequest struct {
	Order []string `json:"order"`
}

// LimitExceptionRequest is the request body for letting a player
// continue past the session limit
type LimitExceptionRequest struct {
	PlayerID string `json:"player_id"`
}

// SaveGameRequest is the request body for saving a game in progress
type SaveGameRequest struct {
	Title string `json:"title"`
}

// EndGameRequest is the request body for ending a game
type EndGameRequest struct {
	Title string `json:"title"`
}
