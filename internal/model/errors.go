package model

import "errors"

// Common errors used across the application
var (
	// Profile errors
	ErrProfileNotFound = errors.New("profile not found")
	ErrNameRequired    = errors.New("profile name is required")
	ErrInvalidColor    = errors.New("color must be a #RRGGBB hex value")
	ErrProfileInUse    = errors.New("profile is part of a live session")

	// Session errors
	ErrSessionNotFound     = errors.New("session not found")
	ErrInsufficientPlayers = errors.New("a session needs at least 2 players")
	ErrPlayerNotInSession  = errors.New("player is not part of this session")
	ErrPlayerInSession     = errors.New("player is already part of this session")
	ErrLineNotFound        = errors.New("score line not found")
	ErrNotAPermutation     = errors.New("new order must be a permutation of the current players")
	ErrInvalidGoal         = errors.New("goal must be highest or lowest")
	ErrTitleRequired       = errors.New("a game title is required")

	// History errors
	ErrSnapshotNotFound = errors.New("game not found in history")
)
