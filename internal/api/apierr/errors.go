package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mlaroche/scoretally/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeProfileNotFound     = "PROFILE_NOT_FOUND"
	CodeProfileInUse        = "PROFILE_IN_USE"
	CodeSessionNotFound     = "SESSION_NOT_FOUND"
	CodeGameNotFound        = "GAME_NOT_FOUND"
	CodeLineNotFound        = "LINE_NOT_FOUND"
	CodePlayerNotInSession  = "PLAYER_NOT_IN_SESSION"
	CodePlayerInSession     = "PLAYER_IN_SESSION"
	CodeInsufficientPlayers = "INSUFFICIENT_PLAYERS"
	CodeNotAPermutation     = "NOT_A_PERMUTATION"
	CodeNameRequired        = "NAME_REQUIRED"
	CodeTitleRequired       = "TITLE_REQUIRED"
	CodeInvalidColor        = "INVALID_COLOR"
	CodeInvalidGoal         = "INVALID_GOAL"
	CodeInternalError       = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrProfileNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeProfileNotFound, "Profile not found"}}
	case errors.Is(err, model.ErrProfileInUse):
		return &httpError{http.StatusConflict, APIError{CodeProfileInUse, "Profile is part of a running session"}}
	case errors.Is(err, model.ErrSessionNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeSessionNotFound, "Session not found"}}
	case errors.Is(err, model.ErrSnapshotNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Recorded game not found"}}
	case errors.Is(err, model.ErrLineNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeLineNotFound, "Score line not found"}}
	case errors.Is(err, model.ErrPlayerNotInSession):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotInSession, "Player is not part of this session"}}
	case errors.Is(err, model.ErrPlayerInSession):
		return &httpError{http.StatusConflict, APIError{CodePlayerInSession, "Player is already part of this session"}}
	case errors.Is(err, model.ErrInsufficientPlayers):
		return &httpError{http.StatusConflict, APIError{CodeInsufficientPlayers, "A session needs at least two players"}}
	case errors.Is(err, model.ErrNotAPermutation):
		return &httpError{http.StatusBadRequest, APIError{CodeNotAPermutation, "New order must list every player exactly once"}}
	case errors.Is(err, model.ErrNameRequired):
		return &httpError{http.StatusBadRequest, APIError{CodeNameRequired, "Name must not be empty"}}
	case errors.Is(err, model.ErrTitleRequired):
		return &httpError{http.StatusBadRequest, APIError{CodeTitleRequired, "Title must not be empty"}}
	case errors.Is(err, model.ErrInvalidColor):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidColor, "Color must be a #rrggbb hex value"}}
	case errors.Is(err, model.ErrInvalidGoal):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidGoal, "Goal must be highest or lowest"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
