package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/social-spark/internal/action"
	"github.com/phrazzld/social-spark/internal/api/shared"
	"github.com/phrazzld/social-spark/internal/post"
	"github.com/phrazzld/social-spark/internal/store"
)

var (
	// ErrInvalidPathParam is returned when a path parameter is missing or malformed.
	ErrInvalidPathParam = errors.New("invalid path parameter")

	// ErrInvalidQueryParam is returned when a query parameter is malformed.
	ErrInvalidQueryParam = errors.New("invalid query parameter")
)

// StatusForKind maps an action error kind to the HTTP status reported for it.
func StatusForKind(kind action.ErrorKind) int {
	switch kind {
	case action.KindNone:
		return http.StatusOK
	case action.KindConfiguration:
		return http.StatusServiceUnavailable
	case action.KindValidation:
		return http.StatusBadRequest
	case action.KindProvider, action.KindSchema:
		return http.StatusBadGateway
	case action.KindTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// exposing internal error types to clients.
func MapErrorToStatusCode(err error) int {
	var actionErr *post.ActionError
	switch {
	case errors.As(err, &actionErr):
		return StatusForKind(actionErr.Kind)

	case errors.Is(err, post.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, post.ErrBusy),
		errors.Is(err, post.ErrInvalidTransition),
		errors.Is(err, post.ErrNothingToRefine),
		errors.Is(err, post.ErrTextRegenerationUnavailable):
		return http.StatusConflict

	case errors.Is(err, post.ErrInvalidMode),
		errors.Is(err, post.ErrMissingSession),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, shared.ErrEmptyBody),
		errors.Is(err, ErrInvalidPathParam),
		errors.Is(err, ErrInvalidQueryParam):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a user-facing message for err.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var actionErr *post.ActionError
	switch {
	case errors.As(err, &actionErr):
		// Action messages are already redacted at the action boundary.
		return actionErr.Message
	case errors.Is(err, post.ErrNotFound):
		return "Post not found"
	case errors.Is(err, post.ErrBusy):
		return "An operation is already in progress for this post"
	case errors.Is(err, post.ErrInvalidTransition):
		return "Generate an image before regenerating or refining it"
	case errors.Is(err, post.ErrNothingToRefine):
		return "There is no image to refine"
	case errors.Is(err, post.ErrTextRegenerationUnavailable):
		return "This post cannot regenerate its text"
	case errors.Is(err, post.ErrInvalidMode):
		return "Invalid image mode"
	case errors.Is(err, post.ErrMissingSession):
		return "Session ID is required"
	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"
	case errors.Is(err, shared.ErrEmptyBody):
		return "Request body is required"
	case errors.Is(err, ErrInvalidPathParam):
		return "Invalid path parameter"
	case errors.Is(err, ErrInvalidQueryParam):
		return "Invalid query parameter"
	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes err as a JSON error response. message overrides the
// safe default message when non-empty.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, message string) {
	status := MapErrorToStatusCode(err)
	if message == "" {
		message = GetSafeErrorMessage(err)
	}

	var opts []shared.ResponseOption
	if status == http.StatusConflict {
		opts = append(opts, shared.WithElevatedLogLevel())
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err, opts...)
}
