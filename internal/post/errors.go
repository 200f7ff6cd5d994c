package post

import (
	"errors"
	"fmt"

	"github.com/phrazzld/social-spark/internal/action"
)

var (
	// ErrNotFound is returned when a Post does not exist on the session's board.
	ErrNotFound = errors.New("post not found")

	// ErrBusy is returned when an operation of the same kind is already in
	// flight for the Post.
	ErrBusy = errors.New("post has an operation in progress")

	// ErrNothingToRefine is returned when refine is requested for a Post with no image.
	ErrNothingToRefine = errors.New("post has no image to refine")

	// ErrInvalidTransition is returned when an image mode is not allowed from
	// the Post's current image state.
	ErrInvalidTransition = errors.New("operation not allowed in current state")

	// ErrInvalidMode is returned for an unknown image mode.
	ErrInvalidMode = errors.New("invalid image mode")

	// ErrTextRegenerationUnavailable is returned when a Post lacks the
	// platform, tone or language needed to regenerate its text.
	ErrTextRegenerationUnavailable = errors.New("text regeneration needs platform, tone and language")

	// ErrMissingSession is returned when no session ID is supplied.
	ErrMissingSession = errors.New("session id is required")
)

// ActionError is a failed generation action surfaced to the caller.
type ActionError struct {
	Kind    action.ErrorKind
	Message string
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}
