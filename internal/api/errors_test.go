package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/social-spark/internal/action"
	"github.com/phrazzld/social-spark/internal/api/shared"
	"github.com/phrazzld/social-spark/internal/post"
	"github.com/phrazzld/social-spark/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestStatusForKind(t *testing.T) {
	tests := []struct {
		kind action.ErrorKind
		want int
	}{
		{action.KindNone, http.StatusOK},
		{action.KindConfiguration, http.StatusServiceUnavailable},
		{action.KindValidation, http.StatusBadRequest},
		{action.KindProvider, http.StatusBadGateway},
		{action.KindSchema, http.StatusBadGateway},
		{action.KindTimeout, http.StatusGatewayTimeout},
		{action.KindInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, StatusForKind(tt.kind))
		})
	}
}

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "action error keeps its message",
			err:         &post.ActionError{Kind: action.KindConfiguration, Message: action.MissingMistralKeyMessage},
			wantStatus:  http.StatusServiceUnavailable,
			wantMessage: action.MissingMistralKeyMessage,
		},
		{
			name:        "wrapped not found",
			err:         fmt.Errorf("image 3: %w", post.ErrNotFound),
			wantStatus:  http.StatusNotFound,
			wantMessage: "Post not found",
		},
		{
			name:        "busy",
			err:         post.ErrBusy,
			wantStatus:  http.StatusConflict,
			wantMessage: "An operation is already in progress for this post",
		},
		{name: "invalid transition", err: post.ErrInvalidTransition, wantStatus: http.StatusConflict},
		{name: "nothing to refine", err: post.ErrNothingToRefine, wantStatus: http.StatusConflict},
		{name: "text unavailable", err: post.ErrTextRegenerationUnavailable, wantStatus: http.StatusConflict},
		{name: "invalid mode", err: post.ErrInvalidMode, wantStatus: http.StatusBadRequest},
		{name: "missing session", err: post.ErrMissingSession, wantStatus: http.StatusBadRequest},
		{name: "invalid entity", err: store.ErrInvalidEntity, wantStatus: http.StatusBadRequest},
		{name: "empty body", err: shared.ErrEmptyBody, wantStatus: http.StatusBadRequest},
		{name: "bad path", err: ErrInvalidPathParam, wantStatus: http.StatusBadRequest},
		{
			name:        "unknown error is not leaked",
			err:         errors.New("pq: connection refused at 10.0.0.3"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, MapErrorToStatusCode(tt.err))
			msg := GetSafeErrorMessage(tt.err)
			assert.NotEmpty(t, msg)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, msg)
			}
		})
	}

	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
}
