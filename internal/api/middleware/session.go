package middleware

import (
	"log/slog"
	"net/http"
	"regexp"

	"github.com/phrazzld/social-spark/internal/api/shared"
	"github.com/phrazzld/social-spark/internal/platform/logger"
)

// SessionHeader carries the browser tab's session ID.
const SessionHeader = "X-Session-ID"

var sessionIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{8,128}$`)

// RequireSession rejects requests without a well-formed session header and
// stores the session ID in the request context.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.Header.Get(SessionHeader)
		if !sessionIDPattern.MatchString(sessionID) {
			logger.FromContextOrDefault(r.Context(), slog.Default()).Debug("missing or malformed session header",
				slog.Int("length", len(sessionID)))
			shared.RespondWithError(w, r, http.StatusBadRequest, "Missing or invalid "+SessionHeader+" header")
			return
		}

		ctx := shared.SetSessionID(r.Context(), sessionID)
		log := logger.FromContextOrDefault(ctx, slog.Default()).With(slog.String("session_id", sessionID))
		next.ServeHTTP(w, r.WithContext(logger.WithLogger(ctx, log)))
	})
}
