package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
)

type contextKey string

const sessionIDKey contextKey = "sessionID"

// SessionHeader carries the anonymous session id. There is no
// authentication; a session is just a stable key for a visitor's cart,
// preferences and comparison set.
const SessionHeader = "X-Session-ID"

// WithSession ensures every request carries a session id: the client's
// header value when present, a fresh UUID otherwise. The id is echoed back
// so clients can persist it.
func WithSession(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		sessionID := r.Header.Get(SessionHeader)
		if sessionID == "" {
			sessionID = uuid.New().String()
		}
		w.Header().Set(SessionHeader, sessionID)

		ctx := context.WithValue(r.Context(), sessionIDKey, sessionID)
		next(w, r.WithContext(ctx), ps)
	}
}

// SessionID returns the request's session id, or "" for handlers not
// wrapped by WithSession.
func SessionID(r *http.Request) string {
	if v, ok := r.Context().Value(sessionIDKey).(string); ok {
		return v
	}
	return ""
}
