package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/mkerins/ai-friend/internal/domain"
)

type contextKey string

const SessionIDKey contextKey = "sessionID"

// CookieName identifies the visitor's session across requests
const CookieName = "ai_friend_session"

// SessionMiddleware resolves the visitor's session from a cookie, minting a
// new session (and cookie) when none exists or the ID is stale.
type SessionMiddleware struct {
	store domain.SessionStore
}

// NewSessionMiddleware creates a new session middleware
func NewSessionMiddleware(store domain.SessionStore) *SessionMiddleware {
	return &SessionMiddleware{store: store}
}

// Resolve attaches the session ID to the request context
func (m *SessionMiddleware) Resolve(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sessionID uuid.UUID

		if c, err := r.Cookie(CookieName); err == nil {
			if id, err := uuid.Parse(c.Value); err == nil {
				if _, ok := m.store.Get(id); ok {
					sessionID = id
				}
			}
		}

		if sessionID == uuid.Nil {
			sess := m.store.Create()
			sessionID = sess.ID
			http.SetCookie(w, &http.Cookie{
				Name:     CookieName,
				Value:    sessionID.String(),
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), SessionIDKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSessionID extracts the session ID from the request context
func GetSessionID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(SessionIDKey).(uuid.UUID)
	return id, ok
}
