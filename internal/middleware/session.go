package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/templui/aura/internal/ctxkeys"
)

const SessionCookieName = "aura_session"

// Sessions remembers which chat sessions have already been greeted. State is
// in memory; a restart greets everyone again.
type Sessions struct {
	mu      sync.Mutex
	greeted map[string]time.Time
	ttl     time.Duration
	secure  bool
	now     func() time.Time
}

func NewSessions(ttl time.Duration, secure bool) *Sessions {
	return &Sessions{
		greeted: make(map[string]time.Time),
		ttl:     ttl,
		secure:  secure,
		now:     time.Now,
	}
}

// Greet marks id as greeted and reports whether this was its first contact.
func (s *Sessions) Greet(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.evict(now)

	_, seen := s.greeted[id]
	s.greeted[id] = now
	return !seen
}

// Forget resets id so its next message is greeted again.
func (s *Sessions) Forget(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.greeted, id)
}

func (s *Sessions) evict(now time.Time) {
	if s.ttl <= 0 {
		return
	}
	for id, seen := range s.greeted {
		if now.Sub(seen) > s.ttl {
			delete(s.greeted, id)
		}
	}
}

// Clear expires the session cookie.
func (s *Sessions) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Middleware puts the session ID in the request context, issuing a new
// cookie when the request has none or an invalid one.
func (s *Sessions) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ""
		cookie, err := r.Cookie(SessionCookieName)
		if err == nil && uuid.Validate(cookie.Value) == nil {
			id = cookie.Value
		}

		if id == "" {
			id = uuid.New().String()
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookieName,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				Secure:   s.secure,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := ctxkeys.WithSession(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
