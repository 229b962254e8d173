package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"pickup/internal/core/application/usecases/commands"
	"pickup/internal/core/domain/model/cart"
	"pickup/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

const (
	SessionCookieName = "pickup_session"
	sessionContextKey = "session"
)

// Session is the server side state of one browser: its cart and the
// submission handler that admits one order submission at a time.
// Every cart call takes the session lock, so a Session is the CartStore
// handed to SubmitOrderCommand.
type Session struct {
	mu   sync.Mutex
	cart *cart.Cart

	submit commands.SubmitOrderCommandHandler
}

func (s *Session) Snapshot() cart.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Snapshot()
}

func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
}

func (s *Session) AddItem(vendorID kernel.UUID, vendorName string, item cart.Item) cart.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.AddItem(vendorID, vendorName, item)
	return s.cart.Snapshot()
}

func (s *Session) UpdateQuantity(itemID kernel.UUID, quantity int) cart.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.UpdateQuantity(itemID, quantity)
	return s.cart.Snapshot()
}

func (s *Session) RemoveItem(itemID kernel.UUID) cart.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.RemoveItem(itemID)
	return s.cart.Snapshot()
}

// ClearSubmitted takes the lines of a stored order out of the cart, keeping
// anything added while the order was being written.
func (s *Session) ClearSubmitted(submitted cart.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.ClearSubmitted(submitted)
}

// Submit must not hold the session lock: the handler reads and clears the
// cart through Snapshot and ClearSubmitted.
func (s *Session) Submit(ctx context.Context, pickupTime, notes string) (kernel.UUID, error) {
	cmd, err := commands.NewSubmitOrderCommand(s, pickupTime, notes)
	if err != nil {
		return kernel.UUID{}, err
	}
	return s.submit.Handle(ctx, cmd)
}

type sessionEntry struct {
	session  *Session
	lastSeen time.Time
}

// SessionStore keeps sessions in memory, keyed by the session cookie.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*sessionEntry

	newSubmitHandler func() commands.SubmitOrderCommandHandler
	now              func() time.Time
}

// NewSessionStore builds a store that gives every new session its own
// submission handler from newSubmitHandler.
func NewSessionStore(newSubmitHandler func() commands.SubmitOrderCommandHandler) *SessionStore {
	return &SessionStore{
		sessions:         make(map[string]*sessionEntry),
		newSubmitHandler: newSubmitHandler,
		now:              time.Now,
	}
}

// Get returns the session for id and marks it as used.
func (s *SessionStore) Get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	entry.lastSeen = s.now()
	return entry.session, true
}

// Create starts an empty session and returns its identifier.
func (s *SessionStore) Create() (string, *Session) {
	session := s.newSession()
	id := kernel.NewUUID().String()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = &sessionEntry{session: session, lastSeen: s.now()}
	return id, session
}

func (s *SessionStore) newSession() *Session {
	return &Session{
		cart:   cart.New(),
		submit: s.newSubmitHandler(),
	}
}

// EvictIdle drops sessions unused for longer than maxIdle and returns how many went.
func (s *SessionStore) EvictIdle(maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-maxIdle)
	evicted := 0
	for id, entry := range s.sessions {
		if entry.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			evicted++
		}
	}
	return evicted
}

func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Middleware attaches the caller's session when the request carries a known
// session cookie. No session is created here; see ensure.
func (s *SessionStore) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cookie, err := c.Cookie(SessionCookieName); err == nil {
				if session, ok := s.Get(cookie.Value); ok {
					c.Set(sessionContextKey, session)
				}
			}
			return next(c)
		}
	}
}

// current returns the attached session, or a detached empty one that is never
// stored. Read-only requests from new visitors do not allocate a session.
func (s *SessionStore) current(c echo.Context) *Session {
	if session, ok := c.Get(sessionContextKey).(*Session); ok {
		return session
	}
	return s.newSession()
}

// ensure returns the attached session, creating it and setting the cookie
// on the first request that puts something into the cart.
func (s *SessionStore) ensure(c echo.Context) *Session {
	if session, ok := c.Get(sessionContextKey).(*Session); ok {
		return session
	}

	id, session := s.Create()
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	c.Set(sessionContextKey, session)
	return session
}
