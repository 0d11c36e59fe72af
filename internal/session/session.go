// Package session keys in-memory carts by a signed guest token. There is no
// account or login involved: the token only identifies a browsing session,
// and an expired or missing token simply yields a fresh empty cart.
package session

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/alisha-attire/storefront/internal/cart"
	"github.com/alisha-attire/storefront/internal/checkout"
)

const (
	CookieName = "guestSession"
	ContextKey = "session"
)

type Session struct {
	ID       uuid.UUID
	Cart     *cart.Store
	Checkout *checkout.Flow

	lastSeen time.Time
}

type Manager struct {
	mu       sync.Mutex
	secret   []byte
	ttl      time.Duration
	sessions map[uuid.UUID]*Session
	now      func() time.Time
}

func NewManager(secret []byte, ttl time.Duration) *Manager {
	return &Manager{
		secret:   secret,
		ttl:      ttl,
		sessions: make(map[uuid.UUID]*Session),
		now:      time.Now,
	}
}

// FromContext returns the session placed by Middleware, or nil.
func FromContext(c echo.Context) *Session {
	if s, ok := c.Get(ContextKey).(*Session); ok {
		return s
	}
	return nil
}

// Middleware resolves the guest cookie into a session, issuing a new signed
// token when the cookie is absent or invalid.
func (m *Manager) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var id uuid.UUID
			if ck, err := c.Cookie(CookieName); err == nil && ck.Value != "" {
				if parsed, err := m.parseToken(ck.Value); err == nil {
					id = parsed
				}
			}
			if id == uuid.Nil {
				id = uuid.New()
				token, err := m.signToken(id)
				if err != nil {
					return echo.NewHTTPError(http.StatusInternalServerError, "session token error")
				}
				c.SetCookie(&http.Cookie{
					Name:     CookieName,
					Value:    token,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
			c.Set(ContextKey, m.lookup(id))
			return next(c)
		}
	}
}

// lookup returns the live session for id, creating an empty one when the
// session is unknown or has been swept.
func (m *Manager) lookup(id uuid.UUID) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		store := cart.NewStore()
		s = &Session{
			ID:       id,
			Cart:     store,
			Checkout: checkout.NewFlow(store),
		}
		m.sessions[id] = s
	}
	s.lastSeen = m.now()
	return s
}

// Sweep drops sessions idle for longer than the configured TTL and reports
// how many were removed.
func (m *Manager) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	cutoff := m.now().Add(-m.ttl)
	removed := 0
	for id, s := range m.sessions {
		if s.lastSeen.Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *Manager) signToken(id uuid.UUID) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:  id.String(),
		IssuedAt: jwt.NewNumericDate(m.now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *Manager) parseToken(raw string) (uuid.UUID, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	if !token.Valid {
		return uuid.Nil, fmt.Errorf("invalid session token")
	}
	sub, err := token.Claims.GetSubject()
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(sub)
}
