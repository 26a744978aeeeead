package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "visitorbook/internal/errors"
)

const (
	tokenContextKey   = "session_token"
	sessionContextKey = "session"
)

// Session is the resolved session of the current request.
type Session struct {
	ID     string
	Record *Record
}

// Options configures the session cookie.
type Options struct {
	CookieName string
	Secure     bool
}

// Manager resolves the session of each request and persists it on demand.
type Manager struct {
	store  Store
	tokens *TokenIssuer
	opts   Options
}

// NewManager creates a new session manager.
func NewManager(store Store, tokens *TokenIssuer, opts Options) *Manager {
	if opts.CookieName == "" {
		opts.CookieName = "session"
	}
	return &Manager{store: store, tokens: tokens, opts: opts}
}

// Middleware returns the middleware chain that verifies the session cookie
// and loads the session into the echo context.
func (m *Manager) Middleware() []echo.MiddlewareFunc {
	verify := echojwt.WithConfig(echojwt.Config{
		SigningKey:  m.tokens.Key(),
		TokenLookup: "cookie:" + m.opts.CookieName,
		ContextKey:  tokenContextKey,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(jwt.RegisteredClaims)
		},
		ContinueOnIgnoredError: true,
		ErrorHandler: func(c echo.Context, err error) error {
			cookie, cerr := c.Cookie(m.opts.CookieName)
			if cerr != nil || cookie.Value == "" {
				// first visit
				return nil
			}
			m.expireCookie(c)
			return fmt.Errorf("%w: %v", apperrors.ErrInvalidSession, err)
		},
	})
	return []echo.MiddlewareFunc{verify, m.load}
}

func (m *Manager) load(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := c.Get(tokenContextKey).(*jwt.Token)
		if !ok {
			sess, err := m.start(c)
			if err != nil {
				return err
			}
			c.Set(sessionContextKey, sess)
			return next(c)
		}

		id, err := idFromToken(token)
		if err != nil {
			m.expireCookie(c)
			return fmt.Errorf("%w: %v", apperrors.ErrInvalidSession, err)
		}
		rec, err := m.store.Load(c.Request().Context(), id)
		switch {
		case errors.Is(err, ErrNotFound):
			rec = &Record{}
		case err != nil:
			return err
		}
		c.Set(sessionContextKey, &Session{ID: id, Record: rec})
		return next(c)
	}
}

// start issues a new session id and its cookie.
func (m *Manager) start(c echo.Context) (*Session, error) {
	id := NewID()
	token, err := m.tokens.Issue(id)
	if err != nil {
		return nil, fmt.Errorf("issue session token: %w", err)
	}
	c.SetCookie(&http.Cookie{
		Name:     m.opts.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return &Session{ID: id, Record: &Record{}}, nil
}

func (m *Manager) expireCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     m.opts.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   m.opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Save persists the record of sess.
func (m *Manager) Save(ctx context.Context, sess *Session) error {
	return m.store.Save(ctx, sess.ID, sess.Record)
}

// FromContext returns the session loaded by the middleware, or nil when the
// route is not behind it.
func FromContext(c echo.Context) *Session {
	sess, _ := c.Get(sessionContextKey).(*Session)
	return sess
}
