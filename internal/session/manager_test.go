package session

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visitorbook/internal/cache"
	apperrors "visitorbook/internal/errors"
	"visitorbook/internal/testutil"
)

type managerFixture struct {
	echo    *echo.Echo
	manager *Manager
	tokens  *TokenIssuer
	errs    []error
}

func newManagerFixture(t *testing.T) *managerFixture {
	t.Helper()
	_, rdb := testutil.NewRedis(t)
	tokens := NewTokenIssuer("test-secret")
	f := &managerFixture{
		echo:    echo.New(),
		tokens:  tokens,
		manager: NewManager(NewRedisStore(cache.NewFromRedis(rdb, "session:"), time.Hour), tokens, Options{CookieName: "sid"}),
	}
	f.echo.HTTPErrorHandler = func(err error, c echo.Context) {
		f.errs = append(f.errs, err)
		_ = c.NoContent(http.StatusInternalServerError)
	}
	g := f.echo.Group("", f.manager.Middleware()...)
	g.GET("/", func(c echo.Context) error {
		sess := FromContext(c)
		name, _ := sess.Record.Value("name")
		return c.String(http.StatusOK, sess.ID+"|"+name)
	})
	g.POST("/", func(c echo.Context) error {
		sess := FromContext(c)
		sess.Record.SetValues(map[string]string{"name": c.FormValue("name")})
		if err := f.manager.Save(c.Request().Context(), sess); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	})
	return f
}

func (f *managerFixture) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestManager_FirstVisitIssuesCookie(t *testing.T) {
	f := newManagerFixture(t)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	cookie := sessionCookie(t, rec, "sid")
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Zero(t, cookie.MaxAge, "browser-session cookie")
	assert.NotEmpty(t, cookie.Value)
}

func TestManager_SessionSurvivesRequests(t *testing.T) {
	f := newManagerFixture(t)

	first := f.do(httptest.NewRequest(http.MethodGet, "/", nil))
	cookie := sessionCookie(t, first, "sid")
	require.NotNil(t, cookie)

	post := httptest.NewRequest(http.MethodPost, "/", nil)
	post.Form = map[string][]string{"name": {"Ana"}}
	post.AddCookie(cookie)
	require.Equal(t, http.StatusNoContent, f.do(post).Code)

	get := httptest.NewRequest(http.MethodGet, "/", nil)
	get.AddCookie(cookie)
	rec := f.do(get)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "|Ana")
	assert.Nil(t, sessionCookie(t, rec, "sid"), "known session keeps its cookie")
}

func TestManager_UnknownIDStartsEmpty(t *testing.T) {
	f := newManagerFixture(t)
	id := NewID()
	token, err := f.tokens.Issue(id)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: token})
	rec := f.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id+"|", rec.Body.String())
}

func TestManager_InvalidCookieIsFatal(t *testing.T) {
	tests := []struct {
		name  string
		value func(t *testing.T) string
	}{
		{
			name:  "garbage",
			value: func(t *testing.T) string { return "not-a-token" },
		},
		{
			name: "foreign signature",
			value: func(t *testing.T) string {
				token, err := NewTokenIssuer("other-secret").Issue(NewID())
				require.NoError(t, err)
				return token
			},
		},
		{
			name: "malformed session id",
			value: func(t *testing.T) string {
				token, err := NewTokenIssuer("test-secret").Issue("../../etc")
				require.NoError(t, err)
				return token
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newManagerFixture(t)
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.AddCookie(&http.Cookie{Name: "sid", Value: tt.value(t)})

			rec := f.do(req)
			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			require.Len(t, f.errs, 1)
			assert.True(t, errors.Is(f.errs[0], apperrors.ErrInvalidSession))

			cookie := sessionCookie(t, rec, "sid")
			require.NotNil(t, cookie, "broken cookie is expired")
			assert.Equal(t, -1, cookie.MaxAge)
		})
	}
}
