package logging

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Level(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, New("debug", false, &bytes.Buffer{}).GetLevel())
	assert.Equal(t, logrus.InfoLevel, New("chatty", false, &bytes.Buffer{}).GetLevel())
}

func TestRequestLogger_WritesOneEntry(t *testing.T) {
	var buf bytes.Buffer
	log := New("info", true, &buf)

	e := echo.New()
	e.Use(RequestLogger(log))
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/healthz", entry["uri"])
	assert.Equal(t, float64(http.StatusOK), entry["status"])
	assert.Equal(t, "request", entry["msg"])
}
