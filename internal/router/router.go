package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	echoSwagger "github.com/swaggo/echo-swagger"

	"visitorbook/internal/handler"
	"visitorbook/internal/logging"
	"visitorbook/internal/session"
)

// Route is one entry of the routing table.
type Route struct {
	Method     string
	Path       string
	Name       string
	Handler    echo.HandlerFunc
	Middleware []echo.MiddlewareFunc
}

// Routes returns the routing table of the application.
func Routes(index *handler.IndexHandler, sessions *session.Manager) []Route {
	withSession := sessions.Middleware()
	return []Route{
		{Method: http.MethodGet, Path: "/", Name: handler.RouteIndex, Handler: index.Show, Middleware: withSession},
		{Method: http.MethodPost, Path: "/", Handler: index.Submit, Middleware: withSession},
		{Method: http.MethodGet, Path: "/healthz", Name: "healthz", Handler: func(c echo.Context) error {
			return c.String(http.StatusOK, "ok")
		}},
		{Method: http.MethodGet, Path: "/swagger/*", Name: "swagger", Handler: echoSwagger.WrapHandler},
	}
}

// Register wires middleware, the renderer, the error pages and routes.
// Without an IPExtractor set on e, the client address is the peer address
// and forwarding headers are ignored.
func Register(e *echo.Echo, log *logrus.Logger, renderer echo.Renderer, routes []Route) {
	if e.IPExtractor == nil {
		e.IPExtractor = echo.ExtractIPDirect()
	}
	e.Use(middleware.RequestID())
	e.Use(logging.RequestLogger(log))
	e.Use(middleware.Recover())

	e.Renderer = renderer
	e.HTTPErrorHandler = handler.ErrorHandler(log)

	for _, r := range routes {
		route := e.Add(r.Method, r.Path, r.Handler, r.Middleware...)
		if r.Name != "" {
			route.Name = r.Name
		}
	}
}
