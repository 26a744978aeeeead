package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	apperrors "visitorbook/internal/errors"
	"visitorbook/internal/render"
)

// fallbackPages maps status codes to the page rendered when a request fails.
var fallbackPages = map[int]string{
	http.StatusNotFound:            "404.html",
	http.StatusInternalServerError: "500.html",
}

type errorPage struct {
	render.Page
	Heading string
	Message string
}

// ErrorHandler renders the fallback page for err. Server errors are logged;
// their details never reach the response.
func ErrorHandler(log *logrus.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		he := apperrors.MapErrorToHTTP(err)
		status := he.StatusCode
		if status >= http.StatusInternalServerError {
			status = http.StatusInternalServerError
			log.WithError(err).WithFields(logrus.Fields{
				"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
				"method":     c.Request().Method,
				"uri":        c.Request().RequestURI,
				"code":       he.Code,
			}).Error("unhandled request error")
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}

		name, ok := fallbackPages[status]
		if !ok {
			name = fallbackPages[http.StatusNotFound]
		}
		page := errorPage{
			Page:    render.Page{Title: http.StatusText(status)},
			Heading: http.StatusText(status),
			Message: "The page you asked for is not available.",
		}
		if status == http.StatusNotFound {
			page.Heading = "Page Not Found"
			page.Message = "The page you are looking for does not exist."
		}

		if rerr := c.Render(status, name, page); rerr != nil {
			log.WithError(rerr).Error("render fallback page")
			_ = c.String(status, http.StatusText(status))
		}
	}
}
