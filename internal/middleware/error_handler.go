package middleware

import (
	"net/http"

	"streamPulse/pkg/logger"

	jsonres "streamPulse/pkg/response"

	"github.com/labstack/echo/v4"
)

// ErrorHandler is the echo HTTPErrorHandler for the service. It keeps the
// response envelope consistent for errors that escape the handlers, such as
// 404s on unknown routes and malformed payloads rejected by echo itself.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"

	if httpErr, ok := err.(*echo.HTTPError); ok {
		code = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		} else {
			message = http.StatusText(code)
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error("Unhandled request error", err, "path", c.Path())
	}

	errCode := "INTERNAL_ERROR"
	switch {
	case code == http.StatusNotFound:
		errCode = "NOT_FOUND"
	case code == http.StatusMethodNotAllowed:
		errCode = "METHOD_NOT_ALLOWED"
	case code >= http.StatusBadRequest && code < http.StatusInternalServerError:
		errCode = "BAD_REQUEST"
	}

	if err := c.JSON(code, jsonres.Error(errCode, message, nil)); err != nil {
		logger.Error("Failed to write error response", err)
	}
}
