package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/homeserve/household-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// verificationFailedResponse adds the unmet prerequisites to the envelope.
type verificationFailedResponse struct {
	Error   string                            `json:"error"`
	Missing domain.VerificationIncompleteError `json:"missing"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status codes.
//   - Logs unexpected errors without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var incomplete *domain.VerificationIncompleteError
		if errors.As(err, &incomplete) {
			_ = c.JSON(http.StatusBadRequest, verificationFailedResponse{
				Error:   "verification requirements not met",
				Missing: *incomplete,
			})
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, validation, auth, 404 from router).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Code >= http.StatusInternalServerError {
			logUnhandled(log, c, err)
		}
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, "unauthenticated"
	case errors.Is(err, domain.ErrRoleNotSelected):
		return http.StatusBadRequest, domain.ErrRoleNotSelected.Error()
	case errors.Is(err, domain.ErrWorkerRoleRequired):
		return http.StatusBadRequest, domain.ErrWorkerRoleRequired.Error()
	case errors.Is(err, domain.ErrWorkerProfileMissing):
		return http.StatusBadRequest, domain.ErrWorkerProfileMissing.Error()
	case errors.Is(err, domain.ErrForbiddenRole):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, domain.ErrPhoneInUse):
		return http.StatusConflict, "phone already in use"
	case errors.Is(err, domain.ErrProfileExists):
		return http.StatusConflict, "profile already exists"
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, "conflict"
	}

	logUnhandled(log, c, err)
	return http.StatusInternalServerError, "internal server error"
}

func logUnhandled(log zerolog.Logger, c echo.Context, err error) {
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")
}
