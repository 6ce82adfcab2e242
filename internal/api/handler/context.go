package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/homeserve/household-api/internal/api/middleware"
	"github.com/homeserve/household-api/internal/core/domain"
)

// ctxIdentity returns the identity stored by middleware.Auth. A missing
// subject means the route was wired without the middleware.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	subject, _ := c.Get(middleware.SubjectKey).(string)
	if subject == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	email, _ := c.Get(middleware.EmailKey).(string)
	return domain.Identity{Subject: subject, Email: email}, nil
}

// pathID returns the :id parameter. Ids that are not UUIDs cannot match a row
// and are reported as not found.
func pathID(c echo.Context) (string, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return "", domain.ErrNotFound
	}
	return id.String(), nil
}

// bindAndValidate decodes the body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload").SetInternal(err)
	}
	if err := c.Validate(req); err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return he
		}
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return nil
}
