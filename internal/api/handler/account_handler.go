package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/homeserve/household-api/internal/core/domain"
	"github.com/homeserve/household-api/internal/core/ports"
)

// AccountHandler serves role selection, bootstrap and the self view.
type AccountHandler struct {
	service ports.AccountService
}

func NewAccountHandler(service ports.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// SelectRole handles POST /select-role.
//
// @Summary      Select or change the caller's role
// @Tags         account
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      selectRoleRequest  true  "Role"
// @Success      200   {object}  ports.RoleSelection
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /select-role [post]
func (h *AccountHandler) SelectRole(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req selectRoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	sel, err := h.service.SelectRole(c.Request().Context(), id, domain.Role(req.Role))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sel)
}

// Sync handles POST /auth/sync.
//
// @Summary      Create the caller's user on first sign-in and return the self view
// @Tags         account
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Me
// @Failure      401  {object}  errorResponse
// @Router       /auth/sync [post]
func (h *AccountHandler) Sync(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	me, err := h.service.Sync(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, me)
}

// Me handles GET /me.
//
// @Summary      Return the caller's user with profile and worker profile
// @Tags         account
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Me
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /me [get]
func (h *AccountHandler) Me(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	me, err := h.service.Me(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, me)
}
