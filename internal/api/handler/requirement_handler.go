package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/homeserve/household-api/internal/core/domain"
	"github.com/homeserve/household-api/internal/core/ports"
)

// RequirementHandler serves the requirement endpoints.
type RequirementHandler struct {
	service ports.RequirementService
}

func NewRequirementHandler(service ports.RequirementService) *RequirementHandler {
	return &RequirementHandler{service: service}
}

// List handles GET /requirements.
//
// @Summary      List open requirements, newest first
// @Tags         requirements
// @Produce      json
// @Success      200  {array}   domain.RequirementListing
// @Router       /requirements [get]
func (h *RequirementHandler) List(c echo.Context) error {
	reqs, err := h.service.ListOpen(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reqs)
}

// Create handles POST /requirements.
//
// @Summary      Post a requirement
// @Description  urgency defaults to MEDIUM.
// @Tags         requirements
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRequirementRequest  true  "Requirement"
// @Success      201   {object}  domain.Requirement
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /requirements [post]
func (h *RequirementHandler) Create(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createRequirementRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	created, err := h.service.Create(c.Request().Context(), id, ports.CreateRequirementInput{
		NeedType: domain.WorkerType(req.NeedType),
		Details:  req.Details,
		Timing:   req.Timing,
		Price:    req.Price,
		Block:    req.Block,
		Flat:     req.Flat,
		Urgency:  domain.Urgency(req.Urgency),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// ListMine handles GET /my-requirements.
//
// @Summary      List the caller's requirements, open or closed
// @Tags         requirements
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Requirement
// @Failure      401  {object}  errorResponse
// @Router       /my-requirements [get]
func (h *RequirementHandler) ListMine(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	reqs, err := h.service.ListMine(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reqs)
}

// Toggle handles PATCH /requirements/:id/toggle.
//
// @Summary      Open or close one of the caller's requirements
// @Tags         requirements
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Requirement id"
// @Success      200  {object}  domain.Requirement
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /requirements/{id}/toggle [patch]
func (h *RequirementHandler) Toggle(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	reqID, err := pathID(c)
	if err != nil {
		return err
	}

	req, err := h.service.Toggle(c.Request().Context(), id, reqID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, req)
}

// Delete handles DELETE /requirements/:id.
//
// @Summary      Delete one of the caller's requirements
// @Tags         requirements
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Requirement id"
// @Success      200  {object}  deletedResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /requirements/{id} [delete]
func (h *RequirementHandler) Delete(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	reqID, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id, reqID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deletedResponse{ID: reqID, Deleted: true})
}
