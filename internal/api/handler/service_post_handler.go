package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/homeserve/household-api/internal/core/ports"
)

// ServicePostHandler serves the service post endpoints.
type ServicePostHandler struct {
	service ports.ServicePostService
}

func NewServicePostHandler(service ports.ServicePostService) *ServicePostHandler {
	return &ServicePostHandler{service: service}
}

// List handles GET /services.
//
// @Summary      List active service posts, newest first
// @Tags         services
// @Produce      json
// @Success      200  {array}   domain.ServiceListing
// @Router       /services [get]
func (h *ServicePostHandler) List(c echo.Context) error {
	posts, err := h.service.ListActive(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// Create handles POST /services.
//
// @Summary      Publish a service post for the caller's worker profile
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createServicePostRequest  true  "Service post"
// @Success      201   {object}  domain.ServicePost
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /services [post]
func (h *ServicePostHandler) Create(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createServicePostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	post, err := h.service.Create(c.Request().Context(), id, ports.CreateServicePostInput{
		Title:       req.Title,
		Cuisine:     cuisinePtr(req.Cuisine),
		Price:       req.Price,
		Area:        req.Area,
		Timing:      req.Timing,
		Description: req.Description,
		TimeSlots:   req.TimeSlots,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, post)
}

// ListMine handles GET /my-services.
//
// @Summary      List the caller's service posts, active or not
// @Tags         services
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.ServicePost
// @Failure      401  {object}  errorResponse
// @Router       /my-services [get]
func (h *ServicePostHandler) ListMine(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	posts, err := h.service.ListMine(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// Toggle handles PATCH /services/:id/toggle.
//
// @Summary      Flip the active flag of one of the caller's posts
// @Tags         services
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Service post id"
// @Success      200  {object}  domain.ServicePost
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /services/{id}/toggle [patch]
func (h *ServicePostHandler) Toggle(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	postID, err := pathID(c)
	if err != nil {
		return err
	}

	post, err := h.service.Toggle(c.Request().Context(), id, postID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// Delete handles DELETE /services/:id.
//
// @Summary      Delete one of the caller's posts
// @Tags         services
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Service post id"
// @Success      200  {object}  deletedResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /services/{id} [delete]
func (h *ServicePostHandler) Delete(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	postID, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id, postID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deletedResponse{ID: postID, Deleted: true})
}
