package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/homeserve/household-api/internal/core/domain"
	"github.com/homeserve/household-api/internal/core/ports"
)

// ProfileHandler serves profile upserts and verification.
type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// UpsertProfile handles POST /profile.
//
// @Summary      Create or update the caller's profile
// @Description  Every successful save marks the profile verified.
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      profileRequest  true  "Profile"
// @Success      200   {object}  domain.Profile
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /profile [post]
func (h *ProfileHandler) UpsertProfile(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req profileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	profile, err := h.service.UpsertProfile(c.Request().Context(), id, ports.ProfileInput{
		Name:  req.Name,
		Phone: req.Phone,
		Block: req.Block,
		Flat:  req.Flat,
		Age:   req.Age,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// UpsertWorkerProfile handles POST /worker-profile.
//
// @Summary      Create or update the caller's worker profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      workerProfileRequest  true  "Worker profile"
// @Success      200   {object}  domain.WorkerProfile
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /worker-profile [post]
func (h *ProfileHandler) UpsertWorkerProfile(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req workerProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	wp, err := h.service.UpsertWorkerProfile(c.Request().Context(), id, ports.WorkerProfileInput{
		WorkerType:      domain.WorkerType(req.WorkerType),
		Cuisine:         cuisinePtr(req.Cuisine),
		ExperienceYears: req.ExperienceYears,
		Charges:         req.Charges,
		LongTermOffer:   req.LongTermOffer,
		TimeSlots:       req.TimeSlots,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, wp)
}

// GetWorkerProfile handles GET /worker-profile.
//
// @Summary      Return the caller's worker profile
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.WorkerProfile
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /worker-profile [get]
func (h *ProfileHandler) GetWorkerProfile(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	wp, err := h.service.GetWorkerProfile(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, wp)
}

// AdminVerify handles POST /admin/verify-user.
//
// @Summary      Set the verified flag of any user's profile
// @Description  Only authentication is checked. verified defaults to true.
// @Tags         verification
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      adminVerifyRequest  true  "Target user"
// @Success      200   {object}  domain.Profile
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /admin/verify-user [post]
func (h *ProfileHandler) AdminVerify(c echo.Context) error {
	if _, err := ctxIdentity(c); err != nil {
		return err
	}

	var req adminVerifyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	verified := true
	if req.Verified != nil {
		verified = *req.Verified
	}

	profile, err := h.service.AdminVerify(c.Request().Context(), ports.VerifyTarget{UserID: req.UserID, AuthID: req.AuthID}, verified)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// VerifyMe handles POST /verify-me.
//
// @Summary      Verify the caller once their profiles are complete
// @Tags         verification
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Profile
// @Failure      400  {object}  verificationFailedResponse
// @Failure      401  {object}  errorResponse
// @Router       /verify-me [post]
func (h *ProfileHandler) VerifyMe(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	profile, err := h.service.VerifyMe(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}
