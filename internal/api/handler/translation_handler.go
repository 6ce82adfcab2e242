package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/homeserve/household-api/internal/core/ports"
)

// TranslationHandler serves the public translation proxy. Model failures never
// surface as errors; only malformed requests are rejected.
type TranslationHandler struct {
	service ports.TranslationService
}

func NewTranslationHandler(service ports.TranslationService) *TranslationHandler {
	return &TranslationHandler{service: service}
}

// Languages handles GET /languages.
//
// @Summary      List supported language codes
// @Tags         translation
// @Produce      json
// @Success      200  {object}  languagesResponse
// @Router       /languages [get]
func (h *TranslationHandler) Languages(c echo.Context) error {
	return c.JSON(http.StatusOK, languagesResponse{Languages: h.service.Languages()})
}

// Translate handles POST /translate.
//
// @Summary      Translate one string
// @Tags         translation
// @Accept       json
// @Produce      json
// @Param        body  body      translateRequest  true  "Text and languages"
// @Success      200   {object}  translateResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /translate [post]
func (h *TranslationHandler) Translate(c echo.Context) error {
	var req translateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out := h.service.Translate(c.Request().Context(), req.Text, req.From, req.To, translationContext(req.Context))
	return c.JSON(http.StatusOK, translateResponse{TranslatedText: out})
}

// TranslateBatch handles POST /translate-batch.
//
// @Summary      Translate up to 100 strings, preserving order
// @Tags         translation
// @Accept       json
// @Produce      json
// @Param        body  body      translateBatchRequest  true  "Texts and languages"
// @Success      200   {object}  translateBatchResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /translate-batch [post]
func (h *TranslationHandler) TranslateBatch(c echo.Context) error {
	var req translateBatchRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out := h.service.TranslateBatch(c.Request().Context(), req.Texts, req.From, req.To, translationContext(req.Context))
	return c.JSON(http.StatusOK, translateBatchResponse{Translations: out})
}

// DetectLanguage handles POST /detect-language.
//
// @Summary      Classify the language of a string
// @Description  Falls back to en when the language cannot be determined.
// @Tags         translation
// @Accept       json
// @Produce      json
// @Param        body  body      detectLanguageRequest  true  "Text"
// @Success      200   {object}  detectLanguageResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /detect-language [post]
func (h *TranslationHandler) DetectLanguage(c echo.Context) error {
	var req detectLanguageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, detectLanguageResponse{Language: h.service.DetectLanguage(c.Request().Context(), req.Text)})
}
