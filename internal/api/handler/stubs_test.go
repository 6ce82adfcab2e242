package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/homeserve/household-api/internal/api/middleware"
	"github.com/homeserve/household-api/internal/core/domain"
	"github.com/homeserve/household-api/internal/core/ports"
)

// newContext builds an echo context for a JSON request. A non-empty subject
// simulates a request that passed middleware.Auth.
func newContext(method, target, body, subject string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if subject != "" {
		c.Set(middleware.SubjectKey, subject)
		c.Set(middleware.EmailKey, subject+"@example.com")
	}
	return c, rec
}

type stubAccountService struct {
	selectRoleFn func(ctx context.Context, id domain.Identity, role domain.Role) (*ports.RoleSelection, error)
	syncFn       func(ctx context.Context, id domain.Identity) (*domain.Me, error)
	meFn         func(ctx context.Context, id domain.Identity) (*domain.Me, error)
}

func (s *stubAccountService) SelectRole(ctx context.Context, id domain.Identity, role domain.Role) (*ports.RoleSelection, error) {
	return s.selectRoleFn(ctx, id, role)
}

func (s *stubAccountService) Sync(ctx context.Context, id domain.Identity) (*domain.Me, error) {
	return s.syncFn(ctx, id)
}

func (s *stubAccountService) Me(ctx context.Context, id domain.Identity) (*domain.Me, error) {
	return s.meFn(ctx, id)
}

type stubProfileService struct {
	upsertProfileFn       func(ctx context.Context, id domain.Identity, in ports.ProfileInput) (*domain.Profile, error)
	upsertWorkerProfileFn func(ctx context.Context, id domain.Identity, in ports.WorkerProfileInput) (*domain.WorkerProfile, error)
	getWorkerProfileFn    func(ctx context.Context, id domain.Identity) (*domain.WorkerProfile, error)
	adminVerifyFn         func(ctx context.Context, target ports.VerifyTarget, verified bool) (*domain.Profile, error)
	verifyMeFn            func(ctx context.Context, id domain.Identity) (*domain.Profile, error)
}

func (s *stubProfileService) UpsertProfile(ctx context.Context, id domain.Identity, in ports.ProfileInput) (*domain.Profile, error) {
	return s.upsertProfileFn(ctx, id, in)
}

func (s *stubProfileService) UpsertWorkerProfile(ctx context.Context, id domain.Identity, in ports.WorkerProfileInput) (*domain.WorkerProfile, error) {
	return s.upsertWorkerProfileFn(ctx, id, in)
}

func (s *stubProfileService) GetWorkerProfile(ctx context.Context, id domain.Identity) (*domain.WorkerProfile, error) {
	return s.getWorkerProfileFn(ctx, id)
}

func (s *stubProfileService) AdminVerify(ctx context.Context, target ports.VerifyTarget, verified bool) (*domain.Profile, error) {
	return s.adminVerifyFn(ctx, target, verified)
}

func (s *stubProfileService) VerifyMe(ctx context.Context, id domain.Identity) (*domain.Profile, error) {
	return s.verifyMeFn(ctx, id)
}

type stubServicePostService struct {
	createFn     func(ctx context.Context, id domain.Identity, in ports.CreateServicePostInput) (*domain.ServicePost, error)
	listActiveFn func(ctx context.Context) ([]domain.ServiceListing, error)
	listMineFn   func(ctx context.Context, id domain.Identity) ([]domain.ServicePost, error)
	toggleFn     func(ctx context.Context, id domain.Identity, postID string) (*domain.ServicePost, error)
	deleteFn     func(ctx context.Context, id domain.Identity, postID string) error
}

func (s *stubServicePostService) Create(ctx context.Context, id domain.Identity, in ports.CreateServicePostInput) (*domain.ServicePost, error) {
	return s.createFn(ctx, id, in)
}

func (s *stubServicePostService) ListActive(ctx context.Context) ([]domain.ServiceListing, error) {
	return s.listActiveFn(ctx)
}

func (s *stubServicePostService) ListMine(ctx context.Context, id domain.Identity) ([]domain.ServicePost, error) {
	return s.listMineFn(ctx, id)
}

func (s *stubServicePostService) Toggle(ctx context.Context, id domain.Identity, postID string) (*domain.ServicePost, error) {
	return s.toggleFn(ctx, id, postID)
}

func (s *stubServicePostService) Delete(ctx context.Context, id domain.Identity, postID string) error {
	return s.deleteFn(ctx, id, postID)
}

type stubRequirementService struct {
	createFn   func(ctx context.Context, id domain.Identity, in ports.CreateRequirementInput) (*domain.Requirement, error)
	listOpenFn func(ctx context.Context) ([]domain.RequirementListing, error)
	listMineFn func(ctx context.Context, id domain.Identity) ([]domain.Requirement, error)
	toggleFn   func(ctx context.Context, id domain.Identity, requirementID string) (*domain.Requirement, error)
	deleteFn   func(ctx context.Context, id domain.Identity, requirementID string) error
}

func (s *stubRequirementService) Create(ctx context.Context, id domain.Identity, in ports.CreateRequirementInput) (*domain.Requirement, error) {
	return s.createFn(ctx, id, in)
}

func (s *stubRequirementService) ListOpen(ctx context.Context) ([]domain.RequirementListing, error) {
	return s.listOpenFn(ctx)
}

func (s *stubRequirementService) ListMine(ctx context.Context, id domain.Identity) ([]domain.Requirement, error) {
	return s.listMineFn(ctx, id)
}

func (s *stubRequirementService) Toggle(ctx context.Context, id domain.Identity, requirementID string) (*domain.Requirement, error) {
	return s.toggleFn(ctx, id, requirementID)
}

func (s *stubRequirementService) Delete(ctx context.Context, id domain.Identity, requirementID string) error {
	return s.deleteFn(ctx, id, requirementID)
}

type stubTranslationService struct {
	translateFn      func(ctx context.Context, text, from, to string, tc domain.TranslationContext) string
	translateBatchFn func(ctx context.Context, texts []string, from, to string, tc domain.TranslationContext) []string
	detectFn         func(ctx context.Context, text string) string
}

func (s *stubTranslationService) Languages() []domain.Language {
	return domain.SupportedLanguages
}

func (s *stubTranslationService) Translate(ctx context.Context, text, from, to string, tc domain.TranslationContext) string {
	return s.translateFn(ctx, text, from, to, tc)
}

func (s *stubTranslationService) TranslateBatch(ctx context.Context, texts []string, from, to string, tc domain.TranslationContext) []string {
	return s.translateBatchFn(ctx, texts, from, to, tc)
}

func (s *stubTranslationService) DetectLanguage(ctx context.Context, text string) string {
	return s.detectFn(ctx, text)
}

// httpCode returns the status carried by an *echo.HTTPError, or 0.
func httpCode(err error) int {
	if he, ok := err.(*echo.HTTPError); ok {
		return he.Code
	}
	return 0
}
