package handler

import (
	"encoding/json"

	"github.com/homeserve/household-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Account ---

type selectRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=RESIDENT WORKER"`
}

// --- Profiles ---

type profileRequest struct {
	Name  string  `json:"name"  validate:"required,notblank"`
	Phone string  `json:"phone" validate:"required,notblank,min=10"`
	Block *string `json:"block"`
	Flat  *string `json:"flat"`
	Age   *int    `json:"age"   validate:"omitempty,gte=0,lte=120"`
}

type workerProfileRequest struct {
	WorkerType      string          `json:"workerType"      validate:"required,oneof=COOK MAID BOTH"`
	Cuisine         *string         `json:"cuisine"         validate:"omitempty,oneof=NORTH SOUTH BOTH"`
	ExperienceYears *int            `json:"experienceYears" validate:"omitempty,gte=0"`
	Charges         int             `json:"charges"         validate:"required,gte=1"`
	LongTermOffer   *string         `json:"longTermOffer"`
	TimeSlots       json.RawMessage `json:"timeSlots"       swaggertype:"object"`
}

type adminVerifyRequest struct {
	UserID   string `json:"userId"   validate:"omitempty,uuid"`
	AuthID   string `json:"authId"   validate:"required_without=UserID"`
	Verified *bool  `json:"verified"`
}

// verificationFailedResponse lists the prerequisites that block self-verification.
type verificationFailedResponse struct {
	Error   string                            `json:"error"`
	Missing domain.VerificationIncompleteError `json:"missing"`
}

// --- Listings ---

type createServicePostRequest struct {
	Title       string          `json:"title"       validate:"required,notblank"`
	Cuisine     *string         `json:"cuisine"     validate:"omitempty,oneof=NORTH SOUTH BOTH"`
	Price       int             `json:"price"       validate:"required,gte=1"`
	Area        *string         `json:"area"`
	Timing      *string         `json:"timing"`
	Description *string         `json:"description"`
	TimeSlots   json.RawMessage `json:"timeSlots"   swaggertype:"object"`
}

type createRequirementRequest struct {
	NeedType string  `json:"needType" validate:"required,oneof=COOK MAID BOTH"`
	Details  *string `json:"details"`
	Timing   *string `json:"timing"`
	Price    *int    `json:"price"    validate:"omitempty,gte=1"`
	Block    *string `json:"block"`
	Flat     *string `json:"flat"`
	Urgency  string  `json:"urgency"  validate:"omitempty,oneof=LOW MEDIUM HIGH"`
}

type deletedResponse struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// --- Translation ---

type translateRequest struct {
	Text    string `json:"text"    validate:"required"`
	From    string `json:"from"    validate:"required,lang"`
	To      string `json:"to"      validate:"required,lang"`
	Context string `json:"context" validate:"omitempty,oneof=service requirement profile general"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
}

type translateBatchRequest struct {
	Texts   []string `json:"texts"   validate:"required,min=1,max=100"`
	From    string   `json:"from"    validate:"required,lang"`
	To      string   `json:"to"      validate:"required,lang"`
	Context string   `json:"context" validate:"omitempty,oneof=service requirement profile general"`
}

type translateBatchResponse struct {
	Translations []string `json:"translations"`
}

type detectLanguageRequest struct {
	Text string `json:"text" validate:"required"`
}

type detectLanguageResponse struct {
	Language string `json:"language"`
}

type languagesResponse struct {
	Languages []domain.Language `json:"languages"`
}

// translationContext maps the optional request field to a preset.
func translationContext(s string) domain.TranslationContext {
	if s == "" {
		return domain.ContextGeneral
	}
	return domain.TranslationContext(s)
}

func cuisinePtr(s *string) *domain.Cuisine {
	if s == nil {
		return nil
	}
	c := domain.Cuisine(*s)
	return &c
}
