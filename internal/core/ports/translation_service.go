package ports

import (
	"context"

	"github.com/homeserve/household-api/internal/core/domain"
)

// TranslationService never fails a request: on any upstream error it falls back
// to the original text or the default language.
type TranslationService interface {
	Languages() []domain.Language
	Translate(ctx context.Context, text, from, to string, tc domain.TranslationContext) string
	TranslateBatch(ctx context.Context, texts []string, from, to string, tc domain.TranslationContext) []string
	DetectLanguage(ctx context.Context, text string) string
}
