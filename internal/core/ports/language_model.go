package ports

import (
	"context"
	"time"
)

// LanguageModel is the external text-generation service used for translation and detection.
type LanguageModel interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// TranslationCache stores finished translations. A miss returns ok=false and a nil error.
type TranslationCache interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}
