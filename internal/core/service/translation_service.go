package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/homeserve/household-api/internal/core/domain"
	"github.com/homeserve/household-api/internal/core/ports"
	"github.com/homeserve/household-api/internal/metrics"
)

// batchChunkSize bounds the number of concurrent model calls per batch chunk.
const batchChunkSize = 5

// TranslationService proxies translation and language detection to an
// external language model. It is best-effort: failures degrade to the
// original text or domain.DefaultLanguage.
type TranslationService struct {
	model    ports.LanguageModel
	cache    ports.TranslationCache // optional
	cacheTTL time.Duration
	log      zerolog.Logger
}

// NewTranslationService builds the service. cache may be nil.
func NewTranslationService(model ports.LanguageModel, cache ports.TranslationCache, cacheTTL time.Duration, log zerolog.Logger) *TranslationService {
	return &TranslationService{model: model, cache: cache, cacheTTL: cacheTTL, log: log}
}

// Languages lists the supported language codes.
func (s *TranslationService) Languages() []domain.Language {
	out := make([]domain.Language, len(domain.SupportedLanguages))
	copy(out, domain.SupportedLanguages)
	return out
}

// Translate returns text translated from one language to another. Same-language
// and blank input is returned unchanged without calling the model.
func (s *TranslationService) Translate(ctx context.Context, text, from, to string, tc domain.TranslationContext) string {
	if from == to || strings.TrimSpace(text) == "" {
		metrics.TranslationsTotal.WithLabelValues("passthrough").Inc()
		return text
	}

	key := translationCacheKey(text, from, to, tc)
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			s.log.Warn().Err(err).Msg("translation cache read failed")
		} else if ok {
			metrics.TranslationsTotal.WithLabelValues("cache_hit").Inc()
			return cached
		}
	}

	start := time.Now()
	out, err := s.model.Generate(ctx, translatePrompt(text, from, to, tc))
	metrics.LanguageModelDuration.WithLabelValues("translate").Observe(time.Since(start).Seconds())
	if err != nil {
		s.log.Warn().Err(err).Str("from", from).Str("to", to).Msg("translation failed, returning original text")
		metrics.TranslationsTotal.WithLabelValues("fallback").Inc()
		return text
	}

	out = cleanModelOutput(out)
	if out == "" {
		s.log.Warn().Str("from", from).Str("to", to).Msg("empty translation, returning original text")
		metrics.TranslationsTotal.WithLabelValues("fallback").Inc()
		return text
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, out, s.cacheTTL); err != nil {
			s.log.Warn().Err(err).Msg("translation cache write failed")
		}
	}

	metrics.TranslationsTotal.WithLabelValues("translated").Inc()
	return out
}

// TranslateBatch translates texts in chunks of batchChunkSize. Items within a
// chunk run concurrently and the chunk is joined before the next starts. The
// result has the same length and order as texts.
func (s *TranslationService) TranslateBatch(ctx context.Context, texts []string, from, to string, tc domain.TranslationContext) []string {
	results := make([]string, len(texts))

	for start := 0; start < len(texts); start += batchChunkSize {
		end := min(start+batchChunkSize, len(texts))

		g, gctx := errgroup.WithContext(ctx)
		for i := start; i < end; i++ {
			g.Go(func() error {
				results[i] = s.Translate(gctx, texts[i], from, to, tc)
				return nil
			})
		}
		_ = g.Wait()
	}

	return results
}

// DetectLanguage classifies text into one of the supported codes, falling back
// to domain.DefaultLanguage.
func (s *TranslationService) DetectLanguage(ctx context.Context, text string) string {
	if strings.TrimSpace(text) == "" {
		metrics.LanguageDetectionsTotal.WithLabelValues("default").Inc()
		return domain.DefaultLanguage
	}

	start := time.Now()
	out, err := s.model.Generate(ctx, detectPrompt(text))
	metrics.LanguageModelDuration.WithLabelValues("detect").Observe(time.Since(start).Seconds())
	if err != nil {
		s.log.Warn().Err(err).Msg("language detection failed, using default")
		metrics.LanguageDetectionsTotal.WithLabelValues("default").Inc()
		return domain.DefaultLanguage
	}

	code := strings.ToLower(cleanModelOutput(out))
	if !domain.IsSupportedLanguage(code) {
		s.log.Debug().Str("answer", code).Msg("unrecognised language code, using default")
		metrics.LanguageDetectionsTotal.WithLabelValues("default").Inc()
		return domain.DefaultLanguage
	}

	metrics.LanguageDetectionsTotal.WithLabelValues("detected").Inc()
	return code
}

func translationCacheKey(text, from, to string, tc domain.TranslationContext) string {
	sum := sha256.Sum256([]byte(from + "|" + to + "|" + string(tc) + "|" + text))
	return "translation:" + hex.EncodeToString(sum[:])
}
