package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/homeserve/household-api/internal/core/domain"
)

func TestTranslationHandler_Translate(t *testing.T) {
	stub := &stubTranslationService{
		translateFn: func(_ context.Context, text, from, to string, tc domain.TranslationContext) string {
			if text != "Lunch" || from != "en" || to != "hi" || tc != domain.ContextGeneral {
				t.Fatalf("unexpected call: %q %s %s %s", text, from, to, tc)
			}
			return "दोपहर का भोजन"
		},
	}
	c, rec := newContext(http.MethodPost, "/translate", `{"text":"Lunch","from":"en","to":"hi"}`, "")

	if err := NewTranslationHandler(stub).Translate(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp translateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.TranslatedText != "दोपहर का भोजन" {
		t.Fatalf("unexpected translation: %q", resp.TranslatedText)
	}
}

func TestTranslationHandler_Translate_Validation(t *testing.T) {
	tests := []string{
		`{"from":"en","to":"hi"}`,
		`{"text":"x","from":"en","to":"fr"}`,
		`{"text":"x","from":"en","to":"hi","context":"menu"}`,
	}
	for _, body := range tests {
		c, _ := newContext(http.MethodPost, "/translate", body, "")
		if err := NewTranslationHandler(&stubTranslationService{}).Translate(c); httpCode(err) != http.StatusUnprocessableEntity {
			t.Fatalf("body %s: expected 422, got %v", body, err)
		}
	}
}

func TestTranslationHandler_TranslateBatch(t *testing.T) {
	stub := &stubTranslationService{
		translateBatchFn: func(_ context.Context, texts []string, _, _ string, tc domain.TranslationContext) []string {
			if tc != domain.ContextService {
				t.Fatalf("unexpected context %s", tc)
			}
			out := make([]string, len(texts))
			for i, s := range texts {
				out[i] = s + "!"
			}
			return out
		},
	}
	c, rec := newContext(http.MethodPost, "/translate-batch", `{"texts":["a","b","c"],"from":"en","to":"ta","context":"service"}`, "")

	if err := NewTranslationHandler(stub).TranslateBatch(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp translateBatchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Translations) != 3 || resp.Translations[2] != "c!" {
		t.Fatalf("unexpected translations: %v", resp.Translations)
	}
}

func TestTranslationHandler_TranslateBatch_Empty(t *testing.T) {
	c, _ := newContext(http.MethodPost, "/translate-batch", `{"texts":[],"from":"en","to":"ta"}`, "")
	if err := NewTranslationHandler(&stubTranslationService{}).TranslateBatch(c); httpCode(err) != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestTranslationHandler_DetectLanguage(t *testing.T) {
	stub := &stubTranslationService{
		detectFn: func(context.Context, string) string { return "mr" },
	}
	c, rec := newContext(http.MethodPost, "/detect-language", `{"text":"नमस्कार"}`, "")

	if err := NewTranslationHandler(stub).DetectLanguage(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp detectLanguageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil || resp.Language != "mr" {
		t.Fatalf("unexpected response %s: %v", rec.Body.String(), err)
	}
}

func TestTranslationHandler_Languages(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/languages", "", "")

	if err := NewTranslationHandler(&stubTranslationService{}).Languages(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp languagesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Languages) != 10 {
		t.Fatalf("expected 10 languages, got %d", len(resp.Languages))
	}
}
