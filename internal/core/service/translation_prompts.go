package service

import (
	"fmt"
	"strings"

	"github.com/homeserve/household-api/internal/core/domain"
)

var contextInstructions = map[domain.TranslationContext]string{
	domain.ContextService:     "The text comes from a household service listing that a cook or maid published for residents.",
	domain.ContextRequirement: "The text comes from a request a resident posted while looking for a cook or maid.",
	domain.ContextProfile:     "The text comes from a user profile in a residential community app.",
	domain.ContextGeneral:     "The text comes from a residential community app that connects residents with cooks and maids.",
}

func translatePrompt(text, from, to string, tc domain.TranslationContext) string {
	instruction, ok := contextInstructions[tc]
	if !ok {
		instruction = contextInstructions[domain.ContextGeneral]
	}

	return fmt.Sprintf(`You translate content for a residential household services app.
%s

Translate the text below from %s to %s.

Rules:
1. Keep numbers, prices, currency amounts, phone numbers, addresses, block and flat numbers, usernames and timestamps exactly as written.
2. Translate only descriptive content and labels.
3. Reply with the translated text only, without quotes, notes or explanations.

Text:
%s`, instruction, domain.LanguageName(from), domain.LanguageName(to), text)
}

func detectPrompt(text string) string {
	codes := make([]string, 0, len(domain.SupportedLanguages))
	for _, l := range domain.SupportedLanguages {
		codes = append(codes, fmt.Sprintf("%s (%s)", l.Code, l.Name))
	}

	return fmt.Sprintf(`Identify the language of the text below.
Answer with exactly one of these codes and nothing else: %s.
If you are not sure, answer en.

Text:
%s`, strings.Join(codes, ", "), text)
}

// quotePairs maps the opening quote models wrap short answers in to its
// closing counterpart.
var quotePairs = map[rune]rune{
	'"':  '"',
	'\'': '\'',
	'`':  '`',
	'“':  '”',
	'‘':  '’',
}

// cleanModelOutput trims whitespace and removes one pair of surrounding
// quotes. Unpaired quotes are part of the text.
func cleanModelOutput(s string) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) < 2 {
		return s
	}
	if closing, ok := quotePairs[r[0]]; ok && r[len(r)-1] == closing {
		return strings.TrimSpace(string(r[1 : len(r)-1]))
	}
	return s
}
