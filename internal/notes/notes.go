package notes

import (
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/relgen/pkg/models"
)

// Parse extracts the language-tagged blocks from a raw model response. Each
// language is searched independently, so a malformed block only costs that
// language its entry. English is mandatory: without it the whole bundle is
// discarded and an empty bundle returned.
func Parse(raw string) models.Bundle {
	bundle := models.Bundle{}

	for _, lang := range models.Languages {
		text, ok := extractBlock(raw, lang)
		if !ok {
			log.Warn().
				Str("language", lang.Code).
				Str("tag", lang.StartTag()).
				Msg("Could not parse language block from response")
			continue
		}
		bundle[lang.Code] = text
	}

	if !bundle.HasEnglish() {
		log.Error().Msg("Failed to extract mandatory English note from response")
		log.Debug().Str("raw_response", raw).Msg("Raw model response")
		return models.Bundle{}
	}

	return bundle
}

// extractBlock finds the first start/end tag pair for the language. The match
// is non-greedy and spans line breaks; the captured content is trimmed.
func extractBlock(raw string, lang models.Language) (string, bool) {
	pattern := regexp.MustCompile(`(?s)` + regexp.QuoteMeta(lang.StartTag()) + `(.*?)` + regexp.QuoteMeta(lang.EndTag()))
	m := pattern.FindStringSubmatch(raw)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// FillMissing substitutes the English text for any absent language, logging a
// warning per substitution. The bundle must contain English.
func FillMissing(bundle models.Bundle) models.Bundle {
	english := bundle[models.English.Code]
	for _, lang := range models.Languages {
		if bundle[lang.Code] != "" {
			continue
		}
		log.Warn().
			Str("language", lang.Code).
			Msg("Using English text as fallback for missing translation")
		bundle[lang.Code] = english
	}
	return bundle
}

// Format serializes the bundle into the fixed tagged-block output layout:
// one block per language in order, blocks separated by single line breaks,
// nothing after the final end tag.
func Format(bundle models.Bundle) string {
	var parts []string
	for _, lang := range models.Languages {
		parts = append(parts, lang.StartTag(), bundle[lang.Code], lang.EndTag())
	}
	return strings.Join(parts, "\n")
}
