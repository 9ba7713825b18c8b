package notes

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/relgen/pkg/models"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected models.Bundle
	}{
		{
			name: "all three blocks",
			raw:  "<en-US>\nHello\n</en-US>\n<ar>\nمرحبا\n</ar>\n<tr-TR>\nMerhaba\n</tr-TR>",
			expected: models.Bundle{
				"en": "Hello",
				"ar": "مرحبا",
				"tr": "Merhaba",
			},
		},
		{
			name: "missing arabic pair keeps the others",
			raw:  "<en-US>\nHello\n</en-US>\n<tr-TR>\nMerhaba\n</tr-TR>",
			expected: models.Bundle{
				"en": "Hello",
				"tr": "Merhaba",
			},
		},
		{
			name:     "missing english invalidates the whole bundle",
			raw:      "<ar>\nمرحبا\n</ar>\n<tr-TR>\nMerhaba\n</tr-TR>",
			expected: models.Bundle{},
		},
		{
			name:     "empty english invalidates the whole bundle",
			raw:      "<en-US>\n   \n</en-US>\n<ar>\nمرحبا\n</ar>",
			expected: models.Bundle{},
		},
		{
			name: "content spans multiple lines and is trimmed",
			raw:  "noise before\n<en-US>\n  We fixed bugs\nand improved speed.  \n</en-US>\nnoise after",
			expected: models.Bundle{
				"en": "We fixed bugs\nand improved speed.",
			},
		},
		{
			name: "non-greedy match stops at the first end tag",
			raw:  "<en-US>first</en-US>\n<en-US>second</en-US>",
			expected: models.Bundle{
				"en": "first",
			},
		},
		{
			name:     "empty response",
			raw:      "",
			expected: models.Bundle{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Parse(tt.raw))
		})
	}
}

func TestFillMissing(t *testing.T) {
	bundle := models.Bundle{"en": "Hello", "tr": "Merhaba"}

	filled := FillMissing(bundle)

	assert.Equal(t, "Hello", filled["en"])
	assert.Equal(t, "Hello", filled["ar"], "missing Arabic falls back to English")
	assert.Equal(t, "Merhaba", filled["tr"], "present translations are untouched")
}

func TestFormat(t *testing.T) {
	bundle := models.Bundle{"en": "Hello", "ar": "مرحبا", "tr": "Merhaba"}

	expected := "<en-US>\nHello\n</en-US>\n<ar>\nمرحبا\n</ar>\n<tr-TR>\nMerhaba\n</tr-TR>"
	assert.Equal(t, expected, Format(bundle))
}

func TestFormatThenParseRoundTrip(t *testing.T) {
	bundle := models.Bundle{"en": "Hello", "ar": "مرحبا", "tr": "Merhaba"}
	assert.Equal(t, bundle, Parse(Format(bundle)))
}
