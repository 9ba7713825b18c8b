package prompt

import (
	"fmt"
	"strings"

	"github.com/relgen/pkg/models"
)

// Build formats the commit subjects into the single generation prompt. Pure
// string assembly: identical input always yields an identical prompt.
func Build(commits []string) string {
	var b strings.Builder

	b.WriteString("Analyze the following recent git commit messages and perform the tasks below:\n\n")

	b.WriteString("Commit Messages:\n")
	for _, commit := range commits {
		fmt.Fprintf(&b, "- %s\n", commit)
	}
	b.WriteString("\n")

	b.WriteString("Tasks:\n")
	b.WriteString("1. Generate a user-friendly release note summary in English, suitable for the Google Play Store.\n")
	b.WriteString("   - Keep it concise and easy for non-technical users to understand.\n")
	b.WriteString("   - Focus on the user-visible changes or improvements.\n")
	b.WriteString("   - Use very few emojis, if any.\n")
	b.WriteString("   - Do NOT use any markdown formatting (like *, -, #) or HTML tags in the content of the notes.\n")
	b.WriteString("   - The note should be a single paragraph of text.\n")
	b.WriteString("2. Translate the generated English release note into Arabic.\n")
	b.WriteString("3. Translate the generated English release note into Turkish.\n")
	b.WriteString("4. Format the output *exactly* as follows, including the language tags, with each note on its own set of lines:\n")

	for _, lang := range models.Languages {
		fmt.Fprintf(&b, "   %s\n", lang.StartTag())
		fmt.Fprintf(&b, "   [%s release note here]\n", languageLabel(lang))
		fmt.Fprintf(&b, "   %s\n", lang.EndTag())
	}
	b.WriteString("\n")

	b.WriteString("Output only the formatted notes with the tags. Do not include any other text, explanations, or markdown before or after this structure.\n")

	return b.String()
}

func languageLabel(lang models.Language) string {
	switch lang.Code {
	case models.English.Code:
		return "English"
	case models.Arabic.Code:
		return "Arabic translation"
	case models.Turkish.Code:
		return "Turkish translation"
	default:
		return lang.Code
	}
}
