package llm

import "strings"

// boilerplatePhrases are stripped from image prompts before submission.
// Removal is greedy and follows list order, so the "of"-suffixed forms
// must come before their shorter counterparts.
var boilerplatePhrases = []string{
	"create an image of", "generate an image of", "make an image of",
	"draw an image of", "show me an image of", "create a picture of",
	"generate a picture of", "make a picture of", "draw a picture of",
	"show me a picture of", "visualize", "illustrate",
}

// CleanImagePrompt lower-cases the raw request, removes every occurrence of
// the boilerplate request phrases and trims surrounding whitespace. The
// result is what gets sent to the image provider and echoed to the user.
// Cleaning an already-clean prompt is a no-op.
func CleanImagePrompt(prompt string) string {
	cleaned := strings.ToLower(prompt)
	for _, phrase := range boilerplatePhrases {
		cleaned = strings.ReplaceAll(cleaned, phrase, "")
	}
	return strings.TrimSpace(cleaned)
}
