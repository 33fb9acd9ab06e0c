// Package intent decides whether a message asks for an image or for text.
// The heuristic is case-insensitive substring matching against a fixed
// phrase list; it signals delivery modality only, not topic validity.
package intent

import "strings"

// DefaultImagePhrases mark a message as an image-generation request.
// A bare generic verb ("create") is intentionally not in the list.
var DefaultImagePhrases = []string{
	"create an image", "generate an image", "make an image", "draw an image",
	"create a picture", "generate a picture", "make a picture", "draw a picture",
	"show me an image", "show me a picture", "visualize", "illustrate",
	"create art", "generate art", "make art", "draw art",
	"design", "sketch", "paint", "render",
	"create image", "generate image", "make image", "draw image",
	"create picture", "generate picture", "make picture", "draw picture",
	"draw me", "show me a", "can you draw", "can you create",
	"can you generate", "can you make", "i want an image", "i want a picture",
}

type Classifier struct {
	phrases []string
}

func New(phrases []string) *Classifier {
	if len(phrases) == 0 {
		phrases = DefaultImagePhrases
	}
	return &Classifier{phrases: phrases}
}

// IsImageRequest reports whether any configured phrase occurs in the input.
// Matching is substring, not prefix; an empty input never matches.
func (c *Classifier) IsImageRequest(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range c.phrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
