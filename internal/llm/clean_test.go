package llm

import "testing"

func TestCleanImagePrompt(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Draw a picture of a castle", "a castle"},
		{"Create an image of a sunset over the ocean", "a sunset over the ocean"},
		{"visualize the solar system", "the solar system"},
		{"a castle", "a castle"},
		{"  Mixed CASE prompt  ", "mixed case prompt"},
		{"illustrate photosynthesis", "photosynthesis"},
	}

	for _, tc := range cases {
		if got := CleanImagePrompt(tc.input); got != tc.want {
			t.Errorf("CleanImagePrompt(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestCleanImagePromptIdempotent(t *testing.T) {
	inputs := []string{
		"Draw a picture of a castle",
		"generate an image of a DNA double helix",
		"plain prompt with no boilerplate",
		"",
	}
	for _, in := range inputs {
		once := CleanImagePrompt(in)
		twice := CleanImagePrompt(once)
		if once != twice {
			t.Errorf("cleaning not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestCleanImagePromptRemovesAllOccurrences(t *testing.T) {
	got := CleanImagePrompt("create an image of a cat and create an image of a dog")
	if got != "a cat and  a dog" {
		t.Fatalf("greedy removal mismatch: %q", got)
	}
}
