// Package topics holds the reference data shown by the /subjects and
// /examples commands.
package topics

// Subjects the assistant is prepared to help with.
var Subjects = []string{
	"Mathematics",
	"Science",
	"History",
	"English/Literature",
	"Geography",
	"Study Tips",
}

// TextExamples are ready-made questions answered with text.
var TextExamples = []string{
	"Explain photosynthesis",
	"What is the Pythagorean theorem?",
	"Tell me about World War II",
	"How do I solve quadratic equations?",
	"What are the parts of speech?",
	"Explain the water cycle",
	"What caused the American Revolution?",
	"How does DNA replication work?",
}

// ImageExamples are ready-made requests answered with a generated image.
var ImageExamples = []string{
	"Create an image of a solar system",
	"Generate a picture of a medieval castle",
	"Draw an image of a DNA double helix",
	"Make a picture of a peaceful forest",
	"Show me the structure of an atom",
	"Create a diagram of photosynthesis",
	"Generate an image of ancient Rome",
	"Draw a picture of the water cycle",
}
