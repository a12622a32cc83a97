package generator

import (
	"fmt"
	"strings"
)

// NegativePrompt steers the upstream generator away from low-quality output.
// It is sent with every request, independent of user input.
const NegativePrompt = "blurry, low quality, deformed, ugly, bad anatomy, " +
	"extra limbs, text, watermark, signature, realistic photo"

// BuildPrompt assembles the text prompt from the creature's name, its animal
// types and abilities, and the optional free-text description. The template is
// fixed so identical input always yields the identical prompt.
func BuildPrompt(name string, animalTypes, abilities []string, description string) string {
	prompt := fmt.Sprintf(
		"A cute pokemon creature named %s, a %s type creature with %s powers, "+
			"pokemon anime art style, vibrant colors, white background, "+
			"highly detailed, digital art",
		name,
		joinWords(animalTypes),
		joinWords(abilities),
	)

	if desc := strings.TrimSpace(description); desc != "" {
		prompt += ", " + desc
	}

	return prompt
}

// joinWords joins a list into natural language: "Dragon", "Dragon and Cat",
// "Dragon, Cat and Bird".
func joinWords(words []string) string {
	switch len(words) {
	case 0:
		return ""
	case 1:
		return words[0]
	default:
		return strings.Join(words[:len(words)-1], ", ") + " and " + words[len(words)-1]
	}
}
