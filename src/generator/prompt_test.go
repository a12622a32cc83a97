package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt_ContainsAllParts(t *testing.T) {
	prompt := BuildPrompt("Blaze", []string{"Dragon", "Cat"}, []string{"Fire"}, "")

	assert.Contains(t, prompt, "Blaze")
	assert.Contains(t, prompt, "Dragon and Cat")
	assert.Contains(t, prompt, "Fire")
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	a := BuildPrompt("Blaze", []string{"Dragon"}, []string{"Fire", "Ice"}, "small wings")
	b := BuildPrompt("Blaze", []string{"Dragon"}, []string{"Fire", "Ice"}, "small wings")

	assert.Equal(t, a, b)
}

func TestBuildPrompt_Description(t *testing.T) {
	without := BuildPrompt("Blaze", []string{"Dragon"}, []string{"Fire"}, "")
	with := BuildPrompt("Blaze", []string{"Dragon"}, []string{"Fire"}, "  glowing scales  ")

	assert.NotContains(t, without, "glowing scales")
	assert.Contains(t, with, "glowing scales")
}

func TestJoinWords(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		want  string
	}{
		{"empty", nil, ""},
		{"single", []string{"Dragon"}, "Dragon"},
		{"pair", []string{"Dragon", "Cat"}, "Dragon and Cat"},
		{"triple", []string{"Fire", "Ice", "Wind"}, "Fire, Ice and Wind"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, joinWords(tt.words))
		})
	}
}
