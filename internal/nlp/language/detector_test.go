package language_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/3moscas/tgbot/internal/model"
	"github.com/3moscas/tgbot/internal/nlp/language"
)

func TestDetect(t *testing.T) {
	d := language.NewDetector()

	t.Run("Portuguese", func(t *testing.T) {
		got := d.Detect("O gato é um animal doméstico muito comum nas casas brasileiras.")
		assert.Equal(t, model.LanguagePortuguese, got)
	})

	t.Run("English", func(t *testing.T) {
		got := d.Detect("The weather today is absolutely wonderful for a long walk.")
		assert.Equal(t, model.LanguageEnglish, got)
	})

	t.Run("French Is Detected But Not Supported", func(t *testing.T) {
		got := d.Detect("Bonjour, je voudrais savoir quelle heure il est maintenant.")
		assert.Equal(t, model.LanguageFrench, got)
		assert.False(t, model.Supported(got))
	})

	t.Run("Empty Input Falls Back", func(t *testing.T) {
		assert.Equal(t, model.DefaultLanguage, d.Detect(""))
		assert.Equal(t, model.DefaultLanguage, d.Detect("   "))
	})
}
