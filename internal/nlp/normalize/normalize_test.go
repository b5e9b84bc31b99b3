package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/3moscas/tgbot/internal/model"
	"github.com/3moscas/tgbot/internal/nlp/normalize"
)

func TestNormalize(t *testing.T) {
	t.Run("Lowercases And Drops Punctuation", func(t *testing.T) {
		got := normalize.Normalize("O Gato é um Animal DOMÉSTICO!", model.LanguagePortuguese)
		assert.Equal(t, []string{"gato", "animal", "doméstico"}, got)
	})

	t.Run("Strips URLs Mentions And Digits", func(t *testing.T) {
		got := normalize.Normalize(
			"veja https://example.com/artigo e www.site.org @fulano capítulo 42 cachorros",
			model.LanguagePortuguese,
		)
		assert.Equal(t, []string{"veja", "capítulo", "cachorros"}, got)
	})

	t.Run("Keeps Pipeline Order", func(t *testing.T) {
		// URL stripping must run before punctuation removal, otherwise the
		// URL body would leak into the token stream.
		got := normalize.Normalize("http://gato.example.com cachorro", model.LanguagePortuguese)
		assert.Equal(t, []string{"cachorro"}, got)
	})

	t.Run("Drops Stopwords And Short Tokens", func(t *testing.T) {
		got := normalize.Normalize("the cat is a pet", model.LanguageEnglish)
		assert.Equal(t, []string{"cat", "pet"}, got)
	})

	t.Run("Unknown Language Falls Back To Default Stopwords", func(t *testing.T) {
		got := normalize.Normalize("o gato doméstico", model.Language("fr"))
		assert.Equal(t, []string{"gato", "doméstico"}, got)
	})

	t.Run("Idempotent", func(t *testing.T) {
		for _, text := range []string{
			"O gato é um animal doméstico, veja https://example.com!",
			"Dogs are loyal companions since 10000 BC.",
			"@user disse: olá!!! 123",
		} {
			once := normalize.Normalize(text, model.LanguagePortuguese)
			twice := normalize.Normalize(normalize.Join(once), model.LanguagePortuguese)
			assert.Equal(t, once, twice, "normalize must be idempotent for %q", text)
		}
	})

	t.Run("Empty Input", func(t *testing.T) {
		assert.Empty(t, normalize.Normalize("", model.LanguagePortuguese))
		assert.Empty(t, normalize.Normalize("123 !!! @x", model.LanguagePortuguese))
	})
}
