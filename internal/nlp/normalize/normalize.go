// Package normalize reduces raw text to a token sequence suitable for
// vector-space comparison. The pipeline is deterministic, stateless and
// idempotent: lowercase, strip URLs, strip @mentions, strip digit runs,
// tokenize on unicode letter runs, drop per-language stopwords, drop
// single-character tokens.
package normalize

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/3moscas/tgbot/internal/model"
)

var (
	urlRe     = regexp.MustCompile(`(?:https?://|www\.)\S+`)
	mentionRe = regexp.MustCompile(`@\w+`)
	digitRe   = regexp.MustCompile(`\d+`)
	tokenRe   = regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*`)
)

// Normalize maps text to its reduced token sequence under lang.
// Unknown languages fall back to the default stopword list.
func Normalize(text string, lang model.Language) []string {
	lower := strings.ToLower(text)
	lower = urlRe.ReplaceAllString(lower, " ")
	lower = mentionRe.ReplaceAllString(lower, " ")
	lower = digitRe.ReplaceAllString(lower, " ")

	stop := stopwordsFor(lang)
	raw := tokenRe.FindAllString(lower, -1)
	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		if utf8.RuneCountInString(tok) <= 1 {
			continue
		}
		if _, isStop := stop[tok]; isStop {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// Join renders a token sequence back into a single normalized string.
func Join(tokens []string) string {
	return strings.Join(tokens, " ")
}

func stopwordsFor(lang model.Language) map[string]struct{} {
	if s, ok := stopwords[lang]; ok {
		return s
	}
	return stopwords[model.DefaultLanguage]
}
