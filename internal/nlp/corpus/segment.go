package corpus

import (
	"strings"
	"sync"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

var (
	segmenterOnce sync.Once
	segmenter     *sentences.DefaultSentenceTokenizer
)

// segment splits raw text into sentences using a Punkt-trained tokenizer,
// which copes with abbreviations and ellipses far better than splitting on
// periods. The English training data generalizes well enough for the
// Romance languages in the corpus.
func segment(raw string) []string {
	segmenterOnce.Do(func() {
		tok, err := english.NewSentenceTokenizer(nil)
		if err != nil {
			// The embedded training data always parses; a failure here is
			// a build-environment problem, not a runtime condition.
			panic(err)
		}
		segmenter = tok
	})

	var out []string
	for _, s := range segmenter.Tokenize(raw) {
		text := strings.TrimSpace(s.Text)
		if text == "" {
			continue
		}
		out = append(out, text)
	}
	return out
}
