// Package corpus owns an ordered corpus of sentences, their normalized
// forms and a TF-IDF vector space over them, and answers cosine-similarity
// queries against it. An Index is immutable after Build; replacing the
// corpus means building a new Index and swapping the reference.
package corpus

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/3moscas/tgbot/internal/model"
	"github.com/3moscas/tgbot/internal/nlp/normalize"
)

// DefaultThreshold is the minimum cosine similarity for a match to be
// accepted by FindBestMatch.
const DefaultThreshold = 0.1

// ErrEmptyCorpus is returned by Build when the source text contains no
// sentences. A failed build must leave any previously live index untouched.
var ErrEmptyCorpus = errors.New("corpus: source text yields no sentences")

// LanguageDetector classifies a text fragment into a language tag.
type LanguageDetector interface {
	Detect(text string) model.Language
}

// Match is a corpus sentence paired with its similarity to a query.
type Match struct {
	Sentence string
	Index    int
	Score    float64
}

// Index is an immutable snapshot pairing a sentence corpus with the
// TF-IDF space fitted over it.
type Index struct {
	detector  LanguageDetector
	sentences []string
	vectors   [][]float64
	space     *vectorSpace
}

// Build segments rawText into sentences, detects each sentence's language
// independently (a corpus may mix languages sentence by sentence),
// normalizes every sentence under its own language, fits one TF-IDF space
// over the whole set and stores per-sentence vectors.
func Build(rawText string, detector LanguageDetector) (*Index, error) {
	if strings.TrimSpace(rawText) == "" {
		return nil, ErrEmptyCorpus
	}
	sentences := segment(rawText)
	if len(sentences) == 0 {
		return nil, ErrEmptyCorpus
	}

	docs := make([][]string, len(sentences))
	for i, sent := range sentences {
		docs[i] = normalize.Normalize(sent, detector.Detect(sent))
	}

	space, err := fitVectorSpace(docs)
	if err != nil {
		return nil, fmt.Errorf("corpus: %w", err)
	}

	vectors := make([][]float64, len(docs))
	for i, tokens := range docs {
		vectors[i] = space.vector(tokens)
	}

	return &Index{
		detector:  detector,
		sentences: sentences,
		vectors:   vectors,
		space:     space,
	}, nil
}

// Len returns the number of sentences in the corpus.
func (ix *Index) Len() int { return len(ix.sentences) }

// Sentences returns the ordered source sentences.
func (ix *Index) Sentences() []string { return ix.sentences }

// FindBestMatch returns the highest-scoring corpus sentence for query, or
// ok=false when the best score falls below threshold. Ties are broken by
// the lowest corpus index so results are deterministic.
func (ix *Index) FindBestMatch(query string, threshold float64) (Match, bool) {
	scores := ix.score(query)
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	if len(scores) == 0 || scores[best] < threshold {
		return Match{}, false
	}
	return Match{Sentence: ix.sentences[best], Index: best, Score: scores[best]}, true
}

// FindTopMatches returns up to n matches ordered by descending score,
// ties broken by ascending corpus index. n larger than the corpus simply
// returns the whole corpus ranked.
func (ix *Index) FindTopMatches(query string, n int) []Match {
	if n <= 0 {
		return nil
	}
	scores := ix.score(query)
	matches := make([]Match, len(scores))
	for i, s := range scores {
		matches[i] = Match{Sentence: ix.sentences[i], Index: i, Score: s}
	}
	sort.SliceStable(matches, func(a, b int) bool {
		if matches[a].Score != matches[b].Score {
			return matches[a].Score > matches[b].Score
		}
		return matches[a].Index < matches[b].Index
	})
	if n > len(matches) {
		n = len(matches)
	}
	return matches[:n]
}

// score projects query into the fitted space and computes cosine
// similarity against every stored sentence vector. Out-of-vocabulary
// query terms contribute zero weight; that is expected, not an error.
func (ix *Index) score(query string) []float64 {
	tokens := normalize.Normalize(query, ix.detector.Detect(query))
	qvec := ix.space.vector(tokens)
	scores := make([]float64, len(ix.vectors))
	for i, v := range ix.vectors {
		scores[i] = dot(v, qvec)
	}
	return scores
}
