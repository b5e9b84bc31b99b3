package corpus

import (
	"errors"
	"math"
	"sort"
)

// vectorSpace is a TF-IDF weighting model fitted once over the normalized
// sentences of a corpus. A query must be projected through the same fitted
// space that produced the corpus vectors; vectors from different fittings
// are not comparable.
type vectorSpace struct {
	vocabulary map[string]int
	idf        []float64
	dimension  int
}

var errNoVocabulary = errors.New("no tokens survived normalization")

// fitVectorSpace builds the vocabulary and smoothed IDF values from the
// normalized token sequences of all corpus sentences.
func fitVectorSpace(docs [][]string) (*vectorSpace, error) {
	df := make(map[string]int)
	for _, tokens := range docs {
		seen := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}
	if len(df) == 0 {
		return nil, errNoVocabulary
	}

	// Stable term ordering keeps vectors reproducible across builds.
	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	space := &vectorSpace{
		vocabulary: make(map[string]int, len(terms)),
		idf:        make([]float64, len(terms)),
		dimension:  len(terms),
	}
	n := float64(len(docs))
	for i, term := range terms {
		space.vocabulary[term] = i
		// Smoothed IDF
		space.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1.0
	}
	return space, nil
}

// vector projects a normalized token sequence into the fitted space.
// Out-of-vocabulary tokens contribute zero weight. The result is
// L2-normalized so cosine similarity reduces to a dot product.
func (s *vectorSpace) vector(tokens []string) []float64 {
	vec := make([]float64, s.dimension)
	tf := make(map[int]int)
	total := 0
	for _, tok := range tokens {
		if idx, ok := s.vocabulary[tok]; ok {
			tf[idx]++
			total++
		}
	}
	if total == 0 {
		return vec
	}
	for idx, count := range tf {
		vec[idx] = float64(count) / float64(total) * s.idf[idx]
	}
	norm := 0.0
	for _, v := range vec {
		norm += v * v
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
