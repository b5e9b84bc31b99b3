// Package sentiment scores text polarity and derives the response-framing
// label used by the dispatcher. Scoring uses an English valence lexicon, so
// input is pivot-translated to English first; a failed translation degrades
// gracefully and analysis proceeds on the original text.
package sentiment

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/3moscas/tgbot/pkg/log"
)

// Label is the 3-way sentiment classification.
type Label string

const (
	LabelPositive Label = "positive"
	LabelNeutral  Label = "neutral"
	LabelNegative Label = "negative"
)

// Classification thresholds on the compound score.
const (
	PositiveThreshold  = 0.05
	NegativeThreshold  = -0.05
	InterveneThreshold = -0.3
)

// Pivot records whether the analyzed text was translated to the pivot
// language, so callers can tell "analyzed translated text" apart from
// "fell back to the original".
type Pivot struct {
	Applied bool
	Reason  string
}

// Score holds the polarity measures of one text.
type Score struct {
	Positive float64
	Neutral  float64
	Negative float64
	Compound float64
	Label    Label
	Pivot    Pivot
}

// RequiresIntervention reports whether the score is severe enough to
// trigger the crisis-framing reply. Strictly stricter than the negative
// label: intervention implies negative, not the other way around.
func (s Score) RequiresIntervention() bool {
	return s.Compound <= InterveneThreshold
}

// Classify maps a compound score to its label. Boundaries are inclusive:
// exactly +0.05 is positive, exactly -0.05 is negative.
func Classify(compound float64) Label {
	switch {
	case compound >= PositiveThreshold:
		return LabelPositive
	case compound <= NegativeThreshold:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

// Translator translates text into a target language.
type Translator interface {
	Translate(ctx context.Context, text, target string) (string, error)
}

const (
	pivotLanguage  = "en"
	cacheSize      = 512
	cacheTTL       = 15 * time.Minute
	reasonNoPivot  = "translator not configured"
)

// Analyzer scores texts. Safe for concurrent use.
type Analyzer struct {
	l          log.Logger
	translator Translator
	cache      *expirable.LRU[string, string]
}

// NewAnalyzer creates an analyzer. translator may be nil, in which case
// every analysis runs on the original text.
func NewAnalyzer(l log.Logger, translator Translator) *Analyzer {
	return &Analyzer{
		l:          l,
		translator: translator,
		cache:      expirable.NewLRU[string, string](cacheSize, nil, cacheTTL),
	}
}

// Analyze computes the polarity score of text.
func (a *Analyzer) Analyze(ctx context.Context, text string) Score {
	pivoted, pivot := a.pivot(ctx, text)
	pos, neu, neg, compound := polarityScores(pivoted)
	return Score{
		Positive: pos,
		Neutral:  neu,
		Negative: neg,
		Compound: compound,
		Label:    Classify(compound),
		Pivot:    pivot,
	}
}

// ShouldIntervene reports whether text carries severe negative affect.
func (a *Analyzer) ShouldIntervene(ctx context.Context, text string) bool {
	return a.Analyze(ctx, text).RequiresIntervention()
}

// pivot translates text to the pivot language, serving repeated inputs
// from the cache. Failures never escape: the original text is returned
// with the reason recorded.
func (a *Analyzer) pivot(ctx context.Context, text string) (string, Pivot) {
	if a.translator == nil {
		return text, Pivot{Applied: false, Reason: reasonNoPivot}
	}
	if cached, ok := a.cache.Get(text); ok {
		return cached, Pivot{Applied: true}
	}
	translated, err := a.translator.Translate(ctx, text, pivotLanguage)
	if err != nil {
		a.l.Warnf(ctx, "sentiment: pivot translation failed, scoring original text: %v", err)
		return text, Pivot{Applied: false, Reason: err.Error()}
	}
	a.cache.Add(text, translated)
	return translated, Pivot{Applied: true}
}

// EmpatheticPrefix returns the framing phrase for a label; empty for
// neutral so ordinary replies stay unadorned.
func EmpatheticPrefix(label Label) string {
	switch label {
	case LabelNegative:
		return "Entendo que pode estar passando por um momento difícil. "
	case LabelPositive:
		return "Que bom! "
	default:
		return ""
	}
}

// InterventionMessage replaces the ordinary prefix when
// RequiresIntervention is true. Intervention framing always wins.
const InterventionMessage = "Percebo que você pode estar passando por dificuldades. "
