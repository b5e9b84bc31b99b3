package sentiment_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/3moscas/tgbot/internal/nlp/sentiment"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockTranslator struct {
	translateFunc func(text, target string) (string, error)
	calls         int
}

func (m *mockTranslator) Translate(ctx context.Context, text, target string) (string, error) {
	m.calls++
	if m.translateFunc != nil {
		return m.translateFunc(text, target)
	}
	return text, nil
}

func TestClassify(t *testing.T) {
	// Boundaries are inclusive on both sides.
	assert.Equal(t, sentiment.LabelPositive, sentiment.Classify(0.05))
	assert.Equal(t, sentiment.LabelNegative, sentiment.Classify(-0.05))
	assert.Equal(t, sentiment.LabelNeutral, sentiment.Classify(0.0))
	assert.Equal(t, sentiment.LabelNeutral, sentiment.Classify(0.049))
	assert.Equal(t, sentiment.LabelNeutral, sentiment.Classify(-0.049))
	assert.Equal(t, sentiment.LabelPositive, sentiment.Classify(0.9))
	assert.Equal(t, sentiment.LabelNegative, sentiment.Classify(-0.9))
}

func TestAnalyze(t *testing.T) {
	ctx := context.Background()

	t.Run("Positive Text", func(t *testing.T) {
		a := sentiment.NewAnalyzer(&mockLogger{}, nil)
		score := a.Analyze(ctx, "I love this, it is wonderful and amazing")
		assert.Equal(t, sentiment.LabelPositive, score.Label)
		assert.Greater(t, score.Compound, sentiment.PositiveThreshold)
		assert.False(t, score.RequiresIntervention())
	})

	t.Run("Negative Text", func(t *testing.T) {
		a := sentiment.NewAnalyzer(&mockLogger{}, nil)
		score := a.Analyze(ctx, "this is bad and annoying")
		assert.Equal(t, sentiment.LabelNegative, score.Label)
	})

	t.Run("Neutral Text", func(t *testing.T) {
		a := sentiment.NewAnalyzer(&mockLogger{}, nil)
		score := a.Analyze(ctx, "the table has four legs")
		assert.Equal(t, sentiment.LabelNeutral, score.Label)
		assert.InDelta(t, 0.0, score.Compound, 1e-9)
	})

	t.Run("Negation Flips Valence", func(t *testing.T) {
		a := sentiment.NewAnalyzer(&mockLogger{}, nil)
		positive := a.Analyze(ctx, "this is good")
		negated := a.Analyze(ctx, "this is not good")
		assert.Greater(t, positive.Compound, 0.0)
		assert.Less(t, negated.Compound, 0.0)
	})

	t.Run("No Translator Records Fallback", func(t *testing.T) {
		a := sentiment.NewAnalyzer(&mockLogger{}, nil)
		score := a.Analyze(ctx, "whatever")
		assert.False(t, score.Pivot.Applied)
		assert.NotEmpty(t, score.Pivot.Reason)
	})

	t.Run("Pivot Translation Applied", func(t *testing.T) {
		tr := &mockTranslator{translateFunc: func(text, target string) (string, error) {
			assert.Equal(t, "en", target)
			return "I am very happy", nil
		}}
		a := sentiment.NewAnalyzer(&mockLogger{}, tr)
		score := a.Analyze(ctx, "estou muito feliz")
		assert.True(t, score.Pivot.Applied)
		assert.Equal(t, sentiment.LabelPositive, score.Label)
	})

	t.Run("Translation Failure Degrades Gracefully", func(t *testing.T) {
		tr := &mockTranslator{translateFunc: func(text, target string) (string, error) {
			return "", errors.New("quota exceeded")
		}}
		a := sentiment.NewAnalyzer(&mockLogger{}, tr)
		score := a.Analyze(ctx, "this is terrible")
		assert.False(t, score.Pivot.Applied)
		assert.Contains(t, score.Pivot.Reason, "quota exceeded")
		// Analysis still ran on the original text.
		assert.Equal(t, sentiment.LabelNegative, score.Label)
	})

	t.Run("Repeated Input Served From Cache", func(t *testing.T) {
		tr := &mockTranslator{}
		a := sentiment.NewAnalyzer(&mockLogger{}, tr)
		a.Analyze(ctx, "same text")
		a.Analyze(ctx, "same text")
		assert.Equal(t, 1, tr.calls)
	})
}

func TestShouldIntervene(t *testing.T) {
	ctx := context.Background()
	a := sentiment.NewAnalyzer(&mockLogger{}, nil)

	t.Run("Severe Negative Affect Triggers", func(t *testing.T) {
		assert.True(t, a.ShouldIntervene(ctx, "I feel hopeless and miserable, I hate everything"))
	})

	t.Run("Mild Negativity Does Not Trigger", func(t *testing.T) {
		// "sorry" alone is negative but nowhere near the intervention gate.
		score := a.Analyze(ctx, "sorry about that")
		assert.False(t, score.RequiresIntervention())
	})

	t.Run("Strictly Stricter Than Negative Label", func(t *testing.T) {
		for _, text := range []string{
			"I feel hopeless and miserable, I hate everything",
			"this is bad",
			"what a wonderful day",
			"the table has four legs",
		} {
			score := a.Analyze(ctx, text)
			if score.RequiresIntervention() {
				assert.Equal(t, sentiment.LabelNegative, score.Label,
					"intervention must imply the negative label for %q", text)
			}
		}
	})
}

func TestEmpatheticPrefix(t *testing.T) {
	assert.NotEmpty(t, sentiment.EmpatheticPrefix(sentiment.LabelNegative))
	assert.NotEmpty(t, sentiment.EmpatheticPrefix(sentiment.LabelPositive))
	assert.Empty(t, sentiment.EmpatheticPrefix(sentiment.LabelNeutral))
	assert.NotEqual(t, sentiment.EmpatheticPrefix(sentiment.LabelNegative), sentiment.InterventionMessage)
}
