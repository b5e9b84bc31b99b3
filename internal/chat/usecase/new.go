package usecase

import (
	"context"
	"sync/atomic"

	"github.com/3moscas/tgbot/internal/model"
	"github.com/3moscas/tgbot/internal/nlp/corpus"
	"github.com/3moscas/tgbot/internal/nlp/sentiment"
	pkgLog "github.com/3moscas/tgbot/pkg/log"
)

// Detector classifies a text fragment into a supported language.
type Detector interface {
	Detect(text string) model.Language
}

// Analyzer scores the polarity of a text fragment.
type Analyzer interface {
	Analyze(ctx context.Context, text string) sentiment.Score
}

// Summarizer condenses text in a target language.
type Summarizer interface {
	Summarize(ctx context.Context, text string, language string) (string, error)
}

// Transcriber converts voice audio into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, language string) (string, error)
}

// VoiceStore resolves and downloads voice note files.
type VoiceStore interface {
	GetFileURL(ctx context.Context, fileID string) (string, error)
	DownloadFile(ctx context.Context, url string) ([]byte, error)
}

// CorpusSource fetches the plain text an index is built from.
type CorpusSource interface {
	FetchExtract(ctx context.Context, topic string) (string, error)
}

type implUseCase struct {
	l           pkgLog.Logger
	detector    Detector
	analyzer    Analyzer
	summarizer  Summarizer
	transcriber Transcriber
	voices      VoiceStore
	source      CorpusSource
	threshold   float64

	// One live corpus/space snapshot; readers load it once per request and
	// never observe a partially swapped pair.
	index atomic.Pointer[corpus.Index]
}

// New creates a new chat UseCase instance. initial may be nil when no corpus
// is loaded at boot.
func New(
	l pkgLog.Logger,
	detector Detector,
	analyzer Analyzer,
	summarizer Summarizer,
	transcriber Transcriber,
	voices VoiceStore,
	source CorpusSource,
	threshold float64,
	initial *corpus.Index,
) *implUseCase {
	uc := &implUseCase{
		l:           l,
		detector:    detector,
		analyzer:    analyzer,
		summarizer:  summarizer,
		transcriber: transcriber,
		voices:      voices,
		source:      source,
		threshold:   threshold,
	}
	if initial != nil {
		uc.index.Store(initial)
	}
	return uc
}
