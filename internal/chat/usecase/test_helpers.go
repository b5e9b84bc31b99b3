package usecase

import (
	"context"

	"github.com/3moscas/tgbot/internal/model"
	"github.com/3moscas/tgbot/internal/nlp/corpus"
	"github.com/3moscas/tgbot/internal/nlp/sentiment"
)

// Mock logger for testing
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

// Mock language detector with a fixed answer
type mockDetector struct {
	lang model.Language
}

func (m *mockDetector) Detect(text string) model.Language {
	return m.lang
}

// Mock sentiment analyzer with a fixed score
type mockAnalyzer struct {
	score sentiment.Score
	calls int
}

func (m *mockAnalyzer) Analyze(ctx context.Context, text string) sentiment.Score {
	m.calls++
	return m.score
}

// Mock summarizer
type mockSummarizer struct {
	summary string
	err     error
	calls   int
}

func (m *mockSummarizer) Summarize(ctx context.Context, text string, language string) (string, error) {
	m.calls++
	return m.summary, m.err
}

// Mock transcriber
type mockTranscriber struct {
	text  string
	err   error
	calls int
}

func (m *mockTranscriber) Transcribe(ctx context.Context, audio []byte, language string) (string, error) {
	m.calls++
	return m.text, m.err
}

// Mock voice file store
type mockVoiceStore struct {
	url    string
	data   []byte
	urlErr error
	dlErr  error
}

func (m *mockVoiceStore) GetFileURL(ctx context.Context, fileID string) (string, error) {
	return m.url, m.urlErr
}

func (m *mockVoiceStore) DownloadFile(ctx context.Context, url string) ([]byte, error) {
	return m.data, m.dlErr
}

// Mock corpus source
type mockSource struct {
	text  string
	err   error
	calls int
}

func (m *mockSource) FetchExtract(ctx context.Context, topic string) (string, error) {
	m.calls++
	return m.text, m.err
}

const petCorpus = "O gato é um animal doméstico. Cachorros são leais. Pássaros cantam pela manhã. Peixes vivem em aquários."

// buildTestIndex builds a small Portuguese index for retrieval tests.
func buildTestIndex() *corpus.Index {
	index, err := corpus.Build(petCorpus, &mockDetector{lang: model.LanguagePortuguese})
	if err != nil {
		panic(err)
	}
	return index
}

type testDeps struct {
	detector    *mockDetector
	analyzer    *mockAnalyzer
	summarizer  *mockSummarizer
	transcriber *mockTranscriber
	voices      *mockVoiceStore
	source      *mockSource
}

func newTestUseCase(initial *corpus.Index) (*implUseCase, *testDeps) {
	deps := &testDeps{
		detector:    &mockDetector{lang: model.LanguagePortuguese},
		analyzer:    &mockAnalyzer{score: sentiment.Score{Label: sentiment.LabelNeutral}},
		summarizer:  &mockSummarizer{summary: "um resumo"},
		transcriber: &mockTranscriber{text: "olá"},
		voices:      &mockVoiceStore{url: "https://files.local/voice.oga", data: []byte("OggS")},
		source:      &mockSource{text: petCorpus},
	}
	uc := New(
		&mockLogger{},
		deps.detector,
		deps.analyzer,
		deps.summarizer,
		deps.transcriber,
		deps.voices,
		deps.source,
		corpus.DefaultThreshold,
		initial,
	)
	return uc, deps
}
