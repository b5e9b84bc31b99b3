package usecase

import (
	"context"
	"strings"

	"github.com/3moscas/tgbot/internal/chat"
	"github.com/3moscas/tgbot/internal/model"
	"github.com/3moscas/tgbot/internal/nlp/sentiment"
)

// HandleText routes one text message to a terminal reply. The request is a
// small state machine: language gate, command gate, then sentiment-framed
// retrieval. No state survives across requests.
func (uc *implUseCase) HandleText(ctx context.Context, sc model.Scope, input chat.TextInput) (chat.Reply, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return chat.Reply{}, chat.ErrEmptyMessage
	}

	lang := uc.detector.Detect(text)
	uc.l.Infof(ctx, "HandleText: user=%s lang=%s len=%d", sc.UserID, lang, len(text))

	if !model.Supported(lang) {
		return chat.Reply{Text: msgUnsupportedLanguage, Language: model.DefaultLanguage}, nil
	}

	if cmd, arg, ok := chat.ParseCommand(text); ok {
		return uc.dispatchCommand(ctx, cmd, arg, lang)
	}

	score := uc.analyzer.Analyze(ctx, text)
	prefix := sentiment.EmpatheticPrefix(score.Label)
	if score.RequiresIntervention() {
		prefix = sentiment.InterventionMessage
	}

	index := uc.index.Load()
	if index == nil {
		return chat.Reply{Text: msgCorpusUnavailable, Language: lang}, nil
	}

	if match, ok := index.FindBestMatch(text, uc.threshold); ok {
		uc.l.Debugf(ctx, "HandleText: matched corpus sentence %d score=%.3f", match.Index, match.Score)
		return chat.Reply{Text: prefix + match.Sentence, Language: lang}, nil
	}

	return chat.Reply{Text: prefix + fallbackReply(lang), Language: lang}, nil
}
