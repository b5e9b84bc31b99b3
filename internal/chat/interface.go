package chat

import (
	"context"

	"github.com/3moscas/tgbot/internal/model"
)

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// HandleText routes one text message through language gating, command
	// dispatch, sentiment framing, and corpus retrieval, and returns the reply.
	HandleText(ctx context.Context, sc model.Scope, input TextInput) (Reply, error)

	// HandleVoice downloads and transcribes a voice note, then treats the
	// transcript as a text message.
	HandleVoice(ctx context.Context, sc model.Scope, input VoiceInput) (Reply, error)

	// ReloadCorpus replaces the live corpus with the given wiki topic.
	// On any fetch or build failure the previous corpus stays live.
	ReloadCorpus(ctx context.Context, topic string) (ReloadOutput, error)
}
