package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/3moscas/tgbot/internal/chat"
	"github.com/3moscas/tgbot/internal/model"
	"github.com/3moscas/tgbot/pkg/speech"
)

// HandleVoice resolves, downloads, and transcribes a voice note, then runs
// the transcript through the ordinary text pipeline. Unintelligible audio is
// a terminal user-visible reply, not an error.
func (uc *implUseCase) HandleVoice(ctx context.Context, sc model.Scope, input chat.VoiceInput) (chat.Reply, error) {
	url, err := uc.voices.GetFileURL(ctx, input.FileID)
	if err != nil {
		return chat.Reply{}, fmt.Errorf("failed to resolve voice file: %w", err)
	}

	audio, err := uc.voices.DownloadFile(ctx, url)
	if err != nil {
		return chat.Reply{}, fmt.Errorf("failed to download voice file: %w", err)
	}

	transcript, err := uc.transcriber.Transcribe(ctx, audio, transcriptionLanguage)
	if errors.Is(err, speech.ErrUnintelligible) {
		return chat.Reply{Text: msgUnintelligibleAudio, Language: model.DefaultLanguage}, nil
	}
	if err != nil {
		return chat.Reply{}, fmt.Errorf("failed to transcribe voice file: %w", err)
	}

	uc.l.Infof(ctx, "HandleVoice: user=%s transcript_len=%d", sc.UserID, len(transcript))

	return uc.HandleText(ctx, sc, chat.TextInput{Text: transcript})
}
