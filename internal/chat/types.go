package chat

import "github.com/3moscas/tgbot/internal/model"

// TextInput is one incoming text message.
type TextInput struct {
	Text string
}

// VoiceInput is one incoming voice note.
type VoiceInput struct {
	FileID string
}

// Reply is the outgoing answer for a single message.
type Reply struct {
	Text     string
	Language model.Language
}

// ReloadOutput reports the result of a corpus reload.
type ReloadOutput struct {
	Topic         string
	SentenceCount int
}
