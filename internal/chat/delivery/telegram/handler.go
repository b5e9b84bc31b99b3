package telegram

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/3moscas/tgbot/internal/chat"
	"github.com/3moscas/tgbot/internal/model"
	pkgLog "github.com/3moscas/tgbot/pkg/log"
	pkgResponse "github.com/3moscas/tgbot/pkg/response"
	pkgTelegram "github.com/3moscas/tgbot/pkg/telegram"
)

const (
	msgProcessingFailed   = "Ocorreu um erro ao processar sua mensagem. Tente novamente."
	msgUnsupportedContent = "Envie texto ou áudio."
)

type handler struct {
	l   pkgLog.Logger
	uc  chat.UseCase
	bot *pkgTelegram.Bot
}

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine: Telegram expects an ack within a few seconds, but
// voice transcription and wiki reloads can take longer.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot the message before spawning goroutine to avoid data races on gin context
	msg := update.Message

	go func() {
		// Detach from HTTP request context (which gets cancelled after response)
		bgCtx := pkgLog.WithCorrelationID(context.Background(), uuid.NewString())
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			// Best-effort error notification to user
			_ = h.bot.SendMessage(bgCtx, msg.Chat.ID, msgProcessingFailed)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	sc := model.Scope{}
	if msg.From != nil {
		sc = model.Scope{
			UserID:   fmt.Sprintf("telegram_%d", msg.From.ID),
			Username: msg.From.Username,
		}
	}

	var (
		reply chat.Reply
		err   error
	)

	switch {
	case msg.Voice != nil:
		reply, err = h.uc.HandleVoice(ctx, sc, chat.VoiceInput{FileID: msg.Voice.FileID})
	case msg.Text != "":
		reply, err = h.uc.HandleText(ctx, sc, chat.TextInput{Text: msg.Text})
	default:
		// Stickers, photos, documents and the like.
		return h.bot.SendMessage(ctx, msg.Chat.ID, msgUnsupportedContent)
	}
	if err != nil {
		return err
	}

	return h.bot.SendMessage(ctx, msg.Chat.ID, reply.Text)
}
