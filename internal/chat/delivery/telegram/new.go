package telegram

import (
	"github.com/gin-gonic/gin"

	"github.com/3moscas/tgbot/internal/chat"
	pkgLog "github.com/3moscas/tgbot/pkg/log"
	pkgTelegram "github.com/3moscas/tgbot/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc chat.UseCase, bot *pkgTelegram.Bot) Handler {
	return &handler{
		l:   l,
		uc:  uc,
		bot: bot,
	}
}
