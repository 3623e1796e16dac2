package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/tickethub-io/tickethub/internal/domain"
)

// TelegramRelay mirrors order notifications to users who registered a
// telegram chat id. Email stays the channel of record; the relay is
// purely additive and disabled without a bot token.
type TelegramRelay struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramRelay(token string, log logger.Logger) (*TelegramRelay, error) {
	if token == "" {
		log.Warn("telegram bot token is empty, telegram relay disabled")
		return &TelegramRelay{bot: nil, logger: log}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramRelay{bot: bot, logger: log}, nil
}

func (r *TelegramRelay) OrderConfirmed(ctx context.Context, user *domain.User, order *domain.Order) {
	text := fmt.Sprintf(
		"*Order confirmed*\n\nOrder: %s\nTickets: %d\nTotal: %s",
		order.ID, order.Quantity, order.TotalAmount.StringFixed(2),
	)
	r.send(ctx, user.TelegramChatID, text)
}

func (r *TelegramRelay) OrderCanceled(ctx context.Context, user *domain.User, order *domain.Order) {
	text := fmt.Sprintf(
		"*Order canceled*\n\nOrder: %s\nTickets: %d",
		order.ID, order.Quantity,
	)
	r.send(ctx, user.TelegramChatID, text)
}

func (r *TelegramRelay) send(ctx context.Context, chatID *int64, text string) {
	if r == nil || r.bot == nil {
		return
	}

	if chatID == nil {
		return
	}

	if err := ctx.Err(); err != nil {
		r.logger.Debug("telegram notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := r.bot.Send(msg); err != nil {
		r.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
