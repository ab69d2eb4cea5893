package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/pantgram/homidirect/internal/domain"
)

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingRequested(ctx context.Context, landlord *domain.User, listing *domain.Listing, b *domain.Booking) {
	text := fmt.Sprintf(
		"*New booking request*\n\nListing: %s\nViewing (UTC): %s\n\nConfirm or decline it in your dashboard.",
		listing.Title, b.ScheduledAt.Format("02.01.2006 15:04"),
	)
	n.send(ctx, landlord.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingConfirmed(ctx context.Context, candidate *domain.User, listing *domain.Listing, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking confirmed!*\n\nListing: %s\nViewing (UTC): %s",
		listing.Title, b.ScheduledAt.Format("02.01.2006 15:04"),
	)
	n.send(ctx, candidate.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingDeclined(ctx context.Context, candidate *domain.User, listing *domain.Listing, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking declined*\n\nListing: %s\nThe time slot is available again for other dates.",
		listing.Title,
	)
	n.send(ctx, candidate.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, recipient *domain.User, listing *domain.Listing, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking cancelled*\n\nListing: %s\nViewing was scheduled for (UTC): %s",
		listing.Title, b.ScheduledAt.Format("02.01.2006 15:04"),
	)
	n.send(ctx, recipient.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
