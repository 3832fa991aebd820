package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/stpnv0/RidePooler/internal/domain"
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

func (n *TelegramNotifier) NotifyAssigned(ctx context.Context, account *domain.Account, carpool *domain.Carpool) {
	text := fmt.Sprintf(
		"*Вы в карпуле!*\n\n"+"Группа: %s\n"+"Попутчиков: %d из %d\n"+"Группа открыта до (UTC): %s",
		carpool.ID, carpool.MemberCount, carpool.Capacity,
		carpool.ExpiresAt.Format("02.01.2006 15:04"),
	)
	n.send(ctx, account.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyCarpoolReady(ctx context.Context, account *domain.Account, carpool *domain.Carpool) {
	text := fmt.Sprintf(
		"*Карпул собран!*\n\n"+"Группа: %s\n"+"Все %d мест заняты, можно выезжать.",
		carpool.ID, carpool.Capacity,
	)
	n.send(ctx, account.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyExpired(ctx context.Context, account *domain.Account, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Бронь истекла*\n\n"+"Заявка %s не нашла карпул до %s и была закрыта. Попробуйте ещё раз.",
		booking.ID,
		booking.ExpiresAt.Format("02.01.2006 15:04"),
	)
	n.send(ctx, account.TelegramChatID, text)
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
