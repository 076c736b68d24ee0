package telegram

import (
	"context"
	"time"

	"stock-backtest/config"
	"stock-backtest/internal/service"
	"stock-backtest/pkg/logger"
	"stock-backtest/pkg/telegram"
	"stock-backtest/pkg/utils"

	"github.com/labstack/echo/v4"
	"gopkg.in/telebot.v3"
)

const defaultUpdateTimeout = 2 * time.Minute

type TelegramBotHandler struct {
	ctx       context.Context
	cfg       *config.Config
	log       *logger.Logger
	bot       *telebot.Bot
	messenger *telegram.Messenger
	echo      *echo.Echo
	service   *service.Service
	polling   bool
}

func NewTelegramBotHandler(
	ctx context.Context,
	cfg *config.Config,
	log *logger.Logger,
	bot *telebot.Bot,
	messenger *telegram.Messenger,
	echo *echo.Echo,
	service *service.Service,
) *TelegramBotHandler {
	return &TelegramBotHandler{
		ctx:       ctx,
		cfg:       cfg,
		log:       log,
		bot:       bot,
		messenger: messenger,
		echo:      echo,
		service:   service,
	}
}

// Start registers the commands and begins receiving updates, through the
// webhook when one is configured and by long polling otherwise.
func (t *TelegramBotHandler) Start() error {
	t.log.Info("Starting Telegram bot...")
	t.RegisterHandlers()

	if t.cfg.Telegram.WebhookURL == "" {
		t.log.Info("Telegram webhook is disabled, using long polling")
		t.polling = true
		utils.GoSafe(t.bot.Start)
		return nil
	}

	t.log.Info("Setting webhook URL", logger.StringField("webhook_url", t.cfg.Telegram.WebhookURL))
	return t.bot.SetWebhook(&telebot.Webhook{
		Endpoint: &telebot.WebhookEndpoint{
			PublicURL: t.cfg.Telegram.WebhookURL,
		},
	})
}

func (t *TelegramBotHandler) Stop() {
	if !t.polling {
		return
	}
	t.log.Info("Stopping Telegram bot...")

	ctx, cancel := context.WithTimeout(context.WithoutCancel(t.ctx), 10*time.Second)
	defer cancel()

	stopDone := make(chan struct{})
	go func() {
		t.bot.Stop()
		close(stopDone)
	}()

	select {
	case <-stopDone:
		t.log.Info("Telegram bot stopped successfully")
	case <-ctx.Done():
		t.log.Warn("Timeout while stopping bot, forcing shutdown")
	}
}

func (t *TelegramBotHandler) updateTimeout() time.Duration {
	if t.cfg.Telegram.TimeoutDuration > 0 {
		return t.cfg.Telegram.TimeoutDuration
	}
	return defaultUpdateTimeout
}
