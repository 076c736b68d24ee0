package telegram

import (
	"context"
	"net/http"
	"strings"

	"stock-backtest/internal/dto"
	"stock-backtest/pkg/apperror"
	"stock-backtest/pkg/logger"
	"stock-backtest/pkg/middleware"
	"stock-backtest/pkg/telegram"

	"github.com/labstack/echo/v4"
	"gopkg.in/telebot.v3"
)

const (
	webhookPath       = "/api/v1/telegram/webhook"
	chatErrorFallback = "something went wrong, please try again later"
)

const welcomeMessage = `👋 Welcome to the backtest bot!

I replay a moving-average crossover strategy over daily prices and forecast the next days.

📈 /backtest SYMBOL [INVESTMENT] - run a backtest (default investment 10000)
🔮 /predict SYMBOL - forecast the next closing prices
🆘 /help - show usage`

const helpMessage = `❓ How to use the bot

/backtest IBM - backtest IBM with 10000
/backtest AAPL 2500 - backtest AAPL with 2500
/predict IBM - forecast IBM

Prices come from the stored history. Sync a symbol first if it has none.`

func (t *TelegramBotHandler) RegisterHandlers() {
	t.echo.POST(webhookPath, func(c echo.Context) error {
		var update telebot.Update
		if err := c.Bind(&update); err != nil {
			t.log.ErrorContext(t.ctx, "Cannot bind JSON", logger.ErrorField(err))
			return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid update"))
		}
		t.bot.ProcessUpdate(update)
		return c.JSON(http.StatusOK, dto.NewBaseResponse(http.StatusOK, "ok", nil))
	})

	timeout := t.updateTimeout()
	t.bot.Handle("/start", middleware.WithContext(t.ctx, timeout, t.handleStart))
	t.bot.Handle("/help", middleware.WithContext(t.ctx, timeout, t.handleHelp))
	t.bot.Handle("/backtest", middleware.WithContext(t.ctx, timeout, t.handleBacktest))
	t.bot.Handle("/predict", middleware.WithContext(t.ctx, timeout, t.handlePredict))
	t.bot.Handle(telebot.OnText, middleware.WithContext(t.ctx, timeout, t.handleText))
}

func (t *TelegramBotHandler) handleStart(ctx context.Context, c telebot.Context) error {
	_, err := t.messenger.Send(ctx, c, welcomeMessage)
	return err
}

func (t *TelegramBotHandler) handleHelp(ctx context.Context, c telebot.Context) error {
	_, err := t.messenger.Send(ctx, c, helpMessage)
	return err
}

func (t *TelegramBotHandler) handleBacktest(ctx context.Context, c telebot.Context) error {
	text, err := t.service.TelegramBotService.Backtest(ctx, payload(c))
	if err != nil {
		return t.replyError(ctx, c, "backtest", err)
	}
	_, err = t.messenger.Send(ctx, c, text, &telebot.SendOptions{ParseMode: telebot.ModeMarkdownV2})
	return err
}

func (t *TelegramBotHandler) handlePredict(ctx context.Context, c telebot.Context) error {
	text, err := t.service.TelegramBotService.Predict(ctx, payload(c))
	if err != nil {
		return t.replyError(ctx, c, "predict", err)
	}
	_, err = t.messenger.Send(ctx, c, text, &telebot.SendOptions{ParseMode: telebot.ModeMarkdownV2})
	return err
}

func (t *TelegramBotHandler) handleText(ctx context.Context, c telebot.Context) error {
	if strings.HasPrefix(c.Text(), "/") {
		_, err := t.messenger.Send(ctx, c, "Unknown command. Use /help to see what I can do.")
		return err
	}
	_, err := t.messenger.Send(ctx, c, "Send a command such as /backtest IBM. Use /help for more.")
	return err
}

func (t *TelegramBotHandler) replyError(ctx context.Context, c telebot.Context, command string, err error) error {
	if apperror.StatusCode(err) >= http.StatusInternalServerError {
		t.log.ErrorContext(ctx, "Telegram command failed", logger.StringField("command", command), logger.ErrorField(err))
	}
	_, sendErr := t.messenger.Send(ctx, c, telegram.FormatError(command, apperror.PublicMessage(err, chatErrorFallback)))
	return sendErr
}

func payload(c telebot.Context) string {
	if msg := c.Message(); msg != nil {
		return strings.TrimSpace(msg.Payload)
	}
	return ""
}
