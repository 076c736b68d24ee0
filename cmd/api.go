package cmd

import (
	"errors"
	httpNet "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stock-backtest/internal/delivery/http"
	"stock-backtest/internal/delivery/telegram"
	"stock-backtest/pkg/logger"
	pkgTelegram "stock-backtest/pkg/telegram"
	"stock-backtest/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/telebot.v3"
)

const (
	chatLimiterCleanupInterval = 10 * time.Minute
	chatLimiterMaxIdle         = 30 * time.Minute
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Run the HTTP API and, when configured, the Telegram bot",
	RunE:  Start,
}

func Start(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appDep, err := NewAppDependency(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := appDep.Close(); err != nil {
			appDep.log.Error("Failed to close app dependency", zap.Error(err))
		}
	}()

	httpHandler := http.NewHttpAPIHandler(appDep.cfg, appDep.log, appDep.echo, appDep.validator, appDep.services, appDep.db)

	var (
		telegramHandler *telegram.TelegramBotHandler
		messenger       *pkgTelegram.Messenger
	)
	if appDep.cfg.Telegram.Enabled() {
		bot, err := newTelegramBot(appDep)
		if err != nil {
			return err
		}
		messenger = pkgTelegram.NewMessenger(&appDep.cfg.Telegram, appDep.log, bot)
		messenger.StartCleanupExpired(ctx, chatLimiterCleanupInterval, chatLimiterMaxIdle)
		telegramHandler = telegram.NewTelegramBotHandler(ctx, appDep.cfg, appDep.log, bot, messenger, appDep.echo, appDep.services)
		if err := telegramHandler.Start(); err != nil {
			return err
		}
	} else {
		appDep.log.Info("Telegram bot token not set, chat commands are disabled")
	}

	apiServer := NewHTTPServer(ctx, appDep, httpHandler)
	serverErr := make(chan error, 1)
	utils.GoSafe(func() {
		if err := apiServer.Start(); err != nil && !errors.Is(err, httpNet.ErrServerClosed) {
			serverErr <- err
		}
	})

	select {
	case <-ctx.Done():
		appDep.log.Info("Shutting down gracefully...")
	case err := <-serverErr:
		appDep.log.Error("HTTP server failed", zap.Error(err))
		return err
	}

	if telegramHandler != nil {
		telegramHandler.Stop()
		messenger.StopCleanupExpired()
	}
	return apiServer.Stop()
}

func newTelegramBot(appDep *AppDependency) (*telebot.Bot, error) {
	pref := telebot.Settings{
		Token:  appDep.cfg.Telegram.BotToken,
		Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c telebot.Context) {
			appDep.log.Error("Telegram bot error", logger.ErrorField(err))
		},
	}
	bot, err := telebot.NewBot(pref)
	if err != nil {
		appDep.log.Error("Failed to create telegram bot", zap.Error(err))
		return nil, err
	}
	return bot, nil
}
