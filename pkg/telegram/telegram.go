package telegram

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"stock-backtest/config"
	"stock-backtest/pkg/logger"
	"stock-backtest/pkg/ratelimit"
	"stock-backtest/pkg/utils"

	"golang.org/x/time/rate"
	"gopkg.in/telebot.v3"
)

// ErrNoChat is returned for updates that carry no chat to reply to.
var ErrNoChat = errors.New("telegram: update has no chat")

// Sender is the part of *telebot.Bot the messenger needs.
type Sender interface {
	Send(to telebot.Recipient, what interface{}, opts ...interface{}) (*telebot.Message, error)
}

// Messenger sends bot replies under a global limit and a per-chat limit.
type Messenger struct {
	cfg           *config.TelegramConfig
	log           *logger.Logger
	bot           Sender
	globalLimiter *rate.Limiter
	chatLimiters  *ratelimit.LimiterStore
	wg            sync.WaitGroup
}

func NewMessenger(cfg *config.TelegramConfig, log *logger.Logger, bot Sender) *Messenger {
	global := cfg.MaxGlobalRequestPerSecond
	if global <= 0 {
		global = 30
	}
	perChat := cfg.MaxChatRequestPerSecond
	if perChat <= 0 {
		perChat = 1
	}
	return &Messenger{
		cfg:           cfg,
		log:           log,
		bot:           bot,
		globalLimiter: rate.NewLimiter(rate.Limit(global), global),
		chatLimiters:  ratelimit.NewLimiterStore(rate.Limit(perChat), perChat),
	}
}

// Send replies in the chat of c.
func (m *Messenger) Send(ctx context.Context, c telebot.Context, what interface{}, opts ...interface{}) (*telebot.Message, error) {
	chat := c.Chat()
	if chat == nil {
		return nil, ErrNoChat
	}
	if err := m.checkRateLimit(ctx, chat.ID); err != nil {
		return nil, err
	}
	return m.bot.Send(chat, what, opts...)
}

// SendTo posts message to chatID outside of an update.
func (m *Messenger) SendTo(ctx context.Context, chatID int64, message string, opts ...interface{}) error {
	if err := m.checkRateLimit(ctx, chatID); err != nil {
		return err
	}
	if _, err := m.bot.Send(&telebot.Chat{ID: chatID}, message, opts...); err != nil {
		m.log.ErrorContext(ctx, "Failed to send message", logger.ErrorField(err), logger.Field("chat_id", chatID))
		return err
	}
	return nil
}

func (m *Messenger) checkRateLimit(ctx context.Context, chatID int64) error {
	if err := m.chatLimiters.Wait(ctx, strconv.FormatInt(chatID, 10)); err != nil {
		m.log.WarnContext(ctx, "Failed to wait for chat rate limit", logger.ErrorField(err))
		return err
	}
	if err := m.globalLimiter.Wait(ctx); err != nil {
		m.log.WarnContext(ctx, "Failed to wait for global rate limit", logger.ErrorField(err))
		return err
	}
	return nil
}

// StartCleanupExpired prunes idle chat limiters every interval until ctx is done.
func (m *Messenger) StartCleanupExpired(ctx context.Context, interval, maxIdle time.Duration) {
	m.wg.Add(1)
	utils.GoSafe(func() {
		defer m.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				m.log.Info("Received signal to stop Telegram rate limiter cleanup")
				return
			case <-ticker.C:
				if n := m.chatLimiters.Prune(maxIdle); n > 0 {
					m.log.Debug("Pruned idle chat limiters", logger.IntField("count", n))
				}
			}
		}
	})
}

func (m *Messenger) StopCleanupExpired() {
	m.wg.Wait()
	m.log.Info("Telegram rate limiter stopped")
}
