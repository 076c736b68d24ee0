package telegram

import (
	"context"
	"errors"
	"testing"
	"time"

	"stock-backtest/config"
	"stock-backtest/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/telebot.v3"
)

type recordingSender struct {
	chats []int64
	err   error
}

func (r *recordingSender) Send(to telebot.Recipient, what interface{}, opts ...interface{}) (*telebot.Message, error) {
	r.chats = append(r.chats, to.(*telebot.Chat).ID)
	return &telebot.Message{}, r.err
}

type chatContext struct {
	telebot.Context
	chat *telebot.Chat
}

func (c chatContext) Chat() *telebot.Chat { return c.chat }

func TestMessenger_Send(t *testing.T) {
	sender := &recordingSender{}
	m := NewMessenger(&config.TelegramConfig{MaxChatRequestPerSecond: 100}, logger.Nop(), sender)

	_, err := m.Send(context.Background(), chatContext{chat: &telebot.Chat{ID: 7}}, "hi")
	require.NoError(t, err)
	assert.Equal(t, []int64{7}, sender.chats)

	_, err = m.Send(context.Background(), chatContext{}, "hi")
	assert.ErrorIs(t, err, ErrNoChat)
	assert.Len(t, sender.chats, 1)
}

func TestMessenger_SendTo(t *testing.T) {
	sender := &recordingSender{err: errors.New("blocked by user")}
	m := NewMessenger(&config.TelegramConfig{MaxChatRequestPerSecond: 100}, logger.Nop(), sender)

	err := m.SendTo(context.Background(), 9, "report")
	assert.EqualError(t, err, "blocked by user")
	assert.Equal(t, []int64{9}, sender.chats)
}

func TestMessenger_PerChatLimit(t *testing.T) {
	sender := &recordingSender{}
	m := NewMessenger(&config.TelegramConfig{MaxChatRequestPerSecond: 1}, logger.Nop(), sender)

	require.NoError(t, m.SendTo(context.Background(), 1, "first"))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.Error(t, m.SendTo(ctx, 1, "second"), "same chat must wait for the next token")

	require.NoError(t, m.SendTo(context.Background(), 2, "other chat"))
	assert.Equal(t, []int64{1, 2}, sender.chats)
}

func TestMessenger_Cleanup(t *testing.T) {
	m := NewMessenger(&config.TelegramConfig{}, logger.Nop(), &recordingSender{})
	ctx, cancel := context.WithCancel(context.Background())

	m.StartCleanupExpired(ctx, time.Millisecond, time.Millisecond)
	time.Sleep(5 * time.Millisecond)
	cancel()
	m.StopCleanupExpired()
}
