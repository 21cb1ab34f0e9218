package telegram

import (
	"context"
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSender struct {
	mock.Mock
}

func (m *mockSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	args := m.Called(c)
	return tgbotapi.Message{}, args.Error(0)
}

func withParseMode(mode string) interface{} {
	return mock.MatchedBy(func(c tgbotapi.Chattable) bool {
		msg, ok := c.(tgbotapi.MessageConfig)
		return ok && msg.ParseMode == mode && msg.ChatID == 42
	})
}

func TestClient_SendMarkdown(t *testing.T) {
	bot := new(mockSender)
	bot.On("Send", withParseMode(tgbotapi.ModeMarkdown)).Return(nil).Once()

	require.NoError(t, newClient(bot, 42).SendMarkdown(context.Background(), "*digest*"))
	bot.AssertExpectations(t)
}

func TestClient_SendMarkdownFallsBackToPlainText(t *testing.T) {
	bot := new(mockSender)
	parseErr := &tgbotapi.Error{Code: 400, Message: "Bad Request: can't parse entities: Can't find end of the entity starting at byte offset 12"}
	bot.On("Send", withParseMode(tgbotapi.ModeMarkdown)).Return(parseErr).Once()
	bot.On("Send", withParseMode("")).Return(nil).Once()

	require.NoError(t, newClient(bot, 42).SendMarkdown(context.Background(), "broken _entity"))
	bot.AssertExpectations(t)
}

func TestClient_SendMarkdownOtherErrorsAreReturned(t *testing.T) {
	bot := new(mockSender)
	bot.On("Send", withParseMode(tgbotapi.ModeMarkdown)).Return(errors.New("chat not found")).Once()

	err := newClient(bot, 42).SendMarkdown(context.Background(), "*digest*")
	assert.EqualError(t, err, "chat not found")
	bot.AssertNumberOfCalls(t, "Send", 1)
}

func TestClient_SendTextHonoursCancelledContext(t *testing.T) {
	bot := new(mockSender)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := newClient(bot, 42).SendText(ctx, "hello")
	assert.ErrorIs(t, err, context.Canceled)
	bot.AssertNotCalled(t, "Send", mock.Anything)
}
