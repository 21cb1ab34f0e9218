package telegram

import (
	"context"
	"errors"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier delivers dashboard digests to a chat.
type Notifier interface {
	// SendMarkdown sends text rendered with Telegram's legacy Markdown. If
	// Telegram cannot parse the entities the text is resent as plain text.
	SendMarkdown(ctx context.Context, text string) error
	// SendText sends text without any parse mode.
	SendText(ctx context.Context, text string) error
}

// sender is the subset of *tgbotapi.BotAPI used by the client.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type client struct {
	bot    sender
	chatID int64
}

// NewClient creates a Telegram notifier for a single chat.
func NewClient(botToken string, chatID int64) (Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}
	return newClient(bot, chatID), nil
}

func newClient(bot sender, chatID int64) *client {
	return &client{bot: bot, chatID: chatID}
}

func (c *client) SendMarkdown(ctx context.Context, text string) error {
	err := c.send(ctx, text, tgbotapi.ModeMarkdown)
	if isEntityParseError(err) {
		return c.send(ctx, text, "")
	}
	return err
}

func (c *client) SendText(ctx context.Context, text string) error {
	return c.send(ctx, text, "")
}

// send runs the blocking bot call in the background so a cancelled ctx
// returns immediately. The request itself cannot be aborted once issued.
func (c *client) send(ctx context.Context, text, parseMode string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(c.chatID, text)
	msg.ParseMode = parseMode

	done := make(chan error, 1)
	go func() {
		_, err := c.bot.Send(msg)
		done <- err
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func isEntityParseError(err error) bool {
	var apiErr *tgbotapi.Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return strings.Contains(strings.ToLower(apiErr.Message), "can't parse entities")
}

var markdownReplacer = strings.NewReplacer(
	`_`, `\_`,
	`*`, `\*`,
	"`", "\\`",
	`[`, `\[`,
)

// EscapeMarkdown escapes the legacy Markdown metacharacters in s so it can be
// interpolated into a message outside of an entity.
func EscapeMarkdown(s string) string {
	return markdownReplacer.Replace(s)
}
