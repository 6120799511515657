package commandimpl

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/apod-telegram-bot/internal/repositories/fetchlog"
)

const helpMessage = `👋 Astronomy Picture of the Day bot.

/today - Fetch and save today's picture on demand.
/latest - List the most recent saved pictures.
/help - Show this guide.`

const fetchTimeout = 10 * time.Minute

func (c *CommandImpl) HandleCommand(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := c.Telegram.GetUpdatesChan(u)
	c.Logger.Info("Command handler started, listening for updates.")

	for {
		select {
		case <-ctx.Done():
			c.Logger.Info("Command handler shutting down.")
			c.Telegram.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				c.Logger.Warn("Telegram updates channel closed unexpectedly.")
				return errors.New("telegram updates channel closed")
			}

			go func(u tgbotapi.Update) {
				defer func() {
					if r := recover(); r != nil {
						c.Logger.Error("Panic recovered while processing an update", "panic", r, "stack", string(debug.Stack()))
					}
				}()

				if u.Message == nil || !u.Message.IsCommand() {
					return
				}

				if err := c.processCommand(ctx, u); err != nil {
					c.Logger.Error("Error processing command",
						"command", u.Message.Command(),
						"error", err)
				}
			}(update)
		}
	}
}

func (c *CommandImpl) processCommand(ctx context.Context, update tgbotapi.Update) error {
	cmd := update.Message.Command()
	chatID := update.Message.Chat.ID

	if !c.Limiter.Allow(chatID) {
		_, err := c.Telegram.SendMessage(chatID, "Too many commands, slow down a little.")
		return err
	}

	switch cmd {
	case "start", "help":
		_, err := c.Telegram.SendMessage(chatID, helpMessage)
		return err
	case "today":
		return c.handleTodayCommand(ctx, chatID)
	case "latest":
		return c.handleLatestCommand(ctx, chatID)
	default:
		_, err := c.Telegram.SendMessage(chatID, "Unknown command. Type /help to see the list of available commands.")
		return err
	}
}

func (c *CommandImpl) handleTodayCommand(ctx context.Context, chatID int64) error {
	if _, err := c.Telegram.SendMessage(chatID, "Fetching today's picture... ⏳"); err != nil {
		return fmt.Errorf("failed to send initial message: %w", err)
	}

	runCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	path, err := c.Pipeline.Run(runCtx)
	if err != nil {
		_, sendErr := c.Telegram.SendMessage(chatID, "❌ Fetch failed: "+err.Error())
		if sendErr != nil {
			return sendErr
		}
		return err
	}

	_, err = c.Telegram.SendMessage(chatID, "✅ Saved today's picture to "+path)
	return err
}

func (c *CommandImpl) handleLatestCommand(ctx context.Context, chatID int64) error {
	entries, err := c.FetchLogRepo.ListRecent(ctx, 5)
	if err != nil {
		if errors.Is(err, fetchlog.ErrNotConfigured) {
			_, sendErr := c.Telegram.SendMessage(chatID, "The fetch archive is not configured.")
			return sendErr
		}
		return fmt.Errorf("failed to list recent fetches: %w", err)
	}

	if len(entries) == 0 {
		_, err := c.Telegram.SendMessage(chatID, "Nothing saved yet.")
		return err
	}

	text := "Most recent saves:\n"
	for _, entry := range entries {
		text += fmt.Sprintf("%s - %s\n", entry.Date, entry.Title)
	}

	_, err = c.Telegram.SendMessage(chatID, text)
	return err
}
