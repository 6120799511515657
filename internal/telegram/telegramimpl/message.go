package telegramimpl

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// SendPhotoToChannel posts an image to the configured Telegram channel
func (tg *TelegramImpl) SendPhotoToChannel(name string, data []byte, caption string) error {
	if !tg.Enabled() {
		return nil
	}

	channelName := "@" + tg.Config.Telegram.Channel
	tg.Logger.Info("Sending photo to channel", "channel", channelName, "name", name)

	photoMsg := tgbotapi.NewPhotoToChannel(channelName, tgbotapi.FileBytes{
		Name:  name,
		Bytes: data,
	})
	photoMsg.Caption = caption
	photoMsg.ParseMode = tgbotapi.ModeMarkdownV2

	if _, err := tg.TgBot.Send(photoMsg); err != nil {
		tg.Logger.Error("Error sending photo to channel",
			"channel", channelName,
			"error", err)
		return fmt.Errorf("failed to send photo to channel: %w", err)
	}

	tg.Logger.Info("Successfully sent photo to channel", "channel", channelName)
	return nil
}

// SendMessageToUser sends a text message to the configured user
func (tg *TelegramImpl) SendMessageToUser(message string) {
	if !tg.Enabled() || tg.Config.Telegram.User == 0 {
		return
	}

	msg := tgbotapi.NewMessage(tg.Config.Telegram.User, message)
	if _, err := tg.TgBot.Send(msg); err != nil {
		tg.Logger.Error("Error sending message to user",
			"userID", tg.Config.Telegram.User,
			"error", err)
		return
	}

	tg.Logger.Info("Message sent to user", "userID", tg.Config.Telegram.User)
}

// SendMessage sends a text message to a specific chat ID
func (tg *TelegramImpl) SendMessage(chatID int64, text string) (int, error) {
	if !tg.Enabled() {
		return 0, nil
	}

	msg := tgbotapi.NewMessage(chatID, text)
	sentMsg, err := tg.TgBot.Send(msg)
	if err != nil {
		tg.Logger.Error("Error sending message",
			"chatID", chatID,
			"error", err)
		return 0, fmt.Errorf("failed to send message: %w", err)
	}

	return sentMsg.MessageID, nil
}

// GetUpdatesChan wraps the bot's GetUpdatesChan method
func (tg *TelegramImpl) GetUpdatesChan(u tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	if !tg.Enabled() {
		return nil
	}
	return tg.TgBot.GetUpdatesChan(u)
}

// StopReceivingUpdates wraps the bot's StopReceivingUpdates method
func (tg *TelegramImpl) StopReceivingUpdates() {
	if !tg.Enabled() {
		return
	}
	tg.TgBot.StopReceivingUpdates()
}
