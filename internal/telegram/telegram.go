package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

//go:generate go run go.uber.org/mock/mockgen -source=telegram.go -destination=mocks/mock.go

// Client delivers results over Telegram. When no bot token is
// configured every method is a no-op and Enabled reports false.
type Client interface {
	Enabled() bool

	GetUpdatesChan(u tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()

	SendMessage(chatID int64, text string) (int, error)
	SendMessageToUser(message string)
	SendPhotoToChannel(name string, data []byte, caption string) error
}
