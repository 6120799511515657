package telegramimpl

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/apod-telegram-bot/internal/telegram"
	"github.com/orgball2608/apod-telegram-bot/pkg/config"
	"github.com/orgball2608/apod-telegram-bot/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type TelegramImpl struct {
	TgBot  *tgbotapi.BotAPI
	Logger logger.Logger
	Config *config.Config
}

// New builds the Telegram client. An empty token disables delivery
// instead of failing, so the plain CLI flow works without any Telegram
// configuration.
func New(opts Opts) (*TelegramImpl, error) {
	if opts.Config.Telegram.Token == "" {
		opts.Logger.Debug("No telegram token configured, delivery disabled")
		return &TelegramImpl{
			Logger: opts.Logger,
			Config: opts.Config,
		}, nil
	}

	tgBot, err := tgbotapi.NewBotAPI(opts.Config.Telegram.Token)
	if err != nil {
		opts.Logger.Error("Error creating bot", "Error", err)
		return nil, err
	}

	return &TelegramImpl{
		TgBot:  tgBot,
		Logger: opts.Logger,
		Config: opts.Config,
	}, nil
}

var _ telegram.Client = (*TelegramImpl)(nil)

func (tg *TelegramImpl) Enabled() bool {
	return tg.TgBot != nil
}
