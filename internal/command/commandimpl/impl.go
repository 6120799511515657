package commandimpl

import (
	"time"

	"github.com/orgball2608/apod-telegram-bot/internal/command"
	"github.com/orgball2608/apod-telegram-bot/internal/pipeline"
	"github.com/orgball2608/apod-telegram-bot/internal/ratelimit"
	"github.com/orgball2608/apod-telegram-bot/internal/repositories/fetchlog"
	"github.com/orgball2608/apod-telegram-bot/internal/telegram"
	"github.com/orgball2608/apod-telegram-bot/pkg/config"
	"github.com/orgball2608/apod-telegram-bot/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Telegram     telegram.Client
	Pipeline     pipeline.Client
	FetchLogRepo fetchlog.Repository
	Logger       logger.Logger
	Config       *config.Config
}

type CommandImpl struct {
	Telegram     telegram.Client
	Pipeline     pipeline.Client
	FetchLogRepo fetchlog.Repository
	Logger       logger.Logger
	Config       *config.Config
	Limiter      ratelimit.Limiter
}

func New(opts Opts) *CommandImpl {
	return &CommandImpl{
		Telegram:     opts.Telegram,
		Pipeline:     opts.Pipeline,
		FetchLogRepo: opts.FetchLogRepo,
		Logger:       opts.Logger,
		Config:       opts.Config,
		Limiter:      ratelimit.NewInMemoryLimiter(1, 10*time.Second, 3),
	}
}

var _ command.Client = (*CommandImpl)(nil)
