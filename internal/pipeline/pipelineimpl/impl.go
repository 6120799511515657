package pipelineimpl

import (
	"github.com/orgball2608/apod-telegram-bot/internal/apod"
	"github.com/orgball2608/apod-telegram-bot/internal/pipeline"
	"github.com/orgball2608/apod-telegram-bot/internal/repositories/fetchlog"
	"github.com/orgball2608/apod-telegram-bot/internal/storage"
	"github.com/orgball2608/apod-telegram-bot/internal/telegram"
	"github.com/orgball2608/apod-telegram-bot/pkg/config"
	"github.com/orgball2608/apod-telegram-bot/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Apod         apod.Client
	Storage      storage.Saver
	Telegram     telegram.Client
	FetchLogRepo fetchlog.Repository
	Logger       logger.Logger
	Config       *config.Config
}

type PipelineImpl struct {
	Apod         apod.Client
	Storage      storage.Saver
	Telegram     telegram.Client
	FetchLogRepo fetchlog.Repository
	Logger       logger.Logger
	Config       *config.Config
}

func New(opts Opts) *PipelineImpl {
	return &PipelineImpl{
		Apod:         opts.Apod,
		Storage:      opts.Storage,
		Telegram:     opts.Telegram,
		FetchLogRepo: opts.FetchLogRepo,
		Logger:       opts.Logger,
		Config:       opts.Config,
	}
}

var _ pipeline.Client = (*PipelineImpl)(nil)
