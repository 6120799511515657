package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/orgball2608/apod-telegram-bot/internal/apod"
	"github.com/orgball2608/apod-telegram-bot/internal/apod/apodimpl"
	"github.com/orgball2608/apod-telegram-bot/internal/command"
	"github.com/orgball2608/apod-telegram-bot/internal/command/commandimpl"
	_ "github.com/orgball2608/apod-telegram-bot/internal/migrations"
	"github.com/orgball2608/apod-telegram-bot/internal/pipeline"
	"github.com/orgball2608/apod-telegram-bot/internal/pipeline/pipelineimpl"
	repositories "github.com/orgball2608/apod-telegram-bot/internal/repositories/fx"
	"github.com/orgball2608/apod-telegram-bot/internal/storage"
	"github.com/orgball2608/apod-telegram-bot/internal/storage/storageimpl"
	"github.com/orgball2608/apod-telegram-bot/internal/telegram"
	"github.com/orgball2608/apod-telegram-bot/internal/telegram/telegramimpl"
	"github.com/orgball2608/apod-telegram-bot/pkg/config"
	"github.com/orgball2608/apod-telegram-bot/pkg/logger"
	"github.com/pressly/goose/v3"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
	),
	fx.Provide(
		fx.Annotate(
			apodimpl.New,
			fx.As(new(apod.Client)),
		), fx.Annotate(
			storageimpl.New,
			fx.As(new(storage.Saver)),
		), fx.Annotate(
			telegramimpl.New,
			fx.As(new(telegram.Client)),
		), fx.Annotate(
			pipelineimpl.New,
			fx.As(new(pipeline.Client)),
		),
		fx.Annotate(
			commandimpl.New,
			fx.As(new(command.Client)),
		),
	),
	repositories.Module,
	fx.Invoke(migrate),
	fx.Invoke(run),
)

// migrate brings the archive schema up to date. Skipped entirely when
// postgres is not configured.
func migrate(cfg *config.Config, log logger.Logger) error {
	if cfg.Postgres.Host == "" {
		return nil
	}

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	db, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		return fmt.Errorf("failed to open migration connection: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Archive schema is up to date")
	return nil
}

func run(lc fx.Lifecycle, shutdowner fx.Shutdowner, log logger.Logger, cfg *config.Config,
	pClient pipeline.Client, tgClient telegram.Client, cmdClient command.Client) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			if cfg.Schedule.Enabled {
				if err := pClient.ScheduleDailyFetch(ctx); err != nil {
					return err
				}

				if tgClient.Enabled() {
					go func() {
						if err := cmdClient.HandleCommand(ctx); err != nil && !errors.Is(err, context.Canceled) {
							log.Error("Command handler stopped", "error", err)
						}
					}()
				}
				return nil
			}

			// Single-shot mode: one run, print the path, exit with the
			// pipeline's verdict.
			go func() {
				path, err := pClient.Run(ctx)
				if err != nil {
					log.Error("Fetch failed", "error", err)
					_ = shutdowner.Shutdown(fx.ExitCode(1))
					return
				}

				fmt.Println(path)
				_ = shutdowner.Shutdown()
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}
