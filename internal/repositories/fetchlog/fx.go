package fetchlog

import (
	"github.com/orgball2608/apod-telegram-bot/pkg/config"
	"github.com/orgball2608/apod-telegram-bot/pkg/logger"
	"github.com/orgball2608/apod-telegram-bot/pkg/pgx"
	"go.uber.org/fx"
)

var Module = fx.Provide(
	fx.Annotate(
		NewRepository,
		fx.As(new(Repository)),
	),
)

type Opts struct {
	fx.In

	LC     fx.Lifecycle
	Config *config.Config
	Logger logger.Logger
}

// NewRepository picks the pgx-backed archive when postgres is
// configured and the no-op one otherwise.
func NewRepository(opts Opts) (Repository, error) {
	if opts.Config.Postgres.Host == "" {
		opts.Logger.Debug("Postgres not configured, fetch archive disabled")
		return Noop{}, nil
	}

	pool, err := pgx.New(pgx.Opts{
		LC:     opts.LC,
		Logger: opts.Logger,
		Config: opts.Config,
	})
	if err != nil {
		return nil, err
	}

	return NewPgxRepository(pool, opts.Logger), nil
}
