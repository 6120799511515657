package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"
	slogzerolog "github.com/samber/slog-zerolog/v2"
)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Printf(format string, args ...interface{})
}

type Opts struct {
	Env       string
	SentryUrl string
}

type Impl struct {
	sl *slog.Logger
}

var _ Logger = (*Impl)(nil)

// New builds the application logger. All diagnostics go to stderr so
// stdout stays reserved for the primary output (the written path).
func New(opts Opts) *Impl {
	var out io.Writer = os.Stderr
	level := slog.LevelInfo
	if opts.Env == "development" {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
		level = slog.LevelDebug
	}
	zl := zerolog.New(out).With().Timestamp().Logger()

	handlers := []slog.Handler{
		slogzerolog.Option{Level: level, Logger: &zl}.NewZerologHandler(),
	}

	if opts.SentryUrl != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:         opts.SentryUrl,
			Environment: opts.Env,
		})
		if err != nil {
			zl.Warn().Err(err).Msg("Failed to initialize sentry, continuing without it")
		} else {
			handlers = append(handlers, slogsentry.Option{Level: slog.LevelError}.NewSentryHandler())
		}
	}

	return &Impl{sl: slog.New(slogmulti.Fanout(handlers...))}
}

func (i *Impl) Debug(msg string, args ...any) { i.sl.Debug(msg, args...) }
func (i *Impl) Info(msg string, args ...any)  { i.sl.Info(msg, args...) }
func (i *Impl) Warn(msg string, args ...any)  { i.sl.Warn(msg, args...) }
func (i *Impl) Error(msg string, args ...any) { i.sl.Error(msg, args...) }

// Printf lets the logger double as the fx printer.
func (i *Impl) Printf(format string, args ...interface{}) {
	i.sl.Debug(fmt.Sprintf(format, args...))
}
