package fx

import (
	"github.com/orgball2608/apod-telegram-bot/internal/repositories/fetchlog"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fetchlog.Module,
)
