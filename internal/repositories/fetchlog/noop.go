package fetchlog

import (
	"context"

	"github.com/orgball2608/apod-telegram-bot/internal/domain"
)

// Noop stands in for the archive when postgres is not configured.
type Noop struct{}

var _ Repository = Noop{}

func (Noop) Create(_ context.Context, _ domain.FetchLog) error {
	return nil
}

func (Noop) GetByDate(_ context.Context, _ string) (*domain.FetchLog, error) {
	return nil, ErrNotConfigured
}

func (Noop) ListRecent(_ context.Context, _ int) ([]*domain.FetchLog, error) {
	return nil, ErrNotConfigured
}
