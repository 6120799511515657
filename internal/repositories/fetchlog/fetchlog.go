package fetchlog

import (
	"context"
	"errors"

	"github.com/orgball2608/apod-telegram-bot/internal/domain"
)

var ErrNotFound = errors.New("fetch log entry not found")
var ErrNotConfigured = errors.New("fetch archive is not configured")

//go:generate go run go.uber.org/mock/mockgen -source=fetchlog.go -destination=mocks/mock.go

// Repository records successful saves. It is an archive, not a cache:
// nothing reads it to decide whether to fetch.
type Repository interface {
	Create(ctx context.Context, entry domain.FetchLog) error
	GetByDate(ctx context.Context, date string) (*domain.FetchLog, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.FetchLog, error)
}
