package apod

import (
	"context"
	"errors"
	"net/url"

	"github.com/orgball2608/apod-telegram-bot/internal/domain"
)

var (
	ErrUnknownMediaType = errors.New("unknown media type")
	ErrMalformedRecord  = errors.New("malformed record")
	ErrInvalidURL       = errors.New("invalid url in record")
)

//go:generate go run go.uber.org/mock/mockgen -source=apod.go -destination=mocks/mock.go

type Client interface {
	FetchCurrent(ctx context.Context) (*domain.Record, error)
	FetchImage(ctx context.Context, imageURL *url.URL) ([]byte, error)
}
