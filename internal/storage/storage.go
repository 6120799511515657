package storage

import (
	"net/url"

	"github.com/orgball2608/apod-telegram-bot/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=storage.go -destination=mocks/mock.go

// Saver persists downloaded image bytes under a deterministic filename
// and reports the path it wrote to.
type Saver interface {
	Save(date domain.Date, imageURL *url.URL, data []byte) (string, error)
}
