package storageimpl

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/orgball2608/apod-telegram-bot/internal/domain"
	"github.com/orgball2608/apod-telegram-bot/internal/storage"
	"github.com/orgball2608/apod-telegram-bot/pkg/config"
	"github.com/orgball2608/apod-telegram-bot/pkg/formatter"
	"github.com/orgball2608/apod-telegram-bot/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type StorageImpl struct {
	dir    string
	logger logger.Logger
}

func New(opts Opts) *StorageImpl {
	dir := opts.Config.Storage.ImageDir
	if dir == "" {
		dir = "."
	}

	return &StorageImpl{
		dir:    dir,
		logger: opts.Logger,
	}
}

var _ storage.Saver = (*StorageImpl)(nil)

// Save writes the image bytes into the configured directory,
// overwriting any existing file of the same name. The directory is
// assumed to exist.
func (s *StorageImpl) Save(date domain.Date, imageURL *url.URL, data []byte) (string, error) {
	path := filepath.Join(s.dir, storage.Filename(date, imageURL))

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("unable to write image data: %w", err)
	}

	s.logger.Info("Saved image",
		"path", path,
		"bytes", formatter.FormatNumber(len(data)))
	return path, nil
}
