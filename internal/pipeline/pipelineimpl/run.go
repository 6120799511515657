package pipelineimpl

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"

	"github.com/orgball2608/apod-telegram-bot/internal/domain"
	"github.com/orgball2608/apod-telegram-bot/internal/pipeline"
	apperrors "github.com/orgball2608/apod-telegram-bot/pkg/errors"
	"github.com/orgball2608/apod-telegram-bot/pkg/formatter"
)

// Run executes one fetch from start to finish. Every failure aborts
// the run and surfaces the first error; nothing is retried and nothing
// is written on failure.
func (p *PipelineImpl) Run(ctx context.Context) (string, error) {
	record, err := p.Apod.FetchCurrent(ctx)
	if err != nil {
		return "", apperrors.Wrap(err, "error fetching metadata")
	}

	imageURL, err := resolveImageURL(record)
	if err != nil {
		return "", err
	}

	data, err := p.Apod.FetchImage(ctx, imageURL)
	if err != nil {
		return "", apperrors.Wrap(err, "error fetching image")
	}

	path, err := p.Storage.Save(record.Date, imageURL, data)
	if err != nil {
		return "", apperrors.Wrap(err, "error writing image")
	}

	p.archive(ctx, record, imageURL, path)
	p.notify(record, path, data)

	return path, nil
}

func resolveImageURL(record *domain.Record) (*url.URL, error) {
	switch media := record.Media.(type) {
	case domain.Image:
		return media.HighResURL, nil
	case domain.Video:
		return nil, pipeline.ErrNoImageAvailable
	default:
		return nil, fmt.Errorf("unexpected media variant %T", media)
	}
}

// archive records the save in the fetch log. Archive failures are
// reported but never fail a run that already wrote the image.
func (p *PipelineImpl) archive(ctx context.Context, record *domain.Record, imageURL *url.URL, path string) {
	entry := domain.FetchLog{
		Date:     record.Date.String(),
		Title:    record.Title,
		ImageURL: imageURL.String(),
		FilePath: path,
	}
	if err := p.FetchLogRepo.Create(ctx, entry); err != nil {
		p.Logger.Warn("Failed to archive fetch", "date", entry.Date, "error", err)
	}
}

// notify posts the saved image to the Telegram channel when delivery
// is enabled. Like archiving, it never fails the run.
func (p *PipelineImpl) notify(record *domain.Record, path string, data []byte) {
	if !p.Telegram.Enabled() {
		return
	}

	caption := fmt.Sprintf("*%s*\n%s",
		formatter.EscapeMarkdownV2(record.Title),
		formatter.EscapeMarkdownV2(record.Date.String()))
	if record.Copyright != nil {
		caption = fmt.Sprintf("%s\n© %s", caption, formatter.EscapeMarkdownV2(*record.Copyright))
	}

	if err := p.Telegram.SendPhotoToChannel(filepath.Base(path), data, caption); err != nil {
		p.Logger.Warn("Failed to deliver image to telegram", "error", err)
		p.Telegram.SendMessageToUser("Failed to deliver today's picture: " + err.Error())
	}
}
