package pipeline

import (
	"context"
	"errors"
)

// ErrNoImageAvailable is the terminal condition for video records: a
// video day has no high-resolution image to download.
var ErrNoImageAvailable = errors.New("unable to fetch image, media type is video")

//go:generate go run go.uber.org/mock/mockgen -source=pipeline.go -destination=mocks/mock.go

// Client runs the fetch pipeline: metadata, decode, resolve, download,
// write. Run returns the path the image was written to.
type Client interface {
	Run(ctx context.Context) (string, error)
	ScheduleDailyFetch(ctx context.Context) error
}
