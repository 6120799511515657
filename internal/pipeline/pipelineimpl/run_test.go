package pipelineimpl_test

import (
	"context"
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	mock_apod "github.com/orgball2608/apod-telegram-bot/internal/apod/mocks"
	"github.com/orgball2608/apod-telegram-bot/internal/domain"
	"github.com/orgball2608/apod-telegram-bot/internal/pipeline"
	"github.com/orgball2608/apod-telegram-bot/internal/pipeline/pipelineimpl"
	mock_fetchlog "github.com/orgball2608/apod-telegram-bot/internal/repositories/fetchlog/mocks"
	"github.com/orgball2608/apod-telegram-bot/internal/storage/storageimpl"
	mock_telegram "github.com/orgball2608/apod-telegram-bot/internal/telegram/mocks"
	"github.com/orgball2608/apod-telegram-bot/pkg/config"
	"github.com/orgball2608/apod-telegram-bot/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	apod     *mock_apod.MockClient
	telegram *mock_telegram.MockClient
	fetchLog *mock_fetchlog.MockRepository
	pipeline *pipelineimpl.PipelineImpl
	dir      string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.Storage.ImageDir = dir
	log := logger.New(logger.Opts{})

	apodClient := mock_apod.NewMockClient(ctrl)
	telegramClient := mock_telegram.NewMockClient(ctrl)
	fetchLogRepo := mock_fetchlog.NewMockRepository(ctrl)

	p := pipelineimpl.New(pipelineimpl.Opts{
		Apod: apodClient,
		Storage: storageimpl.New(storageimpl.Opts{
			Config: cfg,
			Logger: log,
		}),
		Telegram:     telegramClient,
		FetchLogRepo: fetchLogRepo,
		Logger:       log,
		Config:       cfg,
	})

	return &fixture{
		apod:     apodClient,
		telegram: telegramClient,
		fetchLog: fetchLogRepo,
		pipeline: p,
		dir:      dir,
	}
}

func imageRecord(t *testing.T, rawURL string) (*domain.Record, *url.URL) {
	t.Helper()
	hdURL, err := url.Parse(rawURL)
	require.NoError(t, err)
	thumbURL, err := url.Parse("https://apod.nasa.gov/apod/image/2103/Neowise3Tails_Lefaudeux_960.jpg")
	require.NoError(t, err)

	return &domain.Record{
		Date:         domain.NewDate(2021, time.March, 8),
		Explanation:  "What created the unusual red tail?",
		Title:        "Three Tails of Comet NEOWISE",
		ThumbnailURL: thumbURL,
		Media:        domain.Image{HighResURL: hdURL},
	}, hdURL
}

func TestRun_SavesImage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	record, hdURL := imageRecord(t, "https://apod.nasa.gov/apod/image/2103/Neowise3Tails_Lefaudeux_1088.jpg")
	imageBytes := []byte("jpeg-bytes")

	f.apod.EXPECT().FetchCurrent(ctx).Return(record, nil)
	f.apod.EXPECT().FetchImage(ctx, hdURL).Return(imageBytes, nil)
	f.fetchLog.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	f.telegram.EXPECT().Enabled().Return(false)

	path, err := f.pipeline.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(f.dir, "2021-03-08_Neowise3Tails_Lefaudeux_1088.jpg"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, imageBytes, content)
}

func TestRun_VideoStopsBeforeImageFetch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	thumbURL, err := url.Parse("https://mars.nasa.gov/layout/embed/image/mars-panorama/?id=25674")
	require.NoError(t, err)
	record := &domain.Record{
		Date:         domain.NewDate(2021, time.March, 9),
		Explanation:  "Is that a fossil?",
		Title:        "Perseverance 360",
		ThumbnailURL: thumbURL,
		Media:        domain.Video{},
	}

	// No FetchImage expectation: the pipeline must stop at the variant
	// check.
	f.apod.EXPECT().FetchCurrent(ctx).Return(record, nil)

	_, err = f.pipeline.Run(ctx)
	require.ErrorIs(t, err, pipeline.ErrNoImageAvailable)

	entries, err := os.ReadDir(f.dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "nothing should be written for a video record")
}

func TestRun_MetadataFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.apod.EXPECT().FetchCurrent(ctx).Return(nil, errors.New("boom"))

	_, err := f.pipeline.Run(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error fetching metadata")
}

func TestRun_ImageFetchFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	record, hdURL := imageRecord(t, "https://example.com/pic.jpg")

	f.apod.EXPECT().FetchCurrent(ctx).Return(record, nil)
	f.apod.EXPECT().FetchImage(ctx, hdURL).Return(nil, errors.New("connection reset"))

	_, err := f.pipeline.Run(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error fetching image")
}

func TestRun_ArchiveFailureDoesNotFailRun(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	record, hdURL := imageRecord(t, "https://example.com/pic.jpg")

	f.apod.EXPECT().FetchCurrent(ctx).Return(record, nil)
	f.apod.EXPECT().FetchImage(ctx, hdURL).Return([]byte("data"), nil)
	f.fetchLog.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("postgres down"))
	f.telegram.EXPECT().Enabled().Return(false)

	path, err := f.pipeline.Run(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, path)
}

func TestRun_DeliversToTelegramWhenEnabled(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	record, hdURL := imageRecord(t, "https://example.com/pic.jpg")
	copyright := "Nicolas Lefaudeux"
	record.Copyright = &copyright

	f.apod.EXPECT().FetchCurrent(ctx).Return(record, nil)
	f.apod.EXPECT().FetchImage(ctx, hdURL).Return([]byte("data"), nil)
	f.fetchLog.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	f.telegram.EXPECT().Enabled().Return(true)
	f.telegram.EXPECT().
		SendPhotoToChannel("2021-03-08_pic.jpg", []byte("data"), gomock.Any()).
		Return(nil)

	_, err := f.pipeline.Run(ctx)
	require.NoError(t, err)
}
