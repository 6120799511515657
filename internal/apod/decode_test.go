package apod_test

import (
	"errors"
	"testing"

	"github.com/orgball2608/apod-telegram-bot/internal/apod"
	"github.com/orgball2608/apod-telegram-bot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRecord_ImageVariant(t *testing.T) {
	data := []byte(`{
		"copyright": "Nicolas Lefaudeux",
		"date": "2021-03-08",
		"explanation": "What created the unusual red tail?",
		"hdurl": "https://apod.nasa.gov/apod/image/2103/Neowise3Tails_Lefaudeux_1088.jpg",
		"media_type": "image",
		"service_version": "v1",
		"title": "Three Tails of Comet NEOWISE",
		"url": "https://apod.nasa.gov/apod/image/2103/Neowise3Tails_Lefaudeux_960.jpg"
	}`)

	record, err := apod.DecodeRecord(data)
	require.NoError(t, err)

	require.NotNil(t, record.Copyright)
	assert.Equal(t, "Nicolas Lefaudeux", *record.Copyright)
	assert.Equal(t, "2021-03-08", record.Date.String())
	assert.Equal(t, "What created the unusual red tail?", record.Explanation)
	assert.Equal(t, "Three Tails of Comet NEOWISE", record.Title)
	assert.Equal(t, "https://apod.nasa.gov/apod/image/2103/Neowise3Tails_Lefaudeux_960.jpg", record.ThumbnailURL.String())

	image, ok := record.Media.(domain.Image)
	require.True(t, ok, "expected image variant, got %T", record.Media)
	assert.Equal(t, "https://apod.nasa.gov/apod/image/2103/Neowise3Tails_Lefaudeux_1088.jpg", image.HighResURL.String())
}

func TestDecodeRecord_VideoVariant(t *testing.T) {
	data := []byte(`{
		"date": "2021-03-09",
		"explanation": "Is that a fossil?",
		"media_type": "video",
		"service_version": "v1",
		"title": "Perseverance 360: Unusual Rocks and the Search for Life on Mars",
		"url": "https://mars.nasa.gov/layout/embed/image/mars-panorama/?id=25674"
	}`)

	record, err := apod.DecodeRecord(data)
	require.NoError(t, err)

	assert.Nil(t, record.Copyright)
	assert.Equal(t, "2021-03-09", record.Date.String())
	_, ok := record.Media.(domain.Video)
	require.True(t, ok, "expected video variant, got %T", record.Media)
}

func TestDecodeRecord_VideoIgnoresHDURL(t *testing.T) {
	// The discriminator governs the variant, not field presence.
	data := []byte(`{
		"date": "2021-03-09",
		"explanation": "e",
		"hdurl": "https://example.com/some.jpg",
		"media_type": "video",
		"title": "t",
		"url": "https://example.com/embed"
	}`)

	record, err := apod.DecodeRecord(data)
	require.NoError(t, err)

	_, ok := record.Media.(domain.Video)
	require.True(t, ok, "expected video variant, got %T", record.Media)
}

func TestDecodeRecord_UnknownMediaType(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "unrecognized value",
			data: `{"date": "2021-03-08", "explanation": "e", "media_type": "audio", "title": "t", "url": "https://example.com/a"}`,
		},
		{
			name: "missing discriminator",
			data: `{"date": "2021-03-08", "explanation": "e", "title": "t", "url": "https://example.com/a"}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := apod.DecodeRecord([]byte(tc.data))
			require.ErrorIs(t, err, apod.ErrUnknownMediaType)
		})
	}
}

func TestDecodeRecord_MissingRequiredField(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		field string
	}{
		{
			name:  "missing date",
			data:  `{"explanation": "e", "media_type": "video", "title": "t", "url": "https://example.com/a"}`,
			field: "date",
		},
		{
			name:  "missing title",
			data:  `{"date": "2021-03-08", "explanation": "e", "media_type": "video", "url": "https://example.com/a"}`,
			field: "title",
		},
		{
			name:  "missing hdurl on image",
			data:  `{"date": "2021-03-08", "explanation": "e", "media_type": "image", "title": "t", "url": "https://example.com/a"}`,
			field: "hdurl",
		},
		{
			name:  "invalid date",
			data:  `{"date": "not-a-date", "explanation": "e", "media_type": "video", "title": "t", "url": "https://example.com/a"}`,
			field: "date",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := apod.DecodeRecord([]byte(tc.data))
			require.ErrorIs(t, err, apod.ErrMalformedRecord)

			var fieldErr *apod.FieldError
			require.True(t, errors.As(err, &fieldErr))
			assert.Equal(t, tc.field, fieldErr.Field)
		})
	}
}

func TestDecodeRecord_FieldTypeMismatch(t *testing.T) {
	data := []byte(`{"date": 20210308, "explanation": "e", "media_type": "video", "title": "t", "url": "https://example.com/a"}`)

	_, err := apod.DecodeRecord(data)
	require.ErrorIs(t, err, apod.ErrMalformedRecord)

	var fieldErr *apod.FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "date", fieldErr.Field)
}

func TestDecodeRecord_InvalidURL(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "unparseable hdurl",
			data: `{"date": "2021-03-08", "explanation": "e", "hdurl": "://broken", "media_type": "image", "title": "t", "url": "https://example.com/a"}`,
		},
		{
			name: "relative hdurl",
			data: `{"date": "2021-03-08", "explanation": "e", "hdurl": "images/a.jpg", "media_type": "image", "title": "t", "url": "https://example.com/a"}`,
		},
		{
			name: "relative url",
			data: `{"date": "2021-03-08", "explanation": "e", "media_type": "video", "title": "t", "url": "embed/a"}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := apod.DecodeRecord([]byte(tc.data))
			require.ErrorIs(t, err, apod.ErrInvalidURL)
		})
	}
}

func TestDecodeRecord_InvalidJSON(t *testing.T) {
	_, err := apod.DecodeRecord([]byte(`{not json`))
	require.Error(t, err)
}
