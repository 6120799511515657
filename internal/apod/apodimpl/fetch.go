package apodimpl

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/orgball2608/apod-telegram-bot/internal/apod"
	"github.com/orgball2608/apod-telegram-bot/internal/domain"
	apperrors "github.com/orgball2608/apod-telegram-bot/pkg/errors"
	"github.com/orgball2608/apod-telegram-bot/pkg/formatter"
	"github.com/orgball2608/apod-telegram-bot/pkg/logger"
)

// FetchCurrent requests the current picture-of-the-day metadata record
// and decodes it.
func (a *ApodImpl) FetchCurrent(ctx context.Context) (*domain.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build metadata request: %w", err)
	}
	q := req.URL.Query()
	q.Set("api_key", a.apiKey)
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch metadata: %w", err)
	}
	defer safeClose(resp.Body, a.logger)

	if err := statusError(resp.StatusCode); err != nil {
		return nil, fmt.Errorf("metadata request failed: %w", err)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata response: %w", err)
	}

	record, err := apod.DecodeRecord(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse metadata: %w", err)
	}

	a.logger.Info("Fetched picture of the day",
		"date", record.Date.String(),
		"title", record.Title)
	return record, nil
}

// FetchImage downloads the raw image bytes. The content type is not
// validated.
func (a *ApodImpl) FetchImage(ctx context.Context, imageURL *url.URL) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build image request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image: %w", err)
	}
	defer safeClose(resp.Body, a.logger)

	if err := statusError(resp.StatusCode); err != nil {
		return nil, fmt.Errorf("image request failed: %w", err)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("unable to read image: %w", err)
	}

	a.logger.Info("Downloaded image",
		"url", imageURL.String(),
		"bytes", formatter.FormatNumber(len(data)))
	return data, nil
}

// statusError maps upstream HTTP statuses onto the shared sentinels.
// 401/403 usually mean a bad api key, 429 the DEMO_KEY quota.
func statusError(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return fmt.Errorf("%w (status %d)", apperrors.ErrUnauthorized, code)
	case code == http.StatusNotFound:
		return fmt.Errorf("%w (status %d)", apperrors.ErrNotFound, code)
	case code == http.StatusTooManyRequests:
		return fmt.Errorf("%w (status %d)", apperrors.ErrTooManyRequests, code)
	case code >= 500:
		return fmt.Errorf("%w (status %d)", apperrors.ErrServiceUnavailable, code)
	default:
		return fmt.Errorf("unexpected status %d", code)
	}
}

func safeClose(closer io.ReadCloser, log logger.Logger) {
	if err := closer.Close(); err != nil {
		log.Error("Error closing response body", "error", err)
	}
}
