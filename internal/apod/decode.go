package apod

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/orgball2608/apod-telegram-bot/internal/domain"
)

// FieldError reports a required field that is missing or holds an
// unusable value. It unwraps to ErrMalformedRecord.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed record: field %q: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("malformed record: missing field %q", e.Field)
}

func (e *FieldError) Unwrap() error { return ErrMalformedRecord }

// envelope holds the raw response shape. Required fields are pointers
// so a missing field can be told apart from an empty one, and extra
// unknown fields are ignored for forward compatibility.
type envelope struct {
	Copyright   *string `json:"copyright"`
	Date        *string `json:"date"`
	Explanation *string `json:"explanation"`
	Title       *string `json:"title"`
	URL         *string `json:"url"`
	MediaType   *string `json:"media_type"`
	HDURL       *string `json:"hdurl"`
}

// DecodeRecord decodes one APOD JSON object into a domain.Record. The
// media_type discriminator is inspected first and governs the variant;
// an hdurl on a video record is ignored.
func DecodeRecord(data []byte) (*domain.Record, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return nil, &FieldError{Field: typeErr.Field, Err: err}
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}

	media, err := decodeMedia(&env)
	if err != nil {
		return nil, err
	}

	if env.Date == nil {
		return nil, &FieldError{Field: "date"}
	}
	date, err := domain.ParseDate(*env.Date)
	if err != nil {
		return nil, &FieldError{Field: "date", Err: err}
	}

	if env.Explanation == nil {
		return nil, &FieldError{Field: "explanation"}
	}
	if env.Title == nil {
		return nil, &FieldError{Field: "title"}
	}
	if env.URL == nil {
		return nil, &FieldError{Field: "url"}
	}
	thumbnailURL, err := parseAbsoluteURL("url", *env.URL)
	if err != nil {
		return nil, err
	}

	return &domain.Record{
		Copyright:    env.Copyright,
		Date:         date,
		Explanation:  *env.Explanation,
		Title:        *env.Title,
		ThumbnailURL: thumbnailURL,
		Media:        media,
	}, nil
}

func decodeMedia(env *envelope) (domain.Media, error) {
	if env.MediaType == nil {
		return nil, fmt.Errorf("%w: media_type is missing", ErrUnknownMediaType)
	}
	switch *env.MediaType {
	case "image":
		if env.HDURL == nil {
			return nil, &FieldError{Field: "hdurl"}
		}
		highResURL, err := parseAbsoluteURL("hdurl", *env.HDURL)
		if err != nil {
			return nil, err
		}
		return domain.Image{HighResURL: highResURL}, nil
	case "video":
		return domain.Video{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMediaType, *env.MediaType)
	}
}

func parseAbsoluteURL(field, raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: field %q: %v", ErrInvalidURL, field, err)
	}
	if !u.IsAbs() {
		return nil, fmt.Errorf("%w: field %q: %q is not absolute", ErrInvalidURL, field, raw)
	}
	return u, nil
}
