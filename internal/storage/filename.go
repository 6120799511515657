package storage

import (
	"net/url"
	"strings"

	"github.com/orgball2608/apod-telegram-bot/internal/domain"
)

// Filename derives the output filename for an image fetched on the
// given date. The final path segment of the URL keeps its original
// name after percent-decoding, prefixed with the date so filenames
// stay unique across days and sort chronologically. Without a usable
// segment the bare date is used, so some name is always produced.
func Filename(date domain.Date, imageURL *url.URL) string {
	segment := imageURL.EscapedPath()
	if i := strings.LastIndex(segment, "/"); i >= 0 {
		segment = segment[i+1:]
	}
	if segment == "" {
		return date.String()
	}

	decoded, err := url.PathUnescape(segment)
	if err != nil || decoded == "" {
		return date.String()
	}

	return date.String() + "_" + decoded
}
