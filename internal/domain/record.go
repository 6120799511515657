package domain

import "net/url"

// Media is the discriminated part of an APOD record. The API tags each
// record with a media_type and only image records carry a
// high-resolution URL.
type Media interface {
	mediaType() string
}

type Image struct {
	HighResURL *url.URL
}

func (Image) mediaType() string { return "image" }

type Video struct{}

func (Video) mediaType() string { return "video" }

// Record is one decoded picture-of-the-day entry. It is built once per
// fetch and read-only afterwards.
type Record struct {
	Copyright    *string
	Date         Date
	Explanation  string
	Title        string
	ThumbnailURL *url.URL
	Media        Media
}
