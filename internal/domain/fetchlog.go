package domain

import "time"

type FetchLog struct {
	ID        int
	Date      string
	Title     string
	ImageURL  string
	FilePath  string
	CreatedAt time.Time
}
