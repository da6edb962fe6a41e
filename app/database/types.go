package database

import (
	"time"
)

type Run struct {
	ID         string
	FeedPath   string
	RunDir     string
	StartedAt  time.Time
	FinishedAt *time.Time
	PostCount  int
	Skipped    int
	Downloaded int
	Failed     int
}

type AssetStatus string

const (
	AssetDownloaded AssetStatus = "downloaded"
	AssetFailed     AssetStatus = "failed"
	AssetConflict   AssetStatus = "conflict" // filename already claimed by another URL
)

type AssetOutcome struct {
	URL      string
	Filename string
	Status   AssetStatus
	Bytes    int64
	Error    string
}
