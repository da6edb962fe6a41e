package database

import (
	"time"

	"github.com/lysyi3m/blogger2ghost/app/export"
)

type ReportRepository interface {
	CreateRun(feedPath string, startedAt time.Time) (string, error)
	FinishRun(runID string, runDir string, finishedAt time.Time, postCount, skipped, downloaded, failed int) error
	GetRun(runID string) (*Run, error)

	AddPosts(runID string, posts []export.Post) error
	AddTerms(runID string, terms []string) error
	AddAssets(runID string, assets []AssetOutcome) error

	GetAssets(runID string) ([]AssetOutcome, error)
	GetTerms(runID string) ([]string, error)
	GetPostCount(runID string) (int, error)
}
