package tasks

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/lysyi3m/blogger2ghost/app/content"
)

// AssetResult is the download outcome of one pending image.
type AssetResult struct {
	Image content.Image
	Bytes int64
	Err   error
}

type Summary struct {
	Succeeded int
	Failed    int
	Results   []AssetResult
	Duration  time.Duration
}

// Downloader fetches pending images into a directory. Downloads are best
// effort: failures are logged and counted, never returned.
type Downloader struct {
	pool       PoolInterface
	httpClient *http.Client
	userAgent  string
	timeout    time.Duration
}

func NewDownloader(pool PoolInterface, httpClient *http.Client, userAgent string, timeout time.Duration) *Downloader {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Downloader{
		pool:       pool,
		httpClient: httpClient,
		userAgent:  userAgent,
		timeout:    timeout,
	}
}

func (d *Downloader) Run(ctx context.Context, images []content.Image, dir string) Summary {
	started := time.Now()

	downloads := make([]*DownloadImageTask, 0, len(images))
	batch := make([]TaskInterface, 0, len(images))
	for _, image := range images {
		task := NewDownloadImageTask(image, dir, d.httpClient, d.userAgent, d.timeout)
		downloads = append(downloads, task)
		batch = append(batch, task)
	}

	results := d.pool.Run(ctx, batch)

	summary := Summary{Results: make([]AssetResult, 0, len(results))}
	for i, result := range results {
		asset := AssetResult{Image: downloads[i].Image, Err: result.Err}
		if result.Err == nil {
			asset.Bytes = downloads[i].Bytes
			summary.Succeeded++
		} else {
			summary.Failed++
		}
		summary.Results = append(summary.Results, asset)
	}
	summary.Duration = time.Since(started)

	slog.Info("Image downloads finished",
		"total", len(images),
		"succeeded", summary.Succeeded,
		"failed", summary.Failed,
		"duration", summary.Duration)

	return summary
}
