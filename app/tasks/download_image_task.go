package tasks

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/lysyi3m/blogger2ghost/app/content"
)

type DownloadImageTask struct {
	Task
	Image      content.Image
	dir        string
	httpClient *http.Client
	userAgent  string
	timeout    time.Duration

	Bytes int64
}

func NewDownloadImageTask(image content.Image, dir string, httpClient *http.Client, userAgent string, timeout time.Duration) *DownloadImageTask {
	return &DownloadImageTask{
		Task:       NewTask(TaskTypeDownloadImage),
		Image:      image,
		dir:        dir,
		httpClient: httpClient,
		userAgent:  userAgent,
		timeout:    timeout,
	}
}

func (t *DownloadImageTask) Execute(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if t.Image.Filename == "" || t.Image.Filename == "." || t.Image.Filename == ".." {
		return fmt.Errorf("no usable filename in %s", t.Image.URL)
	}

	n, err := t.fetchImage(ctx)
	if err != nil {
		return fmt.Errorf("failed to download %s: %w", t.Image.URL, err)
	}
	t.Bytes = n

	slog.Debug("Image downloaded", "url", t.Image.URL, "file", t.Image.Filename, "bytes", n, "duration", t.GetDuration())
	return nil
}

func (t *DownloadImageTask) fetchImage(ctx context.Context) (int64, error) {
	timeoutCtx := ctx
	if t.timeout > 0 {
		var cancel context.CancelFunc
		timeoutCtx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(timeoutCtx, "GET", t.Image.URL, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	if t.userAgent != "" {
		req.Header.Set("User-Agent", t.userAgent)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, fmt.Errorf("HTTP error: %s", resp.Status)
	}

	return t.writeFile(resp.Body)
}

// writeFile stores body under the image filename. A partially written file
// is removed.
func (t *DownloadImageTask) writeFile(body io.Reader) (int64, error) {
	path := filepath.Join(t.dir, filepath.Base(t.Image.Filename))

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create file: %w", err)
	}

	n, err := io.Copy(f, body)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path)
		return 0, fmt.Errorf("failed to write file: %w", err)
	}

	return n, nil
}
