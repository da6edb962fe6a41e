package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const (
	ManifestFile = "ghost.json"
	ImagesDir    = "images"

	runDirPrefix = "B2G_"
	runDirLayout = "20060102_150405"
)

type Writer struct {
	outputDir string
	pretty    bool
	withTags  bool
	now       func() time.Time
}

type WriterOption func(*Writer)

// WithPrettyJSON indents the manifest.
func WithPrettyJSON(pretty bool) WriterOption {
	return func(w *Writer) { w.pretty = pretty }
}

// WithTags adds tags and posts_tags to the manifest.
func WithTags(withTags bool) WriterOption {
	return func(w *Writer) { w.withTags = withTags }
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) WriterOption {
	return func(w *Writer) { w.now = now }
}

func NewWriter(outputDir string, opts ...WriterOption) *Writer {
	w := &Writer{
		outputDir: outputDir,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run creates a fresh run directory with an images subdirectory and writes
// the manifest for posts into it.
func (w *Writer) Run(posts []Post, terms []string) (*Bundle, error) {
	now := w.now().UTC()
	manifest := BuildManifest(posts, terms, now, w.withTags)

	data, err := w.marshal(manifest)
	if err != nil {
		return nil, fmt.Errorf("failed to encode manifest: %w", err)
	}

	dir, err := w.createRunDir(now)
	if err != nil {
		return nil, err
	}

	imagesDir := filepath.Join(dir, ImagesDir)
	if err := os.Mkdir(imagesDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create images directory: %w", err)
	}

	manifestPath := filepath.Join(dir, ManifestFile)
	if err := os.WriteFile(manifestPath, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write manifest: %w", err)
	}

	slog.Info("Manifest written", "path", manifestPath, "posts", len(manifest.DB[0].Data.Posts), "bytes", len(data))

	return &Bundle{
		Dir:          dir,
		ManifestPath: manifestPath,
		ImagesDir:    imagesDir,
		Manifest:     manifest,
	}, nil
}

func (w *Writer) marshal(manifest *Manifest) ([]byte, error) {
	if w.pretty {
		return json.MarshalIndent(manifest, "", "  ")
	}
	return json.Marshal(manifest)
}

// createRunDir makes B2G_<timestamp> under the output folder, appending _2,
// _3, ... when a directory of that name already exists.
func (w *Writer) createRunDir(now time.Time) (string, error) {
	if err := os.MkdirAll(w.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output folder: %w", err)
	}

	base := filepath.Join(w.outputDir, runDirPrefix+now.Format(runDirLayout))
	dir := base
	for n := 2; ; n++ {
		err := os.Mkdir(dir, 0o755)
		if err == nil {
			return dir, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("failed to create run directory: %w", err)
		}
		dir = fmt.Sprintf("%s_%d", base, n)
	}
}
