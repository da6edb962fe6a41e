package converter

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/lysyi3m/blogger2ghost/app/cfg"
	"github.com/lysyi3m/blogger2ghost/app/content"
	"github.com/lysyi3m/blogger2ghost/app/database"
	"github.com/lysyi3m/blogger2ghost/app/export"
	"github.com/lysyi3m/blogger2ghost/app/feed"
	"github.com/lysyi3m/blogger2ghost/app/slug"
	"github.com/lysyi3m/blogger2ghost/app/tasks"
)

// Outcome describes a finished conversion.
type Outcome struct {
	Bundle    *export.Bundle
	Result    *feed.Result
	Downloads tasks.Summary
	RunID     string // set when a report database was written
}

type Converter struct {
	config     *cfg.Cfg
	parser     *feed.Parser
	walker     *feed.Walker
	writer     *export.Writer
	downloader *tasks.Downloader
}

func New(config *cfg.Cfg, httpClient *http.Client, writerOpts ...export.WriterOption) *Converter {
	rewriter := content.NewRewriter(content.NewRegexpMatcher(), config.Settings.ImagePath)
	builder := feed.NewBuilder(slug.NewGenerator(), rewriter, feed.PostDefaults{
		AuthorID: config.Settings.AuthorID,
		Language: config.Settings.Language,
	})

	opts := append([]export.WriterOption{
		export.WithPrettyJSON(config.Pretty),
		export.WithTags(config.Tags),
	}, writerOpts...)

	return &Converter{
		config:     config,
		parser:     feed.NewParser(),
		walker:     feed.NewWalker(feed.NewClassifier(), builder, config.DuplicatePolicy),
		writer:     export.NewWriter(config.OutputDir, opts...),
		downloader: tasks.NewDownloader(tasks.NewPool(config.Workers), httpClient, config.UserAgent, config.Timeout),
	}
}

// Run converts the feed. Nothing is written unless every post converts;
// image downloads happen after the manifest is on disk and never fail the run.
func (c *Converter) Run(ctx context.Context) (*Outcome, error) {
	started := time.Now()

	doc, err := c.parser.Load(c.config.FeedPath)
	if err != nil {
		return nil, err
	}

	result, err := c.walker.Run(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to convert feed: %w", err)
	}

	slog.Info("Feed converted",
		"feed", c.config.FeedPath,
		"posts", len(result.Posts),
		"skipped", result.Skipped,
		"terms", len(result.Terms),
		"images", result.Images.Len())

	for _, conflict := range result.Images.Conflicts() {
		slog.Warn("Image filename already taken, not downloading",
			"url", conflict.URL, "file", conflict.Filename)
	}

	bundle, err := c.writer.Run(result.Posts, result.Terms)
	if err != nil {
		return nil, err
	}

	outcome := &Outcome{
		Bundle: bundle,
		Result: result,
	}
	outcome.Downloads = c.downloader.Run(ctx, result.Images.Images(), bundle.ImagesDir)

	if c.config.ReportDB != "" {
		runID, err := c.writeReport(started, outcome)
		if err != nil {
			slog.Error("Failed to write run report", "path", c.config.ReportDB, "error", err)
		} else {
			outcome.RunID = runID
			slog.Info("Run report written", "path", c.config.ReportDB, "run_id", runID)
		}
	}

	return outcome, nil
}

func (c *Converter) writeReport(started time.Time, outcome *Outcome) (string, error) {
	db, err := database.Open(c.config.ReportDB)
	if err != nil {
		return "", err
	}
	defer db.Close()

	repo := database.NewReportRepository(db)

	runID, err := repo.CreateRun(c.config.FeedPath, started)
	if err != nil {
		return "", err
	}
	if err := repo.AddPosts(runID, outcome.Result.Posts); err != nil {
		return "", err
	}
	if err := repo.AddTerms(runID, outcome.Result.Terms); err != nil {
		return "", err
	}
	if err := repo.AddAssets(runID, assetOutcomes(outcome)); err != nil {
		return "", err
	}

	err = repo.FinishRun(runID, outcome.Bundle.Dir, time.Now(),
		len(outcome.Result.Posts), outcome.Result.Skipped,
		outcome.Downloads.Succeeded, outcome.Downloads.Failed)
	if err != nil {
		return "", err
	}

	return runID, nil
}

func assetOutcomes(outcome *Outcome) []database.AssetOutcome {
	assets := make([]database.AssetOutcome, 0, len(outcome.Downloads.Results))
	for _, result := range outcome.Downloads.Results {
		asset := database.AssetOutcome{
			URL:      result.Image.URL,
			Filename: result.Image.Filename,
			Status:   database.AssetDownloaded,
			Bytes:    result.Bytes,
		}
		if result.Err != nil {
			asset.Status = database.AssetFailed
			asset.Error = result.Err.Error()
		}
		assets = append(assets, asset)
	}

	for _, conflict := range outcome.Result.Images.Conflicts() {
		assets = append(assets, database.AssetOutcome{
			URL:      conflict.URL,
			Filename: conflict.Filename,
			Status:   database.AssetConflict,
		})
	}

	return assets
}
