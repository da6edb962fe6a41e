package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/lysyi3m/blogger2ghost/app/export"
)

func openTestDB(t *testing.T) (*DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, path
}

func TestOpen_RunsMigrations(t *testing.T) {
	db, path := openTestDB(t)

	version, dirty, err := RunMigrations(db)
	if err != nil {
		t.Fatalf("Expected migrations to be idempotent, got: %v", err)
	}
	if version != 1 || dirty {
		t.Errorf("Expected clean version 1, got %d (dirty=%v)", version, dirty)
	}

	db.Close()

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("Failed to reopen database: %v", err)
	}
	reopened.Close()
}

func TestReportRepository_RunLifecycle(t *testing.T) {
	db, _ := openTestDB(t)
	repo := NewReportRepository(db)

	started := time.Date(2016, 4, 23, 10, 0, 0, 0, time.UTC)
	runID, err := repo.CreateRun("/tmp/blog.xml", started)
	if err != nil {
		t.Fatal(err)
	}
	if runID == "" {
		t.Fatal("Expected run id")
	}

	posts := []export.Post{
		{ID: 0, Slug: "hello", Title: "Hello", Status: export.StatusPublished},
		{ID: 1, Slug: "Untitled_1", Title: "Untitled 1", Status: export.StatusDraft},
	}
	if err := repo.AddPosts(runID, posts); err != nil {
		t.Fatal(err)
	}
	if err := repo.AddTerms(runID, []string{"Go", "Travel"}); err != nil {
		t.Fatal(err)
	}

	assets := []AssetOutcome{
		{URL: "http://x/a.png", Filename: "a.png", Status: AssetDownloaded, Bytes: 42},
		{URL: "http://x/b.png", Filename: "b.png", Status: AssetFailed, Error: "HTTP error: 404 Not Found"},
		{URL: "http://y/a.png", Filename: "a.png", Status: AssetConflict},
	}
	if err := repo.AddAssets(runID, assets); err != nil {
		t.Fatal(err)
	}

	finished := started.Add(5 * time.Second)
	if err := repo.FinishRun(runID, "/out/B2G_20160423_100000", finished, 2, 3, 1, 1); err != nil {
		t.Fatal(err)
	}

	run, err := repo.GetRun(runID)
	if err != nil {
		t.Fatal(err)
	}
	if run == nil {
		t.Fatal("Expected run to exist")
	}
	if run.FeedPath != "/tmp/blog.xml" || run.RunDir != "/out/B2G_20160423_100000" {
		t.Errorf("Unexpected paths: %+v", run)
	}
	if run.PostCount != 2 || run.Skipped != 3 || run.Downloaded != 1 || run.Failed != 1 {
		t.Errorf("Unexpected counters: %+v", run)
	}
	if !run.StartedAt.Equal(started) {
		t.Errorf("Expected started %v, got %v", started, run.StartedAt)
	}
	if run.FinishedAt == nil || !run.FinishedAt.Equal(finished) {
		t.Errorf("Expected finished %v, got %v", finished, run.FinishedAt)
	}

	count, err := repo.GetPostCount(runID)
	if err != nil || count != 2 {
		t.Errorf("Expected 2 posts, got %d (%v)", count, err)
	}

	terms, err := repo.GetTerms(runID)
	if err != nil || len(terms) != 2 || terms[0] != "Go" || terms[1] != "Travel" {
		t.Errorf("Expected terms [Go Travel], got %v (%v)", terms, err)
	}

	stored, err := repo.GetAssets(runID)
	if err != nil {
		t.Fatal(err)
	}
	if len(stored) != len(assets) {
		t.Fatalf("Expected %d assets, got %d", len(assets), len(stored))
	}
	for i := range assets {
		if stored[i] != assets[i] {
			t.Errorf("Asset %d: expected %+v, got %+v", i, assets[i], stored[i])
		}
	}
}

func TestReportRepository_GetRunNotFound(t *testing.T) {
	db, _ := openTestDB(t)

	run, err := NewReportRepository(db).GetRun("missing")
	if err != nil {
		t.Fatal(err)
	}
	if run != nil {
		t.Errorf("Expected nil run, got %+v", run)
	}
}

func TestReportRepository_FinishUnknownRun(t *testing.T) {
	db, _ := openTestDB(t)

	err := NewReportRepository(db).FinishRun("missing", "", time.Now(), 0, 0, 0, 0)
	if err == nil {
		t.Error("Expected error for unknown run")
	}
}

func TestReportRepository_AddPostsRejectsUnknownRun(t *testing.T) {
	db, _ := openTestDB(t)

	err := NewReportRepository(db).AddPosts("missing", []export.Post{{ID: 0, Slug: "s", Title: "t", Status: export.StatusPublished}})
	if err == nil {
		t.Error("Expected foreign key violation for unknown run")
	}
}
