package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lysyi3m/blogger2ghost/app/export"
)

var _ ReportRepository = (*reportRepository)(nil)

type reportRepository struct {
	db *DB
}

func NewReportRepository(db *DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) CreateRun(feedPath string, startedAt time.Time) (string, error) {
	id := uuid.NewString()

	_, err := r.db.Exec(`
		INSERT INTO runs (id, feed_path, started_at)
		VALUES (?, ?, ?)
	`, id, feedPath, startedAt.UTC())
	if err != nil {
		return "", fmt.Errorf("failed to create run: %w", err)
	}

	return id, nil
}

func (r *reportRepository) FinishRun(runID string, runDir string, finishedAt time.Time, postCount, skipped, downloaded, failed int) error {
	res, err := r.db.Exec(`
		UPDATE runs
		SET run_dir = ?, finished_at = ?, post_count = ?, skipped = ?, downloaded = ?, failed = ?
		WHERE id = ?
	`, runDir, finishedAt.UTC(), postCount, skipped, downloaded, failed, runID)
	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("run %s not found", runID)
	}

	return nil
}

func (r *reportRepository) GetRun(runID string) (*Run, error) {
	var run Run
	var finishedAt sql.NullTime

	err := r.db.QueryRow(`
		SELECT id, feed_path, run_dir, started_at, finished_at, post_count, skipped, downloaded, failed
		FROM runs
		WHERE id = ?
	`, runID).Scan(&run.ID, &run.FeedPath, &run.RunDir, &run.StartedAt, &finishedAt,
		&run.PostCount, &run.Skipped, &run.Downloaded, &run.Failed)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	if finishedAt.Valid {
		run.FinishedAt = &finishedAt.Time
	}

	return &run, nil
}

func (r *reportRepository) AddPosts(runID string, posts []export.Post) error {
	return r.inTx(func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`
			INSERT INTO run_posts (run_id, post_id, slug, title, status)
			VALUES (?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare post insert: %w", err)
		}
		defer stmt.Close()

		for _, post := range posts {
			if _, err := stmt.Exec(runID, post.ID, post.Slug, post.Title, string(post.Status)); err != nil {
				return fmt.Errorf("failed to insert post %d: %w", post.ID, err)
			}
		}
		return nil
	})
}

func (r *reportRepository) AddTerms(runID string, terms []string) error {
	return r.inTx(func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`
			INSERT INTO run_terms (run_id, position, term)
			VALUES (?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare term insert: %w", err)
		}
		defer stmt.Close()

		for i, term := range terms {
			if _, err := stmt.Exec(runID, i, term); err != nil {
				return fmt.Errorf("failed to insert term %q: %w", term, err)
			}
		}
		return nil
	})
}

func (r *reportRepository) AddAssets(runID string, assets []AssetOutcome) error {
	return r.inTx(func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`
			INSERT INTO run_assets (run_id, url, filename, status, bytes, error)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT (run_id, url) DO UPDATE SET
				filename = excluded.filename,
				status = excluded.status,
				bytes = excluded.bytes,
				error = excluded.error
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare asset insert: %w", err)
		}
		defer stmt.Close()

		for _, asset := range assets {
			if _, err := stmt.Exec(runID, asset.URL, asset.Filename, string(asset.Status), asset.Bytes, asset.Error); err != nil {
				return fmt.Errorf("failed to insert asset %s: %w", asset.URL, err)
			}
		}
		return nil
	})
}

func (r *reportRepository) GetAssets(runID string) ([]AssetOutcome, error) {
	rows, err := r.db.Query(`
		SELECT url, filename, status, bytes, error
		FROM run_assets
		WHERE run_id = ?
		ORDER BY rowid
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assets: %w", err)
	}
	defer rows.Close()

	var assets []AssetOutcome
	for rows.Next() {
		var asset AssetOutcome
		var status string
		if err := rows.Scan(&asset.URL, &asset.Filename, &status, &asset.Bytes, &asset.Error); err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		asset.Status = AssetStatus(status)
		assets = append(assets, asset)
	}

	return assets, rows.Err()
}

func (r *reportRepository) GetTerms(runID string) ([]string, error) {
	rows, err := r.db.Query(`
		SELECT term FROM run_terms WHERE run_id = ? ORDER BY position
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get terms: %w", err)
	}
	defer rows.Close()

	var terms []string
	for rows.Next() {
		var term string
		if err := rows.Scan(&term); err != nil {
			return nil, fmt.Errorf("failed to scan term: %w", err)
		}
		terms = append(terms, term)
	}

	return terms, rows.Err()
}

func (r *reportRepository) GetPostCount(runID string) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM run_posts WHERE run_id = ?`, runID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return count, nil
}

func (r *reportRepository) inTx(fn func(tx *sql.Tx) error) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
