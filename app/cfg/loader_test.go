package cfg

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lysyi3m/blogger2ghost/app/content"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"DUPLICATE_IMAGES", "REPORT_DB", "SETTINGS_FILE", "WORKERS", "DOWNLOAD_TIMEOUT", "USER_AGENT", "DEBUG"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestGetVersion(t *testing.T) {
	if GetVersion() == "" {
		t.Error("GetVersion should never return empty string")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load([]string{"blog.xml", "out"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if cfg.FeedPath != "blog.xml" || cfg.OutputDir != "out" {
		t.Errorf("Unexpected positional arguments: %q %q", cfg.FeedPath, cfg.OutputDir)
	}
	if cfg.DuplicatePolicy != content.DuplicateDedup {
		t.Errorf("Expected dedup policy, got %q", cfg.DuplicatePolicy)
	}
	if cfg.Workers != 4 {
		t.Errorf("Expected 4 workers, got %d", cfg.Workers)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Expected 30s timeout, got %v", cfg.Timeout)
	}
	if cfg.UserAgent != "Blogger2Ghost/"+GetVersion() {
		t.Errorf("Unexpected user agent %q", cfg.UserAgent)
	}
	if cfg.Settings != DefaultSettings() {
		t.Errorf("Expected default settings, got %+v", cfg.Settings)
	}
	if cfg.Pretty || cfg.Tags || cfg.Debug || cfg.ReportDB != "" {
		t.Errorf("Expected optional switches off, got %+v", cfg)
	}
}

func TestLoad_Flags(t *testing.T) {
	clearEnv(t)

	cfg, err := Load([]string{
		"--workers", "8",
		"--timeout", "5",
		"--user-agent", "Custom/1.0",
		"--duplicate-images", "error",
		"--pretty", "--tags", "--debug",
		"--report-db", "report.db",
		"blog.xml", "out",
	})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Workers != 8 || cfg.Timeout != 5*time.Second || cfg.UserAgent != "Custom/1.0" {
		t.Errorf("Unexpected download settings: %+v", cfg)
	}
	if cfg.DuplicatePolicy != content.DuplicateError {
		t.Errorf("Expected error policy, got %q", cfg.DuplicatePolicy)
	}
	if !cfg.Pretty || !cfg.Tags || !cfg.Debug || cfg.ReportDB != "report.db" {
		t.Errorf("Expected switches on, got %+v", cfg)
	}
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv("WORKERS", "2")
	t.Setenv("USER_AGENT", "FromEnv/2")

	cfg, err := Load([]string{"blog.xml", "out"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Workers != 2 || cfg.UserAgent != "FromEnv/2" {
		t.Errorf("Expected environment values, got %+v", cfg)
	}
}

func TestLoad_UsageErrors(t *testing.T) {
	clearEnv(t)

	tests := map[string][]string{
		"no arguments":     {},
		"one argument":     {"blog.xml"},
		"three arguments":  {"blog.xml", "out", "extra"},
		"unknown flag":     {"--bogus", "blog.xml", "out"},
		"invalid policy":   {"--duplicate-images", "overwrite", "blog.xml", "out"},
		"zero workers":     {"--workers", "0", "blog.xml", "out"},
		"negative timeout": {"--timeout=-1", "blog.xml", "out"},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			cfg, err := Load(args)
			if cfg != nil {
				t.Errorf("Expected no config, got %+v", cfg)
			}

			var usage *UsageError
			if !errors.As(err, &usage) {
				t.Fatalf("Expected *UsageError, got %T: %v", err, err)
			}
			if !strings.Contains(usage.Usage, "FEED") || !strings.Contains(usage.Usage, "OUTPUT") {
				t.Errorf("Expected usage text to name the positional arguments, got %q", usage.Usage)
			}
		})
	}
}

func TestLoad_SettingsFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "settings.yml")
	if err := os.WriteFile(path, []byte("author_id: 5\nlanguage: fr_FR\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load([]string{"--settings", path, "blog.xml", "out"})
	if err != nil {
		t.Fatal(err)
	}

	want := Settings{AuthorID: 5, Language: "fr_FR", ImagePath: content.DefaultImagePath}
	if cfg.Settings != want {
		t.Errorf("Expected %+v, got %+v", want, cfg.Settings)
	}
}

func TestLoad_SettingsFileErrorIsNotUsage(t *testing.T) {
	clearEnv(t)

	_, err := Load([]string{"--settings", filepath.Join(t.TempDir(), "missing.yml"), "blog.xml", "out"})
	if err == nil {
		t.Fatal("Expected error for missing settings file")
	}

	var usage *UsageError
	if errors.As(err, &usage) {
		t.Error("Expected settings error not to be a usage error")
	}
}
