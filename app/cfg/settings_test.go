package cfg

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSettings(t *testing.T) {
	path := writeSettings(t, `
author_id: 3
language: de_DE
image_path: /content/images/imported/
`)

	settings, err := LoadSettings(path)
	if err != nil {
		t.Fatal(err)
	}

	if settings.AuthorID != 3 || settings.Language != "de_DE" || settings.ImagePath != "/content/images/imported/" {
		t.Errorf("Unexpected settings %+v", settings)
	}
}

func TestLoadSettings_EmptyFileKeepsDefaults(t *testing.T) {
	settings, err := LoadSettings(writeSettings(t, ""))
	if err != nil {
		t.Fatal(err)
	}
	if *settings != DefaultSettings() {
		t.Errorf("Expected defaults, got %+v", settings)
	}
}

func TestLoadSettings_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad yaml":       "author_id: [",
		"zero author":    "author_id: 0",
		"blank language": "language: '  '",
		"relative path":  "image_path: images/",
		"missing slash":  "image_path: /images",
		"wrong type":     "author_id: abc",
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadSettings(writeSettings(t, body)); err == nil {
				t.Error("Expected error")
			}
		})
	}
}
