package cfg

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lysyi3m/blogger2ghost/app/content"
)

func DefaultSettings() Settings {
	return Settings{
		AuthorID:  1,
		Language:  "en_US",
		ImagePath: content.DefaultImagePath,
	}
}

// LoadSettings reads a YAML settings file. Keys missing from the file keep
// their defaults.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	settings := DefaultSettings()
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateSettings(&settings); err != nil {
		return nil, fmt.Errorf("invalid settings %s: %w", path, err)
	}

	return &settings, nil
}

func validateSettings(settings *Settings) error {
	if settings.AuthorID < 1 {
		return fmt.Errorf("author_id must be positive, got %d", settings.AuthorID)
	}
	if strings.TrimSpace(settings.Language) == "" {
		return fmt.Errorf("language is required")
	}
	if !strings.HasPrefix(settings.ImagePath, "/") || !strings.HasSuffix(settings.ImagePath, "/") {
		return fmt.Errorf("image_path must start and end with '/', got %q", settings.ImagePath)
	}
	return nil
}
