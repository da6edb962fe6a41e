package cfg

import (
	"time"

	"github.com/lysyi3m/blogger2ghost/app/content"
)

type Cfg struct {
	// Positional arguments
	FeedPath  string
	OutputDir string

	// Conversion
	DuplicatePolicy content.DuplicatePolicy
	Pretty          bool
	Tags            bool
	ReportDB        string
	Settings        Settings

	// Downloads
	Workers   int
	Timeout   time.Duration
	UserAgent string

	// Application metadata
	Debug   bool
	Version string
}

// Settings are the optional values read from the YAML settings file.
type Settings struct {
	AuthorID  int    `yaml:"author_id"`
	Language  string `yaml:"language"`
	ImagePath string `yaml:"image_path"`
}
