package cfg

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/lysyi3m/blogger2ghost/app/content"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Conversion configuration
	DuplicateImages string `long:"duplicate-images" env:"DUPLICATE_IMAGES" default:"dedup" choice:"dedup" choice:"error" description:"What to do when an image URL or filename repeats"`
	Pretty          bool   `long:"pretty" description:"Indent ghost.json"`
	Tags            bool   `long:"tags" description:"Include Blogger labels as Ghost tags"`
	ReportDB        string `long:"report-db" env:"REPORT_DB" description:"SQLite file to record a report of the run in (optional)"`
	SettingsFile    string `long:"settings" env:"SETTINGS_FILE" description:"YAML file with author_id, language and image_path (optional)"`

	// Download configuration
	Workers   int    `long:"workers" env:"WORKERS" default:"4" description:"Number of concurrent image downloads"`
	Timeout   int    `long:"timeout" env:"DOWNLOAD_TIMEOUT" default:"30" description:"Per-image download timeout in seconds"`
	UserAgent string `long:"user-agent" env:"USER_AGENT" description:"User agent string for image downloads"`

	Debug bool `long:"debug" env:"DEBUG" description:"Enable debug logging"`

	Args struct {
		Feed   string `positional-arg-name:"FEED" description:"Blogger export XML file"`
		Output string `positional-arg-name:"OUTPUT" description:"Folder to create the run directory in"`
	} `positional-args:"yes" required:"yes"`
}

// UsageError reports bad command-line arguments. Usage holds the help text.
type UsageError struct {
	Err   error
	Usage string
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// Load parses command-line arguments and environment variables. It returns
// nil, nil when help was requested.
func Load(args []string) (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "blogger2ghost"

	rest, err := parser.ParseArgs(args)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Println(flagsErr.Message)
			return nil, nil
		}
		return nil, usageError(parser, err)
	}

	if len(rest) > 0 {
		return nil, usageError(parser, fmt.Errorf("unexpected arguments: %v", rest))
	}

	policy, err := content.ParseDuplicatePolicy(raw.DuplicateImages)
	if err != nil {
		return nil, usageError(parser, err)
	}

	if raw.Workers < 1 {
		return nil, usageError(parser, fmt.Errorf("workers must be at least 1, got %d", raw.Workers))
	}
	if raw.Timeout < 0 {
		return nil, usageError(parser, fmt.Errorf("timeout must be non-negative, got %d", raw.Timeout))
	}

	settings := DefaultSettings()
	if raw.SettingsFile != "" {
		loaded, err := LoadSettings(raw.SettingsFile)
		if err != nil {
			return nil, err
		}
		settings = *loaded
	}

	version := GetVersion()

	return &Cfg{
		FeedPath:        raw.Args.Feed,
		OutputDir:       raw.Args.Output,
		DuplicatePolicy: policy,
		Pretty:          raw.Pretty,
		Tags:            raw.Tags,
		ReportDB:        raw.ReportDB,
		Settings:        settings,
		Workers:         raw.Workers,
		Timeout:         time.Duration(raw.Timeout) * time.Second,
		UserAgent:       cmp.Or(raw.UserAgent, "Blogger2Ghost/"+version),
		Debug:           raw.Debug,
		Version:         version,
	}, nil
}

func usageError(parser *flags.Parser, err error) *UsageError {
	var buf bytes.Buffer
	parser.WriteHelp(&buf)
	return &UsageError{Err: err, Usage: buf.String()}
}
