package feed

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"log/slog"
	"os"

	"github.com/mmcdole/gofeed"
)

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Load reads and parses the export at path.
func (p *Parser) Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed: %w", err)
	}
	return p.Run(data)
}

func (p *Parser) Run(data []byte) (*Document, error) {
	if feedType := gofeed.DetectFeedType(bytes.NewReader(data)); feedType != gofeed.FeedTypeAtom {
		return nil, fmt.Errorf("%w: detected %s", ErrNotAtom, describeFeedType(feedType))
	}

	var doc Document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	for i := range doc.Entries {
		doc.Entries[i].Position = i
	}

	slog.Debug("Feed parsed", "title", doc.Title, "entries", len(doc.Entries))
	return &doc, nil
}

func describeFeedType(feedType gofeed.FeedType) string {
	switch feedType {
	case gofeed.FeedTypeRSS:
		return "RSS"
	case gofeed.FeedTypeJSON:
		return "JSON feed"
	default:
		return "unknown document type"
	}
}
