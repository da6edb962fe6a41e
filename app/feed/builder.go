package feed

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/lysyi3m/blogger2ghost/app/content"
	"github.com/lysyi3m/blogger2ghost/app/export"
	"github.com/lysyi3m/blogger2ghost/app/slug"
)

// PostDefaults are the values every converted post shares.
type PostDefaults struct {
	AuthorID int
	Language string
}

func DefaultPostDefaults() PostDefaults {
	return PostDefaults{
		AuthorID: 1,
		Language: "en_US",
	}
}

type Builder struct {
	slugger  *slug.Generator
	rewriter *content.Rewriter
	defaults PostDefaults
}

func NewBuilder(slugger *slug.Generator, rewriter *content.Rewriter, defaults PostDefaults) *Builder {
	return &Builder{
		slugger:  slugger,
		rewriter: rewriter,
		defaults: defaults,
	}
}

// Run converts a classified post entry into a Ghost post with the given id.
// It also returns the images referenced by the post body.
func (b *Builder) Run(id int, entry *Entry, class Classification) (export.Post, []content.Image, error) {
	if entry.Title == nil {
		return export.Post{}, nil, missing(entry, "title")
	}
	if entry.Published == nil {
		return export.Post{}, nil, missing(entry, "published")
	}
	if entry.Updated == nil {
		return export.Post{}, nil, missing(entry, "updated")
	}
	if entry.Content == nil {
		return export.Post{}, nil, missing(entry, "content")
	}

	publishedAt, err := b.parseTimestamp(entry, "published", entry.Published.Value)
	if err != nil {
		return export.Post{}, nil, err
	}
	updatedAt, err := b.parseTimestamp(entry, "updated", entry.Updated.Value)
	if err != nil {
		return export.Post{}, nil, err
	}

	body, images := b.rewriter.Run(entry.Content.Value)

	title := entry.Title.Value
	postSlug := b.slugger.Run(title)
	if postSlug == "" {
		postSlug = fmt.Sprintf("Untitled_%d", id)
	}
	if title == "" {
		title = fmt.Sprintf("Untitled %d", id)
	}

	status := export.StatusPublished
	if class.Draft {
		status = export.StatusDraft
	}

	post := export.Post{
		ID:       id,
		Title:    title,
		Slug:     postSlug,
		Status:   status,
		Markdown: body,
		HTML:     body,

		PublishedAt: publishedAt,
		CreatedAt:   publishedAt,
		UpdatedAt:   updatedAt,
		CreatedBy:   b.defaults.AuthorID,
		AuthorID:    b.defaults.AuthorID,
		PublishedBy: b.defaults.AuthorID,
		UpdatedBy:   b.defaults.AuthorID,

		Featured: 0,
		Page:     0,
		Language: b.defaults.Language,

		Terms: class.Terms,
	}

	return post, images, nil
}

// parseTimestamp returns value as epoch milliseconds. Values without a zone
// are read as UTC.
func (b *Builder) parseTimestamp(entry *Entry, field, value string) (int64, error) {
	t, err := dateparse.ParseIn(strings.TrimSpace(value), time.UTC)
	if err != nil {
		return 0, &MalformedEntryError{Entry: entry.Label(), Field: field, Err: err}
	}
	return t.UnixMilli(), nil
}
