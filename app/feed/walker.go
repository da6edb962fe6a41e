package feed

import (
	"fmt"
	"log/slog"

	"github.com/lysyi3m/blogger2ghost/app/content"
	"github.com/lysyi3m/blogger2ghost/app/export"
)

// Result is everything collected from one pass over a feed.
type Result struct {
	Posts   []export.Post
	Terms   []string // distinct tag terms in first-seen order
	Images  *content.PendingImages
	Skipped int // entries that are not posts
}

type Walker struct {
	classifier *Classifier
	builder    *Builder
	policy     content.DuplicatePolicy
}

func NewWalker(classifier *Classifier, builder *Builder, policy content.DuplicatePolicy) *Walker {
	return &Walker{
		classifier: classifier,
		builder:    builder,
		policy:     policy,
	}
}

// Run visits the entries of doc in document order. Post ids start at 0 and
// only advance for posts. The first malformed entry stops the walk.
func (w *Walker) Run(doc *Document) (*Result, error) {
	result := &Result{
		Posts:  make([]export.Post, 0, len(doc.Entries)),
		Images: content.NewPendingImages(w.policy),
	}
	seenTerms := make(map[string]bool)

	nextID := 0
	for i := range doc.Entries {
		entry := &doc.Entries[i]

		class, err := w.classifier.Run(entry)
		if err != nil {
			return nil, err
		}

		for _, term := range class.Terms {
			if !seenTerms[term] {
				seenTerms[term] = true
				result.Terms = append(result.Terms, term)
			}
		}

		if !class.IsPost {
			result.Skipped++
			slog.Debug("Skipping non-post entry", "entry", entry.Label())
			continue
		}

		post, images, err := w.builder.Run(nextID, entry, class)
		if err != nil {
			return nil, err
		}

		for _, img := range images {
			if err := result.Images.Add(img); err != nil {
				return nil, fmt.Errorf("post %d (%s): %w", post.ID, entry.Label(), err)
			}
		}

		result.Posts = append(result.Posts, post)
		slog.Debug("Post converted", "post_id", post.ID, "slug", post.Slug, "status", post.Status, "images", len(images))
		nextID++
	}

	return result, nil
}
