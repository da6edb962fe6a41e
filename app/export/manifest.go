package export

import (
	"fmt"
	"time"

	"github.com/lysyi3m/blogger2ghost/app/slug"
)

// BuildManifest wraps posts in the Ghost import envelope. When withTags is
// set, terms become tags and each post is linked to the terms it carries.
func BuildManifest(posts []Post, terms []string, exportedOn time.Time, withTags bool) *Manifest {
	if posts == nil {
		posts = []Post{}
	}

	data := Data{Posts: posts}
	if withTags {
		data.Tags, data.PostsTags = buildTags(posts, terms)
	}

	return &Manifest{
		DB: []Database{
			{
				Meta: Meta{
					Version:    FormatVersion,
					ExportedOn: exportedOn.UTC().UnixMilli(),
				},
				Data: data,
			},
		},
	}
}

func buildTags(posts []Post, terms []string) ([]Tag, []PostTag) {
	generator := slug.NewGenerator()

	tags := make([]Tag, 0, len(terms))
	ids := make(map[string]int, len(terms))
	usedSlugs := make(map[string]bool, len(terms))

	for _, term := range terms {
		if _, ok := ids[term]; ok {
			continue
		}

		id := len(tags) + 1
		base := generator.Run(term)
		if base == "" {
			base = fmt.Sprintf("tag_%d", id)
		}

		tagSlug := base
		for n := 2; usedSlugs[tagSlug]; n++ {
			tagSlug = fmt.Sprintf("%s_%d", base, n)
		}
		usedSlugs[tagSlug] = true

		ids[term] = id
		tags = append(tags, Tag{ID: id, Name: term, Slug: tagSlug})
	}

	var postsTags []PostTag
	for _, post := range posts {
		linked := make(map[int]bool, len(post.Terms))
		for _, term := range post.Terms {
			tagID, ok := ids[term]
			if !ok || linked[tagID] {
				continue
			}
			linked[tagID] = true
			postsTags = append(postsTags, PostTag{PostID: post.ID, TagID: tagID})
		}
	}

	return tags, postsTags
}
