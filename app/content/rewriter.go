package content

import (
	"cmp"
	"strings"
)

type Rewriter struct {
	matcher   Matcher
	imagePath string
}

// NewRewriter creates a rewriter that points images at imagePath.
// An empty imagePath selects DefaultImagePath, a nil matcher the regexp one.
func NewRewriter(matcher Matcher, imagePath string) *Rewriter {
	if matcher == nil {
		matcher = NewRegexpMatcher()
	}
	return &Rewriter{
		matcher:   matcher,
		imagePath: cmp.Or(imagePath, DefaultImagePath),
	}
}

// Run replaces image elements with markdown image references and self-closing
// line breaks with newlines. Images are returned in document order, duplicates
// included; deciding what to do with them is up to the caller.
func (r *Rewriter) Run(body string) (string, []Image) {
	var images []Image

	var b strings.Builder
	b.Grow(len(body))

	last := 0
	for _, m := range r.matcher.Images(body) {
		filename := FilenameFromURL(m.URL)
		images = append(images, Image{URL: m.URL, Filename: filename})

		b.WriteString(body[last:m.Start])
		b.WriteString("![")
		b.WriteString(filename)
		b.WriteString("](")
		b.WriteString(r.imagePath)
		b.WriteString(filename)
		b.WriteString(")")
		last = m.End
	}
	b.WriteString(body[last:])

	return r.replaceLineBreaks(b.String()), images
}

func (r *Rewriter) replaceLineBreaks(body string) string {
	breaks := r.matcher.LineBreaks(body)
	if len(breaks) == 0 {
		return body
	}

	var b strings.Builder
	b.Grow(len(body))

	last := 0
	for _, br := range breaks {
		b.WriteString(body[last:br[0]])
		b.WriteByte('\n')
		last = br[1]
	}
	b.WriteString(body[last:])

	return b.String()
}

// FilenameFromURL returns everything after the last slash of url.
func FilenameFromURL(url string) string {
	return url[strings.LastIndex(url, "/")+1:]
}
