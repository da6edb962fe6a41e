package content

// Image is an image reference discovered while rewriting a post body.
type Image struct {
	URL      string
	Filename string
}

// Matcher locates markup in a post body. Implementations must report
// matches in document order and never overlap them.
type Matcher interface {
	// Images returns [start, end) offsets of every image element together
	// with its source URL.
	Images(body string) []ImageMatch
	// LineBreaks returns [start, end) offsets of every self-closing line break.
	LineBreaks(body string) [][2]int
}

type ImageMatch struct {
	Start int
	End   int
	URL   string
}

const DefaultImagePath = "/content/images/fromblogger/"
