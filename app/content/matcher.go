package content

import "regexp"

var (
	imagePattern     = regexp.MustCompile(`(?is)<img\b[^>]*?\bsrc\s*=\s*["']([^"']+?)["'][^>]*>(?:\s*</img\s*>)?`)
	lineBreakPattern = regexp.MustCompile(`(?i)<br ?/>`)
)

// RegexpMatcher is the default Matcher, built on regular expressions.
type RegexpMatcher struct{}

func NewRegexpMatcher() *RegexpMatcher {
	return &RegexpMatcher{}
}

func (m *RegexpMatcher) Images(body string) []ImageMatch {
	locs := imagePattern.FindAllStringSubmatchIndex(body, -1)
	matches := make([]ImageMatch, 0, len(locs))
	for _, loc := range locs {
		matches = append(matches, ImageMatch{
			Start: loc[0],
			End:   loc[1],
			URL:   body[loc[2]:loc[3]],
		})
	}
	return matches
}

func (m *RegexpMatcher) LineBreaks(body string) [][2]int {
	locs := lineBreakPattern.FindAllStringIndex(body, -1)
	result := make([][2]int, 0, len(locs))
	for _, loc := range locs {
		result = append(result, [2]int{loc[0], loc[1]})
	}
	return result
}
