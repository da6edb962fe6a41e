package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const separator = '_'

// Characters that become a separator before anything else is stripped.
var replaced = map[rune]bool{
	' ':  true,
	'\'': true,
	'&':  true,
	'-':  true,
}

// Letters that have no canonical decomposition into an ASCII base.
var folds = strings.NewReplacer(
	"ß", "ss",
	"æ", "ae",
	"œ", "oe",
	"ø", "o",
	"ł", "l",
	"đ", "d",
	"ð", "d",
	"þ", "th",
	"ı", "i",
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Run turns a post title into a lowercase identifier made of [a-z0-9_].
// The result is empty when nothing in the title survives normalization.
func (g *Generator) Run(title string) string {
	s := folds.Replace(strings.ToLower(title))
	s = g.stripMarks(s)

	var b strings.Builder
	b.Grow(len(s))

	lastSep := true // suppresses a leading separator
	for _, r := range s {
		switch {
		case replaced[r] || unicode.IsSpace(r) || r == separator:
			if !lastSep {
				b.WriteRune(separator)
				lastSep = true
			}
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastSep = false
		}
	}

	return strings.TrimRight(b.String(), string(separator))
}

func (g *Generator) stripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}
