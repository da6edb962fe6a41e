package feed

import (
	"encoding/xml"
	"fmt"
)

// Blogger category schemes and terms.
const (
	KindScheme = "http://schemas.google.com/g/2005#kind"
	KindPost   = "http://schemas.google.com/blogger/2008/kind#post"
	TagScheme  = "http://www.blogger.com/atom/ns#"
)

// Document is a decoded Blogger export. Elements are matched by local name,
// so namespace prefixes (app:, thr:, ...) are ignored.
type Document struct {
	XMLName xml.Name `xml:"feed"`
	Title   string   `xml:"title"`
	Entries []Entry  `xml:"entry"`
}

// Entry is a single top-level entry of the export. Pointer fields are nil
// when the element is absent.
type Entry struct {
	ID         string     `xml:"id"`
	Categories []Category `xml:"category"`
	Title      *Text      `xml:"title"`
	Published  *Text      `xml:"published"`
	Updated    *Text      `xml:"updated"`
	Content    *Text      `xml:"content"`
	Control    *Control   `xml:"control"`

	Position int `xml:"-"` // zero-based index among all entries
}

type Category struct {
	Scheme string `xml:"scheme,attr"`
	Term   string `xml:"term,attr"`
}

type Text struct {
	Type  string `xml:"type,attr"`
	Value string `xml:",chardata"`
}

type Control struct {
	Draft *Text `xml:"draft"`
}

// Label identifies the entry in error messages.
func (e *Entry) Label() string {
	if e.ID != "" {
		return e.ID
	}
	return fmt.Sprintf("#%d", e.Position)
}

type Classification struct {
	IsPost bool
	Draft  bool
	Terms  []string
}
