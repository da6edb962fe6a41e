package content

import (
	"errors"
	"fmt"
)

var ErrDuplicateImage = errors.New("duplicate image")

type DuplicatePolicy string

const (
	// DuplicateDedup keeps the first claim on a URL or filename and ignores
	// later ones.
	DuplicateDedup DuplicatePolicy = "dedup"
	// DuplicateError rejects any repeated URL or filename.
	DuplicateError DuplicatePolicy = "error"
)

func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch DuplicatePolicy(s) {
	case DuplicateDedup, DuplicateError:
		return DuplicatePolicy(s), nil
	default:
		return "", fmt.Errorf("unknown duplicate image policy %q (want %q or %q)", s, DuplicateDedup, DuplicateError)
	}
}

// PendingImages is the ordered URL -> filename table of images awaiting
// download. It is not safe for concurrent use.
type PendingImages struct {
	policy    DuplicatePolicy
	order     []string
	filenames map[string]string // url -> filename
	owners    map[string]string // filename -> url
	conflicts []Image
}

func NewPendingImages(policy DuplicatePolicy) *PendingImages {
	if policy == "" {
		policy = DuplicateDedup
	}
	return &PendingImages{
		policy:    policy,
		filenames: make(map[string]string),
		owners:    make(map[string]string),
	}
}

// Add records img. The same URL seen again is a no-op under DuplicateDedup.
// A different URL deriving a filename that is already taken is kept out of
// the table, since downloading it would overwrite the first file; under
// DuplicateDedup it is remembered in Conflicts.
func (p *PendingImages) Add(img Image) error {
	if _, ok := p.filenames[img.URL]; ok {
		if p.policy == DuplicateError {
			return fmt.Errorf("%w: url %s already queued", ErrDuplicateImage, img.URL)
		}
		return nil
	}

	if owner, ok := p.owners[img.Filename]; ok {
		if p.policy == DuplicateError {
			return fmt.Errorf("%w: filename %q from %s already claimed by %s", ErrDuplicateImage, img.Filename, img.URL, owner)
		}
		p.conflicts = append(p.conflicts, img)
		return nil
	}

	p.order = append(p.order, img.URL)
	p.filenames[img.URL] = img.Filename
	p.owners[img.Filename] = img.URL
	return nil
}

// Filename returns the filename queued for url.
func (p *PendingImages) Filename(url string) (string, bool) {
	filename, ok := p.filenames[url]
	return filename, ok
}

func (p *PendingImages) Len() int {
	return len(p.order)
}

// Images returns the queued images in discovery order.
func (p *PendingImages) Images() []Image {
	images := make([]Image, 0, len(p.order))
	for _, url := range p.order {
		images = append(images, Image{URL: url, Filename: p.filenames[url]})
	}
	return images
}

// Conflicts returns images rejected because their filename was taken.
func (p *PendingImages) Conflicts() []Image {
	return p.conflicts
}
