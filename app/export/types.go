package export

const FormatVersion = "004"

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// Manifest is the Ghost import document.
type Manifest struct {
	DB []Database `json:"db"`
}

type Database struct {
	Meta Meta `json:"meta"`
	Data Data `json:"data"`
}

type Meta struct {
	Version    string `json:"version"`
	ExportedOn int64  `json:"exported_on"` // epoch milliseconds
}

type Data struct {
	Posts     []Post    `json:"posts"`
	Tags      []Tag     `json:"tags,omitempty"`
	PostsTags []PostTag `json:"posts_tags,omitempty"`
}

// Post is one converted blog post. Timestamps are epoch milliseconds, UTC.
type Post struct {
	ID              int     `json:"id"`
	Title           string  `json:"title"`
	Slug            string  `json:"slug"`
	Status          Status  `json:"status"`
	Markdown        string  `json:"markdown"`
	HTML            string  `json:"html"`
	PublishedAt     int64   `json:"published_at"`
	CreatedAt       int64   `json:"created_at"`
	UpdatedAt       int64   `json:"updated_at"`
	CreatedBy       int     `json:"created_by"`
	AuthorID        int     `json:"author_id"`
	PublishedBy     int     `json:"published_by"`
	UpdatedBy       int     `json:"updated_by"`
	Featured        int     `json:"featured"`
	Page            int     `json:"page"`
	Image           *string `json:"image"`
	Language        string  `json:"language"`
	MetaTitle       *string `json:"meta_title"`
	MetaDescription *string `json:"meta_description"`

	Terms []string `json:"-"` // blog tag terms, used for posts_tags
}

type Tag struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type PostTag struct {
	PostID int `json:"post_id"`
	TagID  int `json:"tag_id"`
}

// Bundle describes the files produced by one run.
type Bundle struct {
	Dir          string
	ManifestPath string
	ImagesDir    string
	Manifest     *Manifest
}
