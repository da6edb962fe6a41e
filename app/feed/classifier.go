package feed

const draftYes = "yes"

type Classifier struct{}

func NewClassifier() *Classifier {
	return &Classifier{}
}

// Run decides whether entry is a post, whether it is a draft and which tag
// terms it carries. Tag terms are collected for every entry, posts or not.
// An entry without a kind category is malformed.
func (c *Classifier) Run(entry *Entry) (Classification, error) {
	var class Classification

	kind := ""
	hasKind := false
	for _, category := range entry.Categories {
		switch category.Scheme {
		case KindScheme:
			if !hasKind {
				kind = category.Term
				hasKind = true
			}
		case TagScheme:
			class.Terms = append(class.Terms, category.Term)
		}
	}

	if !hasKind {
		return class, missing(entry, "category[kind]")
	}

	class.IsPost = kind == KindPost
	class.Draft = c.isDraft(entry)

	return class, nil
}

func (c *Classifier) isDraft(entry *Entry) bool {
	if entry.Control == nil || entry.Control.Draft == nil {
		return false
	}
	return entry.Control.Draft.Value == draftYes
}
