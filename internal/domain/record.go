package domain

// SearchRecord is one flattened document handed to the external search index.
// Field names follow the index service's schema.
type SearchRecord struct {
	// ObjectID is the unique record key.
	// Format: "<url>#<lang>", e.g. "/posts/hello-world/#en"
	ObjectID string `json:"objectID"`

	Lang        string `json:"lang"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`

	// Fulltext is the size-bounded plain-text body.
	Fulltext string `json:"fulltext"`

	// Authors holds author display names. Posts only.
	Authors []string `json:"authors,omitempty"`

	// Tags is the raw tag list of a post. Posts only.
	Tags []string `json:"_tags,omitempty"`
}

// Record field names as they appear in the serialized index payload.
const (
	RecordFieldObjectID    = "objectID"
	RecordFieldLang        = "lang"
	RecordFieldTitle       = "title"
	RecordFieldURL         = "url"
	RecordFieldDescription = "description"
	RecordFieldFulltext    = "fulltext"
	RecordFieldAuthors     = "authors"
	RecordFieldTags        = "_tags"
)

// ObjectID composes the record key from a URL and a language code.
func ObjectID(url, lang string) string {
	return url + "#" + lang
}
