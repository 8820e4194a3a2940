// Package scholar provides a client for Google Scholar citation profiles.
package scholar

// Author represents a Google Scholar author profile.
type Author struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Affiliation  string               `json:"affiliation,omitempty"`
	Publications []PublicationSummary `json:"publications"`
}

// PublicationSummary is one row of the profile's publication table.
// Full bibliographic detail requires a follow-up FetchDetail call.
type PublicationSummary struct {
	Title      string `json:"title"`
	Year       string `json:"year,omitempty"` // As shown on the profile; may be empty
	CitedBy    int    `json:"cited_by,omitempty"`
	DetailPath string `json:"detail_path"` // Relative citation-detail URL
}

// Publication holds the full bibliographic record for one work.
//
// Fields is an open key set: the parser populates it from the detail page
// and enrichment adds to it. Keys ENTRYTYPE and ID are required before
// BibTeX serialization.
type Publication struct {
	Fields      map[string]string  `json:"fields"`
	PubURL      string             `json:"pub_url,omitempty"`       // External landing page for the work
	AuthorPubID string             `json:"author_pub_id,omitempty"` // "<authorID>:<pubID>"
	Summary     PublicationSummary `json:"-"`
}

// Field returns the named field value, or "" if absent.
func (p *Publication) Field(name string) string {
	if p.Fields == nil {
		return ""
	}
	return p.Fields[name]
}

// SetField sets a field value, allocating the map if needed.
func (p *Publication) SetField(name, value string) {
	if p.Fields == nil {
		p.Fields = make(map[string]string)
	}
	p.Fields[name] = value
}

// HasField reports whether the named field is present.
func (p *Publication) HasField(name string) bool {
	_, ok := p.Fields[name]
	return ok
}

// Title returns the title field, falling back to the summary title.
func (p *Publication) Title() string {
	if t := p.Field("title"); t != "" {
		return t
	}
	return p.Summary.Title
}
