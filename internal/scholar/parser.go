package scholar

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// fieldLabels maps Scholar detail-page labels to BibTeX field names.
// Labels not listed here are carried over lowercased with spaces replaced
// by underscores, so no source data is lost.
var fieldLabels = map[string]string{
	"Authors":     "author",
	"Inventors":   "author",
	"Journal":     "journal",
	"Conference":  "conference",
	"Book":        "booktitle",
	"Source":      "journal",
	"Volume":      "volume",
	"Issue":       "number",
	"Pages":       "pages",
	"Publisher":   "publisher",
	"Institution": "institution",
	"Description": "abstract",
}

// entryTypeForLabel maps the venue label Scholar shows to a BibTeX entry type.
var entryTypeForLabel = map[string]string{
	"Journal":    "article",
	"Source":     "article",
	"Conference": "inproceedings",
	"Book":       "book",
}

// ignoredLabels are detail-page rows that are navigation, not bibliography.
var ignoredLabels = map[string]bool{
	"Total citations":  true,
	"Scholar articles": true,
}

// parseProfileHeader fills the author name and affiliation from a profile page.
func parseProfileHeader(doc *goquery.Document, author *Author) {
	author.Name = strings.TrimSpace(doc.Find("#gsc_prf_in").Text())
	author.Affiliation = strings.TrimSpace(doc.Find(".gsc_prf_il").First().Text())
}

// parsePublicationRows extracts publication summaries from the profile's
// publication table.
func parsePublicationRows(doc *goquery.Document) []PublicationSummary {
	var pubs []PublicationSummary

	doc.Find(".gsc_a_tr").Each(func(_ int, row *goquery.Selection) {
		link := row.Find("a.gsc_a_at")
		href, ok := link.Attr("href")
		if !ok {
			return
		}

		summary := PublicationSummary{
			Title:      strings.TrimSpace(link.Text()),
			Year:       strings.TrimSpace(row.Find("td.gsc_a_y span").Text()),
			DetailPath: href,
		}

		if cited := strings.TrimSpace(row.Find("td.gsc_a_c a").Text()); cited != "" {
			if n, err := strconv.Atoi(cited); err == nil {
				summary.CitedBy = n
			}
		}

		pubs = append(pubs, summary)
	})

	return pubs
}

// hasMorePages reports whether another profile page should be requested.
// Scholar disables the "show more" button on the last page and serves an
// empty-table marker when paginated past the end.
func hasMorePages(doc *goquery.Document, rowsOnPage int) bool {
	if rowsOnPage == 0 {
		return false
	}
	if rowsOnPage < PageSize {
		return false
	}
	button := doc.Find("#gsc_bpf_more")
	if button.Length() == 0 {
		return false
	}
	_, disabled := button.Attr("disabled")
	return !disabled
}

// parseCitationDetail extracts the field map from a citation-detail page.
func parseCitationDetail(doc *goquery.Document) *Publication {
	pub := &Publication{Fields: make(map[string]string)}

	title := doc.Find("#gsc_oci_title")
	if t := strings.TrimSpace(title.Text()); t != "" {
		pub.Fields["title"] = t
	}
	if href, ok := title.Find("a.gsc_oci_title_link").Attr("href"); ok {
		pub.PubURL = href
	}

	doc.Find("#gsc_oci_table .gs_scl").Each(func(_ int, row *goquery.Selection) {
		label := strings.TrimSpace(row.Find(".gsc_oci_field").Text())
		value := strings.TrimSpace(row.Find(".gsc_oci_value").Text())
		if label == "" || value == "" || ignoredLabels[label] {
			return
		}

		if label == "Publication date" {
			setPublicationDate(pub, value)
			return
		}

		name, ok := fieldLabels[label]
		if !ok {
			name = strings.ToLower(strings.ReplaceAll(label, " ", "_"))
		}
		pub.Fields[name] = value

		if entryType, ok := entryTypeForLabel[label]; ok && pub.Fields["ENTRYTYPE"] == "" {
			pub.Fields["ENTRYTYPE"] = entryType
		}
	})

	// Description is shown outside the field table on some page variants.
	if pub.Fields["abstract"] == "" {
		if descr := strings.TrimSpace(doc.Find("#gsc_oci_descr").Text()); descr != "" {
			pub.Fields["abstract"] = descr
		}
	}
	return pub
}

// setPublicationDate splits a Scholar date ("2021/3/15", "2021/3", "2021")
// into year and month fields.
func setPublicationDate(pub *Publication, value string) {
	parts := strings.Split(value, "/")
	if len(parts) > 0 && parts[0] != "" {
		pub.Fields["year"] = parts[0]
	}
	if len(parts) > 1 && parts[1] != "" {
		pub.Fields["month"] = parts[1]
	}
}
