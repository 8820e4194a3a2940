package scholar

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

const profileHTML = `
<html><body>
<div id="gsc_prf_in">Jane Q. Researcher</div>
<div class="gsc_prf_il">Example University</div>
<table><tbody id="gsc_a_b">
<tr class="gsc_a_tr">
  <td class="gsc_a_t"><a class="gsc_a_at" href="/citations?view_op=view_citation&amp;citation_for_view=ABCJ:P1">First Paper</a></td>
  <td class="gsc_a_c"><a href="#">12</a></td>
  <td class="gsc_a_y"><span>2021</span></td>
</tr>
<tr class="gsc_a_tr">
  <td class="gsc_a_t"><a class="gsc_a_at" href="/citations?view_op=view_citation&amp;citation_for_view=ABCJ:P2">Second Paper</a></td>
  <td class="gsc_a_c"><a href="#"></a></td>
  <td class="gsc_a_y"><span></span></td>
</tr>
</tbody></table>
<button id="gsc_bpf_more" disabled></button>
</body></html>`

const detailHTML = `
<html><body>
<div id="gsc_oci_title"><a class="gsc_oci_title_link" href="https://doi.org/10.1016/j.jag.2021.102682">First Paper</a></div>
<div id="gsc_oci_table">
  <div class="gs_scl"><div class="gsc_oci_field">Authors</div><div class="gsc_oci_value">J Researcher, A Colleague</div></div>
  <div class="gs_scl"><div class="gsc_oci_field">Publication date</div><div class="gsc_oci_value">2021/3/15</div></div>
  <div class="gs_scl"><div class="gsc_oci_field">Journal</div><div class="gsc_oci_value">International Journal of Applied Earth Observation</div></div>
  <div class="gs_scl"><div class="gsc_oci_field">Pages</div><div class="gsc_oci_value">1-10</div></div>
  <div class="gs_scl"><div class="gsc_oci_field">Description</div><div class="gsc_oci_value">Abstract text.</div></div>
  <div class="gs_scl"><div class="gsc_oci_field">Report number</div><div class="gsc_oci_value">TR-42</div></div>
  <div class="gs_scl"><div class="gsc_oci_field">Total citations</div><div class="gsc_oci_value"><a href="#">Cited by 12</a></div></div>
</div>
</body></html>`

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parsing fixture HTML: %v", err)
	}
	return doc
}

func TestParseProfileHeader(t *testing.T) {
	doc := parseDoc(t, profileHTML)

	author := &Author{ID: "ABCJ"}
	parseProfileHeader(doc, author)

	if author.Name != "Jane Q. Researcher" {
		t.Errorf("Name = %q, want %q", author.Name, "Jane Q. Researcher")
	}
	if author.Affiliation != "Example University" {
		t.Errorf("Affiliation = %q, want %q", author.Affiliation, "Example University")
	}
}

func TestParsePublicationRows(t *testing.T) {
	doc := parseDoc(t, profileHTML)

	pubs := parsePublicationRows(doc)
	if len(pubs) != 2 {
		t.Fatalf("got %d publications, want 2", len(pubs))
	}

	first := pubs[0]
	if first.Title != "First Paper" {
		t.Errorf("Title = %q, want %q", first.Title, "First Paper")
	}
	if first.Year != "2021" {
		t.Errorf("Year = %q, want %q", first.Year, "2021")
	}
	if first.CitedBy != 12 {
		t.Errorf("CitedBy = %d, want 12", first.CitedBy)
	}
	if !strings.Contains(first.DetailPath, "citation_for_view=ABCJ:P1") {
		t.Errorf("DetailPath = %q, want citation_for_view link", first.DetailPath)
	}

	second := pubs[1]
	if second.Year != "" {
		t.Errorf("Year = %q, want empty for missing year", second.Year)
	}
	if second.CitedBy != 0 {
		t.Errorf("CitedBy = %d, want 0 for missing count", second.CitedBy)
	}
}

func TestHasMorePages(t *testing.T) {
	doc := parseDoc(t, profileHTML)

	// Disabled "show more" button means last page.
	if hasMorePages(doc, PageSize) {
		t.Error("hasMorePages() = true with disabled button, want false")
	}
	// A short page is always the last one.
	if hasMorePages(doc, 2) {
		t.Error("hasMorePages() = true for short page, want false")
	}

	enabled := parseDoc(t, `<button id="gsc_bpf_more"></button>`)
	if !hasMorePages(enabled, PageSize) {
		t.Error("hasMorePages() = false with enabled button and full page, want true")
	}
}

func TestParseCitationDetail(t *testing.T) {
	doc := parseDoc(t, detailHTML)

	pub := parseCitationDetail(doc)

	want := map[string]string{
		"title":         "First Paper",
		"author":        "J Researcher, A Colleague",
		"year":          "2021",
		"month":         "3",
		"journal":       "International Journal of Applied Earth Observation",
		"pages":         "1-10",
		"abstract":      "Abstract text.",
		"report_number": "TR-42", // unknown label carried over, lowercased
		"ENTRYTYPE":     "article",
	}
	for field, value := range want {
		if got := pub.Field(field); got != value {
			t.Errorf("Field(%q) = %q, want %q", field, got, value)
		}
	}

	if pub.HasField("total_citations") {
		t.Error("Total citations row should be ignored")
	}
	if pub.PubURL != "https://doi.org/10.1016/j.jag.2021.102682" {
		t.Errorf("PubURL = %q, want title link href", pub.PubURL)
	}
}

func TestParseCitationDetail_ConferenceEntryType(t *testing.T) {
	doc := parseDoc(t, `
<div id="gsc_oci_title">Conf Paper</div>
<div id="gsc_oci_table">
  <div class="gs_scl"><div class="gsc_oci_field">Conference</div><div class="gsc_oci_value">Proceedings of Things</div></div>
</div>`)

	pub := parseCitationDetail(doc)
	if got := pub.Field("ENTRYTYPE"); got != "inproceedings" {
		t.Errorf("ENTRYTYPE = %q, want %q", got, "inproceedings")
	}
	if got := pub.Field("conference"); got != "Proceedings of Things" {
		t.Errorf("conference = %q, want venue text", got)
	}
}
