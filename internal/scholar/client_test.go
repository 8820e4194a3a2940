package scholar

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// profilePage builds a profile page with n publication rows and an
// optionally enabled "show more" button.
func profilePage(n, offset int, more bool) string {
	var b strings.Builder
	b.WriteString(`<html><body><div id="gsc_prf_in">Jane Q. Researcher</div>`)
	b.WriteString(`<div class="gsc_prf_il">Example University</div><table><tbody id="gsc_a_b">`)
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, `<tr class="gsc_a_tr"><td><a class="gsc_a_at" href="/citations?view_op=view_citation&amp;citation_for_view=U:P%d">Paper %d</a></td><td class="gsc_a_y"><span>2020</span></td></tr>`,
			offset+i, offset+i)
	}
	b.WriteString(`</tbody></table><button id="gsc_bpf_more"`)
	if !more {
		b.WriteString(" disabled")
	}
	b.WriteString(`></button></body></html>`)
	return b.String()
}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewClient(WithBaseURL(srv.URL), WithRateLimit(1000))
	return client, srv
}

func TestFetchAuthor_SinglePage(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, profilePage(3, 0, false))
	}))

	author, err := client.FetchAuthor(context.Background(), "UABC")
	if err != nil {
		t.Fatalf("FetchAuthor() error: %v", err)
	}

	if author.Name != "Jane Q. Researcher" {
		t.Errorf("Name = %q, want profile name", author.Name)
	}
	if len(author.Publications) != 3 {
		t.Errorf("got %d publications, want 3", len(author.Publications))
	}
}

func TestFetchAuthor_Paginates(t *testing.T) {
	var requests []string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.URL.RawQuery)
		if r.URL.Query().Get("cstart") == "0" {
			fmt.Fprint(w, profilePage(PageSize, 0, true))
			return
		}
		fmt.Fprint(w, profilePage(5, PageSize, false))
	}))

	author, err := client.FetchAuthor(context.Background(), "UABC")
	if err != nil {
		t.Fatalf("FetchAuthor() error: %v", err)
	}

	if len(requests) != 2 {
		t.Fatalf("made %d requests, want 2 (got %v)", len(requests), requests)
	}
	if want := PageSize + 5; len(author.Publications) != want {
		t.Errorf("got %d publications, want %d", len(author.Publications), want)
	}
}

func TestFetchAuthor_ProfileNotFound(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	_, err := client.FetchAuthor(context.Background(), "missing")
	if !IsNotFound(err) {
		t.Errorf("FetchAuthor() error = %v, want not-found", err)
	}
}

func TestFetchAuthor_CaptchaPage(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><div id="gs_captcha_ccl">Please show you're not a robot</div></body></html>`)
	}))

	_, err := client.FetchAuthor(context.Background(), "UABC")
	if !IsRateLimited(err) {
		t.Errorf("FetchAuthor() error = %v, want rate-limited for captcha page", err)
	}
}

func TestFetchDetail(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, detailHTML)
	}))

	summary := PublicationSummary{
		Title:      "First Paper",
		Year:       "2021",
		DetailPath: "/citations?view_op=view_citation&citation_for_view=ABCJ:P1",
	}
	pub, err := client.FetchDetail(context.Background(), summary)
	if err != nil {
		t.Fatalf("FetchDetail() error: %v", err)
	}

	if pub.AuthorPubID != "ABCJ:P1" {
		t.Errorf("AuthorPubID = %q, want from citation_for_view", pub.AuthorPubID)
	}
	if got := pub.Field("journal"); got == "" {
		t.Error("journal field missing from parsed detail")
	}
	if pub.Summary.Title != "First Paper" {
		t.Errorf("Summary not carried: %+v", pub.Summary)
	}
}

func TestFetchDetail_NoDetailPath(t *testing.T) {
	client := NewClient(WithRateLimit(1000))
	_, err := client.FetchDetail(context.Background(), PublicationSummary{Title: "x"})
	if err == nil {
		t.Error("FetchDetail() should fail for a summary without a detail path")
	}
}
