package scholar

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"
)

const (
	// BaseURL is the Google Scholar base URL.
	BaseURL = "https://scholar.google.com"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// RateLimit is 1 request per second. Scholar has no official API and
	// blocks clients that hammer it.
	RateLimit = 1.0

	// PageSize is the number of publication rows requested per profile page.
	PageSize = 100

	// DefaultUserAgent identifies requests to Scholar. A blank or
	// obviously-robotic agent gets served the captcha page immediately.
	DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:109.0) Gecko/20100101 Firefox/115.0"
)

// Client is a rate-limited HTTP client for Google Scholar profile pages.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	userAgent  string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithTimeout sets the HTTP request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithRateLimit sets the request rate in requests per second (for testing).
func WithRateLimit(rps float64) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewClient creates a new Google Scholar client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
		baseURL:    BaseURL,
		userAgent:  DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// getDocument fetches a path under the base URL and parses it as HTML.
func (c *Client) getDocument(ctx context.Context, path string) (*goquery.Document, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	fullURL := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept-Language", "en")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetworkError, err)
	}
	defer resp.Body.Close()

	if err := checkHTTPErrors(resp); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if isCaptchaPage(body) {
		return nil, fmt.Errorf("%w: captcha interstitial served", ErrRateLimited)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: parsing HTML: %v", ErrInvalidResponse, err)
	}

	return doc, nil
}

// checkHTTPErrors returns an error if the HTTP response indicates a problem.
func checkHTTPErrors(resp *http.Response) error {
	switch {
	case resp.StatusCode == 404:
		return fmt.Errorf("%w: status 404", ErrNotFound)
	case resp.StatusCode == 429:
		return fmt.Errorf("%w: status 429", ErrRateLimited)
	case resp.StatusCode >= 400:
		return &HTTPError{StatusCode: resp.StatusCode, URL: resp.Request.URL.String()}
	}
	return nil
}

// isCaptchaPage detects Scholar's "unusual traffic" interstitial, which is
// served with status 200.
func isCaptchaPage(body []byte) bool {
	s := string(body)
	return strings.Contains(s, "gs_captcha_ccl") ||
		strings.Contains(s, "unusual traffic from your computer network")
}

// FetchAuthor retrieves an author profile and all publication summaries,
// paginating through the profile's publication table.
func (c *Client) FetchAuthor(ctx context.Context, userID string) (*Author, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: empty user ID", ErrNotFound)
	}

	author := &Author{ID: userID}

	for start := 0; ; start += PageSize {
		path := fmt.Sprintf("/citations?user=%s&hl=en&cstart=%d&pagesize=%d",
			url.QueryEscape(userID), start, PageSize)
		doc, err := c.getDocument(ctx, path)
		if err != nil {
			return nil, err
		}

		if author.Name == "" {
			parseProfileHeader(doc, author)
			if author.Name == "" {
				return nil, fmt.Errorf("%w: no profile found for user %s", ErrNotFound, userID)
			}
		}

		page := parsePublicationRows(doc)
		author.Publications = append(author.Publications, page...)

		if !hasMorePages(doc, len(page)) {
			break
		}
	}

	return author, nil
}

// FetchDetail retrieves the full bibliographic record for one publication.
func (c *Client) FetchDetail(ctx context.Context, summary PublicationSummary) (*Publication, error) {
	if summary.DetailPath == "" {
		return nil, fmt.Errorf("%w: summary has no detail path", ErrInvalidResponse)
	}

	doc, err := c.getDocument(ctx, summary.DetailPath)
	if err != nil {
		return nil, err
	}

	pub := parseCitationDetail(doc)
	pub.Summary = summary
	if pub.AuthorPubID == "" {
		pub.AuthorPubID = citationForView(summary.DetailPath)
	}
	if pub.Field("title") == "" && summary.Title != "" {
		pub.SetField("title", summary.Title)
	}

	return pub, nil
}

// citationForView extracts the citation_for_view parameter from a detail path.
func citationForView(detailPath string) string {
	u, err := url.Parse(detailPath)
	if err != nil {
		return ""
	}
	return u.Query().Get("citation_for_view")
}
