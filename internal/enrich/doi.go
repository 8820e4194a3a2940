package enrich

import (
	"net/url"
	"regexp"
	"strings"
)

// DOI pattern: 10.XXXX/... where XXXX is 4-9 digits.
var doiPattern = regexp.MustCompile(`(10\.\d{4,9}/[-._;()/:a-zA-Z0-9]+)`)

// alphanumeric matches an RSC article ID like "d4dd00352g".
var alphanumeric = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// rscHost is the Royal Society of Chemistry, whose landing URLs carry the
// DOI suffix as the last path segment instead of a full DOI.
const rscHost = "pubs.rsc.org"

// InferDOI derives a DOI from a landing-page URL. It first looks for a
// DOI-shaped substring anywhere in the URL, then falls back to the RSC
// last-segment convention (10.1039/<SEGMENT>). Returns "" when neither
// applies.
func InferDOI(pubURL string) string {
	if pubURL == "" {
		return ""
	}

	if m := doiPattern.FindString(pubURL); m != "" {
		return m
	}

	if strings.Contains(pubURL, rscHost) {
		if suffix := lastPathSegment(pubURL); alphanumeric.MatchString(suffix) {
			return "10.1039/" + strings.ToUpper(suffix)
		}
	}

	return ""
}

func lastPathSegment(rawURL string) string {
	trimmed := strings.TrimSuffix(rawURL, "/")
	if u, err := url.Parse(trimmed); err == nil && u.Path != "" {
		trimmed = u.Path
	}
	idx := strings.LastIndex(trimmed, "/")
	if idx < 0 {
		return trimmed
	}
	return trimmed[idx+1:]
}
