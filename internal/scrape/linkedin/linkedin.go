package linkedin

import (
	"context"
	"net/url"
	"strings"
	"time"

	"visascout/internal/fetch"

	"github.com/PuerkitoBio/goquery"
)

const (
	searchEndpoint = "https://www.linkedin.com/jobs-guest/jobs/api/seeMoreJobPostings/search"
	// r2592000 limits results to postings from the last 30 days
	recencyFilter = "r2592000"
	jobViewMarker = "linkedin.com/jobs/view"
)

type Config struct {
	BaseURL      string // search endpoint override; empty means the live endpoint
	SearchDelay  time.Duration
	ListingDelay time.Duration
}

// Scraper drives the guest search endpoint. It owns both pacers, so
// every outbound call through it is throttled.
type Scraper struct {
	cfg         Config
	client      *fetch.Client
	searchPace  *fetch.Pacer
	listingPace *fetch.Pacer
}

func New(cfg Config, client *fetch.Client) *Scraper {
	if cfg.BaseURL == "" {
		cfg.BaseURL = searchEndpoint
	}
	return &Scraper{
		cfg:         cfg,
		client:      client,
		searchPace:  fetch.NewPacer(cfg.SearchDelay),
		listingPace: fetch.NewPacer(cfg.ListingDelay),
	}
}

func (s *Scraper) Name() string { return "LinkedIn" }

// SearchURL builds the guest search URL for one query and location.
func (s *Scraper) SearchURL(query, location string) string {
	v := url.Values{}
	v.Set("keywords", query)
	v.Set("location", location)
	v.Set("f_TPR", recencyFilter)
	return s.cfg.BaseURL + "?" + v.Encode()
}

// FetchSearch returns the listing links found on one search page. The
// second return is false when the page could not be fetched, which the
// caller counts separately from a page with no links.
func (s *Scraper) FetchSearch(ctx context.Context, query, location string) ([]string, bool) {
	res := s.client.Fetch(ctx, s.SearchURL(query, location), s.searchPace)
	if !res.OK() {
		return nil, false
	}
	return ExtractLinks(res.Text), true
}

// FetchListing returns the raw page text for one listing URL.
func (s *Scraper) FetchListing(ctx context.Context, link string) (string, bool) {
	res := s.client.Fetch(ctx, link, s.listingPace)
	if !res.OK() {
		return "", false
	}
	return res.Text, true
}

// isJobViewLink keeps absolute job-view URLs only. The marker must sit
// strictly inside the URL: at least one byte of host before it and a
// job path after it.
func isJobViewLink(href string) bool {
	if !strings.HasPrefix(href, "https://") {
		return false
	}
	i := strings.Index(href, jobViewMarker)
	return i > len("https://") && i+len(jobViewMarker) < len(href)
}

// ExtractLinks scans search-result markup for absolute job-view links,
// deduplicated in discovery order. The parser handles entity decoding,
// so hrefs with &amp; separators come out clean.
func ExtractLinks(markup string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil
	}

	seen := map[string]bool{}
	var links []string
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok {
			return
		}
		href = strings.TrimSpace(href)
		if !isJobViewLink(href) {
			return
		}
		if seen[href] {
			return
		}
		seen[href] = true
		links = append(links, href)
	})
	return links
}
