package fetch

import (
	"context"
	"io"
	"log"
	"mime"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

// Outcome distinguishes usable content from the two absent cases.
type Outcome int

const (
	OutcomeContent Outcome = iota
	OutcomeNotFound
	OutcomeError
)

// Result is one fetch outcome. Call sites that treat missing and failed
// pages the same way only look at OK.
type Result struct {
	Outcome Outcome
	Text    string
}

// OK reports whether the fetch produced non-empty page text.
func (r Result) OK() bool { return r.Outcome == OutcomeContent && r.Text != "" }

const maxBodyBytes = 10 << 20

// Client issues single best-effort GETs with fixed headers. It never
// returns an error: 404s come back as absent without noise and every
// other failure logs one warning line and comes back as absent too.
type Client struct {
	hc             *http.Client
	userAgent      string
	acceptLanguage string
}

type Option func(*Client)

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.hc.Timeout = d }
}

func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

func WithAcceptLanguage(al string) Option {
	return func(c *Client) { c.acceptLanguage = al }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		hc:             &http.Client{Timeout: 20 * time.Second},
		userAgent:      "Mozilla/5.0 (compatible; JobAgentBot/1.0; +https://example.com/bot)",
		acceptLanguage: "en-GB,en;q=0.9",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch waits on the pacer, then issues one GET.
func (c *Client) Fetch(ctx context.Context, rawURL string, pace *Pacer) Result {
	if err := pace.Wait(ctx); err != nil {
		return Result{Outcome: OutcomeError}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		log.Printf("[fetch] warn: bad url %q: %v", rawURL, err)
		return Result{Outcome: OutcomeError}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept-Language", c.acceptLanguage)

	res, err := c.hc.Do(req)
	if err != nil {
		log.Printf("[fetch] warn: %v for %s", err, rawURL)
		return Result{Outcome: OutcomeError}
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return Result{Outcome: OutcomeNotFound}
	}
	if res.StatusCode >= 400 {
		log.Printf("[fetch] warn: HTTP %d for %s", res.StatusCode, rawURL)
		return Result{Outcome: OutcomeError}
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		log.Printf("[fetch] warn: read body: %v for %s", err, rawURL)
		return Result{Outcome: OutcomeError}
	}

	return Result{Outcome: OutcomeContent, Text: decodeBody(body, res.Header.Get("Content-Type"))}
}

// decodeBody honors the declared charset and falls back to UTF-8 with
// invalid bytes substituted. Decoding never fails; this is the one
// place raw input instability is absorbed.
func decodeBody(body []byte, contentType string) string {
	if _, params, err := mime.ParseMediaType(contentType); err == nil {
		if label := params["charset"]; label != "" {
			if enc, _ := charset.Lookup(label); enc != nil {
				if out, _, err := transform.Bytes(enc.NewDecoder(), body); err == nil {
					return string(out)
				}
			}
		}
	}
	return strings.ToValidUTF8(string(body), "�")
}
