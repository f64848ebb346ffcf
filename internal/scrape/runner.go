package scrape

import (
	"context"
	"log"

	"visascout/internal/classify"
	"visascout/internal/config"
	"visascout/internal/domain"
	"visascout/internal/scrape/linkedin"
	"visascout/internal/scrape/util"
)

// Stats counts what a run saw and why listings were dropped.
type Stats struct {
	SearchPages     int `json:"search_pages"`
	SearchFailures  int `json:"search_failures"`
	LinksFound      int `json:"links_found"`
	UniqueLinks     int `json:"unique_links"`
	ListingsFetched int `json:"listings_fetched"`
	ListingFailures int `json:"listing_failures"`
	NoJobType       int `json:"dropped_no_job_type"`
	VisaDenied      int `json:"dropped_visa_denied"`
}

// Runner walks the location and query cross product strictly in order,
// one fetch at a time. It owns the seen-link set and the record slice;
// nothing here is shared.
type Runner struct {
	scraper  *linkedin.Scraper
	taxonomy *classify.Taxonomy
	detector *classify.Detector
	reasons  *classify.Reasons
}

func NewRunner(s *linkedin.Scraper, t *classify.Taxonomy, d *classify.Detector, r *classify.Reasons) *Runner {
	return &Runner{scraper: s, taxonomy: t, detector: d, reasons: r}
}

// Run executes the full cross product, locations outer and queries
// inner, and returns the accepted records sorted for serialization.
// A canonical link is marked seen before its listing is fetched and is
// never retried within the run, even when that fetch fails or the
// listing is later dropped.
func (r *Runner) Run(ctx context.Context, locations []config.Location, queries []string) ([]domain.JobRecord, Stats, error) {
	seen := map[string]bool{}
	var records []domain.JobRecord
	var st Stats

	for _, loc := range locations {
		for _, query := range queries {
			if err := ctx.Err(); err != nil {
				return nil, st, err
			}

			links, ok := r.scraper.FetchSearch(ctx, query, loc.Name)
			if !ok {
				st.SearchFailures++
				continue
			}
			st.SearchPages++
			st.LinksFound += len(links)

			kept := 0
			for _, link := range links {
				if err := ctx.Err(); err != nil {
					return nil, st, err
				}

				canonical := util.CanonicalLink(link)
				if seen[canonical] {
					continue
				}
				seen[canonical] = true
				st.UniqueLinks++

				rec, ok := r.resolve(ctx, link, canonical, loc, &st)
				if !ok {
					continue
				}
				records = append(records, rec)
				kept++
			}
			log.Printf("[run] location=%q query=%q links=%d kept=%d", loc.Name, query, len(links), kept)
		}
	}

	domain.SortRecords(records)
	return records, st, nil
}

// resolve turns one unseen listing link into a record, or reports why
// it was dropped through the stats counters.
func (r *Runner) resolve(ctx context.Context, link, canonical string, loc config.Location, st *Stats) (domain.JobRecord, bool) {
	page, ok := r.scraper.FetchListing(ctx, link)
	if !ok {
		st.ListingFailures++
		return domain.JobRecord{}, false
	}
	st.ListingsFetched++

	text := linkedin.PlainText(page)
	folded := classify.FoldASCII(text)

	title := linkedin.Title(page)
	jobType, ok := r.taxonomy.Classify(title)
	if !ok {
		st.NoJobType++
		log.Printf("[run] skip cause=no-job-type title=%q link=%s", title, canonical)
		return domain.JobRecord{}, false
	}

	company := linkedin.Company(page, title)
	location := util.CleanText(linkedin.Location(page, loc.Name))

	status, snippet := r.detector.Detect(text, folded)
	if status == domain.VisaNotAvailable {
		st.VisaDenied++
		log.Printf("[run] skip cause=visa-denied link=%s", canonical)
		return domain.JobRecord{}, false
	}

	return domain.JobRecord{
		Title:       util.CleanText(title),
		Company:     company,
		Country:     loc.Country,
		Location:    location,
		VisaStatus:  status,
		VisaSnippet: snippet,
		JobType:     jobType,
		Reason:      r.reasons.Build(title, jobType),
		Link:        canonical,
		Source:      r.scraper.Name(),
	}, true
}
