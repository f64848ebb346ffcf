package domain

import "sort"

// VisaStatus is the resolved sponsorship signal for a listing.
type VisaStatus string

const (
	VisaMentioned    VisaStatus = "Mentioned"
	VisaNotMentioned VisaStatus = "Not mentioned"
	VisaNotAvailable VisaStatus = "Not available"
)

// JobRecord is one accepted listing, shaped exactly as it is serialized.
// VisaSnippet is only set when a positive signal matched, so records with
// status "Not mentioned" omit the key entirely.
type JobRecord struct {
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Country     string     `json:"country"`
	Location    string     `json:"location"`
	VisaStatus  VisaStatus `json:"visa_status"`
	VisaSnippet string     `json:"visa_snippet,omitempty"`
	JobType     string     `json:"job_type"`
	Reason      string     `json:"reason"`
	Link        string     `json:"link"`
	Source      string     `json:"source"`
}

// SortRecords orders records by country, then job type, company and
// title. The sort is stable so full ties keep discovery order.
func SortRecords(recs []JobRecord) {
	sort.SliceStable(recs, func(i, j int) bool {
		a, b := recs[i], recs[j]
		if a.Country != b.Country {
			return a.Country < b.Country
		}
		if a.JobType != b.JobType {
			return a.JobType < b.JobType
		}
		if a.Company != b.Company {
			return a.Company < b.Company
		}
		return a.Title < b.Title
	})
}
