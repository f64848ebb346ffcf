package domain

import "testing"

func TestSortRecords_OrdersByCountryTypeCompanyTitle(t *testing.T) {
	recs := []JobRecord{
		{Country: "UK", JobType: "Videographer / Video Editor", Company: "Beta", Title: "Video Editor"},
		{Country: "UK", JobType: "Social Media Manager", Company: "Delta", Title: "Social Media Lead"},
		{Country: "Italy", JobType: "Social Media Manager", Company: "Acme", Title: "Social Media Manager"},
		{Country: "UK", JobType: "Social Media Manager", Company: "Acme", Title: "Social Media Manager"},
		{Country: "UK", JobType: "Social Media Manager", Company: "Acme", Title: "Junior Social Media Manager"},
	}

	SortRecords(recs)

	want := []struct {
		country, company, title string
	}{
		{"Italy", "Acme", "Social Media Manager"},
		{"UK", "Acme", "Junior Social Media Manager"},
		{"UK", "Acme", "Social Media Manager"},
		{"UK", "Delta", "Social Media Lead"},
		{"UK", "Beta", "Video Editor"},
	}
	for i, w := range want {
		got := recs[i]
		if got.Country != w.country || got.Company != w.company || got.Title != w.title {
			t.Fatalf("recs[%d] = %s/%s/%s, want %s/%s/%s",
				i, got.Country, got.Company, got.Title, w.country, w.company, w.title)
		}
	}
}

func TestSortRecords_StableOnFullTies(t *testing.T) {
	recs := []JobRecord{
		{Country: "UK", JobType: "Social Media Manager", Company: "Acme", Title: "Social Media Manager", Link: "first"},
		{Country: "UK", JobType: "Social Media Manager", Company: "Acme", Title: "Social Media Manager", Link: "second"},
	}

	SortRecords(recs)

	if recs[0].Link != "first" || recs[1].Link != "second" {
		t.Fatalf("tie broke discovery order: %q then %q", recs[0].Link, recs[1].Link)
	}
}
