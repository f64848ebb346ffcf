package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string
	Warnings []string
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a cleaned copy of the config plus
// anything worth telling the operator about.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	trimList := func(xs []string) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.TrimSpace(x)
			if x == "" {
				continue
			}
			key := strings.ToLower(x)
			if seen[key] {
				continue
			}
			seen[key] = true
			ys = append(ys, x)
		}
		return ys
	}

	out.Searches = trimList(out.Searches)

	var locs []Location
	seenLoc := map[string]bool{}
	for i, l := range out.Locations {
		name := strings.TrimSpace(l.Name)
		country := strings.TrimSpace(l.Country)
		if name == "" {
			res.addErr("locations[%d].name is required", i)
			continue
		}
		if country == "" {
			res.addErr("locations[%d].country is required (location %q)", i, name)
			continue
		}
		key := strings.ToLower(name)
		if seenLoc[key] {
			continue
		}
		seenLoc[key] = true
		locs = append(locs, Location{Name: name, Country: country})
	}
	out.Locations = locs

	if strings.TrimSpace(out.Output) == "" {
		res.addErr("output path must not be empty")
	}
	if len(out.Searches) == 0 {
		res.addErr("searches must list at least one query")
	}
	if len(out.Locations) == 0 {
		res.addErr("locations must list at least one entry")
	}

	if out.HTTP.TimeoutSeconds <= 0 {
		res.addErr("http.timeout_seconds must be > 0")
	}
	if strings.TrimSpace(out.HTTP.UserAgent) == "" {
		res.addErr("http.user_agent must not be empty")
	}

	if out.Delays.SearchMS < 0 {
		res.addErr("delays.search_ms must be >= 0")
	}
	if out.Delays.ListingMS < 0 {
		res.addErr("delays.listing_ms must be >= 0")
	}
	if out.Delays.SearchMS > 0 && out.Delays.SearchMS < 500 {
		res.addWarn("delays.search_ms is very low (%d) and may trip rate limits.", out.Delays.SearchMS)
	}
	if out.Delays.ListingMS > 0 && out.Delays.ListingMS < 500 {
		res.addWarn("delays.listing_ms is very low (%d) and may trip rate limits.", out.Delays.ListingMS)
	}

	return out, res
}
