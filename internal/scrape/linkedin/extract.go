package linkedin

import (
	"html"
	"regexp"
	"strings"

	"visascout/internal/scrape/util"
)

// Fallbacks used when a listing page gives nothing better.
const (
	UnknownRole    = "Unknown role"
	UnknownCompany = "Unknown company"
)

var (
	reTitle       = regexp.MustCompile(`(?i)<title>(.*?)\| LinkedIn`)
	reCompanyAttr = regexp.MustCompile(`(?i)data-company-name="([^"]+)"`)
	reCompanyJSON = regexp.MustCompile(`(?i)"hiringCompany":\{"name":"([^"]+)"`)
	reLocation    = regexp.MustCompile(`(?i)class="topcard__flavor topcard__flavor--bullet">([^<]+)</span>`)
	reTags        = regexp.MustCompile(`(?is)<[^>]+>`)
)

// Title pulls the page title without the trailing site suffix.
func Title(markup string) string {
	return util.ExtractField(reTitle, markup, UnknownRole)
}

// Company tries the display attribute first, then the embedded JSON
// blob, then derives a name from the title.
func Company(markup, title string) string {
	company := util.ExtractField(reCompanyAttr, markup, UnknownCompany)
	if company == UnknownCompany {
		company = util.ExtractField(reCompanyJSON, markup, UnknownCompany)
	}
	if company == UnknownCompany {
		company = deriveCompanyFromTitle(title, company)
	}
	return company
}

// Location reads the topcard location bullet, falling back to the
// search location when the page has none.
func Location(markup, fallback string) string {
	return util.ExtractField(reLocation, markup, fallback)
}

// PlainText strips markup down to entity-decoded text. Whitespace is
// deliberately left alone: visa-signal matches index into this string
// and collapsing here would shift their offsets.
func PlainText(markup string) string {
	return html.UnescapeString(reTags.ReplaceAllString(markup, " "))
}

// Listing titles often read "<company> hiring <role> in <place>".
var companyTitleRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(.*?) hiring `),
	regexp.MustCompile(`(?i)^(.*?) is hiring `),
	regexp.MustCompile(`(?i)^(.*?) sta assumendo `),
	regexp.MustCompile(`(?i)^(.*?) zoekt`),
	regexp.MustCompile(`(?i)^(.*?) recruiting `),
}

func deriveCompanyFromTitle(title, current string) string {
	for _, re := range companyTitleRes {
		m := re.FindStringSubmatch(title)
		if m == nil {
			continue
		}
		if candidate := strings.Trim(m[1], " -–"); candidate != "" {
			return candidate
		}
	}
	if tokens := strings.Fields(title); len(tokens) > 0 {
		return tokens[0]
	}
	return current
}
