package classify

import "regexp"

// Job-type labels. Every accepted record carries exactly one of these.
const (
	TypeSocialMedia       = "Social Media Manager"
	TypeVideographer      = "Videographer / Video Editor"
	TypeWordPress         = "WordPress Content Manager"
	TypeContentCreator    = "Content Creator / Content Specialist"
	TypeMarketing         = "Marketing Assistant / Digital Marketing Executive"
	TypeCreativeAssistant = "Creative Assistant"
)

// TitleRule maps a title predicate to a job-type label.
type TitleRule struct {
	Label string
	Match func(title string) bool
}

// Taxonomy is an ordered rule list; the first hit wins, so the more
// specific categories must stay ahead of the broader ones. The order is
// part of the contract, not a style choice.
type Taxonomy struct {
	rules []TitleRule
}

func regexRule(label, expr string) TitleRule {
	re := regexp.MustCompile("(?i)" + expr)
	return TitleRule{Label: label, Match: re.MatchString}
}

// followedByRule matches when lead matches and follow appears after the
// end of that match. Two passes stand in for a lookahead, which RE2
// does not support.
func followedByRule(label, lead, follow string) TitleRule {
	leadRe := regexp.MustCompile("(?i)" + lead)
	followRe := regexp.MustCompile("(?i)" + follow)
	return TitleRule{Label: label, Match: func(title string) bool {
		loc := leadRe.FindStringIndex(title)
		if loc == nil {
			return false
		}
		return followRe.MatchString(title[loc[1]:])
	}}
}

// DefaultTaxonomy returns the fixed job-type rules in match order.
func DefaultTaxonomy() *Taxonomy {
	return &Taxonomy{rules: []TitleRule{
		regexRule(TypeSocialMedia,
			`social media (content )?(manager|lead|specialist|coordinator|executive|strategist|creator)`),
		followedByRule(TypeVideographer,
			`(video|videograph|filmmak)`,
			`(editor|producer|content|manager|lead|specialist|creator|production|artist)`),
		regexRule(TypeWordPress, `wordpress`),
		regexRule(TypeContentCreator,
			`(content|digital content) (creator|specialist|manager|producer|strategist|lead|editor|officer|designer)`),
		regexRule(TypeMarketing,
			`(digital )?marketing (assistant|executive|specialist|coordinator|associate|manager|lead)`),
		regexRule(TypeMarketing, `digital marketing`),
		regexRule(TypeCreativeAssistant, `creative (assistant|producer|associate|lead)`),
	}}
}

// Classify returns the label of the first rule matching the title, or
// false when nothing matches and the listing should be dropped.
func (t *Taxonomy) Classify(title string) (string, bool) {
	for _, r := range t.rules {
		if r.Match(title) {
			return r.Label, true
		}
	}
	return "", false
}
