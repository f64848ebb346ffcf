package classify

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"visascout/internal/domain"
)

// snippetRadius bounds the evidence window on each side of a match.
const snippetRadius = 120

// Detector resolves sponsorship/relocation language to a visa status.
// Negative patterns run before positive ones, and order inside each
// list is significant: naive positive matching misfires on sentences
// that use sponsorship vocabulary to deny sponsorship, so denials get
// the first word and the positive path re-checks its own evidence for
// negation words.
type Detector struct {
	negative []*regexp.Regexp
	positive []*regexp.Regexp
	negation *regexp.Regexp
}

// DefaultDetector returns the fixed pattern sets in match order.
func DefaultDetector() *Detector {
	return &Detector{
		negative: compileAll(
			`unable to provide visa sponsorship`,
			`no visa sponsorship`,
			`cannot (provide|sponsor) (a )?visa`,
			`without (the )?need for visa sponsorship`,
			`visa sponsorship is not available`,
			`visa sponsorship (?:is )?not (available|provided|offered)`,
			`(does|do) not (offer|provide) visa sponsorship`,
			`cannot (offer|arrange) visa sponsorship`,
			`not possible to provide visa sponsorship`,
			`will not (pursue|provide) visa sponsorship`,
			`role does not offer visa sponsorship`,
			`must have the legal right to work .* without (the )?need for visa sponsorship`,
			`does not come with relocation assistance`,
			`no relocation (assistance|support)`,
			`relocation assistance is not available`,
		),
		positive: compileAll(
			`visa sponsorship (available|provided|offered|possible)`,
			`work visa[s]? (sponsorship|support)`,
			`sponsorship for (a )?visa`,
			`relocation (support|assistance|package|provided)`,
			`work permit (support|provided|assistance)`,
		),
		negation: regexp.MustCompile(`(?i)\b(no|not|without|unable|cannot|unavailable)\b`),
	}
}

func compileAll(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, regexp.MustCompile("(?i)"+e))
	}
	return out
}

// Detect inspects listing text for sponsorship signals. lowerText must
// be the FoldASCII view of fullText: matches run on the folded text and
// their offsets slice the original, so the evidence snippet keeps its
// original casing.
//
// Any negative match wins immediately. A positive match is accepted
// only when its snippet carries no negation word; a rejected match
// moves on to the next pattern, not the next occurrence.
func (d *Detector) Detect(fullText, lowerText string) (domain.VisaStatus, string) {
	for _, re := range d.negative {
		if loc := re.FindStringIndex(lowerText); loc != nil {
			return domain.VisaNotAvailable, snippetAt(fullText, loc[0], loc[1])
		}
	}

	for _, re := range d.positive {
		loc := re.FindStringIndex(lowerText)
		if loc == nil {
			continue
		}
		snippet := snippetAt(fullText, loc[0], loc[1])
		if snippet != "" && d.negation.MatchString(snippet) {
			continue
		}
		return domain.VisaMentioned, snippet
	}

	return domain.VisaNotMentioned, ""
}

// snippetAt slices a bounded window around a match, snapping the edges
// outward to rune starts so a multi-byte rune is never cut in half.
func snippetAt(text string, start, end int) string {
	lo := start - snippetRadius
	if lo < 0 {
		lo = 0
	}
	hi := end + snippetRadius
	if hi > len(text) {
		hi = len(text)
	}
	for lo > 0 && !utf8.RuneStart(text[lo]) {
		lo--
	}
	for hi < len(text) && !utf8.RuneStart(text[hi]) {
		hi++
	}
	return cleanText(text[lo:hi])
}

func cleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}
