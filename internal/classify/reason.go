package classify

import "strings"

type reasonTrigger struct {
	keywords []string
	clause   string
}

// Reasons builds the short fit line carried on every record.
type Reasons struct {
	triggers []reasonTrigger
	defaults map[string]string
	fallback string
}

// DefaultReasons returns the fixed trigger table and per-type defaults.
func DefaultReasons() *Reasons {
	return &Reasons{
		triggers: []reasonTrigger{
			{[]string{"social"}, "leverages your social media management experience"},
			{[]string{"video", "film"}, "requires hands-on video production and editing skills"},
			{[]string{"content", "copy"}, "focuses on content creation aligned with your portfolio"},
			{[]string{"wordpress"}, "needs WordPress publishing know-how you already have"},
			{[]string{"seo", "search"}, "mentions SEO fundamentals that match your skill set"},
		},
		defaults: map[string]string{
			TypeCreativeAssistant: "draws on your multi-disciplinary creative background",
			TypeVideographer:      "relies on your videography and editing portfolio",
			TypeWordPress:         "benefits from your WordPress build-and-publish experience",
		},
		fallback: "matches your broad digital marketing toolkit",
	}
}

// Build appends one clause per keyword trigger found in the title; when
// none fires it falls back to the job-type default. Two or more clauses
// join with "; " and the last one reads "; and <last>".
func (r *Reasons) Build(title, jobType string) string {
	lowered := strings.ToLower(title)

	var clauses []string
	for _, t := range r.triggers {
		for _, kw := range t.keywords {
			if strings.Contains(lowered, kw) {
				clauses = append(clauses, t.clause)
				break
			}
		}
	}

	if len(clauses) == 0 {
		if d, ok := r.defaults[jobType]; ok {
			return d
		}
		return r.fallback
	}
	if len(clauses) == 1 {
		return clauses[0]
	}
	return strings.Join(clauses[:len(clauses)-1], "; ") + "; and " + clauses[len(clauses)-1]
}
