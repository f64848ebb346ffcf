package classify

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"visascout/internal/domain"
)

func detect(text string) (domain.VisaStatus, string) {
	return DefaultDetector().Detect(text, FoldASCII(text))
}

func TestDetect_DenialWinsOverMention(t *testing.T) {
	// Sponsorship vocabulary appears in both polarities; the denial
	// must win regardless of which phrase comes first.
	for _, text := range []string{
		"We offer relocation support, but note there is no visa sponsorship available for this role.",
		"No visa sponsorship is offered, though we do provide relocation support.",
	} {
		status, snippet := detect(text)
		assert.Equal(t, domain.VisaNotAvailable, status, "text: %s", text)
		assert.Contains(t, strings.ToLower(snippet), "no visa sponsorship")
	}
}

func TestDetect_PositiveMention(t *testing.T) {
	text := "Full visa sponsorship available for the successful candidate."
	status, snippet := detect(text)
	assert.Equal(t, domain.VisaMentioned, status)
	assert.Equal(t, text, snippet)
}

func TestDetect_RelocationCountsAsMention(t *testing.T) {
	status, snippet := detect("We include a relocation package and full onboarding.")
	assert.Equal(t, domain.VisaMentioned, status)
	assert.Contains(t, snippet, "relocation package")
}

func TestDetect_NegatedMentionFallsThrough(t *testing.T) {
	// The positive phrase matches but its evidence window carries a
	// negation word, so it is rejected rather than reported.
	status, snippet := detect("Visa sponsorship available? Unfortunately not for this opening.")
	assert.Equal(t, domain.VisaNotMentioned, status)
	assert.Empty(t, snippet)
}

func TestDetect_NoSignals(t *testing.T) {
	status, snippet := detect("We are looking for a creative video producer to join our Milan team.")
	assert.Equal(t, domain.VisaNotMentioned, status)
	assert.Empty(t, snippet)
}

func TestDetect_SnippetStaysWithinWindow(t *testing.T) {
	pad := strings.Repeat("pad ", 100)
	text := "ALPHA " + pad + "visa sponsorship provided by the employer " + pad + "OMEGA"

	status, snippet := detect(text)
	assert.Equal(t, domain.VisaMentioned, status)
	assert.Contains(t, snippet, "visa sponsorship provided")
	assert.NotContains(t, snippet, "ALPHA")
	assert.NotContains(t, snippet, "OMEGA")
}

func TestDetect_SnippetKeepsOriginalCase(t *testing.T) {
	status, snippet := detect("Candidates welcome: VISA SPONSORSHIP AVAILABLE across the EU.")
	assert.Equal(t, domain.VisaMentioned, status)
	assert.Contains(t, snippet, "VISA SPONSORSHIP AVAILABLE")
}

func TestDetect_SnippetCollapsesWhitespace(t *testing.T) {
	status, snippet := detect("Benefits: \n\n  visa sponsorship available \t here.")
	assert.Equal(t, domain.VisaMentioned, status)
	assert.Equal(t, "Benefits: visa sponsorship available here.", snippet)
}

func TestSnippetAt_SnapsToRuneStarts(t *testing.T) {
	text := strings.Repeat("€", 100)

	// Offsets chosen so both window edges land inside a rune.
	got := snippetAt(text, 151, 154)
	if !utf8.ValidString(got) {
		t.Fatalf("snippet is not valid UTF-8: %q", got)
	}
	if !strings.HasPrefix(got, "€") || !strings.HasSuffix(got, "€") {
		t.Fatalf("snippet edges were cut mid-rune: %q", got)
	}
}
