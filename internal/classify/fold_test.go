package classify

import (
	"strings"
	"testing"
)

func TestFoldASCII_LowersOnlyASCIILetters(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Social Media Manager", "social media manager"},
		{"VISA SPONSORSHIP", "visa sponsorship"},
		{"MiXeD 123", "mixed 123"},
		{"Média TEAM", "média team"},
		{"ÉÂ007abc", "ÉÂ007abc"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := FoldASCII(tc.in); got != tc.want {
			t.Fatalf("FoldASCII(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFoldASCII_PreservesByteLength(t *testing.T) {
	// strings.ToLower shrinks the Kelvin sign to a plain k; the fold
	// must not, or match offsets would drift from the original text.
	for _, s := range []string{"K", "ÉCRAN", "plain ascii", "Côte d'Azur OFFICE"} {
		if got := FoldASCII(s); len(got) != len(s) {
			t.Fatalf("FoldASCII(%q) changed byte length: %d -> %d", s, len(s), len(got))
		}
	}
	if got := FoldASCII("K"); got != "K" {
		t.Fatalf("FoldASCII(Kelvin sign) = %q, want unchanged", got)
	}
}

func TestFoldASCII_OffsetsIndexOriginalText(t *testing.T) {
	original := "Équipe média: VISA Sponsorship discussed at interview"
	folded := FoldASCII(original)

	idx := strings.Index(folded, "visa sponsorship")
	if idx < 0 {
		t.Fatalf("folded text %q is missing the lowered phrase", folded)
	}
	if got := original[idx : idx+len("VISA Sponsorship")]; got != "VISA Sponsorship" {
		t.Fatalf("offset %d points at %q in the original, want %q", idx, got, "VISA Sponsorship")
	}
}
