package resolver

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Nairobi", "nairobi"},
		{"  NAIROBI   City ", "nairobi city"},
		{"Taíta Tavéta", "taita taveta"},
		{"", ""},
		{"   ", ""},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestMatchesContainment(t *testing.T) {
	// Containment in either direction, case and diacritic insensitive.
	pairs := [][2]string{
		{"Nairobi City", "nairobi"},
		{"nairobi", "Nairobi City"},
		{"MOMBASA", "mombasa"},
		{"Taita Taveta", "Taíta"},
	}
	for _, p := range pairs {
		if !Matches(p[0], p[1]) {
			t.Errorf("Matches(%q, %q) = false, want true", p[0], p[1])
		}
	}

	disjoint := [][2]string{
		{"Nairobi", "Mombasa"},
		{"Kisumu", "Nakuru"},
		{"", "Nairobi"},
		{"Nairobi", ""},
	}
	for _, p := range disjoint {
		if Matches(p[0], p[1]) {
			t.Errorf("Matches(%q, %q) = true, want false", p[0], p[1])
		}
	}
}

func TestBestMatch(t *testing.T) {
	idx, ok := BestMatch("Nairobi", []string{"Mombasa", "Nairobi City", "Kisumu"})
	if !ok || idx != 1 {
		t.Errorf("BestMatch(Nairobi) = (%d, %v), want (1, true)", idx, ok)
	}

	if idx, ok := BestMatch("Nairobi", []string{"Mombasa", "Kisumu"}); ok {
		t.Errorf("BestMatch with disjoint candidates = (%d, true), want no match", idx)
	}
}

func TestBestMatchPrefersLongestCommonSubstring(t *testing.T) {
	// Both candidates are contained in the query; the one sharing more
	// characters wins.
	idx, ok := BestMatch("Nairobi City", []string{"City", "Nairobi"})
	if !ok || idx != 1 {
		t.Errorf("BestMatch(Nairobi City) = (%d, %v), want (1, true)", idx, ok)
	}
}

func TestBestMatchTieBreaksByInputOrder(t *testing.T) {
	// "Bungoma" is contained in both candidates and shares the same
	// longest common substring with each, so input order decides. This is
	// the documented ambiguity for overlapping county name prefixes.
	idx, ok := BestMatch("Bungoma", []string{"Bungoma", "West Bungoma"})
	if !ok || idx != 0 {
		t.Errorf("BestMatch(Bungoma) = (%d, %v), want (0, true)", idx, ok)
	}
}

func TestLongestCommonSubstring(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"nairobi", "nairobi city", 7},
		{"bungoma", "west bungoma", 7},
		{"abc", "xyz", 0},
		{"", "abc", 0},
	}
	for _, c := range cases {
		if got := longestCommonSubstring(c.a, c.b); got != c.want {
			t.Errorf("longestCommonSubstring(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}
