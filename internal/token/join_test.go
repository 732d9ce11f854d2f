package token

import "testing"

func TestJoinWhitespace(t *testing.T) {
	cases := []struct {
		tokens []string
		want   string
	}{
		{[]string{"mi", "toki", "."}, "mi toki."},
		{[]string{"mi", ",", "toki", "!"}, "mi, toki!"},
		{[]string{"."}, "."},
		{[]string{"mi"}, "mi"},
		{nil, ""},
	}
	for _, c := range cases {
		if got := Join(c.tokens, false); got != c.want {
			t.Fatalf("Join(%v) = %q, want %q", c.tokens, got, c.want)
		}
	}
}

func TestJoinSpaceFree(t *testing.T) {
	if got := Join([]string{"我", "知", "[foo]", "."}, true); got != "我知[foo]." {
		t.Fatalf("Join = %q", got)
	}
}

func TestRoundTripCanonicalTexts(t *testing.T) {
	// canonical form: one produced by a tokenize->join pass
	inputs := []struct {
		text      string
		spaceFree bool
	}{
		{"mi toki.", false},
		{"mi sona e ni.", false},
		{"mi [xyz] toki, a!", false},
		{"我知這.", true},
		{"人我[foo]水", true},
		{"sina toki; mi sona?", false},
	}
	for _, in := range inputs {
		canonical := Join(Tokenize(in.text, in.spaceFree), in.spaceFree)
		again := Join(Tokenize(canonical, in.spaceFree), in.spaceFree)
		if canonical != again {
			t.Fatalf("round trip of %q: %q != %q", in.text, canonical, again)
		}
	}
}

func TestJoinIsCanonicalForExamples(t *testing.T) {
	// already-canonical text survives a full pass unchanged
	if got := Join(Tokenize("mi toki.", false), false); got != "mi toki." {
		t.Fatalf("canonical text changed: %q", got)
	}
}
