package suffix

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestCatalogOrder(t *testing.T) {
	cat := Catalog()
	if len(cat) != 17 {
		t.Fatalf("expected catalog to have 17 entries, has %d", len(cat))
	}
	if cat[0].Text() != "e" || cat[7].Text() != "rice" || cat[16].Text() != "fe" {
		t.Errorf("catalog order broken: %v", cat)
	}
	for _, p := range cat {
		conts := p.Continuations()
		if len(conts) != 2 || conts[0] != Plural() || conts[1] != NonBinary() {
			t.Errorf("expected %s to continue with shared markers, has %v", p, conts)
		}
	}
	if c := NonBinary().Continuations(); len(c) != 1 || c[0] != Plural() {
		t.Errorf("expected non-binary marker to continue with plural, has %v", c)
	}
}

func TestCatalogIsCopy(t *testing.T) {
	cat := Catalog()
	cat[0] = nil
	if Catalog()[0] == nil {
		t.Errorf("modifying a catalog copy should not change the catalog")
	}
}

func TestDepth(t *testing.T) {
	for _, p := range Catalog() {
		if d := depth(p, 0); d != maxDepth {
			t.Errorf("expected depth of %s to be %d, is %d", p, maxDepth, d)
		}
	}
	loop := &Pattern{text: []rune("a")}
	loop.continuations = []*Pattern{loop}
	if d := depth(loop, 0); d <= maxDepth {
		t.Errorf("cyclic pattern should exceed max depth, has %d", d)
	}
}

func TestMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "frnorm.suffix")
	defer teardown()
	//
	rice := catalog[7]
	tests := []struct {
		input string
		pos   int
		sep   rune
		end   int
		ok    bool
	}{
		{"rice", 0, '-', 4, true},          // end of input
		{"rice-x-s", 0, '-', 8, true},      // full chain
		{"ricex.s", 0, '.', 7, true},       // marker without separator
		{"rices", 0, '.', 5, true},         // plural without separator
		{"rice-", 0, '-', 4, true},         // separator not consumed
		{"rice-vous", 0, '-', 4, true},     // no continuation after separator
		{"ricette", 0, '-', 0, false},      // prefix of a longer word
		{"rice'", 0, '-', 4, true},         // non-word character
		{"rice·x", 0, '-', 0, false},       // middle dot is a word character
		{"ric", 0, '-', 0, false},          // too short
		{"auteur-rice", 7, '-', 11, true},  // inside a word
		{"auteur-rices", 7, '-', 12, true}, // plural inside a word
	}
	for i, test := range tests {
		end, ok := Match([]rune(test.input), test.pos, rice, test.sep)
		if ok != test.ok || (ok && end != test.end) {
			t.Errorf("test #%d: Match(%q) = (%d, %v), expected (%d, %v)",
				i, test.input, end, ok, test.end, test.ok)
		}
	}
}

func TestDetect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "frnorm.suffix")
	defer teardown()
	//
	tests := []struct {
		input string
		at    int
		span  int
	}{
		{"auteur-rice-x-s", 6, 9},
		{"auteur.ricex.s", 6, 8},
		{"auteur·rice·x·s", 6, 9},
		{"acteur.rice", 6, 5},
		{"ami-es", 3, 3},
		{"rendez-vous", 6, 0},
		{"va-et-vient", 2, 0},
		{"chanteur-euse", 8, 5},
		{"acteur-trice", 6, 6},
		{"fin.", 3, 0},
	}
	for _, test := range tests {
		input := []rune(test.input)
		if span := Detect(input, test.at, input[test.at]); span != test.span {
			t.Errorf("Detect(%q, %d) = %d, expected %d", test.input, test.at, span, test.span)
		}
	}
}

func TestEveryEntryDetected(t *testing.T) {
	for _, p := range Catalog() {
		for _, sep := range []rune{'-', '.', MiddleDot} {
			input := []rune("mot" + string(sep) + p.Text() + string(sep) + "x" + string(sep) + "s")
			expected := len(input) - 3
			if span := Detect(input, 3, sep); span != expected {
				t.Errorf("expected %q to be detected with span %d, have %d", string(input), expected, span)
			}
		}
	}
}

func TestWordChar(t *testing.T) {
	for _, r := range []rune{'a', 'é', 'Ç', MiddleDot, 'œ'} {
		if !IsWordChar(r) {
			t.Errorf("expected %#U to be a word character", r)
		}
	}
	for _, r := range []rune{'-', '.', ' ', '\'', '1'} {
		if IsWordChar(r) {
			t.Errorf("expected %#U not to be a word character", r)
		}
	}
}
