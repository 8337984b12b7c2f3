package suffix

import (
	"fmt"
	"strings"
)

// Pattern is a single literal ending, e.g. "trice" or "euse", together with
// the endings which may legally follow it.
//
// Patterns are immutable. Continuations are shared between patterns, i.e. the
// plural marker is the same node for every feminine ending.
type Pattern struct {
	text          []rune     // literal ending, matched case-sensitively
	continuations []*Pattern // tried in order, first match wins
}

func newPattern(text string, continuations ...*Pattern) *Pattern {
	return &Pattern{
		text:          []rune(text),
		continuations: continuations,
	}
}

// Text returns the literal ending of a pattern.
func (p *Pattern) Text() string {
	return string(p.text)
}

// Len returns the number of code-points of the literal ending.
func (p *Pattern) Len() int {
	return len(p.text)
}

// Continuations returns the patterns which may follow p. Clients must not
// modify the returned slice.
func (p *Pattern) Continuations() []*Pattern {
	return p.continuations
}

func (p *Pattern) String() string {
	if p == nil {
		return "[nil pattern]"
	}
	if len(p.continuations) == 0 {
		return fmt.Sprintf("[%s]", string(p.text))
	}
	conts := make([]string, len(p.continuations))
	for i, c := range p.continuations {
		conts[i] = c.String()
	}
	return fmt.Sprintf("[%s → %s]", string(p.text), strings.Join(conts, "|"))
}

// --- The grammar -----------------------------------------------------------

// "-rice-s", "-rice-x", "-rice-x-s"
var (
	plural    = newPattern("s")
	nonbinary = newPattern("x", plural)
)

// Plural and non-binary markers, in the order they are tried after a
// feminine ending.
var markers = []*Pattern{plural, nonbinary}

// Feminine endings in catalog order. Order is significant: entries are tried
// top to bottom and the first match wins.
//
// "le" is not part of the catalog, as it would require a condition on the
// stem ("nouveau-le" vs. "professionnel-le").
var feminineEndings = [...]string{
	"e",
	"te",
	"euse",
	"ese",
	"ère",
	"Ère",
	"ice",
	"rice",
	"trice",
	"ale",
	"ne",
	"ive",
	"ve",
	"esse",
	"oresse",
	"se",
	"fe",
}

// maxDepth is the longest chain of patterns the grammar allows:
// feminine → non-binary → plural.
const maxDepth = 3

var catalog = makeCatalog()

func makeCatalog() []*Pattern {
	cat := make([]*Pattern, len(feminineEndings))
	for i, ending := range feminineEndings {
		cat[i] = newPattern(ending, markers...)
	}
	for _, p := range cat {
		if d := depth(p, 0); d > maxDepth {
			panic(fmt.Sprintf("suffix catalog: pattern %s has depth %d > %d", p, d, maxDepth))
		}
	}
	return cat
}

// depth returns the length of the longest continuation chain starting at p.
// Recursion is cut off beyond maxDepth, which catches cycles as well.
func depth(p *Pattern, level int) int {
	if level > maxDepth {
		return level
	}
	d := level + 1
	for _, c := range p.continuations {
		if cd := depth(c, level+1); cd > d {
			d = cd
		}
	}
	return d
}

// Catalog returns the feminine endings in the order they are tried.
// The returned slice is a copy, the patterns are shared.
func Catalog() []*Pattern {
	cat := make([]*Pattern, len(catalog))
	copy(cat, catalog)
	return cat
}

// Plural returns the plural marker "s".
func Plural() *Pattern {
	return plural
}

// NonBinary returns the non-binary marker "x".
func NonBinary() *Pattern {
	return nonbinary
}
