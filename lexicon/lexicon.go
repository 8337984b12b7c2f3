package lexicon

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/frnorm"
	"github.com/npillmayer/frnorm/internal/lexfile"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Normalizer maps token forms to norms. It is safe for concurrent use.
type Normalizer struct {
	mx     sync.Mutex
	forms  *treemap.Map // form → norm
	folded *treemap.Map // dediacritic(word) → word
	lower  cases.Caser  // stateful, guarded by mx
}

// New creates an empty normalizer.
func New() *Normalizer {
	n := &Normalizer{
		forms:  treemap.NewWithStringComparator(),
		folded: treemap.NewWithStringComparator(),
		lower:  cases.Lower(language.French),
	}
	n.seed()
	return n
}

// Folded forms which must not be claimed by other words of a word list.
func (n *Normalizer) seed() {
	n.folded.Put("meme", "même")
	n.folded.Put("memes", "mêmes")
}

// LoadWords reads a word list in lexicon data file format. A line with a
// single field is a known word, which is its own norm. A line with two fields
// "form ; norm" associates a form with a norm.
func (n *Normalizer) LoadWords(r io.Reader) error {
	n.mx.Lock()
	defer n.mx.Unlock()
	var err error
	words := 0
	perr := lexfile.Parse(r, func(token *lexfile.Token) {
		if err != nil {
			return
		}
		switch token.NumFields() {
		case 1:
			n.addWord(token.Field(1))
			words++
		case 2:
			n.add(token.Field(2), token.Field(1))
		default:
			err = fmt.Errorf("lexicon: line %d: expected 1 or 2 fields, have %d",
				token.LineNo, token.NumFields())
		}
	})
	if perr != nil {
		return fmt.Errorf("lexicon: %w", perr)
	}
	tracer().Infof("loaded %d words, lexicon has %d forms", words, n.forms.Size())
	return err
}

func (n *Normalizer) addWord(word string) {
	n.forms.Put(word, word)
	folded := dediacritic(word)
	if folded == word {
		n.folded.Put(folded, word)
	} else if _, found := n.folded.Get(folded); !found {
		n.folded.Put(folded, word)
	}
}

// Add associates a norm with a list of forms.
func (n *Normalizer) Add(nrm string, forms ...string) {
	n.mx.Lock()
	defer n.mx.Unlock()
	n.add(nrm, forms...)
}

func (n *Normalizer) add(nrm string, forms ...string) {
	for _, form := range forms {
		n.forms.Put(form, nrm)
	}
}

// Lookup returns the norm registered for a form, without applying any rules.
func (n *Normalizer) Lookup(form string) (string, bool) {
	n.mx.Lock()
	defer n.mx.Unlock()
	return lookup(n.forms, form)
}

// Size returns the number of entries of the form table and of the table of
// folded words.
func (n *Normalizer) Size() (forms int, folded int) {
	n.mx.Lock()
	defer n.mx.Unlock()
	return n.forms.Size(), n.folded.Size()
}

// Normalize returns the norm for a token. The token and all its intermediate
// forms are registered with the norm found.
//
// Returns an error wrapping frnorm.ErrInvalidArgument for invalid input.
func (n *Normalizer) Normalize(s string) (string, error) {
	if !utf8.ValidString(s) {
		return "", fmt.Errorf("lexicon: %w", frnorm.ErrInvalidArgument)
	}
	n.mx.Lock()
	defer n.mx.Unlock()
	//
	if nrm, ok := lookup(n.forms, s); ok {
		return nrm, nil
	}
	lower := n.lower.String(s)
	if nrm, ok := lookup(n.forms, lower); ok {
		tracer().Debugf("%q: found lower-case form %q", s, lower)
		n.add(nrm, s)
		return nrm, nil
	}
	normalized, err := frnorm.Normalize(norm.NFC.String(lower))
	if err != nil {
		return "", err
	}
	if nrm, ok := lookup(n.forms, normalized); ok {
		tracer().Debugf("%q: found normalized form %q", s, normalized)
		n.add(nrm, s, lower)
		return nrm, nil
	}
	// keep the hyphen of subject-verb inversion, as in "-nous"
	if strings.Contains(normalized, "-") && normalized[0] != '-' {
		nrm := n.normalizeCompound(normalized)
		tracer().Debugf("%q: normalized as compound %q", s, nrm)
		n.add(nrm, s, lower, normalized)
		return nrm, nil
	}
	folded := dediacritic(normalized)
	if nrm, ok := lookup(n.folded, folded); ok {
		tracer().Debugf("%q: found folded form %q", s, folded)
		n.add(nrm, s, lower, normalized)
		return nrm, nil
	}
	n.add(normalized, s, lower, normalized, folded)
	return normalized, nil
}

// NormalizeCompound normalizes each hyphen-separated part of a compound word
// on its own. The compound is expected to have been normalized with
// frnorm.Normalize beforehand.
func (n *Normalizer) NormalizeCompound(compound string) string {
	n.mx.Lock()
	defer n.mx.Unlock()
	return n.normalizeCompound(compound)
}

func (n *Normalizer) normalizeCompound(compound string) string {
	parts := strings.Split(compound, "-")
	for i, part := range parts {
		if nrm, ok := lookup(n.forms, part); ok {
			parts[i] = nrm
			continue
		}
		if nrm, ok := lookup(n.folded, dediacritic(part)); ok {
			parts[i] = nrm
		}
	}
	return strings.Join(parts, "-")
}

// dediacritic folds s, falling back to s for input the engine refuses.
func dediacritic(s string) string {
	d, err := frnorm.Dediacritic(s)
	if err != nil {
		return s
	}
	return d
}

func lookup(m *treemap.Map, key string) (string, bool) {
	v, found := m.Get(key)
	if !found {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
