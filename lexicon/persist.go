package lexicon

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/klauspost/compress/zstd"
)

// FormatHeader is the first line of a saved lexicon. It is written
// uncompressed, followed by a zstd stream holding the JSON-serialized form
// table and the JSON-serialized table of folded words, one per line.
const FormatHeader = "frnorm-lexicon/1"

// ErrFormat is returned by Load for input which is not a saved lexicon.
var ErrFormat = errors.New("lexicon: not a saved lexicon")

// Save writes both tables of the normalizer to w.
func (n *Normalizer) Save(w io.Writer) error {
	n.mx.Lock()
	defer n.mx.Unlock()
	if _, err := io.WriteString(w, FormatHeader+"\n"); err != nil {
		return err
	}
	enc, err := zstd.NewWriter(w)
	if err != nil {
		return err
	}
	for _, table := range []*treemap.Map{n.forms, n.folded} {
		data, err := table.ToJSON()
		if err != nil {
			enc.Close()
			return fmt.Errorf("lexicon: cannot serialize table: %w", err)
		}
		if _, err := enc.Write(append(data, '\n')); err != nil {
			enc.Close()
			return err
		}
	}
	if err := enc.Close(); err != nil {
		tracer().Errorf("saving lexicon failed: %v", err)
		return err
	}
	tracer().Infof("saved lexicon with %d forms", n.forms.Size())
	return nil
}

// Load replaces the tables of the normalizer with tables read from r, which
// must have been written by Save. On error, the normalizer is left unchanged.
func (n *Normalizer) Load(r io.Reader) error {
	br := bufio.NewReader(r)
	header, err := br.ReadString('\n')
	if err != nil || strings.TrimSpace(header) != FormatHeader {
		return fmt.Errorf("%w: header is %q", ErrFormat, strings.TrimSpace(header))
	}
	dec, err := zstd.NewReader(br)
	if err != nil {
		return err
	}
	defer dec.Close()
	lines := bufio.NewReader(dec)
	tables := [2]*treemap.Map{
		treemap.NewWithStringComparator(),
		treemap.NewWithStringComparator(),
	}
	for _, table := range tables {
		data, err := lines.ReadBytes('\n')
		if err != nil {
			return fmt.Errorf("%w: %v", ErrFormat, err)
		}
		if err := table.FromJSON(bytes.TrimSpace(data)); err != nil {
			return fmt.Errorf("%w: %v", ErrFormat, err)
		}
	}
	n.mx.Lock()
	defer n.mx.Unlock()
	n.forms, n.folded = tables[0], tables[1]
	tracer().Infof("loaded lexicon with %d forms", n.forms.Size())
	return nil
}
