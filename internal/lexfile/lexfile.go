/* Package lexfile provides a parser for lexicon data files.

Lexicon data files follow the line format of Unicode Character Database
files (see http://www.unicode.org/reports/tr44/): every data line consists of
fields separated by semicolons, optionally followed by a comment introduced
by '#'. Empty lines and lines starting with '#' are skipped.

	# word list
	être
	etre ; être      # missing accent
	ptit ; petit
*/
package lexfile

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'frnorm.lexicon'.
func tracer() tracing.Trace {
	return tracing.Select("frnorm.lexicon")
}

// Token is the result of scanning a data line.
type Token struct {
	LineNo  int      // line number within the input source, starting at 1
	Fields  []string // trimmed fields of the line
	Comment string   // rest-of-line comment, if any
	Error   error    // error condition, if any
}

func newToken(line int) *Token {
	return &Token{
		LineNo: line,
		Fields: []string{},
	}
}

func (token *Token) String() string {
	return fmt.Sprintf("token[line %d %#v # %q]", token.LineNo, token.Fields, token.Comment)
}

// Field gets field #i (1…n) from the current data item.
func (token *Token) Field(i int) string {
	if i > 0 && i <= len(token.Fields) {
		return token.Fields[i-1]
	}
	return ""
}

// NumFields returns the number of fields of the data item.
func (token *Token) NumFields() int {
	return len(token.Fields)
}
