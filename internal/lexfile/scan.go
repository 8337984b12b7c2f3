package lexfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// --- Line level scanner ----------------------------------------------------

// scanner is a type for a line-level scanner.
//
// Our line-level scanner will operate by calling scanning steps in a chain, iteratively.
// Each step function inspects the current line and then possibly branches out to a
// subsequent step function. A step returning a nil step ends the chain; a nil token
// signals a line to skip.
type scanner struct {
	lines     *bufio.Scanner
	line      string   // current line
	lineNo    int      // number of current line
	Step      scanStep // the next scanner step to execute in a chain
	LastError error    // last error, if any
	Token     *Token   // last token produced by scanner
}

// We're building up a scanner from chains of scanner step functions.
// Tokens may be modified by a step function.
type scanStep func(*Token) (*Token, scanStep)

// MaxLineLength is the maximum number of bytes of a data line.
const MaxLineLength = 4096

// New creates a scanner for an input reader.
func New(inputReader io.Reader) (*scanner, error) {
	if inputReader == nil {
		return nil, errors.New("no input present")
	}
	sc := &scanner{lines: bufio.NewScanner(inputReader)}
	sc.lines.Buffer(make([]byte, 0, 256), MaxLineLength)
	return sc, nil
}

// Parse iterates over each data line of the input and calls callback f on it.
// It returns the first error encountered.
func Parse(r io.Reader, f func(token *Token)) error {
	sc, err := New(r)
	if err != nil {
		return err
	}
	for sc.Next() {
		f(sc.Token)
	}
	return sc.LastError
}

// Next is called to receive the next data token. Lines without data are
// skipped. Next returns false at the end of input or after an error.
func (sc *scanner) Next() bool {
	for sc.LastError == nil && sc.lines.Scan() {
		sc.lineNo++
		sc.line = sc.lines.Text()
		token := newToken(sc.lineNo)
		for sc.Step = sc.ScanLine; sc.Step != nil && token != nil; {
			token, sc.Step = sc.Step(token)
		}
		if token == nil {
			continue
		}
		if token.Error != nil {
			sc.LastError = token.Error
			tracer().Errorf("line %d: %v", token.LineNo, token.Error)
			return false
		}
		sc.Token = token
		return true
	}
	if err := sc.lines.Err(); err != nil && sc.LastError == nil {
		sc.LastError = fmt.Errorf("line %d: %w", sc.lineNo+1, err)
	}
	return false
}

// ScanLine is the first step for every line.
//
//    line:
//      -> empty or comment: skip
//      -> invalid UTF-8:   error
//      -> other:           item body
func (sc *scanner) ScanLine(token *Token) (*Token, scanStep) {
	trimmed := strings.TrimSpace(sc.line)
	if trimmed == "" || trimmed[0] == '#' {
		return nil, nil
	}
	if !utf8.ValidString(sc.line) {
		token.Error = fmt.Errorf("line %d is not valid UTF-8", token.LineNo)
		return token, nil
	}
	sc.line = trimmed
	return token, sc.ScanItemBody
}

// ScanItemBody splits a data line into fields and comment.
func (sc *scanner) ScanItemBody(token *Token) (*Token, scanStep) {
	body := sc.line
	if i := strings.IndexByte(body, '#'); i >= 0 {
		token.Comment = strings.TrimSpace(body[i+1:])
		body = body[:i]
	}
	for _, field := range strings.Split(body, ";") {
		token.Fields = append(token.Fields, strings.TrimSpace(field))
	}
	return token, sc.checkFields
}

func (sc *scanner) checkFields(token *Token) (*Token, scanStep) {
	for i, field := range token.Fields {
		if field == "" {
			token.Error = fmt.Errorf("line %d: field #%d is empty", token.LineNo, i+1)
			break
		}
	}
	return token, nil
}
