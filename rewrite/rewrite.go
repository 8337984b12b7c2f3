/*
Package rewrite unifies typographic variants in French tokens.

Rewrite performs a single left-to-right scan over its input. Brackets are
dropped, curly quotes, guillemets and long dashes are replaced by their
ASCII counterparts, ligatures are expanded, and inclusive suffixes are
canonicalized to use a middle dot:

	auteur-rice-x-s  →  auteur·rices
	auteur.ricex.s   →  auteur·rices
	(ré)élire        →  réélire
	«bonjour»        →  "bonjour"

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

Copyright © 2025 Norbert Pillmayer <norbert@pillmayer.com>
*/
package rewrite

import (
	"github.com/npillmayer/frnorm/suffix"
)

// BufferSize returns the capacity of the output buffer for an input of n
// code-points. Ligature expansion may produce two code-points for one.
func BufferSize(n int) int {
	return 2*n + 2
}

// Rewrite returns a new slice with typographic variants of input unified.
// input is not modified.
func Rewrite(input []rune) []rune {
	out := make([]rune, 0, BufferSize(len(input)))
	for i := 0; i < len(input); i++ {
		c := input[i]
		switch c {
		case '(', ')', '[', ']', '{', '}': // (re)présenter
			// drop
		case '‘', '’', '`': // jusqu’ici
			out = append(out, '\'')
		case '«', '»', '“', '”':
			out = append(out, '"')
		case '—', '–':
			out = append(out, '-')
		case '-', '.', suffix.MiddleDot: // auteur·rices
			n := suffix.Detect(input, i, c)
			if n == 0 {
				out = append(out, c)
				continue
			}
			out = append(out, suffix.MiddleDot)
			out = appendSuffixLetters(out, input[i:i+n])
			i += n - 1
		case 'œ':
			out = append(out, 'o', 'e')
		case 'æ':
			out = append(out, 'a', 'e')
		default:
			out = append(out, c)
		}
	}
	return out
}

// appendSuffixLetters copies the letters of a matched suffix, leaving out
// separators and the non-binary marker.
func appendSuffixLetters(out []rune, span []rune) []rune {
	for _, r := range span {
		if suffix.IsSeparator(r) || r == 'x' {
			continue
		}
		out = append(out, r)
	}
	return out
}
