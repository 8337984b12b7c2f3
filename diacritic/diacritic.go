/*
Package diacritic removes French diacritics from vowels.

Folding is used to recognize forms which differ from a known word only by
missing or misplaced accents, a common trait of informal writing.
Only the accented vowels of French orthography are folded; 'ç', 'œ' and
letters of other alphabets pass through unchanged.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

Copyright © 2025 Norbert Pillmayer <norbert@pillmayer.com>
*/
package diacritic

var bareVowels = map[rune]rune{
	'é': 'e', 'è': 'e', 'ê': 'e', 'ë': 'e',
	'â': 'a', 'à': 'a', 'ä': 'a',
	'î': 'i', 'ï': 'i',
	'ô': 'o', 'ö': 'o',
	'ù': 'u', 'û': 'u', 'ü': 'u',
}

// FoldRune returns the bare vowel for an accented French vowel, or r
// unchanged.
func FoldRune(r rune) rune {
	if b, ok := bareVowels[r]; ok {
		return b
	}
	return r
}

// Fold returns a new slice with all accented French vowels of input replaced
// by their bare form. input is not modified.
func Fold(input []rune) []rune {
	out := make([]rune, len(input))
	for i, r := range input {
		out[i] = FoldRune(r)
	}
	return out
}
