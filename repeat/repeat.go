/*
Package repeat collapses runs of repeated characters.

Informal writing tends to repeat letters for emphasis ("ouiiiiii",
"nooon"). Reduce replaces every run of at least k identical code-points by a
single instance of that code-point:

	Reduce("ouiiiiii", 3)  →  "oui"
	Reduce("noon", 3)      →  "noon"
	Reduce("noon", 2)      →  "non"

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

Copyright © 2025 Norbert Pillmayer <norbert@pillmayer.com>
*/
package repeat

// Minimum run lengths used by the normalization pipelines.
const (
	Triples = 3 // used for general normalization
	Doubles = 2 // used after diacritics have been folded
)

// Reduce returns a new slice where every maximal run of k or more identical
// code-points of input is replaced by a single code-point. Shorter runs are
// copied unchanged. Values of k below 2 are treated as 2.
//
// input is not modified.
func Reduce(input []rune, k int) []rune {
	if k < Doubles {
		k = Doubles
	}
	out := make([]rune, 0, len(input))
	for r := 0; r < len(input); {
		c := input[r]
		w := r + 1 // w is the end of the run starting at r
		for w < len(input) && input[w] == c {
			w++
		}
		if w-r >= k {
			out = append(out, c)
		} else {
			out = append(out, input[r:w]...)
		}
		r = w
	}
	return out
}
