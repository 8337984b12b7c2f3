/*
Package suffix recognizes French inclusive-writing suffixes.

Inclusive writing marks both grammatical genders (and optionally a
non-binary form) on a single word, joining the stem and the endings with a
separator:

	auteur·rice·x·s
	auteur-rice-x-s
	auteur.ricex.s

Package suffix holds the closed grammar of recognized endings as a small
directed acyclic graph of patterns. Every feminine ending may be followed
by a plural marker "s" or by a non-binary marker "x", and the non-binary
marker may in turn be followed by the plural marker:

	feminine ─┬─▶ s
	          └─▶ x ──▶ s

Matching is done by recursion over this graph, with a lookahead at word
boundaries: an ending is rejected if it is immediately followed by more
letters which are not part of a continuation ("rice" in "ricette").

The catalog is built once at package initialization and never modified
afterwards. All functions of this package are safe for concurrent use.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2025 Norbert Pillmayer <norbert@pillmayer.com>
*/
package suffix

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'frnorm.suffix'.
func tracer() tracing.Trace {
	return tracing.Select("frnorm.suffix")
}
