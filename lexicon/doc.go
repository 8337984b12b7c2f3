/*
Package lexicon implements a table-driven normalizer for French tokens.

A Normalizer consults a word list before it falls back to the rule-based
normalization of package frnorm. For every token it tries, in this order:

  1. the token as-is,
  2. the lower-cased token,
  3. the token normalized by frnorm.Normalize,
  4. for compounds ("arc-en-ciel"), every part on its own,
  5. the token with diacritics removed (frnorm.Dediacritic), looked up in a
     second table keyed by the folded forms of all known words.

The first hit determines the norm. If nothing matches, the rule-based
normalization is the norm. Every form seen is cached, so a token has to
go through the cascade only once.

Typical Usage

	n := lexicon.New()
	if err := n.LoadWords(wordlist); err != nil {
	    …
	}
	norm, err := n.Normalize("Ptiiiit")

Tables may be saved to and loaded from disk with Save and Load.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2025 Norbert Pillmayer <norbert@pillmayer.com>
*/
package lexicon

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'frnorm.lexicon'.
func tracer() tracing.Trace {
	return tracing.Select("frnorm.lexicon")
}
