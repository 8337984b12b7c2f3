/*
Package frnorm normalizes French tokens prior to linguistic processing.

Description

Text found in the wild, especially informal writing, shows a lot of variation
which is irrelevant for tagging or lemmatization, but which inflates the
vocabulary a tagger has to deal with:

   « ouiiiii »  vs.  "oui"
   auteur-rice-s  vs.  auteur.rices  vs.  auteur·rices
   œuvre  vs.  oeuvre
   (ré)élire  vs.  réélire

Package frnorm collapses typographic variation (quotes, long dashes,
brackets, ligatures), canonicalizes French inclusive-writing suffixes to
use a middle dot as the separator, and dampens orthographic noise from
repeated letters and accent variants.

Inclusive writing is a French convention to mark both grammatical genders,
and optionally a non-binary form, on a single word. The suffixes form a
closed grammar of feminine endings, each optionally followed by a
non-binary marker "x" and/or a plural marker "s". Recognition of this
grammar is implemented in sub-package suffix.

Contents

Two entry points are provided:

   Normalize(token)    rewrites typographic variants and inclusive suffixes,
                       then collapses runs of 3 or more repeated letters.
   Dediacritic(token)  folds accented vowels to bare vowels, then collapses
                       runs of 2 or more repeated letters.

Both are pure functions: every call works on its own buffers and there is
no shared mutable state, so clients may call them concurrently. Input is
expected to be lower-cased by the caller.

The algorithms themselves live in sub-packages rewrite, repeat, diacritic and
suffix. Sub-package lexicon builds a table-driven token normalizer on top of
the two entry points, consulting a word list before falling back to the
rule-based normalization.

BSD License

Copyright (c) 2025, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package frnorm

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'frnorm'.
func tracer() tracing.Trace {
	return tracing.Select("frnorm")
}
