// Package data embeds the sentiment lexicon tables shipped with the library.
//
// Each table is tab-separated "word<TAB>weight" with '#' comment lines.
// AFINN tables carry integer weights in [-5, 5]; senticon and pattern tables
// carry fractional weights in [-1, 1].
package data

import _ "embed"

//go:embed afinn_en.tsv
var AFINNEnglish string

//go:embed afinn_es.tsv
var AFINNSpanish string

//go:embed senticon_en.tsv
var SenticonEnglish string

//go:embed senticon_es.tsv
var SenticonSpanish string

//go:embed pattern_fr.tsv
var PatternFrench string

//go:embed pattern_it.tsv
var PatternItalian string

//go:embed pattern_nl.tsv
var PatternDutch string
