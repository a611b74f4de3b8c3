// Package polarity scores the sentiment of utterances against per-language
// polarity lexicons, with negation toggling and stemmed-lookup fallback.
package polarity

import (
	"strings"

	"gonum.org/v1/gonum/floats"
)

// An Option adjusts analyzer construction.
type Option func(*analyzerOpts)

type analyzerOpts struct {
	typ             LexiconType
	overrides       map[string]float64
	stemming        bool
	tokenizer       Tokenizer
	stemmer         Stemmer
	filterStopwords bool
}

// WithType selects the lexicon type instead of the language default.
func WithType(typ LexiconType) Option {
	return func(opts *analyzerOpts) {
		opts.typ = typ
	}
}

// WithOverrides merges a caller-supplied dictionary into the lexicon at
// construction time. Override entries win on key collision, and the merge
// happens before stem derivation so stemmed lookups see the overrides.
func WithOverrides(overrides map[string]float64) Option {
	return func(opts *analyzerOpts) {
		opts.overrides = overrides
	}
}

// WithStemming enables (the default) or disables stemmed-lookup fallback.
func WithStemming(enabled bool) Option {
	return func(opts *analyzerOpts) {
		opts.stemming = enabled
	}
}

// WithTokenizer replaces the default tokenizer.
func WithTokenizer(tokenizer Tokenizer) Option {
	return func(opts *analyzerOpts) {
		opts.tokenizer = tokenizer
	}
}

// WithStemmer replaces the default snowball stemmer.
func WithStemmer(stemmer Stemmer) Option {
	return func(opts *analyzerOpts) {
		opts.stemmer = stemmer
	}
}

// WithStopwordFilter drops stop-word tokens before scoring. Negators and
// punctuation always survive the filter. Off by default because it changes
// what NumWords counts.
func WithStopwordFilter(enabled bool) Option {
	return func(opts *analyzerOpts) {
		opts.filterStopwords = enabled
	}
}

// An Analyzer scores utterances for one (language, lexicon type) pair. All
// tables are immutable once the constructor returns, so a single Analyzer is
// safe for concurrent scoring calls.
type Analyzer struct {
	lang            Language
	typ             LexiconType
	vocabulary      map[string]float64
	stemmed         map[string]float64
	negators        map[string]struct{}
	negationPunct   map[string]struct{}
	tokenizer       Tokenizer
	stemmer         Stemmer
	filterStopwords bool
}

// NewAnalyzer configures an analyzer for lang. A missing lexicon for the
// resolved (language, type) pair is not an error: the analyzer is still
// returned and scoring takes the degraded path, letting callers check
// support without error handling.
func NewAnalyzer(lang Language, options ...Option) *Analyzer {
	opts := analyzerOpts{stemming: true}
	for _, apply := range options {
		apply(&opts)
	}

	typ := opts.typ
	if typ == "" {
		typ = defaultType(lang)
	}

	a := &Analyzer{
		lang:            lang,
		typ:             typ,
		tokenizer:       opts.tokenizer,
		filterStopwords: opts.filterStopwords,
	}
	if a.tokenizer == nil {
		a.tokenizer = NewWordTokenizer(lang)
	}

	a.negators, a.negationPunct = loadNegations(lang)

	vocabulary, ok := loadLexicon(lang, typ)
	if !ok {
		return a
	}
	for word, weight := range opts.overrides {
		vocabulary[strings.ToLower(word)] = weight
	}
	a.vocabulary = vocabulary

	if opts.stemming {
		a.stemmer = opts.stemmer
		if a.stemmer == nil {
			if stemmer := NewSnowballStemmer(lang); stemmer != nil {
				a.stemmer = stemmer
			}
		}
	}
	if a.stemmer != nil {
		a.stemmed = stemLexicon(a.vocabulary, a.stemmer)
	}

	return a
}

// Language returns the language the analyzer was configured with.
func (a *Analyzer) Language() Language { return a.lang }

// Type returns the lexicon type the analyzer resolved to.
func (a *Analyzer) Type() LexiconType { return a.typ }

// Supported reports whether a lexicon was loaded for the analyzer's
// (language, type) pair. When false, scoring returns degraded results.
func (a *Analyzer) Supported() bool { return a.vocabulary != nil }

// Score tokenizes text with the bound tokenizer and scores the result.
func (a *Analyzer) Score(text string) Result {
	return a.ScoreTokens(a.tokenizer.Tokenize(text))
}

// ScoreTokens scores an ordered token sequence in a single pass.
//
// Each token is lowercased and checked, in order, against the negator set
// (flips the sign of later contributions), the negation-terminating
// punctuation set (resets the sign), the lexicon, and finally the stemmed
// lexicon. Negation persists until punctuation clears it or the utterance
// ends.
func (a *Analyzer) ScoreTokens(tokens []string) Result {
	if a.filterStopwords {
		tokens = a.filterTokens(tokens)
	}

	result := Result{
		Language: a.lang,
		Type:     a.typ,
		NumWords: len(tokens),
	}
	if a.vocabulary == nil {
		return result
	}
	result.Scored = true

	multiplier := 1.0
	var contributions []float64
	for _, token := range tokens {
		word := strings.ToLower(token)

		if _, ok := a.negators[word]; ok {
			multiplier = -1
			result.NumHits++
			continue
		}
		if _, ok := a.negationPunct[word]; ok {
			multiplier = 1
			continue
		}

		weight, ok := a.vocabulary[word]
		if !ok {
			weight, ok = a.stemmedWeight(word)
		}
		if !ok {
			continue
		}

		contribution := multiplier * weight
		contributions = append(contributions, contribution)
		result.NumHits++
		result.WordScores = append(result.WordScores, WordScore{Word: word, Score: contribution})
	}

	result.Score = floats.Sum(contributions)
	if result.NumWords > 0 {
		result.Comparative = result.Score / float64(result.NumWords)
	}
	result.Range = Normalize(result.Score)

	return result
}

// stemmedWeight looks a word up through the stemmed fallback table. The
// lookup only applies when stemming the word yields exactly one stem.
func (a *Analyzer) stemmedWeight(word string) (float64, bool) {
	if a.stemmer == nil || a.stemmed == nil {
		return 0, false
	}
	stems := a.stemmer.TokenizeAndStem(word)
	if len(stems) != 1 {
		return 0, false
	}
	weight, ok := a.stemmed[stems[0]]
	return weight, ok
}

// filterTokens drops stop words while keeping negators and punctuation, so
// the negation machinery still sees its triggers.
func (a *Analyzer) filterTokens(tokens []string) []string {
	kept := make([]string, 0, len(tokens))
	for _, token := range tokens {
		word := strings.ToLower(token)
		if _, ok := a.negators[word]; ok {
			kept = append(kept, token)
			continue
		}
		if _, ok := a.negationPunct[word]; ok {
			kept = append(kept, token)
			continue
		}
		if isStopword(word, a.lang) {
			continue
		}
		kept = append(kept, token)
	}
	return kept
}
