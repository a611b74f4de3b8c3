package polarity

// Language identifies the language a lexicon, tokenizer, or stemmer is bound to.
type Language string

const (
	English Language = "en"
	Spanish Language = "es"
	French  Language = "fr"
	Italian Language = "it"
	Dutch   Language = "nl"
)

// LexiconType identifies which family of polarity tables an analyzer uses.
type LexiconType string

const (
	AFINN    LexiconType = "afinn"
	Senticon LexiconType = "senticon"
	Pattern  LexiconType = "pattern"
)

// A Tokenizer splits raw text into an ordered sequence of word and
// punctuation tokens. Implementations must be deterministic.
type Tokenizer interface {
	Tokenize(text string) []string
}

// A Stemmer reduces a word to its stem form(s). The analyzer only uses the
// result when it contains exactly one stem; multi-stem output marks the
// input as ambiguous and is discarded.
type Stemmer interface {
	TokenizeAndStem(word string) []string
}

// A WordScore records one token's contribution to the aggregate score.
// Word is the lowercased token; Score already includes the negation
// multiplier.
type WordScore struct {
	Word  string
	Score float64
}

// A Result holds the outcome of scoring one utterance.
//
// Scored distinguishes the two result variants: when false, no lexicon was
// available for the analyzer's (language, type) pair and only NumWords is
// meaningful; Score, Comparative, and Range are zero by construction.
type Result struct {
	Score       float64     // sum of all word contributions
	Comparative float64     // Score / NumWords, 0 for empty input
	Range       float64     // Normalize(Score), in [-1, 1]; meaningful only when Scored
	NumWords    int         // total input tokens, negators and punctuation included
	NumHits     int         // tokens that matched a negator or a lexicon/stem entry
	Language    Language    // language the analyzer was configured with
	Type        LexiconType // lexicon type the analyzer resolved to
	WordScores  []WordScore // per-token contributions, in occurrence order
	Scored      bool        // false when the lexicon could not be loaded
}
