package polarity

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bbalet/stopwords"
	"gopkg.in/neurosnap/sentences.v1"
	punktdata "gopkg.in/neurosnap/sentences.v1/data"
)

// WordTokenizer splits text into word and punctuation tokens. Sentence
// punctuation is emitted as standalone tokens so negation-terminating
// punctuation stays visible to the analyzer.
type WordTokenizer struct {
	lang       Language
	sanitizer  *strings.Replacer
	splitCases []string
	suffixes   []string
	prefixes   []string
	segmenter  *sentences.DefaultSentenceTokenizer
}

var wordSanitizer = strings.NewReplacer(
	"“", `"`,
	"”", `"`,
	"‘", "'",
	"’", "'",
	"&rsquo;", "'")

// contractions holds the per-language split cases. English entries are
// word-final contractions; the apostrophe-terminated French and Italian
// entries are word-initial elisions and are peeled off the front.
var contractions = map[Language][]string{
	English: {"'ll", "'s", "'re", "'m", "'ve", "'d", "n't"},
	French:  {"l'", "d'", "n'", "m'", "t'", "s'", "c'", "qu'", "j'"},
	Italian: {"l'", "un'", "dell'", "all'"},
}

// punktAssets maps each language to its punkt training data shipped with the
// sentences package.
var punktAssets = map[Language]string{
	English: "data/english.json",
	Spanish: "data/spanish.json",
	French:  "data/french.json",
	Italian: "data/italian.json",
	Dutch:   "data/dutch.json",
}

var tokenSuffixes = []string{",", ")", `"`, "]", "!", ";", ".", "?", ":", "'"}
var tokenPrefixes = []string{"$", "(", `"`, "["}

// NewWordTokenizer builds the default tokenizer for a language. Text in the
// supported languages is segmented into sentences with a punkt tokenizer
// before word splitting; languages without punkt training data are split
// directly.
func NewWordTokenizer(lang Language) *WordTokenizer {
	return &WordTokenizer{
		lang:       lang,
		sanitizer:  wordSanitizer,
		splitCases: contractions[lang],
		suffixes:   tokenSuffixes,
		prefixes:   tokenPrefixes,
		segmenter:  newSegmenter(lang),
	}
}

// newSegmenter loads the punkt sentence tokenizer for lang, or nil when no
// training data ships for it.
func newSegmenter(lang Language) *sentences.DefaultSentenceTokenizer {
	asset, ok := punktAssets[lang]
	if !ok {
		return nil
	}
	raw, err := punktdata.Asset(asset)
	if err != nil {
		return nil
	}
	training, err := sentences.LoadTraining(raw)
	if err != nil {
		return nil
	}
	return sentences.NewSentenceTokenizer(training)
}

// Tokenize splits text into an ordered token sequence.
func (t *WordTokenizer) Tokenize(text string) []string {
	var tokens []string
	for _, segment := range t.segments(text) {
		for _, span := range strings.Fields(t.sanitizer.Replace(segment)) {
			tokens = append(tokens, t.split(span)...)
		}
	}
	return tokens
}

// segments breaks text into sentence spans when a segmenter is bound,
// otherwise returns the text whole.
func (t *WordTokenizer) segments(text string) []string {
	if t.segmenter == nil {
		return []string{text}
	}
	parsed := t.segmenter.Tokenize(text)
	segments := make([]string, 0, len(parsed))
	for _, sentence := range parsed {
		segments = append(segments, sentence.Text)
	}
	if len(segments) == 0 {
		return []string{text}
	}
	return segments
}

// split peels affixes, elisions, and contraction heads off a
// whitespace-delimited span. For example "good," becomes [good ,], "don't"
// becomes [do n't], and "j'aime" becomes [j' aime].
func (t *WordTokenizer) split(span string) []string {
	var tokens, suffs []string

	last := 0
	for span != "" && utf8.RuneCountInString(span) != last {
		last = utf8.RuneCountInString(span)
		lower := strings.ToLower(span)
		if hasAnyPrefix(span, t.prefixes) {
			tokens = appendToken(tokens, string(span[0]))
			span = span[1:]
		} else if elision := hasElisionPrefix(lower, t.splitCases); elision != "" {
			tokens = appendToken(tokens, span[:len(elision)])
			span = span[len(elision):]
		} else if idx := hasAnyIndex(lower, t.splitCases); idx > -1 {
			tokens = appendToken(tokens, span[:idx])
			span = span[idx:]
		} else if hasAnySuffix(span, t.suffixes) {
			suffs = append([]string{string(span[len(span)-1])}, suffs...)
			span = span[:len(span)-1]
		} else {
			tokens = appendToken(tokens, span)
			break
		}
	}

	return append(tokens, suffs...)
}

func appendToken(tokens []string, tok string) []string {
	if strings.TrimSpace(tok) != "" {
		tokens = append(tokens, tok)
	}
	return tokens
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

func hasAnySuffix(s string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

// hasElisionPrefix returns the apostrophe-terminated split case that starts
// the span and leaves a non-empty tail, or "".
func hasElisionPrefix(s string, cases []string) string {
	for _, c := range cases {
		if strings.HasSuffix(c, "'") && len(s) > len(c) && strings.HasPrefix(s, c) {
			return c
		}
	}
	return ""
}

// hasAnyIndex returns the index of the first matching substring that leaves a
// non-empty head, or -1.
func hasAnyIndex(s string, cases []string) int {
	for _, c := range cases {
		idx := strings.Index(s, c)
		if idx > 0 {
			return idx
		}
	}
	return -1
}

// isStopword reports whether word is a stop word for lang, using the one
// check the stopwords package exposes: a stop word cleans to nothing.
func isStopword(word string, lang Language) bool {
	if !hasLetter(word) {
		return false
	}
	cleaned := strings.TrimSpace(stopwords.CleanString(word, string(lang), false))
	return cleaned == ""
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
