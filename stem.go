package polarity

import (
	"regexp"
	"strings"

	"github.com/kljensen/snowball"
)

// snowballLanguages maps the languages with a snowball algorithm available.
// Languages absent here get no stemmer, which disables stemmed fallback.
var snowballLanguages = map[Language]string{
	English: "english",
	Spanish: "spanish",
	French:  "french",
}

var nonAlphanumeric = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// SnowballStemmer stems words with the snowball algorithm for one language.
type SnowballStemmer struct {
	language string
}

// NewSnowballStemmer returns a stemmer for lang, or nil when no snowball
// algorithm exists for it.
func NewSnowballStemmer(lang Language) *SnowballStemmer {
	name, ok := snowballLanguages[lang]
	if !ok {
		return nil
	}
	return &SnowballStemmer{language: name}
}

// TokenizeAndStem splits the input on non-alphanumeric boundaries and stems
// each piece. Inputs that split into several pieces (contractions, phrases)
// therefore return several stems, which the analyzer treats as ambiguous.
// A word snowball cannot stem passes through unchanged.
func (s *SnowballStemmer) TokenizeAndStem(word string) []string {
	pieces := strings.Fields(nonAlphanumeric.ReplaceAllString(strings.ToLower(word), " "))

	stems := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		stem, err := snowball.Stem(piece, s.language, true)
		if err != nil || stem == "" {
			stem = piece
		}
		stems = append(stems, stem)
	}
	return stems
}
