package polarity

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/seanmowz/polarity/data"
)

// lexiconSources maps each supported (language, type) pair to its embedded
// table. Pairs absent from this table are simply unsupported; the analyzer
// degrades rather than erroring.
var lexiconSources = map[Language]map[LexiconType]string{
	English: {
		AFINN:    data.AFINNEnglish,
		Senticon: data.SenticonEnglish,
	},
	Spanish: {
		AFINN:    data.AFINNSpanish,
		Senticon: data.SenticonSpanish,
	},
	French:  {Pattern: data.PatternFrench},
	Italian: {Pattern: data.PatternItalian},
	Dutch:   {Pattern: data.PatternDutch},
}

// defaultTypes resolves the lexicon type used when the caller does not pick
// one. Languages shipping only a pattern table default to Pattern; everything
// else defaults to AFINN.
var defaultTypes = map[Language]LexiconType{
	English: AFINN,
	Spanish: AFINN,
	French:  Pattern,
	Italian: Pattern,
	Dutch:   Pattern,
}

func defaultType(lang Language) LexiconType {
	if typ, ok := defaultTypes[lang]; ok {
		return typ
	}
	return AFINN
}

// negators lists the negation words per language. Seeing one flips the sign
// of subsequent contributions until punctuation clears it.
var negators = map[Language][]string{
	English: {"not", "no", "never", "neither", "nor", "none", "nothing", "nobody", "nowhere", "cannot", "n't"},
	Spanish: {"no", "nunca", "jamás", "tampoco", "nadie", "nada", "ni", "sin"},
	French:  {"ne", "n'", "pas", "non", "jamais", "rien", "personne", "aucun", "ni"},
	Italian: {"non", "mai", "niente", "nessuno", "né", "senza"},
	Dutch:   {"niet", "geen", "nooit", "niets", "niemand", "nergens"},
}

// negationPunctuation lists the tokens that reset negation state. The set is
// shared across languages.
var negationPunctuation = []string{".", ",", ";", ":", "!", "?"}

// loadLexicon returns a fresh copy of the embedded table for the pair, or
// ok=false when the pair is unsupported. Callers own the returned map and may
// overlay overrides onto it.
func loadLexicon(lang Language, typ LexiconType) (map[string]float64, bool) {
	byType, ok := lexiconSources[lang]
	if !ok {
		return nil, false
	}
	raw, ok := byType[typ]
	if !ok {
		return nil, false
	}

	lexicon := parseLexicon(raw)
	if len(lexicon) == 0 {
		return nil, false
	}

	recordLoaded(lang, typ)
	return lexicon, true
}

// parseLexicon parses tab-separated "word<TAB>weight" lines, skipping blanks,
// comments, and malformed entries.
func parseLexicon(raw string) map[string]float64 {
	lexicon := make(map[string]float64, 128)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			continue
		}
		weight, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			continue
		}
		lexicon[strings.ToLower(strings.TrimSpace(parts[0]))] = weight
	}
	return lexicon
}

// loadNegations returns the negator and negation-terminating punctuation sets
// for a language. Unknown languages get empty sets, never an error.
func loadNegations(lang Language) (map[string]struct{}, map[string]struct{}) {
	negSet := make(map[string]struct{})
	for _, word := range negators[lang] {
		negSet[word] = struct{}{}
	}

	punctSet := make(map[string]struct{}, len(negationPunctuation))
	if _, supported := negators[lang]; supported {
		for _, tok := range negationPunctuation {
			punctSet[tok] = struct{}{}
		}
	}
	return negSet, punctSet
}

// stemLexicon derives the stem-keyed fallback table. A lexicon word is
// included only when stemming it yields exactly one stem token; ambiguous
// multi-token stemmings are dropped so they can never mis-aggregate. Words
// are visited in sorted order so two words sharing a stem always resolve to
// the same weight.
func stemLexicon(lexicon map[string]float64, stemmer Stemmer) map[string]float64 {
	words := make([]string, 0, len(lexicon))
	for word := range lexicon {
		words = append(words, word)
	}
	sort.Strings(words)

	stemmed := make(map[string]float64, len(lexicon))
	for _, word := range words {
		stems := stemmer.TokenizeAndStem(word)
		if len(stems) != 1 {
			continue
		}
		stemmed[stems[0]] = lexicon[word]
	}
	return stemmed
}

// overrideFile is the on-disk shape shared by the JSON and YAML override
// loaders: a single "words" mapping of word to weight.
type overrideFile struct {
	Words map[string]float64 `json:"words" yaml:"words"`
}

// LoadOverridesJSON reads an override dictionary from a JSON file of the form
//
//	{"words": {"decent": 2, "meh": -1}}
//
// Keys are lowercased. The result is meant for WithOverrides.
func LoadOverridesJSON(path string) (map[string]float64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading override file: %w", err)
	}

	var file overrideFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parsing override JSON: %w", err)
	}
	return lowercaseKeys(file.Words), nil
}

// LoadOverridesYAML reads an override dictionary from a YAML file of the form
//
//	words:
//	  decent: 2
//	  meh: -1
//
// Keys are lowercased. The result is meant for WithOverrides.
func LoadOverridesYAML(path string) (map[string]float64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading override file: %w", err)
	}

	var file overrideFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parsing override YAML: %w", err)
	}
	return lowercaseKeys(file.Words), nil
}

func lowercaseKeys(words map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(words))
	for word, weight := range words {
		out[strings.ToLower(word)] = weight
	}
	return out
}

// Loaded-table registry. Purely diagnostic: it records which embedded tables
// have been materialized in this process and is never consulted by scoring.
var (
	loadedMu     sync.Mutex
	loadedTables = make(map[string]struct{})
)

func recordLoaded(lang Language, typ LexiconType) {
	loadedMu.Lock()
	defer loadedMu.Unlock()
	loadedTables[fmt.Sprintf("%s/%s", lang, typ)] = struct{}{}
}

// LoadedTables reports the "language/type" identifiers of every lexicon table
// loaded so far, sorted. Intended for diagnostics and metrics only.
func LoadedTables() []string {
	loadedMu.Lock()
	defer loadedMu.Unlock()

	names := make([]string, 0, len(loadedTables))
	for name := range loadedTables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
