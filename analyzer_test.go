package polarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapStemmer is a deterministic test stemmer: unknown words stem to
// themselves, known words to their configured stems.
type mapStemmer struct {
	stems map[string][]string
}

func (m mapStemmer) TokenizeAndStem(word string) []string {
	if stems, ok := m.stems[word]; ok {
		return stems
	}
	return []string{word}
}

func TestScoreTokensNegationToggle(t *testing.T) {
	a := NewAnalyzer(English, WithOverrides(map[string]float64{"good": 3}))
	require.True(t, a.Supported())

	result := a.ScoreTokens([]string{"not", "good"})

	assert.InDelta(t, -3.0, result.Score, 1e-9)
	assert.Equal(t, 2, result.NumHits)
	assert.Equal(t, 2, result.NumWords)
	require.Len(t, result.WordScores, 1)
	assert.Equal(t, WordScore{Word: "good", Score: -3}, result.WordScores[0])
}

func TestScoreTokensNegationReset(t *testing.T) {
	a := NewAnalyzer(English, WithOverrides(map[string]float64{"good": 3, "bad": -2}))

	// "," clears negation, so "bad" contributes its own weight.
	result := a.ScoreTokens([]string{"not", "good", ",", "bad"})

	assert.InDelta(t, -5.0, result.Score, 1e-9)
	assert.Equal(t, 3, result.NumHits)
	assert.Equal(t, 4, result.NumWords)
	require.Len(t, result.WordScores, 2)
	assert.InDelta(t, -3.0, result.WordScores[0].Score, 1e-9)
	assert.InDelta(t, -2.0, result.WordScores[1].Score, 1e-9)
}

func TestScoreTokensNegationPersists(t *testing.T) {
	a := NewAnalyzer(English, WithOverrides(map[string]float64{"good": 3, "bad": -2}))

	// No punctuation between the negator and "bad": both stay negated.
	result := a.ScoreTokens([]string{"not", "good", "bad"})

	assert.InDelta(t, -3.0+2.0, result.Score, 1e-9)
}

func TestScoreTokensCaseInsensitive(t *testing.T) {
	a := NewAnalyzer(English, WithOverrides(map[string]float64{"good": 3}))

	upper := a.ScoreTokens([]string{"Good"})
	lower := a.ScoreTokens([]string{"good"})

	assert.Equal(t, lower.Score, upper.Score)
	require.Len(t, upper.WordScores, 1)
	assert.Equal(t, "good", upper.WordScores[0].Word, "word scores record the lowercased token")
}

func TestScoreTokensEmptyInput(t *testing.T) {
	a := NewAnalyzer(English)

	result := a.ScoreTokens(nil)

	assert.True(t, result.Scored)
	assert.Zero(t, result.Score)
	assert.Zero(t, result.NumWords)
	assert.Zero(t, result.NumHits)
	assert.Zero(t, result.Comparative, "comparative must be 0 for empty input, never NaN")
	assert.Empty(t, result.WordScores)
}

func TestScoreTokensUnsupportedLanguage(t *testing.T) {
	a := NewAnalyzer(Language("de"))
	require.False(t, a.Supported())

	result := a.ScoreTokens([]string{"das", "ist", "gut"})

	assert.False(t, result.Scored)
	assert.Zero(t, result.Score)
	assert.Zero(t, result.NumHits)
	assert.Zero(t, result.Range)
	assert.Equal(t, 3, result.NumWords)
}

func TestOverrideReplacesBaseWeight(t *testing.T) {
	base := NewAnalyzer(English)
	overridden := NewAnalyzer(English, WithOverrides(map[string]float64{"good": -1}))

	require.InDelta(t, 3.0, base.ScoreTokens([]string{"good"}).Score, 1e-9)
	assert.InDelta(t, -1.0, overridden.ScoreTokens([]string{"good"}).Score, 1e-9)
}

func TestOverrideKeysLowercased(t *testing.T) {
	a := NewAnalyzer(English, WithOverrides(map[string]float64{"Stellar": 4}))

	assert.InDelta(t, 4.0, a.ScoreTokens([]string{"stellar"}).Score, 1e-9)
}

func TestStemmedFallback(t *testing.T) {
	stemmer := mapStemmer{stems: map[string][]string{
		"glorious":   {"glori"},
		"gloriously": {"glori"},
	}}
	a := NewAnalyzer(English,
		WithStemmer(stemmer),
		WithOverrides(map[string]float64{"glorious": 4}))

	// "gloriously" misses the lexicon but shares a stem with "glorious",
	// and overrides were merged before stem derivation.
	result := a.ScoreTokens([]string{"gloriously"})

	assert.InDelta(t, 4.0, result.Score, 1e-9)
	assert.Equal(t, 1, result.NumHits)
}

func TestStemmedFallbackNegated(t *testing.T) {
	stemmer := mapStemmer{stems: map[string][]string{
		"glorious":   {"glori"},
		"gloriously": {"glori"},
	}}
	a := NewAnalyzer(English,
		WithStemmer(stemmer),
		WithOverrides(map[string]float64{"glorious": 4}))

	result := a.ScoreTokens([]string{"not", "gloriously"})

	assert.InDelta(t, -4.0, result.Score, 1e-9)
}

func TestAmbiguousStemIgnored(t *testing.T) {
	stemmer := mapStemmer{stems: map[string][]string{
		"worktrip": {"work", "trip"},
	}}
	a := NewAnalyzer(English, WithStemmer(stemmer))

	result := a.ScoreTokens([]string{"worktrip"})

	assert.Zero(t, result.Score)
	assert.Zero(t, result.NumHits)
}

func TestSnowballFallbackInflection(t *testing.T) {
	a := NewAnalyzer(English)

	// "loved" is not a lexicon entry; it reaches "love" through the stem table.
	result := a.ScoreTokens([]string{"loved"})

	assert.InDelta(t, 3.0, result.Score, 1e-9)
	assert.Equal(t, 1, result.NumHits)
}

func TestStemmingDisabled(t *testing.T) {
	a := NewAnalyzer(English, WithStemming(false))

	result := a.ScoreTokens([]string{"loved"})

	assert.Zero(t, result.Score)
	assert.Zero(t, result.NumHits)
}

func TestWithTypeSelectsLexicon(t *testing.T) {
	a := NewAnalyzer(English, WithType(Senticon))
	require.True(t, a.Supported())
	assert.Equal(t, Senticon, a.Type())

	result := a.ScoreTokens([]string{"good"})
	assert.InDelta(t, 0.625, result.Score, 1e-9)
}

func TestDefaultTypePolicy(t *testing.T) {
	tests := []struct {
		lang Language
		want LexiconType
	}{
		{English, AFINN},
		{Spanish, AFINN},
		{French, Pattern},
		{Italian, Pattern},
		{Dutch, Pattern},
		{Language("de"), AFINN},
	}
	for _, tt := range tests {
		if got := NewAnalyzer(tt.lang).Type(); got != tt.want {
			t.Errorf("NewAnalyzer(%q).Type() = %q, want %q", tt.lang, got, tt.want)
		}
	}
}

func TestScoreTokensInvariants(t *testing.T) {
	a := NewAnalyzer(English)

	inputs := [][]string{
		nil,
		{"good"},
		{"not", "good", ",", "bad", ".", "terrible", "horse"},
		{"the", "quick", "brown", "fox"},
		{"wonderful", "wonderful", "wonderful", "wonderful", "wonderful", "wonderful"},
	}
	for _, tokens := range inputs {
		result := a.ScoreTokens(tokens)

		assert.LessOrEqual(t, result.NumHits, result.NumWords, "tokens: %v", tokens)
		assert.GreaterOrEqual(t, result.Range, -1.0, "tokens: %v", tokens)
		assert.LessOrEqual(t, result.Range, 1.0, "tokens: %v", tokens)
		assert.Equal(t, len(tokens), result.NumWords, "tokens: %v", tokens)
		if result.NumWords > 0 {
			assert.InDelta(t, result.Score/float64(result.NumWords), result.Comparative, 1e-9)
		}
	}
}

func TestScoreText(t *testing.T) {
	a := NewAnalyzer(English)

	result := a.Score("This is not good, this is bad.")

	// not → toggle, good → -3, "," → reset, bad → -3.
	assert.InDelta(t, -6.0, result.Score, 1e-9)
	assert.Equal(t, 3, result.NumHits)
	assert.Negative(t, result.Range)
}

func TestScoreTextSpanish(t *testing.T) {
	a := NewAnalyzer(Spanish)
	require.True(t, a.Supported())

	positive := a.Score("qué día tan bueno")
	negative := a.Score("no fue bueno")

	assert.Positive(t, positive.Score)
	assert.Negative(t, negative.Score)
}

func TestScoreTextFrenchPattern(t *testing.T) {
	a := NewAnalyzer(French)
	require.True(t, a.Supported())
	require.Equal(t, Pattern, a.Type())

	result := a.Score("le film est excellent")
	assert.InDelta(t, 0.9, result.Score, 1e-9)
}

func TestScoreTextFrenchElision(t *testing.T) {
	a := NewAnalyzer(French, WithOverrides(map[string]float64{"aime": 0.8}))

	// "j'aime" splits into [j' aime], so "aime" reaches the lexicon.
	result := a.Score("j'aime le film")

	assert.InDelta(t, 0.8, result.Score, 1e-9)
	assert.Equal(t, 1, result.NumHits)
}

func TestScoreTextFrenchElidedNegator(t *testing.T) {
	a := NewAnalyzer(French, WithOverrides(map[string]float64{"aime": 0.8}))

	// "n'" is elided "ne" and negates like it.
	result := a.Score("je n'aime pas le film")

	assert.InDelta(t, -0.8, result.Score, 1e-9)
}

func TestStopwordFilter(t *testing.T) {
	a := NewAnalyzer(English, WithStopwordFilter(true))

	result := a.ScoreTokens([]string{"the", "wonderful"})

	// "the" is filtered before counting; "wonderful" survives.
	assert.Equal(t, 1, result.NumWords)
	assert.InDelta(t, 4.0, result.Score, 1e-9)
}

func TestStopwordFilterKeepsNegators(t *testing.T) {
	a := NewAnalyzer(English,
		WithStopwordFilter(true),
		WithOverrides(map[string]float64{"wonderful": 4}))

	result := a.ScoreTokens([]string{"not", "wonderful"})

	assert.InDelta(t, -4.0, result.Score, 1e-9)
}

func TestConcurrentScoring(t *testing.T) {
	a := NewAnalyzer(English)
	tokens := []string{"not", "good", ",", "bad"}
	want := a.ScoreTokens(tokens).Score

	done := make(chan float64, 8)
	for i := 0; i < 8; i++ {
		go func() {
			done <- a.ScoreTokens(tokens).Score
		}()
	}
	for i := 0; i < 8; i++ {
		assert.Equal(t, want, <-done)
	}
}

func BenchmarkScoreTokens(b *testing.B) {
	a := NewAnalyzer(English)
	tokens := []string{"this", "is", "not", "a", "good", "day", ",", "but", "the", "food", "was", "wonderful", "."}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = a.ScoreTokens(tokens)
	}
}

func BenchmarkScoreText(b *testing.B) {
	a := NewAnalyzer(English)
	text := "The service was terrible, but the food was wonderful and the staff were kind."

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = a.Score(text)
	}
}
