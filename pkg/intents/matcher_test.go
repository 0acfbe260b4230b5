package intents

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getzep/csmentor/pkg/models"
	"github.com/getzep/csmentor/pkg/search"
	"github.com/getzep/csmentor/pkg/testutils"
)

func TestFindBestMatch(t *testing.T) {
	t.Run("paraphrased question", func(t *testing.T) {
		match := FindBestMatch("Tell me about mobile development", testutils.MobileCorpus())
		require.NotNil(t, match)
		assert.Equal(t, testutils.MobileResponse, match.Answer)
		assert.Equal(t, models.SourceIntents, match.Source)
		assert.Equal(t, testutils.MobilePattern, match.MatchedPattern)
		assert.Greater(t, match.Confidence, 0.5)
		assert.InDelta(t, search.Similarity("mobile development", "mobile development?"), match.Confidence, 1e-12)
	})

	t.Run("exact pattern", func(t *testing.T) {
		match := FindBestMatch("What are algorithms?", testutils.CSCorpus())
		require.NotNil(t, match)
		assert.Equal(t, 1.0, match.Confidence)
		assert.Equal(t, "What are algorithms?", match.MatchedPattern)
		assert.Equal(t, "An algorithm is a finite sequence of steps that solves a problem.", match.Answer)
	})

	t.Run("only the first response is used", func(t *testing.T) {
		match := FindBestMatch("what is mobile development?", testutils.CSCorpus())
		require.NotNil(t, match)
		assert.Equal(t, testutils.MobileResponse, match.Answer)
	})

	t.Run("unrelated text", func(t *testing.T) {
		assert.Nil(t, FindBestMatch("asdkjalskdj random unrelated text", testutils.MobileCorpus()))
	})

	t.Run("nil corpus", func(t *testing.T) {
		assert.Nil(t, FindBestMatch("anything", nil))
	})
}

func TestFindBestMatchEarliestWinsTies(t *testing.T) {
	corpus := &models.Corpus{
		Intents: []models.Intent{
			{Tag: "first", Patterns: []string{"What is a stack?"}, Responses: []string{"first"}},
			{Tag: "second", Patterns: []string{"Explain a stack?"}, Responses: []string{"second"}},
		},
	}

	match := FindBestMatch("a stack?", corpus)
	require.NotNil(t, match)
	assert.Equal(t, "first", match.Answer)
	assert.Equal(t, "What is a stack?", match.MatchedPattern)
}

func TestFindBestMatchPicksHighestScore(t *testing.T) {
	corpus := &models.Corpus{
		Intents: []models.Intent{
			{Tag: "loose", Patterns: []string{"binary search"}, Responses: []string{"loose"}},
			{Tag: "exact", Patterns: []string{"binary search trees"}, Responses: []string{"exact"}},
		},
	}

	match := FindBestMatch("binary search trees", corpus)
	require.NotNil(t, match)
	assert.Equal(t, "exact", match.Answer)
	assert.Equal(t, 1.0, match.Confidence)
}

func TestFindBestMatchThresholdIsStrict(t *testing.T) {
	m := &Matcher{Threshold: 1.0, Scorer: search.DefaultScorer}

	// A perfect match scores exactly 1.0, which does not exceed the threshold.
	assert.Nil(t, m.FindBestMatch(testutils.MobilePattern, testutils.MobileCorpus()))

	m.Threshold = 0.99
	assert.NotNil(t, m.FindBestMatch(testutils.MobilePattern, testutils.MobileCorpus()))
}

func TestFindBestMatchNeverReturnsBelowThreshold(t *testing.T) {
	corpus := testutils.CSCorpus()
	gofakeit.Seed(7)

	questions := []string{
		"Tell me about mobile development",
		"explain data structures",
		"algorithms",
		"",
	}
	for i := 0; i < 200; i++ {
		questions = append(questions, gofakeit.Question())
	}

	for _, q := range questions {
		match := FindBestMatch(q, corpus)
		if match != nil {
			assert.Greater(t, match.Confidence, DefaultMatchThreshold, "question %q", q)
		}
	}
}

func TestMatcherCustomScorer(t *testing.T) {
	// With character overlap only, the paraphrase clears a high threshold.
	m := &Matcher{Threshold: 0.9, Scorer: search.NewScorer(0, 1)}
	match := m.FindBestMatch("Tell me about mobile development", testutils.MobileCorpus())
	require.NotNil(t, match)
	assert.InDelta(t, 36.0/37.0, match.Confidence, 1e-9)
}
