package intents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getzep/csmentor/pkg/testutils"
)

func TestSuggest(t *testing.T) {
	corpus := testutils.CSCorpus()

	suggestions := Suggest("data struct", corpus, 10)
	require.NotEmpty(t, suggestions)
	for _, s := range suggestions {
		assert.Equal(t, "data_structures", s.Tag)
	}

	assert.Len(t, Suggest("a", corpus, 2), 2)
	assert.Empty(t, Suggest("zzzzqqq", corpus, 5))
	assert.Empty(t, Suggest("", corpus, 5))
	assert.Empty(t, Suggest("algo", nil, 5))
}

func TestSuggestDefaultLimit(t *testing.T) {
	suggestions := Suggest("e", testutils.CSCorpus(), 0)
	assert.LessOrEqual(t, len(suggestions), DefaultSuggestionLimit)
	assert.NotEmpty(t, suggestions)
}
