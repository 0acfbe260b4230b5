package search

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// questionStarters are filler phrases that open a question without carrying meaning.
var questionStarters = []string{
	"what is",
	"what are",
	"what's",
	"what does",
	"what do you mean by",
	"how does",
	"how do",
	"how to",
	"how",
	"why is",
	"why",
	"explain",
	"can you explain",
	"tell me about",
	"describe",
	"define",
}

func init() {
	// Longest first so "what is" wins over a shorter overlapping starter.
	sort.SliceStable(questionStarters, func(i, j int) bool {
		return len(questionStarters[i]) > len(questionStarters[j])
	})
}

// QuestionStarters returns the starter phrases in the order they are tried.
func QuestionStarters() []string {
	starters := make([]string, len(questionStarters))
	copy(starters, questionStarters)
	return starters
}

// Normalize lower-cases text and strips a single leading question starter, leaving
// the part of the question that carries meaning. Punctuation is kept.
func Normalize(text string) string {
	// Casers carry state and can't be shared across goroutines.
	text = cases.Lower(language.Und).String(text)

	for _, starter := range questionStarters {
		if strings.HasPrefix(text, starter) {
			return strings.TrimSpace(strings.TrimPrefix(text, starter))
		}
	}

	return text
}
