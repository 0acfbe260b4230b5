package models

// Intent is a named group of example questions and the answers they map to.
// Only the first response is used when a pattern matches.
type Intent struct {
	Tag       string   `json:"tag,omitempty"       yaml:"tag,omitempty"`
	Patterns  []string `json:"patterns"            yaml:"patterns"  validate:"required,min=1,dive,required,notblank"`
	Responses []string `json:"responses"           yaml:"responses" validate:"required,min=1,dive,required,notblank"`
}

// Corpus is the ordered set of intents loaded from a single source file.
// A Corpus is never mutated after load and may be read concurrently.
type Corpus struct {
	Path    string
	Intents []Intent
}

// Len returns the number of intents in the corpus. A nil corpus is empty.
func (c *Corpus) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Intents)
}

// PatternCount returns the total number of patterns scanned per lookup.
func (c *Corpus) PatternCount() int {
	if c == nil {
		return 0
	}
	n := 0
	for i := range c.Intents {
		n += len(c.Intents[i].Patterns)
	}
	return n
}

// IntentSource is the top level document an intents file decodes into.
// Intents is a pointer so a missing key can be told apart from an empty list.
type IntentSource struct {
	Intents *[]Intent `json:"intents" yaml:"intents"`
}
