// Package models defines the data structures shared across the bot:
// dictionary lookup results, forum posts, and per-post outcomes.
package models

// LookupResult is the cleaned-up, display-ready form of one dictionary
// entry. All markup from the API response has already been normalized
// away by the time a LookupResult exists.
type LookupResult struct {
	Word        string            `json:"word" yaml:"word"`
	WordClass   WordClass         `json:"word_class" yaml:"word_class"`
	Gender      Gender            `json:"gender,omitempty" yaml:"gender,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	Translation string            `json:"translation" yaml:"translation"`
	Example     *Example          `json:"example,omitempty" yaml:"example,omitempty"`
	SearchURL   string            `json:"search_url" yaml:"search_url"`
}

// Example is a usage phrase attached to an entry, with its translation.
type Example struct {
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`
}

// Phonetics returns the IPA transcription recorded in the entry
// metadata, or "" when the dictionary supplied none.
func (r *LookupResult) Phonetics() string {
	return r.Metadata["phonetics"]
}
