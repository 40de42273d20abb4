package models

// WordClass is the part of speech the dictionary assigns to an entry.
// The dictionary emits free-form labels ("noun", "transitive verb", ...),
// so the type is open: unknown labels are carried through verbatim.
type WordClass string

const (
	WordClassNoun      WordClass = "noun"
	WordClassVerb      WordClass = "verb"
	WordClassAdjective WordClass = "adjective"
	WordClassAdverb    WordClass = "adverb"
)

func (w WordClass) String() string {
	return string(w)
}

// IsNoun reports whether the entry can carry a grammatical gender.
func (w WordClass) IsNoun() bool {
	return w == WordClassNoun
}

// Gender is the grammatical gender code the dictionary uses for nouns.
type Gender string

const (
	GenderNone      Gender = ""
	GenderNeuter    Gender = "nt"
	GenderMasculine Gender = "m"
	GenderFeminine  Gender = "f"
)

func (g Gender) String() string {
	return string(g)
}

// IsValid reports whether g is one of the codes the dictionary emits.
func (g Gender) IsValid() bool {
	switch g {
	case GenderNeuter, GenderMasculine, GenderFeminine:
		return true
	}
	return false
}
