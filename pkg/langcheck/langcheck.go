// Package langcheck gives the scanner a cheap sanity signal: does an
// extracted word actually read as German? The signal is advisory; the
// bot still looks up whatever the title ends with.
package langcheck

import (
	"github.com/pemistahl/lingua-go"
)

type Checker struct {
	detector lingua.LanguageDetector
}

// New builds a German-vs-English detector. Restricting the candidate
// set to the two languages the bot deals with keeps detection usable
// even on single short words.
func New() *Checker {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(lingua.German, lingua.English).
		Build()
	return &Checker{detector: detector}
}

// LooksGerman reports whether text reads as German rather than
// English, along with the detector's confidence in the German
// reading. Empty or undetectable input is not German.
func (c *Checker) LooksGerman(text string) (bool, float64) {
	confidence := c.detector.ComputeLanguageConfidence(text, lingua.German)
	lang, ok := c.detector.DetectLanguageOf(text)
	if !ok {
		return false, confidence
	}
	return lang == lingua.German, confidence
}
