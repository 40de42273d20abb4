package pons

import (
	"errors"
	"fmt"
	"strings"

	"github.com/deutschesbot/wortbot/models"
	"github.com/deutschesbot/wortbot/pkg/markup"
)

// Resolve turns a raw hit into a display-ready result: headword
// cleaned of syllable separators, grammar metadata lifted out of the
// full headword markup, the primary translation normalized, and a
// usage example when the entry carries one.
func (c *Client) Resolve(hit *Hit) (*models.LookupResult, error) {
	if hit.Type != "entry" {
		return nil, &UnsupportedResultError{Kind: hit.Type}
	}
	if len(hit.Roms) == 0 {
		return nil, errors.New("entry has no readings")
	}
	rom := hit.Roms[0]

	// "·" marks syllable boundaries in headwords.
	word := strings.ReplaceAll(rom.Headword, "·", "")

	meta, err := markup.Metadata(rom.HeadwordFull)
	if err != nil {
		return nil, fmt.Errorf("failed to read headword metadata: %w", err)
	}

	res := &models.LookupResult{
		Word:      word,
		WordClass: models.WordClass(rom.Wordclass),
		Metadata:  meta,
		SearchURL: c.SearchPageURL(word),
	}
	if res.WordClass.IsNoun() {
		res.Gender = models.Gender(meta["genus"])
	}

	if len(rom.Arabs) == 0 || len(rom.Arabs[0].Translations) == 0 {
		return nil, fmt.Errorf("entry for %q has no translations", word)
	}
	translation, err := markup.AnnotatedText(rom.Arabs[0].Translations[0].Target)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize translation: %w", err)
	}
	res.Translation = translation

	example, err := usageExample(rom.Arabs)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize usage example: %w", err)
	}
	res.Example = example

	return res, nil
}

// usageExample picks the first translation of the phrase block, when
// the entry has one. Entries without phrases are common; that is not
// an error.
func usageExample(arabs []Arab) (*models.Example, error) {
	for _, arab := range arabs {
		if arab.Header != "Phrases:" || len(arab.Translations) == 0 {
			continue
		}
		tr := arab.Translations[0]
		source, err := markup.AnnotatedText(tr.Source)
		if err != nil {
			return nil, err
		}
		target, err := markup.StripTags(tr.Target)
		if err != nil {
			return nil, err
		}
		return &models.Example{Source: source, Target: target}, nil
	}
	return nil, nil
}
