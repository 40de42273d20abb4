// Package reply renders a lookup result as the Markdown comment the
// bot posts under a word-of-the-hour submission.
package reply

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/deutschesbot/wortbot/models"
)

// Paragraphs separated by a non-breaking space render as a thin blank
// line on the forum.
const blankLine = "\n\n&nbsp;\n\n"

// articles maps gender codes to the definite article. Unknown codes
// get no article at all.
var articles = map[models.Gender]string{
	models.GenderNeuter:    "das",
	models.GenderMasculine: "der",
	models.GenderFeminine:  "die",
}

// Format renders the comment body: headline with article, phonetics
// and word class, the word/translation pair, and the dictionary
// reference link. Deterministic, no I/O.
func Format(res *models.LookupResult) string {
	headline := fmt.Sprintf("**%s** %s | *%s*",
		wordWithArticle(res), res.Phonetics(), titleCase(res.WordClass.String()))
	pair := fmt.Sprintf(" 🇩🇪 %s 🔁 🇬🇧 %s", res.Word, res.Translation)
	source := fmt.Sprintf(" ^[PONS-reference](%s)", res.SearchURL)

	return headline + blankLine + pair + blankLine + source
}

// wordWithArticle prefixes the word with its definite article when the
// gender maps to one; otherwise the word stands alone, with no stray
// leading space.
func wordWithArticle(res *models.LookupResult) string {
	if article, ok := articles[res.Gender]; ok {
		return article + " " + res.Word
	}
	return res.Word
}

// titleCase uppercases the first letter of each word, the way the
// dictionary's lowercase word-class labels are displayed.
func titleCase(s string) string {
	fields := strings.Fields(s)
	for i, f := range fields {
		r := []rune(f)
		r[0] = unicode.ToUpper(r[0])
		fields[i] = string(r)
	}
	return strings.Join(fields, " ")
}
