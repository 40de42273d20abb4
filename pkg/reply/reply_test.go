package reply

import (
	"strings"
	"testing"

	"github.com/deutschesbot/wortbot/models"
)

func TestFormatNounWithArticleAndPhonetics(t *testing.T) {
	res := &models.LookupResult{
		Word:        "Fernweh",
		WordClass:   models.WordClassNoun,
		Gender:      models.GenderNeuter,
		Metadata:    map[string]string{"phonetics": "[ˈfɛrnveː]"},
		Translation: "wanderlust (*liter*)",
		SearchURL:   "https://en.pons.com/translate?q=Fernweh&l=deen&in=de&language=en",
	}

	want := "**das Fernweh** [ˈfɛrnveː] | *Noun*" +
		"\n\n&nbsp;\n\n" +
		" 🇩🇪 Fernweh 🔁 🇬🇧 wanderlust (*liter*)" +
		"\n\n&nbsp;\n\n" +
		" ^[PONS-reference](https://en.pons.com/translate?q=Fernweh&l=deen&in=de&language=en)"

	if got := Format(res); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestFormatArticleByGender(t *testing.T) {
	tests := []struct {
		name   string
		word   string
		gender models.Gender
		want   string
	}{
		{"neuter", "Messer", models.GenderNeuter, "**das Messer**"},
		{"masculine", "Löffel", models.GenderMasculine, "**der Löffel**"},
		{"feminine", "Gabel", models.GenderFeminine, "**die Gabel**"},
		{"no gender", "Obst", models.GenderNone, "**Obst**"},
		{"unknown code", "Leute", models.Gender("pl"), "**Leute**"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := &models.LookupResult{
				Word:        tt.word,
				WordClass:   models.WordClassNoun,
				Gender:      tt.gender,
				Translation: "cutlery",
				SearchURL:   "https://example.test",
			}
			got := Format(res)
			if !strings.HasPrefix(got, tt.want) {
				t.Errorf("Format() headline = %q, want prefix %q", got, tt.want)
			}
		})
	}
}

func TestFormatVerbWithoutPhonetics(t *testing.T) {
	res := &models.LookupResult{
		Word:        "rennen",
		WordClass:   models.WordClass("intransitive verb"),
		Translation: "to run",
		SearchURL:   "https://example.test",
	}

	got := Format(res)
	if !strings.HasPrefix(got, "**rennen**  | *Intransitive Verb*") {
		t.Errorf("Format() headline = %q", got)
	}
	if strings.Contains(got, "das") || strings.Contains(got, "der") || strings.Contains(got, "die") {
		t.Errorf("verb reply must carry no article: %q", got)
	}
}

func TestFormatKeepsTranslationAnnotations(t *testing.T) {
	res := &models.LookupResult{
		Word:        "Käse",
		WordClass:   models.WordClassNoun,
		Gender:      models.GenderMasculine,
		Translation: "cheese (*a. fig*)",
		SearchURL:   "https://example.test",
	}

	got := Format(res)
	if !strings.Contains(got, " 🇩🇪 Käse 🔁 🇬🇧 cheese (*a. fig*)") {
		t.Errorf("Format() = %q", got)
	}
}
