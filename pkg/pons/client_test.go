package pons

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deutschesbot/wortbot/models"
)

const fernwehResponse = `[
  {
    "lang": "de",
    "hits": [
      {
        "type": "entry",
        "roms": [
          {
            "headword": "Fern·weh",
            "headword_full": "Fern·weh <span class=\"phonetics\">[ˈfɛrnveː]</span> <span class=\"genus\"><acronym title=\"neuter\">nt</acronym></span>",
            "wordclass": "noun",
            "arabs": [
              {
                "header": "1. Fernweh:",
                "translations": [
                  {
                    "source": "<strong class=\"headword\">Fernweh</strong>",
                    "target": "wanderlust <span class=\"topic\">liter</span>"
                  }
                ]
              },
              {
                "header": "Phrases:",
                "translations": [
                  {
                    "source": "Fernweh haben",
                    "target": "to be <b>itching</b> to get away"
                  }
                ]
              }
            ]
          }
        ]
      }
    ]
  }
]`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Config{Secret: "sekrit", APIURL: srv.URL, HTTPClient: srv.Client()})
}

func TestSearchSendsCredentialAndQuery(t *testing.T) {
	requests := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.Equal(t, "sekrit", r.Header.Get("X-Secret"))
		q := r.URL.Query()
		assert.Equal(t, "deen", q.Get("l"))
		assert.Equal(t, "Fernweh", q.Get("q"))
		assert.Equal(t, "de", q.Get("in"))
		assert.Equal(t, "en", q.Get("language"))
		w.Write([]byte(fernwehResponse))
	})

	hit, err := c.Search(context.Background(), "Fernweh")
	require.NoError(t, err)
	assert.Equal(t, "entry", hit.Type)
	assert.Equal(t, 1, requests, "lookup must make exactly one request")
}

func TestSearchMapsStatusToReason(t *testing.T) {
	tests := []struct {
		status int
		reason string
	}{
		{204, "No results could be found for the given word"},
		{403, "Supplied credentials could not be verified, or access to dictionary denied"},
		{404, "The dictionary does not exist"},
		{500, "A server error has occurred"},
		{418, "Unknown error (sorry)"},
	}

	for _, tt := range tests {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
		})

		_, err := c.Search(context.Background(), "Fernweh")
		var lookupErr *LookupError
		require.ErrorAs(t, err, &lookupErr, "status %d", tt.status)
		assert.Equal(t, tt.status, lookupErr.Status)
		assert.Equal(t, tt.reason, lookupErr.Reason)
	}
}

func TestSearchEmptyHits(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"lang":"de","hits":[]}]`))
	})

	_, err := c.Search(context.Background(), "Xyzzy")
	assert.ErrorIs(t, err, ErrNoHits)
}

func TestLookupResolvesEntry(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(fernwehResponse))
	})

	res, err := c.Lookup(context.Background(), "Fernweh")
	require.NoError(t, err)

	assert.Equal(t, "Fernweh", res.Word, "syllable separator must be stripped")
	assert.Equal(t, models.WordClassNoun, res.WordClass)
	assert.Equal(t, models.GenderNeuter, res.Gender)
	assert.Equal(t, "[ˈfɛrnveː]", res.Phonetics())
	assert.Equal(t, "wanderlust (*liter*)", res.Translation)
	require.NotNil(t, res.Example)
	assert.Equal(t, "Fernweh haben", res.Example.Source)
	assert.Equal(t, "to be itching to get away", res.Example.Target)
	assert.Equal(t, "https://en.pons.com/translate?q=Fernweh&l=deen&in=de&language=en", res.SearchURL)
}

func TestResolveRejectsTranslationHits(t *testing.T) {
	c := New(Config{Secret: "sekrit"})

	_, err := c.Resolve(&Hit{Type: "translation"})
	var unsupported *UnsupportedResultError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "translation", unsupported.Kind)
}

func TestResolveNonNounCarriesNoGender(t *testing.T) {
	c := New(Config{Secret: "sekrit"})

	hit := &Hit{
		Type: "entry",
		Roms: []Rom{{
			Headword:     "ren·nen",
			HeadwordFull: `ren·nen <span class="phonetics">[ˈrɛnən]</span> <span class="genus">nt</span>`,
			Wordclass:    "intransitive verb",
			Arabs: []Arab{{
				Header:       "1. rennen:",
				Translations: []Translation{{Source: "rennen", Target: "to run"}},
			}},
		}},
	}

	res, err := c.Resolve(hit)
	require.NoError(t, err)
	assert.Equal(t, "rennen", res.Word)
	assert.Equal(t, models.GenderNone, res.Gender, "gender is only read for nouns")
	assert.Equal(t, "to run", res.Translation)
	assert.Nil(t, res.Example)
}

func TestResolveEntryWithoutTranslations(t *testing.T) {
	c := New(Config{Secret: "sekrit"})

	hit := &Hit{
		Type: "entry",
		Roms: []Rom{{Headword: "Wort", HeadwordFull: "Wort", Wordclass: "noun"}},
	}

	_, err := c.Resolve(hit)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no translations")
}

func TestSearchPageURLEscapesWord(t *testing.T) {
	c := New(Config{Secret: "sekrit"})

	assert.Equal(t,
		"https://en.pons.com/translate?q=Stra%C3%9Fe&l=deen&in=de&language=en",
		c.SearchPageURL("Straße"))
}
