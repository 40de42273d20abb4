package pons

// The API answers with one result block per dictionary language; the
// first block carries the hits for the query language.
type langResult struct {
	Lang string `json:"lang"`
	Hits []Hit  `json:"hits"`
}

// Hit is one search result. Only hits of type "entry" describe a word;
// other kinds (translations, examples) are not resolvable.
type Hit struct {
	Type string `json:"type"`
	Roms []Rom  `json:"roms"`
}

// Rom is one reading of an entry: the headword with its grammar
// annotations and the translation blocks.
type Rom struct {
	Headword     string `json:"headword"`
	HeadwordFull string `json:"headword_full"`
	Wordclass    string `json:"wordclass"`
	Arabs        []Arab `json:"arabs"`
}

// Arab is a sense block. Its header tells the block kind; usage
// phrases arrive under the header "Phrases:".
type Arab struct {
	Header       string        `json:"header"`
	Translations []Translation `json:"translations"`
}

type Translation struct {
	Source string `json:"source"`
	Target string `json:"target"`
}
