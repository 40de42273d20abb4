package models

import (
	"strings"
	"time"
)

// Post is one forum submission as seen in the listing feed.
type Post struct {
	ID        string    `json:"id"`
	Fullname  string    `json:"fullname"` // thing id with kind prefix, e.g. "t3_abc123"
	Title     string    `json:"title"`
	Permalink string    `json:"permalink"` // absolute URL of the post
	Subreddit string    `json:"subreddit"`
	Created   time.Time `json:"created"`
}

// SearchTerm extracts the word the bot should look up: the last
// whitespace-delimited field of the title. Returns "" for titles with
// no fields at all.
func (p *Post) SearchTerm() string {
	fields := strings.Fields(p.Title)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}
