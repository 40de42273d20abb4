package ledger

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Entry is one recorded reply.
type Entry struct {
	PostID      string
	Link        string
	Word        string
	Translation string
	RawResult   string
	Subreddit   string
	RepliedAt   time.Time
}

// HasReplied reports whether a post is already in the ledger.
func (l *Ledger) HasReplied(postID string) (bool, error) {
	var id string
	err := l.QueryRow("SELECT post_id FROM posts WHERE post_id = ?", postID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check ledger for post %s: %w", postID, err)
	}
	return true, nil
}

// Record writes one reply to the ledger. The insert is committed
// before Record returns; a second Record for the same post id fails
// on the primary key.
func (l *Ledger) Record(e Entry) error {
	_, err := l.Exec(`
		INSERT INTO posts (post_id, link, word, translation, raw_result, subreddit)
		VALUES (?, ?, ?, ?, ?, ?)
	`, e.PostID, e.Link, e.Word, e.Translation, e.RawResult, e.Subreddit)
	if err != nil {
		return fmt.Errorf("failed to record reply for post %s: %w", e.PostID, err)
	}
	return nil
}

// FindPost returns the ledger entry for a post id, or nil when the
// bot has never replied to it.
func (l *Ledger) FindPost(postID string) (*Entry, error) {
	var e Entry
	err := l.QueryRow(`
		SELECT post_id, link, word, translation, raw_result, subreddit, replied_at
		FROM posts
		WHERE post_id = ?
	`, postID).Scan(&e.PostID, &e.Link, &e.Word, &e.Translation, &e.RawResult, &e.Subreddit, &e.RepliedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up post %s: %w", postID, err)
	}
	return &e, nil
}

// ListPosts returns the most recent replies, newest first.
func (l *Ledger) ListPosts(limit int) ([]Entry, error) {
	rows, err := l.Query(`
		SELECT post_id, link, word, translation, raw_result, subreddit, replied_at
		FROM posts
		ORDER BY replied_at DESC, post_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		err := rows.Scan(&e.PostID, &e.Link, &e.Word, &e.Translation, &e.RawResult, &e.Subreddit, &e.RepliedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, nil
}

// CountPosts returns the total number of recorded replies.
func (l *Ledger) CountPosts() (int64, error) {
	var count int64
	if err := l.QueryRow("SELECT COUNT(*) FROM posts").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return count, nil
}

// WordCount is how often one word has been answered.
type WordCount struct {
	Word  string
	Count int64
}

// TopWords returns the most frequently answered words, ties broken
// alphabetically.
func (l *Ledger) TopWords(limit int) ([]WordCount, error) {
	rows, err := l.Query(`
		SELECT word, COUNT(*) AS n
		FROM posts
		GROUP BY word
		ORDER BY n DESC, word ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to count words: %w", err)
	}
	defer rows.Close()

	var counts []WordCount
	for rows.Next() {
		var wc WordCount
		if err := rows.Scan(&wc.Word, &wc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan word count: %w", err)
		}
		counts = append(counts, wc)
	}

	return counts, nil
}
