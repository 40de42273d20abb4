package scan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/deutschesbot/wortbot/models"
	"github.com/deutschesbot/wortbot/pkg/ledger"
	"github.com/deutschesbot/wortbot/pkg/pons"
	"github.com/deutschesbot/wortbot/pkg/reply"
)

// Forum lists the newest submissions of a subreddit and publishes
// comments under them.
type Forum interface {
	NewPosts(ctx context.Context, subreddit string, limit int) ([]models.Post, error)
	Reply(ctx context.Context, fullname, text string) error
}

// Dictionary resolves a word to a dictionary entry.
type Dictionary interface {
	Lookup(ctx context.Context, word string) (*models.LookupResult, error)
}

// Ledger remembers which posts already got a reply.
type Ledger interface {
	HasReplied(postID string) (bool, error)
	Record(e ledger.Entry) error
}

// LanguageChecker guesses whether a word is German.
type LanguageChecker interface {
	LooksGerman(text string) (bool, float64)
}

// Runner walks the newest posts of one subreddit and answers each with
// a dictionary entry for the last word of its title. Posts are handled
// strictly one at a time; the API quota is cheap to stay under when
// nothing runs in parallel.
type Runner struct {
	Forum  Forum
	Dict   Dictionary
	Ledger Ledger
	Lang   LanguageChecker // optional, advisory only
	Logger *slog.Logger

	Subreddit string
	Limit     int
	Sleep     time.Duration
	DryRun    bool
}

// Run executes one scan pass. Per-post problems (no usable word, no
// dictionary hit, rejected comment) become failed outcomes and the
// scan moves on; only listing and ledger errors abort the pass.
func (r *Runner) Run(ctx context.Context) ([]Result, Stats, error) {
	var stats Stats

	r.Logger.Info("Listing new posts", "subreddit", r.Subreddit, "limit", r.Limit)
	posts, err := r.Forum.NewPosts(ctx, r.Subreddit, r.Limit)
	if err != nil {
		return nil, stats, fmt.Errorf("failed to list new posts: %w", err)
	}
	r.Logger.Info("Scan started", "posts", len(posts), "dry_run", r.DryRun)

	results := make([]Result, 0, len(posts))
	for i, post := range posts {
		if i > 0 && r.Sleep > 0 {
			r.Logger.Debug("Sleeping before next post", "duration", r.Sleep)
			if err := sleep(ctx, r.Sleep); err != nil {
				return results, stats, err
			}
		}
		stats.Scanned++

		result, err := r.scanPost(ctx, post)
		if err != nil {
			return results, stats, err
		}
		results = append(results, result)

		switch result.Outcome.Kind {
		case models.OutcomeReplied:
			stats.Replied++
		case models.OutcomeSkipped:
			stats.Skipped++
		case models.OutcomeFailed:
			stats.Failed++
		}
	}

	r.Logger.Info("Scan finished",
		"scanned", stats.Scanned, "replied", stats.Replied,
		"skipped", stats.Skipped, "failed", stats.Failed)
	return results, stats, nil
}

// scanPost handles one post from ledger check to recorded reply. The
// returned error is reserved for ledger trouble; with a broken ledger
// the bot cannot tell answered posts apart and has to stop.
func (r *Runner) scanPost(ctx context.Context, post models.Post) (Result, error) {
	result := Result{Post: post}
	logger := r.Logger.With("post_id", post.ID, "title", post.Title)

	replied, err := r.Ledger.HasReplied(post.ID)
	if err != nil {
		return result, err
	}
	if replied {
		logger.Info("Already replied, skipping")
		result.Outcome = models.Skipped("already replied")
		return result, nil
	}

	word := post.SearchTerm()
	if word == "" {
		logger.Warn("Post title has no words to look up")
		result.Outcome = models.Failed("title has no words")
		return result, nil
	}
	result.Word = word

	if r.Lang != nil {
		if german, confidence := r.Lang.LooksGerman(word); !german {
			logger.Warn("Word does not look German", "word", word, "confidence", confidence)
		}
	}

	logger.Info("Looking up word", "word", word)
	entry, err := r.Dict.Lookup(ctx, word)
	if err != nil {
		logger.Error("Dictionary lookup failed", "word", word, "error", err)
		result.Outcome = models.Failed(lookupReason(err))
		return result, nil
	}
	result.Translation = entry.Translation

	text := reply.Format(entry)
	if r.DryRun {
		logger.Info("Dry run, reply not posted", "word", word, "translation", entry.Translation)
		result.Outcome = models.Skipped("dry run")
		return result, nil
	}

	if err := r.Forum.Reply(ctx, post.Fullname, text); err != nil {
		logger.Error("Failed to post reply", "word", word, "error", err)
		result.Outcome = models.Failed(fmt.Sprintf("reply not posted: %v", err))
		return result, nil
	}

	raw, _ := json.Marshal(entry)
	record := ledger.Entry{
		PostID:      post.ID,
		Link:        post.Permalink,
		Word:        entry.Word,
		Translation: entry.Translation,
		RawResult:   string(raw),
		Subreddit:   post.Subreddit,
	}
	if err := r.Ledger.Record(record); err != nil {
		return result, err
	}

	logger.Info("Replied", "word", word, "translation", entry.Translation)
	result.Outcome = models.Replied()
	return result, nil
}

// lookupReason condenses a lookup failure into the short reason kept
// in the run report.
func lookupReason(err error) string {
	var lookupErr *pons.LookupError
	if errors.As(err, &lookupErr) {
		return lookupErr.Reason
	}
	if errors.Is(err, pons.ErrNoHits) {
		return "No results could be found for the given word"
	}
	return err.Error()
}

// sleep waits for d or until the context is cancelled.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
