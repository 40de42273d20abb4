package ledger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/deutschesbot/wortbot/internal/config"
	ledgerpkg "github.com/deutschesbot/wortbot/pkg/ledger"
	"github.com/urfave/cli/v2"
)

// openLedger resolves the database path from the --db flag or the
// config file and opens it.
func openLedger(c *cli.Context) (*ledgerpkg.Ledger, error) {
	dbPath := c.String("db")
	if dbPath == "" {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		dbPath = cfg.Bot.DBPath
	}
	return ledgerpkg.Open(dbPath)
}

func PostsAction(c *cli.Context) error {
	database, err := openLedger(c)
	if err != nil {
		return fmt.Errorf("failed to open ledger: %w", err)
	}
	defer database.Close()

	entries, err := database.ListPosts(c.Int("limit"))
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No replies recorded yet")
		return nil
	}

	// Print table header
	fmt.Printf("%-10s %-20s %-18s %-28s %-15s\n",
		"Post", "Replied", "Word", "Translation", "Subreddit")
	fmt.Println(strings.Repeat("-", 95))

	for _, e := range entries {
		fmt.Printf("%-10s %-20s %-18s %-28s %-15s\n",
			e.PostID,
			e.RepliedAt.Format("2006-01-02 15:04:05"),
			truncate(e.Word, 18),
			truncate(e.Translation, 28),
			e.Subreddit,
		)
	}

	total, err := database.CountPosts()
	if err != nil {
		return err
	}
	fmt.Printf("\nTotal: %d replies\n", total)
	fmt.Printf("\nTip: Use 'wortbot ledger show <post_id>' to see a stored entry\n")

	return nil
}

func RunsAction(c *cli.Context) error {
	database, err := openLedger(c)
	if err != nil {
		return fmt.Errorf("failed to open ledger: %w", err)
	}
	defer database.Close()

	runs, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet")
		return nil
	}

	// Print table header
	fmt.Printf("%-6s %-20s %-20s %-15s %-8s %-8s %-8s %-8s\n",
		"ID", "Started", "Finished", "Subreddit", "Scanned", "Replied", "Skipped", "Failed")
	fmt.Println(strings.Repeat("-", 110))

	for _, r := range runs {
		finished := "(unfinished)"
		if r.FinishedAt.Valid {
			finished = r.FinishedAt.Time.Format("2006-01-02 15:04:05")
		}
		fmt.Printf("%-6d %-20s %-20s %-15s %-8d %-8d %-8d %-8d\n",
			r.RunID,
			r.StartedAt.Format("2006-01-02 15:04:05"),
			finished,
			r.Subreddit,
			r.Stats.Scanned,
			r.Stats.Replied,
			r.Stats.Skipped,
			r.Stats.Failed,
		)
	}

	fmt.Printf("\nTotal: %d runs\n", len(runs))

	return nil
}

// WordsAction lists the words the bot has answered most often.
func WordsAction(c *cli.Context) error {
	database, err := openLedger(c)
	if err != nil {
		return fmt.Errorf("failed to open ledger: %w", err)
	}
	defer database.Close()

	counts, err := database.TopWords(c.Int("limit"))
	if err != nil {
		return err
	}

	if len(counts) == 0 {
		fmt.Println("No replies recorded yet")
		return nil
	}

	fmt.Printf("%-20s %-8s\n", "Word", "Replies")
	fmt.Println(strings.Repeat("-", 29))
	for _, wc := range counts {
		fmt.Printf("%-20s %-8d\n", wc.Word, wc.Count)
	}

	return nil
}

// ShowAction prints everything the ledger knows about one post,
// including the stored dictionary result.
func ShowAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("post id required\nUsage: wortbot ledger show <post_id>\nExample: wortbot ledger show 1abcde")
	}

	database, err := openLedger(c)
	if err != nil {
		return fmt.Errorf("failed to open ledger: %w", err)
	}
	defer database.Close()

	postID := c.Args().First()
	entry, err := database.FindPost(postID)
	if err != nil {
		return err
	}
	if entry == nil {
		return fmt.Errorf("no reply recorded for post %s", postID)
	}

	fmt.Printf("Post %s\n", entry.PostID)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Replied:     %s\n", entry.RepliedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Subreddit:   r/%s\n", entry.Subreddit)
	fmt.Printf("Word:        %s\n", entry.Word)
	fmt.Printf("Translation: %s\n", entry.Translation)
	fmt.Printf("Link:        %s\n", entry.Link)

	if entry.RawResult != "" {
		fmt.Printf("\nDictionary result:\n")
		var buf bytes.Buffer
		if err := json.Indent(&buf, []byte(entry.RawResult), "", "  "); err == nil {
			fmt.Println(buf.String())
		} else {
			fmt.Println(entry.RawResult)
		}
	}

	return nil
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
