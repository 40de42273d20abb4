package doctor

import (
	"fmt"
	"os"

	"github.com/deutschesbot/wortbot/internal/config"
	"github.com/deutschesbot/wortbot/models"
	"github.com/deutschesbot/wortbot/pkg/ledger"
	"github.com/deutschesbot/wortbot/pkg/pons"
	"github.com/deutschesbot/wortbot/pkg/reddit"
	"github.com/deutschesbot/wortbot/pkg/weblink"
	"github.com/urfave/cli/v2"
)

// DoctorAction checks the bot's setup end to end: config, ledger,
// dictionary, forum, and the reference link used in replies. Network
// probes can be skipped with --offline.
func DoctorAction(c *cli.Context) error {
	fmt.Println("Checking wortbot setup...")
	fmt.Println()

	problems := 0
	fail := func(format string, args ...any) {
		problems++
		line("FAIL", format, args...)
	}

	cfg, err := config.Load()
	if err != nil {
		fail("config: %v", err)
		fmt.Printf("\n%d problem(s) found\n", problems)
		os.Exit(1)
	}
	line("ok", "config loaded")

	keyOK := cfg.Validate() == nil
	if keyOK {
		line("ok", "dictionary key present")
	} else {
		fail("dictionary key missing (set PONS_KEY or pons.key)")
	}

	credsErr := cfg.Reddit.Validate()
	if credsErr == nil {
		line("ok", "forum credentials present")
	} else {
		fail("%v", credsErr)
	}

	dbPath := cfg.Bot.DBPath
	if c.IsSet("db") {
		dbPath = c.String("db")
	}
	database, err := ledger.Open(dbPath)
	if err != nil {
		fail("ledger: %v", err)
	} else {
		count, countErr := database.CountPosts()
		if countErr != nil {
			fail("ledger: %v", countErr)
		} else {
			line("ok", "ledger writable at %s (%d replies recorded)", database.Path(), count)
		}
		database.Close()
	}

	offline := c.Bool("offline")

	var entry *models.LookupResult
	switch {
	case !keyOK:
		line("skip", "dictionary probe (no key)")
	case offline:
		line("skip", "dictionary probe (offline)")
	default:
		dict := pons.New(pons.Config{
			Secret:     cfg.Pons.Key,
			APIURL:     cfg.Pons.APIURL,
			PageURL:    cfg.Pons.PageURL,
			Dictionary: cfg.Pons.Dictionary,
			SourceLang: cfg.Pons.SourceLang,
			TargetLang: cfg.Pons.TargetLang,
		})
		entry, err = dict.Lookup(c.Context, c.String("word"))
		if err != nil {
			fail("dictionary probe: %v", err)
		} else {
			line("ok", "dictionary reachable (%s -> %s)", entry.Word, entry.Translation)
		}
	}

	switch {
	case credsErr != nil:
		line("skip", "forum probe (credentials incomplete)")
	case offline:
		line("skip", "forum probe (offline)")
	default:
		forum := reddit.New(reddit.Config{
			ClientID:     cfg.Reddit.ClientID,
			ClientSecret: cfg.Reddit.ClientSecret,
			Username:     cfg.Reddit.Username,
			Password:     cfg.Reddit.Password,
			UserAgent:    cfg.Reddit.UserAgent,
			AuthURL:      cfg.Reddit.AuthURL,
			APIURL:       cfg.Reddit.APIURL,
		})
		posts, err := forum.NewPosts(c.Context, cfg.Bot.Subreddit, 1)
		if err != nil {
			fail("forum probe: %v", err)
		} else if len(posts) == 0 {
			line("ok", "forum reachable (r/%s has no posts)", cfg.Bot.Subreddit)
		} else {
			line("ok", "forum reachable (r/%s, newest: %s)", cfg.Bot.Subreddit, posts[0].Title)
		}
	}

	if entry == nil {
		line("skip", "reference link probe (needs a dictionary result)")
	} else {
		preview, err := weblink.New(nil).Preview(c.Context, entry.SearchURL)
		if err != nil {
			fail("reference link: %v", err)
		} else {
			line("ok", "reference link resolves (%s)", preview.Title)
		}
	}

	fmt.Println()
	if problems == 0 {
		fmt.Println("Everything looks good")
		return nil
	}
	fmt.Printf("%d problem(s) found\n", problems)
	os.Exit(1)
	return nil
}

func line(status, format string, args ...any) {
	fmt.Printf("  [%-4s] %s\n", status, fmt.Sprintf(format, args...))
}
