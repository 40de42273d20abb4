package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/deutschesbot/wortbot/internal/doctor"
	ledgercmd "github.com/deutschesbot/wortbot/internal/ledger"
	"github.com/deutschesbot/wortbot/internal/lookup"
	"github.com/deutschesbot/wortbot/internal/scan"
	"github.com/deutschesbot/wortbot/pkg/help"
	"github.com/urfave/cli/v2"
)

func main() {
	// Ctrl-C should interrupt the pause between posts, not kill the
	// process mid-write.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &cli.App{
		Name:    "wortbot",
		Version: "0.1.0",
		Usage:   "dictionary bot for German vocabulary subreddits",
		Description: "Scans the newest posts of a subreddit, looks up the last word of\n" +
			"each title in the PONS dictionary and replies with the entry.",
		Commands: []*cli.Command{
			{
				Name:   "scan",
				Usage:  "Scan a subreddit once and reply to new posts",
				Action: scan.ScanAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "subreddit", Aliases: []string{"r"}, Usage: "subreddit to scan (overrides config)"},
					&cli.IntFlag{Name: "limit", Aliases: []string{"n"}, Usage: "how many of the newest posts to scan (overrides config)"},
					&cli.StringFlag{Name: "sleep", Usage: "pause between posts, e.g. 90s (overrides config)"},
					&cli.StringFlag{Name: "db", Usage: "path to the ledger database (overrides config)"},
					&cli.BoolFlag{Name: "dry-run", Usage: "look everything up but post and record nothing"},
					&cli.StringFlag{Name: "format", Value: "text", Usage: "report format: text, json or yaml"},
					&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "only log errors"},
				},
			},
			{
				Name:      "lookup",
				Usage:     "Look up one word and print the reply the bot would post",
				ArgsUsage: "<word>",
				Action:    lookup.LookupAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format", Value: "reply", Usage: "output format: reply, json or yaml"},
					&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "only log errors"},
				},
			},
			{
				Name:  "ledger",
				Usage: "Inspect the reply ledger",
				Subcommands: []*cli.Command{
					{
						Name:   "posts",
						Usage:  "List recorded replies, newest first",
						Action: ledgercmd.PostsAction,
						Flags: []cli.Flag{
							&cli.IntFlag{Name: "limit", Value: 20, Usage: "maximum number of rows"},
							&cli.StringFlag{Name: "db", Usage: "path to the ledger database (overrides config)"},
						},
					},
					{
						Name:   "runs",
						Usage:  "List past scan runs, newest first",
						Action: ledgercmd.RunsAction,
						Flags: []cli.Flag{
							&cli.IntFlag{Name: "limit", Value: 20, Usage: "maximum number of rows"},
							&cli.StringFlag{Name: "db", Usage: "path to the ledger database (overrides config)"},
						},
					},
					{
						Name:   "words",
						Usage:  "List the most frequently answered words",
						Action: ledgercmd.WordsAction,
						Flags: []cli.Flag{
							&cli.IntFlag{Name: "limit", Value: 25, Usage: "maximum number of rows"},
							&cli.StringFlag{Name: "db", Usage: "path to the ledger database (overrides config)"},
						},
					},
					{
						Name:      "show",
						Usage:     "Show the stored entry for one post",
						ArgsUsage: "<post_id>",
						Action:    ledgercmd.ShowAction,
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "db", Usage: "path to the ledger database (overrides config)"},
						},
					},
				},
			},
			{
				Name:   "doctor",
				Usage:  "Check config, ledger, dictionary and forum access",
				Action: doctor.DoctorAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "db", Usage: "path to the ledger database (overrides config)"},
					&cli.StringFlag{Name: "word", Value: "Wörterbuch", Usage: "word used for the dictionary probe"},
					&cli.BoolFlag{Name: "offline", Usage: "skip network probes"},
				},
			},
			{
				Name:  "quickstart",
				Usage: "Print the setup guide for new bot operators",
				Action: func(c *cli.Context) error {
					fmt.Print(help.QuickstartYAML)
					return nil
				},
			},
		},
	}

	if err := app.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
