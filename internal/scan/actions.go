package scan

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/deutschesbot/wortbot/internal/common"
	"github.com/deutschesbot/wortbot/internal/config"
	"github.com/deutschesbot/wortbot/pkg/langcheck"
	"github.com/deutschesbot/wortbot/pkg/ledger"
	"github.com/deutschesbot/wortbot/pkg/pons"
	"github.com/deutschesbot/wortbot/pkg/reddit"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

func ScanAction(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if c.Bool("quiet") {
		cfg.Log.Level = "error"
	}
	logger := common.NewLogger(cfg.Log)
	startTime := time.Now()

	// CLI flags override the config file.
	if c.IsSet("subreddit") {
		cfg.Bot.Subreddit = c.String("subreddit")
	}
	if c.IsSet("limit") {
		cfg.Bot.PostLimit = c.Int("limit")
	}
	if c.IsSet("sleep") {
		sleepFor, err := time.ParseDuration(c.String("sleep"))
		if err != nil {
			logger.Error("invalid sleep duration", "error", err)
			os.Exit(2)
		}
		cfg.Bot.Sleep = sleepFor
	}
	if c.IsSet("db") {
		cfg.Bot.DBPath = c.String("db")
	}

	if err := cfg.Validate(); err != nil {
		logger.Error("configuration incomplete", "error", err)
		os.Exit(2)
	}
	if err := cfg.Reddit.Validate(); err != nil {
		logger.Error("configuration incomplete", "error", err)
		os.Exit(2)
	}

	database, err := ledger.Open(cfg.Bot.DBPath)
	if err != nil {
		logger.Error("failed to open ledger", "error", err)
		os.Exit(2)
	}
	defer database.Close()

	dict := pons.New(pons.Config{
		Secret:     cfg.Pons.Key,
		APIURL:     cfg.Pons.APIURL,
		PageURL:    cfg.Pons.PageURL,
		Dictionary: cfg.Pons.Dictionary,
		SourceLang: cfg.Pons.SourceLang,
		TargetLang: cfg.Pons.TargetLang,
	})
	forum := reddit.New(reddit.Config{
		ClientID:     cfg.Reddit.ClientID,
		ClientSecret: cfg.Reddit.ClientSecret,
		Username:     cfg.Reddit.Username,
		Password:     cfg.Reddit.Password,
		UserAgent:    cfg.Reddit.UserAgent,
		AuthURL:      cfg.Reddit.AuthURL,
		APIURL:       cfg.Reddit.APIURL,
	})

	runID, err := database.StartRun(cfg.Bot.Subreddit)
	if err != nil {
		logger.Warn("Failed to record run start", "error", err)
	}

	runner := &Runner{
		Forum:     forum,
		Dict:      dict,
		Ledger:    database,
		Lang:      langcheck.New(),
		Logger:    logger,
		Subreddit: cfg.Bot.Subreddit,
		Limit:     cfg.Bot.PostLimit,
		Sleep:     cfg.Bot.Sleep,
		DryRun:    c.Bool("dry-run"),
	}

	results, stats, runErr := runner.Run(c.Context)
	stats.TotalTimeSeconds = time.Since(startTime).Seconds()

	if runID > 0 {
		finishErr := database.FinishRun(runID, ledger.RunStats{
			Scanned: stats.Scanned,
			Replied: stats.Replied,
			Skipped: stats.Skipped,
			Failed:  stats.Failed,
		})
		if finishErr != nil {
			logger.Warn("Failed to record run end", "error", finishErr)
		}
	}

	report := BuildReport(cfg.Bot.Subreddit, results, stats)
	if runErr != nil {
		logger.Error("Scan aborted", "error", runErr)
		report.Status = "aborted"
	}

	switch strings.ToLower(c.String("format")) {
	case "json":
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			logger.Error("failed to marshal report", "error", err)
			os.Exit(2)
		}
		fmt.Println(string(data))
	case "yaml":
		data, err := yaml.Marshal(report)
		if err != nil {
			logger.Error("failed to marshal report", "error", err)
			os.Exit(2)
		}
		fmt.Print(string(data))
	default:
		printSummary(report, c.Bool("quiet"))
	}

	if runErr != nil {
		os.Exit(2)
	}
	if stats.Failed > 0 {
		os.Exit(1)
	}
	return nil
}

func printSummary(report RunReport, quiet bool) {
	fmt.Printf("r/%s: %d scanned, %d replied, %d skipped, %d failed\n",
		report.Subreddit, report.Stats.Scanned, report.Stats.Replied,
		report.Stats.Skipped, report.Stats.Failed)

	for _, r := range report.Results {
		line := fmt.Sprintf("  [%s] %s", r.Outcome, r.Title)
		if r.Word != "" {
			line += fmt.Sprintf(" (word: %s)", r.Word)
		}
		if r.Reason != "" {
			line += fmt.Sprintf(" - %s", r.Reason)
		}
		fmt.Println(line)
	}

	if quiet {
		return
	}
	fmt.Printf("\nCommands:\n")
	fmt.Printf("  wortbot ledger posts      # List recorded replies\n")
	fmt.Printf("  wortbot ledger runs       # List past scan runs\n")
	fmt.Printf("  wortbot lookup <word>     # Preview a reply without posting\n")
}
