package lookup

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/deutschesbot/wortbot/internal/common"
	"github.com/deutschesbot/wortbot/internal/config"
	"github.com/deutschesbot/wortbot/pkg/pons"
	"github.com/deutschesbot/wortbot/pkg/reply"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// LookupAction resolves one word against the dictionary and prints the
// reply the bot would post. No forum access, no ledger entry.
func LookupAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("word required\nUsage: wortbot lookup <word>\nExample: wortbot lookup Fernweh")
	}
	if c.NArg() > 1 {
		return fmt.Errorf("one word at a time\nUsage: wortbot lookup <word>")
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if c.Bool("quiet") {
		cfg.Log.Level = "error"
	}
	logger := common.NewLogger(cfg.Log)

	if err := cfg.Validate(); err != nil {
		logger.Error("configuration incomplete", "error", err)
		os.Exit(2)
	}

	dict := pons.New(pons.Config{
		Secret:     cfg.Pons.Key,
		APIURL:     cfg.Pons.APIURL,
		PageURL:    cfg.Pons.PageURL,
		Dictionary: cfg.Pons.Dictionary,
		SourceLang: cfg.Pons.SourceLang,
		TargetLang: cfg.Pons.TargetLang,
	})

	word := c.Args().First()
	logger.Info("Looking up word", "word", word)
	entry, err := dict.Lookup(c.Context, word)
	if err != nil {
		return fmt.Errorf("lookup failed for %q: %w", word, err)
	}

	switch strings.ToLower(c.String("format")) {
	case "json":
		data, err := json.MarshalIndent(entry, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal entry: %w", err)
		}
		fmt.Println(string(data))
	case "yaml":
		data, err := yaml.Marshal(entry)
		if err != nil {
			return fmt.Errorf("failed to marshal entry: %w", err)
		}
		fmt.Print(string(data))
	default:
		fmt.Println(reply.Format(entry))
	}
	return nil
}
