package scan

import (
	"github.com/deutschesbot/wortbot/models"
)

// Result holds the outcome of a single scanned post.
type Result struct {
	Post        models.Post
	Outcome     models.Outcome
	Word        string
	Translation string
}

// ResultOutput is the structured per-post output for the run report.
type ResultOutput struct {
	PostID    string `json:"post_id" yaml:"post_id"`
	Title     string `json:"title" yaml:"title"`
	Word      string `json:"word,omitempty" yaml:"word,omitempty"`
	Outcome   string `json:"outcome" yaml:"outcome"`
	Reason    string `json:"reason,omitempty" yaml:"reason,omitempty"`
	Permalink string `json:"permalink,omitempty" yaml:"permalink,omitempty"`
}

// RunReport is the structured output for the entire run.
type RunReport struct {
	Status    string         `json:"status" yaml:"status"`
	Subreddit string         `json:"subreddit" yaml:"subreddit"`
	Results   []ResultOutput `json:"results" yaml:"results"`
	Stats     Stats          `json:"stats" yaml:"stats"`
}

// Stats provides summary statistics for a scan run.
type Stats struct {
	Scanned          int     `json:"scanned" yaml:"scanned"`
	Replied          int     `json:"replied" yaml:"replied"`
	Skipped          int     `json:"skipped" yaml:"skipped"`
	Failed           int     `json:"failed" yaml:"failed"`
	TotalTimeSeconds float64 `json:"total_time_seconds" yaml:"total_time_seconds"`
}

// BuildReport converts raw results into the run report printed at the
// end of a scan.
func BuildReport(subreddit string, results []Result, stats Stats) RunReport {
	report := RunReport{
		Subreddit: subreddit,
		Results:   make([]ResultOutput, 0, len(results)),
		Stats:     stats,
	}

	for _, r := range results {
		report.Results = append(report.Results, ResultOutput{
			PostID:    r.Post.ID,
			Title:     r.Post.Title,
			Word:      r.Word,
			Outcome:   string(r.Outcome.Kind),
			Reason:    r.Outcome.Reason,
			Permalink: r.Post.Permalink,
		})
	}

	if stats.Failed > 0 {
		report.Status = "partial_failure"
	} else {
		report.Status = "success"
	}
	return report
}
