package ledger

import (
	"fmt"
	"testing"
)

// setupTestLedger creates an in-memory SQLite ledger for testing
func setupTestLedger(t *testing.T) *Ledger {
	t.Helper()

	// Use in-memory database for tests
	l := &Ledger{path: ":memory:"}
	var err error
	l.DB, err = openDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := l.InitSchema(); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	return l
}

func TestHasReplied(t *testing.T) {
	l := setupTestLedger(t)
	defer l.Close()

	replied, err := l.HasReplied("abc123")
	if err != nil {
		t.Fatalf("HasReplied() error = %v", err)
	}
	if replied {
		t.Error("HasReplied() = true for empty ledger")
	}

	err = l.Record(Entry{
		PostID:      "abc123",
		Link:        "https://reddit.com/r/DeutschesBot/comments/abc123",
		Word:        "Fernweh",
		Translation: "wanderlust",
		RawResult:   `{"word":"Fernweh"}`,
		Subreddit:   "DeutschesBot",
	})
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	replied, err = l.HasReplied("abc123")
	if err != nil {
		t.Fatalf("HasReplied() error = %v", err)
	}
	if !replied {
		t.Error("HasReplied() = false after Record()")
	}
}

func TestRecordRejectsDuplicatePost(t *testing.T) {
	l := setupTestLedger(t)
	defer l.Close()

	entry := Entry{
		PostID:      "dup001",
		Link:        "https://reddit.com/r/DeutschesBot/comments/dup001",
		Word:        "Zeit",
		Translation: "time",
	}

	if err := l.Record(entry); err != nil {
		t.Fatalf("first Record() error = %v", err)
	}
	if err := l.Record(entry); err == nil {
		t.Error("second Record() for same post should fail on primary key")
	}
}

func TestFindPost(t *testing.T) {
	l := setupTestLedger(t)
	defer l.Close()

	want := Entry{
		PostID:      "xyz789",
		Link:        "https://reddit.com/r/DeutschesBot/comments/xyz789",
		Word:        "Wunde",
		Translation: "wound",
		RawResult:   `{"word":"Wunde","translation":"wound"}`,
		Subreddit:   "DeutschesBot",
	}
	if err := l.Record(want); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	got, err := l.FindPost("xyz789")
	if err != nil {
		t.Fatalf("FindPost() error = %v", err)
	}
	if got == nil {
		t.Fatal("FindPost() = nil for recorded post")
	}

	if got.PostID != want.PostID {
		t.Errorf("PostID = %q, want %q", got.PostID, want.PostID)
	}
	if got.Word != want.Word {
		t.Errorf("Word = %q, want %q", got.Word, want.Word)
	}
	if got.Translation != want.Translation {
		t.Errorf("Translation = %q, want %q", got.Translation, want.Translation)
	}
	if got.RawResult != want.RawResult {
		t.Errorf("RawResult = %q, want %q", got.RawResult, want.RawResult)
	}
	if got.Subreddit != want.Subreddit {
		t.Errorf("Subreddit = %q, want %q", got.Subreddit, want.Subreddit)
	}
	if got.RepliedAt.IsZero() {
		t.Error("RepliedAt is zero, want database timestamp")
	}

	// Unknown posts come back as nil, not an error
	missing, err := l.FindPost("nope")
	if err != nil {
		t.Fatalf("FindPost() error = %v", err)
	}
	if missing != nil {
		t.Errorf("FindPost() = %+v for unknown post, want nil", missing)
	}
}

func TestListPostsNewestFirst(t *testing.T) {
	l := setupTestLedger(t)
	defer l.Close()

	for _, id := range []string{"post1", "post2", "post3"} {
		err := l.Record(Entry{PostID: id, Link: "https://example.test/" + id, Word: "Wort", Translation: "word"})
		if err != nil {
			t.Fatalf("Record(%s) error = %v", id, err)
		}
	}

	entries, err := l.ListPosts(2)
	if err != nil {
		t.Fatalf("ListPosts() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("ListPosts(2) returned %d entries", len(entries))
	}
	if entries[0].PostID != "post3" || entries[1].PostID != "post2" {
		t.Errorf("ListPosts() order = [%s %s], want [post3 post2]", entries[0].PostID, entries[1].PostID)
	}

	count, err := l.CountPosts()
	if err != nil {
		t.Fatalf("CountPosts() error = %v", err)
	}
	if count != 3 {
		t.Errorf("CountPosts() = %d, want 3", count)
	}
}

func TestTopWords(t *testing.T) {
	l := setupTestLedger(t)
	defer l.Close()

	words := []string{"Zeit", "Fernweh", "Zeit", "Messer", "Zeit", "Fernweh"}
	for i, w := range words {
		err := l.Record(Entry{PostID: fmt.Sprintf("post%d", i), Word: w, Translation: "x"})
		if err != nil {
			t.Fatalf("Record() error = %v", err)
		}
	}

	counts, err := l.TopWords(2)
	if err != nil {
		t.Fatalf("TopWords() error = %v", err)
	}
	if len(counts) != 2 {
		t.Fatalf("TopWords(2) returned %d rows", len(counts))
	}
	if counts[0].Word != "Zeit" || counts[0].Count != 3 {
		t.Errorf("top word = %s (%d), want Zeit (3)", counts[0].Word, counts[0].Count)
	}
	if counts[1].Word != "Fernweh" || counts[1].Count != 2 {
		t.Errorf("second word = %s (%d), want Fernweh (2)", counts[1].Word, counts[1].Count)
	}
}

func TestRunLifecycle(t *testing.T) {
	l := setupTestLedger(t)
	defer l.Close()

	runID, err := l.StartRun("DeutschesBot")
	if err != nil {
		t.Fatalf("StartRun() error = %v", err)
	}
	if runID == 0 {
		t.Fatal("StartRun() returned 0 ID")
	}

	stats := RunStats{Scanned: 5, Replied: 2, Skipped: 2, Failed: 1}
	if err := l.FinishRun(runID, stats); err != nil {
		t.Fatalf("FinishRun() error = %v", err)
	}

	runs, err := l.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("ListRuns() returned %d runs, want 1", len(runs))
	}

	run := runs[0]
	if run.RunID != runID {
		t.Errorf("RunID = %d, want %d", run.RunID, runID)
	}
	if run.Subreddit != "DeutschesBot" {
		t.Errorf("Subreddit = %q", run.Subreddit)
	}
	if run.Stats != stats {
		t.Errorf("Stats = %+v, want %+v", run.Stats, stats)
	}
	if !run.FinishedAt.Valid {
		t.Error("FinishedAt not set by FinishRun()")
	}
}
