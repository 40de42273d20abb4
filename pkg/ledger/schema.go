package ledger

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Posts: one row per submission the bot has replied to. The post id
-- is the forum's own id; its presence is what makes a post "visited".
CREATE TABLE IF NOT EXISTS posts (
    post_id TEXT PRIMARY KEY,
    link TEXT NOT NULL,
    word TEXT NOT NULL,
    translation TEXT NOT NULL,
    raw_result TEXT,              -- JSON-serialized lookup result
    subreddit TEXT,
    replied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_posts_word ON posts(word);
CREATE INDEX IF NOT EXISTS idx_posts_replied ON posts(replied_at DESC);
CREATE INDEX IF NOT EXISTS idx_posts_subreddit ON posts(subreddit);

-- Runs: one row per scan invocation, with its outcome counters
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    started_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    finished_at TIMESTAMP,
    subreddit TEXT NOT NULL,
    scanned INTEGER DEFAULT 0,
    replied INTEGER DEFAULT 0,
    skipped INTEGER DEFAULT 0,
    failed INTEGER DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at DESC);
`
