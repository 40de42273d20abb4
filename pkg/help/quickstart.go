package help

const QuickstartYAML = `# wortbot Quick Start

credentials:
  reddit: "Create a script-type app at https://www.reddit.com/prefs/apps"
  pons: "Request a free dictionary API key at https://en.pons.com/p/online-dictionary/developers/api"

config_file: |
  # config.yaml (or point CONFIG_PATH somewhere else)
  pons:
    key: "<pons-api-key>"
  reddit:
    client_id: "<app-id>"
    client_secret: "<app-secret>"
    username: "<bot-account>"
    password: "<bot-password>"
  bot:
    subreddit: "DeutschesBot"
    post_limit: 5
    sleep: 90s
    db_path: "wortbot.db"
  log:
    level: "info"
    format: "text"

environment:
  - "Every key can come from the environment instead: PONS_KEY, REDDIT_CLIENT_ID, REDDIT_CLIENT_SECRET, ..."
  - "Environment values win over the config file"

commands:
  check_setup: |
    wortbot doctor

  try_a_word: |
    wortbot lookup Fernweh

  rehearse: |
    wortbot scan --dry-run

  scan_once: |
    wortbot scan

  inspect_ledger: |
    wortbot ledger posts
    wortbot ledger runs
    wortbot ledger words
    wortbot ledger show <post_id>

scheduling:
  - "One scan pass handles the newest posts and exits"
  - "Run it from cron or a systemd timer; the ledger keeps reruns idempotent"
  - "The bot pauses between posts (default 90s) to stay inside API quotas"

error_behavior:
  - "Posts without a usable word or dictionary hit are logged and the scan continues"
  - "A broken ledger aborts the scan so nothing is ever answered twice"
  - "Exit codes: 0=success, 1=some posts failed, 2=scan aborted"
`
