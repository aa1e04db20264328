package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS launch_records (
    file_path            TEXT NOT NULL REFERENCES file_tracker(file_path) ON DELETE CASCADE,
    row_idx              INTEGER NOT NULL,
    launch_site          TEXT NOT NULL,
    payload_kg           REAL NOT NULL,
    class                INTEGER NOT NULL,
    booster_category     TEXT NOT NULL,
    PRIMARY KEY (file_path, row_idx)
);

CREATE TABLE IF NOT EXISTS file_tracker (
    file_path            TEXT PRIMARY KEY,
    mtime_ns             INTEGER NOT NULL,
    size_bytes           INTEGER NOT NULL,
    row_count            INTEGER NOT NULL,
    lines                INTEGER NOT NULL DEFAULT 0,
    parsed_at            TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_launch_records_site ON launch_records(launch_site);
`
