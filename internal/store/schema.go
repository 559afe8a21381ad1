package store

// schema is the DDL for the eight logical tables of spec.md §4.3, applied
// once when a Store is opened. SQLite accepts IF NOT EXISTS so re-opening
// an existing database file is a no-op here. Kept as one statement per
// slice entry, executed individually by Open, rather than one semicolon-
// joined string, matching the same multi-statement caution applied to
// clearDerived.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS docs (
		did   INTEGER PRIMARY KEY,
		title TEXT NOT NULL,
		url   TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS tfs (
		did  INTEGER NOT NULL,
		term TEXT NOT NULL,
		tf   REAL NOT NULL,
		PRIMARY KEY (did, term)
	)`,
	`CREATE TABLE IF NOT EXISTS boost (
		did  INTEGER PRIMARY KEY,
		date INTEGER NOT NULL,
		page INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS dls (
		did INTEGER PRIMARY KEY,
		len REAL NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS dfs (
		term TEXT PRIMARY KEY,
		df   INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS d (
		size INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS max_page (
		max_page INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS ub (
		term TEXT PRIMARY KEY,
		max  REAL NOT NULL
	)`,
}

// indices are the six auxiliary lookup indexes spec.md §4.3 names, built
// by BuildIndices after statistics have been derived and bulk inserts are
// complete (index-after-load is cheaper than index-during-load).
var indices = []string{
	`CREATE INDEX IF NOT EXISTS idx_tfs_term_did ON tfs (term, did)`,
	`CREATE INDEX IF NOT EXISTS idx_tfs_did ON tfs (did)`,
	`CREATE INDEX IF NOT EXISTS idx_dfs_term_df ON dfs (term, df)`,
	`CREATE INDEX IF NOT EXISTS idx_dls_did_len ON dls (did, len)`,
	`CREATE INDEX IF NOT EXISTS idx_ub_term ON ub (term)`,
	`CREATE INDEX IF NOT EXISTS idx_boost_did_date_page ON boost (did, date, page)`,
}
