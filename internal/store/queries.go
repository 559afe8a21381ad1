package store

// SQL text lives in named consts, matching the teacher's
// internal/indexer/queries.go layout. Placeholders use sqlx's ? style
// since modernc.org/sqlite expects SQLite's native bind syntax.
const (
	insertDoc = `INSERT INTO docs (did, title, url) VALUES (?, ?, ?)
		ON CONFLICT(did) DO UPDATE SET title = excluded.title, url = excluded.url`

	insertTF = `INSERT INTO tfs (did, term, tf) VALUES (?, ?, ?)
		ON CONFLICT(did, term) DO UPDATE SET tf = excluded.tf`

	insertBoost = `INSERT INTO boost (did, date, page) VALUES (?, ?, ?)
		ON CONFLICT(did) DO UPDATE SET date = excluded.date, page = excluded.page`

	selectPostingsForTerm = `
		SELECT tfs.did, tfs.tf, boost.page, boost.date
		FROM tfs
		JOIN boost ON boost.did = tfs.did
		WHERE tfs.term = ?
		ORDER BY tfs.did ASC`

	selectDoc            = `SELECT title, url FROM docs WHERE did = ?`
	selectDF             = `SELECT df FROM dfs WHERE term = ?`
	selectCollectionSize = `SELECT size FROM d LIMIT 1`
	selectDocLength      = `SELECT len FROM dls WHERE did = ?`
	selectPage           = `SELECT page FROM boost WHERE did = ?`
	selectDate           = `SELECT date FROM boost WHERE did = ?`
	selectMaxPage        = `SELECT max_page FROM max_page LIMIT 1`
	selectTermUpperBound = `SELECT max FROM ub WHERE term = ?`

	buildDLS = `INSERT INTO dls (did, len)
		SELECT did, SUM(tf) FROM tfs GROUP BY did`

	buildDFS = `INSERT INTO dfs (term, df)
		SELECT term, COUNT(tf) FROM tfs GROUP BY term`

	buildD = `INSERT INTO d (size)
		SELECT COUNT(DISTINCT did) FROM tfs`

	buildMaxPage = `INSERT INTO max_page (max_page)
		SELECT COALESCE(MAX(page), 0) FROM boost`

	buildUB = `INSERT INTO ub (term, max)
		SELECT term, MAX(tf) FROM tfs GROUP BY term`
)

// clearDerived empties the five derived tables before stats.Build
// recomputes them, so Build stays idempotent even when called twice.
var clearDerived = []string{
	`DELETE FROM dls`,
	`DELETE FROM dfs`,
	`DELETE FROM d`,
	`DELETE FROM max_page`,
	`DELETE FROM ub`,
}
