package repositories

import "strings"

// Open dispatches a connection target to a store backend. Targets prefixed
// with "sqlite:" open a SQLite database at the remaining DSN; anything else
// is treated as a Badger directory path.
func Open(target string) (PostRepository, error) {
	if dsn, ok := strings.CutPrefix(target, "sqlite:"); ok {
		return OpenSQLite(dsn)
	}
	return OpenBadger(target)
}
