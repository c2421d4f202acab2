package db

import (
	"strings"

	"github.com/teranos/parkour/errors"
)

// ErrDatabaseClosed is returned when the score database is used after Close,
// typically by a payout or watch goroutine still draining during shutdown.
var ErrDatabaseClosed = errors.New("database is closed")

// IsDatabaseClosed reports whether err is ErrDatabaseClosed or a raw driver
// error carrying the same meaning.
func IsDatabaseClosed(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrDatabaseClosed) {
		return true
	}
	// database/sql returns its own unexported error value here
	return strings.Contains(err.Error(), "database is closed")
}

// IsBusy reports whether err is SQLite refusing a write because another
// connection holds the lock past SQLiteBusyTimeoutMS.
func IsBusy(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "database is locked") || strings.Contains(msg, "SQLITE_BUSY")
}
