package configs

import "time"

// SQLite holds configuration for the embedded database file.
type SQLite struct {
	// Path is the database file. It is created when missing.
	Path string `env:"PATH" envDefault:"promoted-ads.db"`
	// BusyTimeout is how long a writer waits for a lock before failing.
	BusyTimeout time.Duration `env:"BUSY_TIMEOUT" envDefault:"5s"`
}
