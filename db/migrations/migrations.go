package migrations

import "embed"

// FS embeds the SQL migrations of both backends. Postgres files live under
// postgres/ and SQLite files under sqlite/; golang-migrate reads them via
// the iofs source driver.
//
//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS

const (
	PostgresDir = "postgres"
	SQLiteDir   = "sqlite"
)

// Version is the schema version both backends are migrated to.
const Version = 1
