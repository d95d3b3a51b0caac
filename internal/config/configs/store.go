package configs

import (
	"fmt"
	"strings"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Store selects which database backs the repositories.
type Store struct {
	// Driver is either "postgres" or "sqlite".
	Driver string `env:"DRIVER" envDefault:"postgres"`
}

// Name returns the normalised driver name.
func (c Store) Name() string {
	return strings.ToLower(strings.TrimSpace(c.Driver))
}

// Validate rejects unknown drivers.
func (c Store) Validate() error {
	switch c.Name() {
	case DriverPostgres, DriverSQLite:
		return nil
	default:
		return fmt.Errorf("unsupported driver %q", c.Driver)
	}
}
