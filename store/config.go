package store

import "fmt"

// Driver selects the storage backend.
type Driver string

const (
	// DriverMemory keeps all records in process memory. This is the
	// default; records do not survive a restart.
	DriverMemory Driver = "memory"

	// DriverSQLite persists records to a SQLite database file.
	DriverSQLite Driver = "sqlite"
)

// Config configures the storage backend.
type Config struct {
	// Driver is "memory" or "sqlite" (default: "memory").
	Driver Driver `yaml:"driver" mapstructure:"driver"`

	// Path is the SQLite database file. Only used with the sqlite driver.
	Path string `yaml:"path" mapstructure:"path"`

	// LogQueries enables SQL statement logging. Only used with the sqlite
	// driver.
	LogQueries bool `yaml:"log_queries" mapstructure:"log_queries"`
}

// ApplyDefaults sets sensible defaults for zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.Driver == "" {
		c.Driver = DriverMemory
	}
	if c.Path == "" {
		c.Path = "data/inventario.db"
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	switch c.Driver {
	case DriverMemory, DriverSQLite:
		return nil
	default:
		return fmt.Errorf("store.driver must be memory or sqlite (got: %s)", c.Driver)
	}
}

// New creates a Store from configuration.
func New(cfg Config) (Store, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Driver {
	case DriverSQLite:
		return NewDatabase(cfg)
	default:
		return NewMemory(), nil
	}
}
