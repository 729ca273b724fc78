// internal/config/model.go
//
// Typed configuration model for bookcheck.
//
// The loader builds this tree from defaults, an optional `.env`, an
// optional YAML file, and `BOOKCHECK_`-prefixed environment variables.
// CLI flags are applied on top by cmd/app.  Validation runs after every
// layer is merged.

package config

// Log holds logger tunables.
type Log struct {
	Level   string `koanf:"level"   validate:"required,oneof=debug info warn error"`
	Dir     string `koanf:"dir"`
	Console bool   `koanf:"console"`
}

// Metrics controls the prometheus textfile written when a run ends.
type Metrics struct {
	Textfile string `koanf:"textfile"`
}

// Output controls how `load` prints books.
type Output struct {
	Format string `koanf:"format" validate:"required,oneof=text json"`
}

// Config is the aggregate returned by Load.
type Config struct {
	Log     Log     `koanf:"log"`
	Metrics Metrics `koanf:"metrics"`
	Output  Output  `koanf:"output"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Log:    Log{Level: "info", Console: true},
		Output: Output{Format: "text"},
	}
}
