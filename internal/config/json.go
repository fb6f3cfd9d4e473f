package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmarques2003/gradekeeper/internal/flagx"
	"github.com/dmarques2003/gradekeeper/internal/timex"
)

// JsonConfig is an intermediate DTO used only for reading JSON configuration
// files. It uses timex.Duration for interval fields, which accepts both
// string values such as "30s" and integer nanoseconds. After unmarshalling,
// non-empty fields are copied into the runtime Config.
type JsonConfig struct {
	DatabaseDSN   string         `json:"database_dsn"`
	SeedUsername  string         `json:"seed_username"`
	SeedPassword  string         `json:"seed_password"`
	BcryptCost    int            `json:"bcrypt_cost"`
	DBPingTimeout timex.Duration `json:"db_ping_timeout"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config command-line
// flags; when neither is set, nothing is loaded. An unreadable or invalid
// file panics: a half-applied config is worse than no start.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SeedUsername != "" {
		config.SeedUsername = c.SeedUsername
	}
	if c.SeedPassword != "" {
		config.SeedPassword = c.SeedPassword
	}
	if c.BcryptCost != 0 {
		config.BcryptCost = c.BcryptCost
	}
	if c.DBPingTimeout.Duration != 0 {
		config.DBPingTimeout = time.Duration(c.DBPingTimeout.Duration)
	}
}
