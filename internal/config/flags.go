package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmarques2003/gradekeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   PostgreSQL DSN
//	-u string   seed secretariat username
//	-w string   seed secretariat password
//	-b int      bcrypt cost
//	-p int      DB ping timeout, seconds
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components (and with the
// -c/-config flags handled by the JSON overlay).
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-u", "-w", "-b", "-p"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SeedUsername, "u", config.SeedUsername, "seed secretariat username")
	fs.StringVar(&config.SeedPassword, "w", config.SeedPassword, "seed secretariat password")
	fs.IntVar(&config.BcryptCost, "b", config.BcryptCost, "bcrypt cost")

	pingTimeout := fs.Int("p", int(config.DBPingTimeout.Seconds()), "db ping timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.DBPingTimeout = time.Duration(*pingTimeout) * time.Second
}
