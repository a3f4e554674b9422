// Package cmd implements the tick CLI application.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/etnz/ticker"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Commands is the list of subcommands to register in a main.
var Commands = []subcommands.Command{
	&valueCmd{},
	&quoteCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var envFile = flag.String("env-file", ".env", "Path to the key-value file holding the configuration")
var baseURL = flag.String("base", "", "Override the finance host serving the quote pages")
var poolSize = flag.Int("n", 0, "Number of browser header sets to request per fetch (default 3)")

// apiKeyVar is the configuration key holding the header-rotation service API key.
const apiKeyVar = "SCRAPEOPS_API_KEY"

// newClient loads the configuration and builds the quote client.
//
// The API key comes from the env file, or from the environment when the file
// does not define it. A missing key is a configuration defect reported here,
// at startup, before any fetch is attempted.
func newClient() (*ticker.Client, error) {
	env, err := godotenv.Read(*envFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("cannot read config file %q: %w", *envFile, err)
	}

	key := env[apiKeyVar]
	if key == "" {
		key = os.Getenv(apiKeyVar)
	}
	if key == "" {
		return nil, fmt.Errorf("%s is not set: add it to %q or to the environment", apiKeyVar, *envFile)
	}

	c := ticker.NewClient(&ticker.ScrapeOps{APIKey: key, PoolSize: *poolSize})
	c.Base = *baseURL
	return c, nil
}
