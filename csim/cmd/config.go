package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/sarchlab/csim/mem/cache"
)

// ConfigurationError reports a command line that cannot start a simulation.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string {
	return e.Msg
}

var errMissingArgument = &ConfigurationError{
	Msg: "Missing required command line argument",
}

// Environment variables that provide defaults for flags left unset.
var envOfFlag = map[string]string{
	"set-bits":     "CSIM_S",
	"lines":        "CSIM_E",
	"block-bits":   "CSIM_B",
	"trace":        "CSIM_TRACE",
	"record":       "CSIM_RECORD",
	"results-file": "CSIM_RESULTS_FILE",
}

type config struct {
	log2NumSets      int
	wayAssociativity int
	log2BlockSize    int
	tracePath        string
	verbose          bool
	noColor          bool
	perSet           bool
	resultsFile      string
	record           string
}

func (c config) geometry() cache.Geometry {
	return cache.Geometry{
		Log2NumSets:      uint(c.log2NumSets),
		WayAssociativity: c.wayAssociativity,
		Log2BlockSize:    uint(c.log2BlockSize),
	}
}

// loadDotEnv reads KEY=value pairs from path into the environment without
// overriding variables that are already set. A missing file is not an error.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return err
}

// applyEnv fills every flag the user did not set from its environment
// variable, if there is one.
func applyEnv(flags *pflag.FlagSet) error {
	for name, env := range envOfFlag {
		flag := flags.Lookup(name)
		if flag == nil || flag.Changed {
			continue
		}

		value, ok := os.LookupEnv(env)
		if !ok || value == "" {
			continue
		}

		if err := flags.Set(name, value); err != nil {
			return &ConfigurationError{
				Msg: fmt.Sprintf("invalid %s=%q: %v", env, value, err),
			}
		}
	}

	return nil
}

// validate rejects configurations with a required parameter missing. Zero
// counts as missing for the three geometry parameters.
func (c config) validate() error {
	if c.log2NumSets <= 0 || c.wayAssociativity <= 0 ||
		c.log2BlockSize <= 0 || c.tracePath == "" {
		return errMissingArgument
	}

	if err := c.geometry().Validate(); err != nil {
		return &ConfigurationError{Msg: err.Error()}
	}

	return nil
}
