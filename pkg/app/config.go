// Copyright 2024 The Solaris Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package app

import (
	"encoding/json"
	"fmt"

	"github.com/solarisdb/lazyseq/golibs/cast"
	"github.com/solarisdb/lazyseq/golibs/config"
	"github.com/solarisdb/lazyseq/golibs/logging"
)

type (
	// Config defines the lazyseq configuration
	Config struct {
		// LogLevel is one of error, warn, info, debug or trace
		LogLevel string `json:"logLevel"`
		// Demos contains the glob patterns of the demos to run
		Demos []string `json:"demos"`
		// Producer is the configuration of the Pair built by the next command
		Producer ProducerConfig `json:"producer"`
	}

	// ProducerConfig contains the values of a Pair and the number of Next() calls
	ProducerConfig struct {
		First  string `json:"first"`
		Second string `json:"second"`
		// Calls is the number of Next() calls, nil means defaultCalls
		Calls *int `json:"calls,omitempty"`
	}
)

const (
	envPrefix    = "LAZYSEQ"
	defaultCalls = 4
)

// getDefaultConfig returns the default config
func getDefaultConfig() *Config {
	return &Config{
		LogLevel: "warn",
		Demos:    []string{"*"},
		Producer: ProducerConfig{
			First:  "first_string",
			Second: "second_string",
			Calls:  cast.Ptr(defaultCalls),
		},
	}
}

// BuildConfig builds the configuration: the defaults are overwritten by the
// values from cfgFile (if provided), then by the LAZYSEQ_* environment variables.
func BuildConfig(cfgFile string) (*Config, error) {
	log := logging.NewLogger("lazyseq.ConfigBuilder")
	log.Infof("trying to build config. cfgFile=%s", cfgFile)
	e := config.NewEnricher(*getDefaultConfig())
	fe := config.NewEnricher(Config{})
	if err := fe.LoadFromFile(cfgFile); err != nil {
		return nil, fmt.Errorf("could not read data from the file %s: %w", cfgFile, err)
	}
	// overwrite default
	_ = e.ApplyOther(fe)
	_ = e.ApplyEnvVariables(envPrefix, "_")
	cfg := e.Value()
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// String implements fmt.Stringer interface in a pretty console form
func (c *Config) String() string {
	b, _ := json.MarshalIndent(*c, "", "  ")
	return string(b)
}

// calls returns the number of Next() calls to make, it is never negative
func (pc ProducerConfig) calls() int {
	return max(cast.Value(pc.Calls, defaultCalls), 0)
}
