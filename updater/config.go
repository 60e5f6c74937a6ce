// Copyright 2026 Capgemini
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package updater

import (
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
	"sigs.k8s.io/yaml"
)

// DefaultConfigFile is the optional per-repository configuration file,
// looked up at the repository root.
const DefaultConfigFile = ".update-headers.yml"

// Defaults reproduce the headers historically used in SoSTrades repositories.
const (
	defaultOriginCopyright = "Copyright 2022 Airbus SAS"
	defaultCopyright       = "Copyright %d Capgemini"
)

// Config controls the copyright lines baked into the header templates.
type Config struct {
	// OriginCopyright is the copyright line of files that predate the
	// current maintainer. Its year is fixed, not templated.
	OriginCopyright string `json:"origin_copyright"`

	// Copyright is the current maintainer's copyright line. It must contain
	// exactly one %d verb, filled with the year of the run.
	Copyright string `json:"copyright"`

	// License optionally points to a file whose contents replace the
	// embedded license body.
	License string `json:"license"`
}

// DefaultConfig returns the configuration used when no config file is
// present.
func DefaultConfig() Config {
	return Config{
		OriginCopyright: defaultOriginCopyright,
		Copyright:       defaultCopyright,
	}
}

// LoadConfig reads the YAML configuration from path. A missing file is not an
// error and yields DefaultConfig; an unreadable or invalid one is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse %s", path)
	}
	if err := cfg.validate(); err != nil {
		return cfg, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

func (c Config) validate() error {
	var errs []error
	if c.OriginCopyright == "" {
		errs = append(errs, errors.New("origin_copyright must not be empty"))
	}
	if strings.Count(c.Copyright, "%d") != 1 {
		errs = append(errs, errors.New("copyright must contain exactly one %d year verb"))
	}
	if strings.Contains(c.Copyright, "\n") || strings.Contains(c.OriginCopyright, "\n") {
		errs = append(errs, errors.New("copyright lines must be single lines"))
	}
	return errors.Join(errs...)
}

// EnvOverrides are settings read from the process environment. They take
// precedence over the config file.
type EnvOverrides struct {
	Config  string `env:"UPDATE_HEADERS_CONFIG"`
	License string `env:"UPDATE_HEADERS_LICENSE"`
	Verbose bool   `env:"UPDATE_HEADERS_VERBOSE"`
}

var envKeys = []string{
	"UPDATE_HEADERS_CONFIG",
	"UPDATE_HEADERS_LICENSE",
	"UPDATE_HEADERS_VERBOSE",
}

// ParseEnv reads overrides through getenv, which is injected so callers can
// stay hermetic in tests.
func ParseEnv(getenv func(string) string) (EnvOverrides, error) {
	environment := make(map[string]string)
	for _, key := range envKeys {
		if v := getenv(key); v != "" {
			environment[key] = v
		}
	}

	var o EnvOverrides
	if err := env.ParseWithOptions(&o, env.Options{Environment: environment}); err != nil {
		return o, errors.Wrap(err, "parse environment")
	}
	return o, nil
}
