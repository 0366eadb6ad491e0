// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/consensys/go-differ/pkg/differ"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

// Config captures the settings of a single command-line session: the
// capacities of the differentiation context, whether evaluation is strict,
// and the values bound to variables.
type Config struct {
	Context differ.Config
	// Strict evaluation reports numeric anomalies as errors.
	Strict bool
	// Bindings maps variable names to values.
	Bindings map[string]float64
}

// configFile is the YAML form of a session configuration.  Fields are
// pointers so that absent keys leave the defaults untouched.
type configFile struct {
	MaxVariables  *uint              `yaml:"max-variables"`
	MaxNameLength *uint              `yaml:"max-name-length"`
	Strict        *bool              `yaml:"strict"`
	Bindings      map[string]float64 `yaml:"bindings"`
}

// DefaultConfig returns the session configuration used when neither a
// configuration file nor any flags are given.
func DefaultConfig() Config {
	return Config{differ.DefaultConfig(), false, make(map[string]float64)}
}

// ParseConfig reads a YAML session configuration on top of the given one.
// Unknown keys are reported as errors.
func ParseConfig(bytes []byte, config Config) (Config, error) {
	var file configFile
	//
	if err := yaml.UnmarshalStrict(bytes, &file); err != nil {
		return config, err
	}
	//
	if file.MaxVariables != nil {
		config.Context.MaxVariables = *file.MaxVariables
	}
	//
	if file.MaxNameLength != nil {
		config.Context.MaxNameLength = *file.MaxNameLength
	}
	//
	if file.Strict != nil {
		config.Strict = *file.Strict
	}
	//
	bindings := make(map[string]float64, len(config.Bindings)+len(file.Bindings))
	maps.Copy(bindings, config.Bindings)
	maps.Copy(bindings, file.Bindings)
	config.Bindings = bindings
	//
	return config, nil
}

// ReadConfigFile reads a YAML session configuration from disk, starting from
// the default configuration.
func ReadConfigFile(filename string) (Config, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return DefaultConfig(), err
	}
	//
	config, err := ParseConfig(bytes, DefaultConfig())
	if err != nil {
		return config, fmt.Errorf("%s: %w", filename, err)
	}
	//
	return config, nil
}

// ParseBindings parses variable bindings of the form "name=value".  Later
// bindings for the same name override earlier ones.
func ParseBindings(items []string) (map[string]float64, error) {
	bindings := make(map[string]float64)
	//
	for _, item := range items {
		name, value, ok := strings.Cut(item, "=")
		name = strings.TrimSpace(name)
		//
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid binding \"%s\" (expected name=value)", item)
		}
		//
		number, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value for \"%s\": %w", name, err)
		}
		//
		bindings[name] = number
	}
	//
	return bindings, nil
}

// sessionConfig determines the configuration for a command by reading the
// configuration file (if given) and then applying any explicit flags.
func sessionConfig(cmd *cobra.Command) (Config, error) {
	var (
		config = DefaultConfig()
		flags  = cmd.Flags()
		err    error
	)
	//
	if filename := GetString(cmd, "config"); filename != "" {
		if config, err = ReadConfigFile(filename); err != nil {
			return config, err
		}
	}
	//
	if flags.Changed("max-vars") {
		config.Context.MaxVariables = GetUint(cmd, "max-vars")
	}
	//
	if flags.Changed("max-name") {
		config.Context.MaxNameLength = GetUint(cmd, "max-name")
	}
	//
	if flags.Changed("strict") {
		config.Strict = GetFlag(cmd, "strict")
	}
	//
	bindings, err := ParseBindings(GetStringArray(cmd, "set"))
	if err != nil {
		return config, err
	}
	//
	maps.Copy(config.Bindings, bindings)
	//
	return config, nil
}

// Names of all bound variables, in sorted order.
func (c Config) boundNames() []string {
	return slices.Sorted(maps.Keys(c.Bindings))
}
