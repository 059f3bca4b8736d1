/*
 * Copyright 2021-2022 by Nedim Sabic Sabic
 * https://www.fibratus.io
 * All Rights Reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rabbitstack/wincall/pkg/util/log"
	"github.com/rabbitstack/wincall/pkg/util/multierror"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	configFile = "config-file"
	envPrefix  = "wincall"
)

// Config stores configuration options for fine-tuning the behaviour of wincall.
type Config struct {
	// TAPI contains the settings for the telephony sessions.
	TAPI TAPIConfig `json:"tapi" yaml:"tapi"`
	// ADSI contains the directory connection and search settings.
	ADSI ADSIConfig `json:"adsi" yaml:"adsi"`
	// WEC contains the event collector subscription settings.
	WEC WECConfig `json:"wec" yaml:"wec"`
	// Log contains log-specific configuration options
	Log log.Config `json:"logging" yaml:"logging"`

	flags *pflag.FlagSet
	viper *viper.Viper
	opts  *Options
}

// Options determines which config flags are toggled depending on the command type.
type Options struct {
	tapi bool
	adsi bool
	wec  bool
}

// Option is the type alias for the config option.
type Option func(*Options)

// WithTAPI determines the telephony commands are executed.
func WithTAPI() Option {
	return func(o *Options) {
		o.tapi = true
	}
}

// WithADSI determines the directory commands are executed.
func WithADSI() Option {
	return func(o *Options) {
		o.adsi = true
	}
}

// WithWEC determines the event collector commands are executed.
func WithWEC() Option {
	return func(o *Options) {
		o.wec = true
	}
}

// WithAll toggles the flags of every section.
func WithAll() Option {
	return func(o *Options) {
		o.tapi, o.adsi, o.wec = true, true, true
	}
}

// NewWithOpts builds a new configuration store from a variety of sources such as configuration files,
// environment variables or command line flags.
func NewWithOpts(options ...Option) *Config {
	opts := &Options{}

	for _, opt := range options {
		opt(opts)
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	c := &Config{
		TAPI:  TAPIConfig{},
		ADSI:  ADSIConfig{},
		WEC:   WECConfig{},
		Log:   log.Config{},
		viper: v,
		flags: new(pflag.FlagSet),
		opts:  opts,
	}

	c.addFlags()

	return c
}

// MustViperize adds the flag set to the Cobra command and binds them within the Viper flags.
func (c *Config) MustViperize(cmd *cobra.Command) {
	cmd.PersistentFlags().AddFlagSet(c.flags)
	if err := c.viper.BindPFlags(cmd.PersistentFlags()); err != nil {
		panic(err)
	}
}

// Init setups the configuration state from Viper.
func (c *Config) Init() error {
	c.Log.InitFromViper(c.viper)

	var errs []error
	if c.opts.tapi {
		errs = append(errs, c.TAPI.initFromViper(c.viper))
	}
	if c.opts.adsi {
		errs = append(errs, c.ADSI.initFromViper(c.viper))
	}
	if c.opts.wec {
		errs = append(errs, c.WEC.initFromViper(c.viper))
	}
	return multierror.Wrap(errs...)
}

// TryLoadFile attempts to load the configuration file from specified path on the file system.
func (c *Config) TryLoadFile(file string) error {
	c.viper.SetConfigFile(file)
	return c.viper.ReadInConfig()
}

// Validate ensures that all configuration options provided by user have the expected values. It returns
// a list of validation errors prefixed with the offending configuration property/flag.
func (c *Config) Validate() error {
	file := c.File()
	b, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	var out interface{}
	switch filepath.Ext(file) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &out)
	case ".json":
		err = json.Unmarshal(b, &out)
	default:
		return fmt.Errorf("%s is not a supported config file extension", filepath.Ext(file))
	}
	if err != nil {
		return fmt.Errorf("couldn't read the config file: %v", err)
	}
	// validate config file content
	if valid, errs := validate(out); !valid || len(errs) > 0 {
		return fmt.Errorf("invalid config: %v", multierror.Wrap(errs...))
	}
	// now validate the Viper config flags
	if valid, errs := validate(c.viper.AllSettings()); !valid || len(errs) > 0 {
		return fmt.Errorf("invalid config: %v", multierror.Wrap(errs...))
	}
	return nil
}

// File returns the config file path.
func (c *Config) File() string { return c.viper.GetString(configFile) }

func (c *Config) addFlags() {
	c.flags.String(configFile, filepath.Join(os.Getenv("PROGRAMFILES"), "wincall", "config", "wincall.yml"), "Indicates the location of the configuration file")
	if c.opts.tapi {
		addTAPIFlags(c.flags)
	}
	if c.opts.adsi {
		addADSIFlags(c.flags)
	}
	if c.opts.wec {
		addWECFlags(c.flags)
	}
	c.Log.AddFlags(c.flags)
}
