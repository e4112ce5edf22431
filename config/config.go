// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Copyright (c) 2024 The NeoBytes developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gitlab.com/neobytes/neobytesd/corelog"
	"gitlab.com/neobytes/neobytesd/types/chaincfg"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigFilename = "neobytesd.yaml"
	defaultLogLevel       = "info"
	defaultHomeDirname    = ".neobytesd"

	// HomeDirEnv overrides the directory the default config file is read from.
	HomeDirEnv = "NEOBYTESD_HOME"
)

// ErrConflictingNetworks is returned when the command line or the config file
// names more than one network.
var ErrConflictingNetworks = errors.New("more than one network selected")

// Config defines the configuration options for neobytesd.
//
// See LoadConfig for details on the configuration load process.
type Config struct {
	ConfigFile  string `yaml:"-" short:"C" long:"configfile" description:"Path to configuration file"`
	ShowVersion bool   `yaml:"-" short:"V" long:"version" description:"Display version information and exit"`
	Network     string `yaml:"network" long:"network" description:"Network to use {main, test, regtest}"`
	TestNet     bool   `yaml:"testnet" long:"testnet" description:"Use the test network"`
	RegTest     bool   `yaml:"regtest" long:"regtest" description:"Use the regression test network"`
	DebugLevel  string `yaml:"debug_level" short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, fatal}"`
	DumpParams  bool   `yaml:"-" long:"dumpparams" description:"Write the selected network parameters as YAML to stdout and exit"`

	Log corelog.Config `yaml:"log" no-flag:"true"`
}

// LogLevel returns the parsed debug level.  LoadConfig has already validated
// it, so a bad value only shows up on hand-built configs.
func (cfg *Config) LogLevel() zerolog.Level {
	lvl, err := corelog.ParseLevel(cfg.DebugLevel)
	if err != nil {
		return corelog.DefaultLevel
	}
	return lvl
}

// DefaultHomeDir is where the default config file lives.
func DefaultHomeDir() string {
	if dir := os.Getenv(HomeDirEnv); dir != "" {
		return cleanAndExpandPath(dir)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return defaultHomeDirname
	}
	return filepath.Join(home, defaultHomeDirname)
}

// DefaultConfigFile is the path LoadConfig reads when --configfile is absent.
func DefaultConfigFile() string {
	return filepath.Join(DefaultHomeDir(), defaultConfigFilename)
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			path = strings.Replace(path, "~", home, 1)
		}
	}

	return filepath.Clean(os.ExpandEnv(path))
}

// newConfigParser returns a new command line flags parser.
func newConfigParser(cfg *Config, options flags.Options) *flags.Parser {
	return flags.NewParser(cfg, options)
}

// LoadConfig initializes and parses the config using a config file and command
// line options.
//
// The configuration proceeds as follows:
// 	1) Start with a default config with sane settings
// 	2) Pre-parse the command line to check for an alternative config file
// 	3) Load configuration file overwriting defaults with any specified options
// 	4) Parse CLI options and overwrite/add any specified options
//
// An explicitly named config file must exist; the default one may be absent.
// The returned error is a *flags.Error with Type flags.ErrHelp when help was
// requested.
func LoadConfig(args []string) (*Config, error) {
	defaultConfigFile := DefaultConfigFile()
	cfg := Config{
		ConfigFile: defaultConfigFile,
		DebugLevel: defaultLogLevel,
		Log:        corelog.Config{}.Default(),
	}

	// Pre-parse the command line options to see if an alternative config
	// file was specified.  Any errors aside from the help message error can
	// be ignored here since they will be caught by the final parse below.
	preCfg := cfg
	preParser := newConfigParser(&preCfg, flags.HelpFlag)
	if _, err := preParser.ParseArgs(args); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			return nil, err
		}
	}

	if preCfg.ShowVersion {
		cfg.ShowVersion = true
		return &cfg, nil
	}

	configFile := cleanAndExpandPath(preCfg.ConfigFile)
	explicit := preCfg.ConfigFile != defaultConfigFile
	if err := loadConfigFile(configFile, explicit, &cfg); err != nil {
		return nil, err
	}
	cfg.ConfigFile = configFile

	// Parse command line options again to ensure they take precedence.
	parser := newConfigParser(&cfg, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		return nil, err
	}
	cfg.ConfigFile = configFile

	if _, err := corelog.ParseLevel(cfg.DebugLevel); err != nil {
		return nil, errors.Wrap(err, "debuglevel")
	}

	network, err := resolveNetwork(&cfg)
	if err != nil {
		return nil, err
	}
	cfg.Network = network

	return &cfg, nil
}

func loadConfigFile(path string, explicit bool, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil
		}
		return errors.Wrap(err, "open config file")
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		// An empty file decodes to io.EOF.
		if err == io.EOF {
			return nil
		}
		return errors.Wrapf(err, "parse config file %s", path)
	}
	return nil
}

// resolveNetwork folds --network and the --testnet/--regtest shortcuts into a
// single network name.  Nothing selected means main.  Names must match
// exactly; "MAIN" or " main" are rejected.
func resolveNetwork(cfg *Config) (string, error) {
	var names []string
	add := func(name string) {
		for _, n := range names {
			if n == name {
				return
			}
		}
		names = append(names, name)
	}

	if cfg.Network != "" {
		n, err := chaincfg.ParseNetwork(cfg.Network)
		if err != nil {
			return "", errors.Wrapf(err, "valid networks are %s", chaincfg.NetworkNames())
		}
		add(n.String())
	}
	if cfg.TestNet {
		add(chaincfg.TestNet.String())
	}
	if cfg.RegTest {
		add(chaincfg.RegTest.String())
	}

	switch len(names) {
	case 0:
		return chaincfg.MainNet.String(), nil
	case 1:
		return names[0], nil
	}
	return "", errors.Wrapf(ErrConflictingNetworks, "%s", strings.Join(names, ", "))
}
