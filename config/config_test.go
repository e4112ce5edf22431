package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/neobytes/neobytesd/corelog"
	"gitlab.com/neobytes/neobytesd/types/chaincfg"
	"gopkg.in/yaml.v3"
)

// withHome points the default config location at a fresh directory.
func withHome(t *testing.T) string {
	t.Helper()
	dir, err := os.MkdirTemp("", "neobytesd")
	require.NoError(t, err)

	prev, had := os.LookupEnv(HomeDirEnv)
	require.NoError(t, os.Setenv(HomeDirEnv, dir))
	t.Cleanup(func() {
		if had {
			os.Setenv(HomeDirEnv, prev)
		} else {
			os.Unsetenv(HomeDirEnv)
		}
		os.RemoveAll(dir)
	})
	return dir
}

func writeConfig(t *testing.T, path string, v interface{}) {
	t.Helper()
	data, err := yaml.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0600))
}

func TestLoadConfigDefaults(t *testing.T) {
	home := withHome(t)

	cfg, err := LoadConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, defaultConfigFilename), cfg.ConfigFile)
	assert.Equal(t, "main", cfg.Network)
	assert.Equal(t, "info", cfg.DebugLevel)
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel())
	assert.Equal(t, corelog.Config{}.Default(), cfg.Log)
	assert.False(t, cfg.DumpParams)
}

func TestLoadConfigFile(t *testing.T) {
	home := withHome(t)
	writeConfig(t, filepath.Join(home, defaultConfigFilename), map[string]interface{}{
		"network":     "test",
		"debug_level": "debug",
		"log": map[string]interface{}{
			"logs_as_json": true,
			"directory":    "/var/log/neobytesd",
			"max_backups":  7,
		},
	})

	cfg, err := LoadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "test", cfg.Network)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel())
	assert.True(t, cfg.Log.LogsAsJson)
	assert.Equal(t, "/var/log/neobytesd", cfg.Log.Directory)
	assert.Equal(t, 7, cfg.Log.MaxBackups)
	// Untouched keys keep their defaults.
	assert.Equal(t, corelog.DefaultLogFile, cfg.Log.Filename)
}

func TestLoadConfigFlagsWin(t *testing.T) {
	home := withHome(t)
	writeConfig(t, filepath.Join(home, defaultConfigFilename), map[string]interface{}{
		"network":     "test",
		"debug_level": "debug",
	})

	cfg, err := LoadConfig([]string{"--network=regtest", "-d", "warn", "--dumpparams"})
	require.NoError(t, err)
	assert.Equal(t, "regtest", cfg.Network)
	assert.Equal(t, zerolog.WarnLevel, cfg.LogLevel())
	assert.True(t, cfg.DumpParams)
}

func TestLoadConfigExplicitFile(t *testing.T) {
	home := withHome(t)
	path := filepath.Join(home, "custom.yaml")
	writeConfig(t, path, map[string]interface{}{"regtest": true})

	cfg, err := LoadConfig([]string{"-C", path})
	require.NoError(t, err)
	assert.Equal(t, path, cfg.ConfigFile)
	assert.Equal(t, "regtest", cfg.Network)

	_, err = LoadConfig([]string{"--configfile", filepath.Join(home, "missing.yaml")})
	assert.Error(t, err)
}

func TestLoadConfigEmptyFile(t *testing.T) {
	home := withHome(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, defaultConfigFilename), nil, 0600))

	cfg, err := LoadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "main", cfg.Network)
}

func TestLoadConfigBadFile(t *testing.T) {
	home := withHome(t)
	path := filepath.Join(home, defaultConfigFilename)

	require.NoError(t, os.WriteFile(path, []byte("network: [main\n"), 0600))
	_, err := LoadConfig(nil)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("rpcuser: alice\n"), 0600))
	_, err = LoadConfig(nil)
	assert.Error(t, err, "unknown keys are rejected")
}

func TestLoadConfigNetworks(t *testing.T) {
	withHome(t)

	tests := []struct {
		name     string
		args     []string
		want     string
		conflict bool
		invalid  bool
		bad      string
	}{
		{name: "default", args: nil, want: "main"},
		{name: "network flag", args: []string{"--network", "test"}, want: "test"},
		{name: "upper case", args: []string{"--network", "MAIN"}, invalid: true, bad: "MAIN"},
		{name: "padded", args: []string{"--network", " main "}, invalid: true, bad: " main "},
		{name: "testnet shortcut", args: []string{"--testnet"}, want: "test"},
		{name: "regtest shortcut", args: []string{"--regtest"}, want: "regtest"},
		{name: "same network twice", args: []string{"--network=test", "--testnet"}, want: "test"},
		{name: "both shortcuts", args: []string{"--testnet", "--regtest"}, conflict: true},
		{name: "network and shortcut", args: []string{"--network=main", "--regtest"}, conflict: true},
		{name: "unknown", args: []string{"--network", "devnet"}, invalid: true, bad: "devnet"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(tt.args)
			switch {
			case tt.conflict:
				assert.True(t, errors.Is(err, ErrConflictingNetworks), "got %v", err)
			case tt.invalid:
				var unknown *chaincfg.UnknownNetworkError
				require.True(t, errors.As(err, &unknown), "got %v", err)
				assert.Equal(t, tt.bad, unknown.Name)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, cfg.Network)
			}
		})
	}
}

func TestLoadConfigBadDebugLevel(t *testing.T) {
	withHome(t)
	_, err := LoadConfig([]string{"--debuglevel", "loud"})
	assert.Error(t, err)
}

func TestLoadConfigHelp(t *testing.T) {
	withHome(t)
	_, err := LoadConfig([]string{"--help"})
	var ferr *flags.Error
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, flags.ErrHelp, ferr.Type)
}

func TestLoadConfigUnknownFlag(t *testing.T) {
	withHome(t)
	_, err := LoadConfig([]string{"--rpcuser", "bob"})
	assert.Error(t, err)
}

func TestLoadConfigVersion(t *testing.T) {
	withHome(t)
	cfg, err := LoadConfig([]string{"-V"})
	require.NoError(t, err)
	assert.True(t, cfg.ShowVersion)
}

func TestSupportedSubsystems(t *testing.T) {
	assert.Equal(t, []string{"CCFG", "MAIN"}, SupportedSubsystems())
}

func TestSelectNetwork(t *testing.T) {
	params, err := SelectNetwork(&Config{Network: "regtest"})
	require.NoError(t, err)
	assert.Equal(t, "regtest", params.Name)
	assert.Same(t, params, chaincfg.ActiveParams())

	_, err = SelectNetwork(&Config{Network: "main"})
	assert.True(t, errors.Is(err, chaincfg.ErrNetworkAlreadySelected), "got %v", err)
}
