// Copyright (c) 2024 The NeoBytes developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
	"gitlab.com/neobytes/neobytesd/types/chaincfg"
	"gopkg.in/yaml.v3"
)

const (
	mainGenesisHash    = "0000083c6edd8e5870c4f25857824125358a96c81b66dc5831ddd5e82a777758"
	regtestGenesisHash = "0668630d663da4a6fcb0fa2e1f01f8d156082e2043354707f2f73f032842752b"
	mainHintTime       = 1689725227
)

func run(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cliApp := newCliApp(app)
	cliApp.Writer = &out
	cliApp.ErrWriter = &out
	cliApp.ExitErrHandler = func(*cli.Context, error) {}

	err := cliApp.Run(append([]string{"chainparams"}, args...))
	return out.String(), err
}

func TestShowYAML(t *testing.T) {
	out, err := run(t, &App{}, "-n", "regtest", "show")
	require.NoError(t, err)

	var summary map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &summary))
	assert.Equal(t, "regtest", summary["network"])
	assert.Equal(t, regtestGenesisHash, summary["genesis_hash"])
}

func TestShowJSON(t *testing.T) {
	out, err := run(t, &App{}, "show", "--format", "json")
	require.NoError(t, err)

	var summary map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, "main", summary["network"])
	assert.Equal(t, mainGenesisHash, summary["genesis_hash"])
	assert.Equal(t, "11427", summary["default_port"])
}

func TestShowBadFormat(t *testing.T) {
	_, err := run(t, &App{}, "show", "--format", "toml")
	assert.Error(t, err)
}

func TestUnknownNetwork(t *testing.T) {
	_, err := run(t, &App{}, "--network", "devnet", "show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "devnet")
}

func TestGenesis(t *testing.T) {
	out, err := run(t, &App{}, "genesis", "--hex")
	require.NoError(t, err)

	assert.Contains(t, out, "hash:        "+mainGenesisHash)
	assert.Contains(t, out, "nonce:       1347040")
	assert.Contains(t, out, "bits:        1e0ffff0")
	assert.Contains(t, out, "work:        1048592")
	assert.Contains(t, out, "coinbase tx: 01000000010000000000000000000000000000000000000000000000000000000000000000ffffffff")
	assert.Contains(t, out, "sig script:  ffff001d 04 "+hex.EncodeToString([]byte(chaincfg.GenesisTimestampText)))
	assert.Contains(t, out, "timestamp:   "+chaincfg.GenesisTimestampText)
	assert.Contains(t, out, "output:      5000000000 pubkey")
	// The header starts the serialized block: version 1, zero previous hash.
	assert.Contains(t, out, "block:       01000000"+strings.Repeat("00", 32))
}

func TestGenesisDump(t *testing.T) {
	out, err := run(t, &App{}, "-n", "test", "genesis", "--dump")
	require.NoError(t, err)
	assert.Contains(t, out, "(*wire.MsgBlock)")
	assert.Contains(t, out, "Nonce: (uint32) 893296")
}

func TestCheckpointsCSVRoundTrip(t *testing.T) {
	dir, err := os.MkdirTemp("", "chainparams")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "checkpoints.csv")

	out, err := run(t, &App{}, "checkpoints", "--csv", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Saved 1 checkpoints")

	rows, err := NewCSVStorage(path).FetchData()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, CheckpointRow{Network: "main", Height: 0, Hash: mainGenesisHash}, rows[0])

	out, err = run(t, &App{}, "verify", "--checkpoints", path)
	require.NoError(t, err)
	assert.Contains(t, out, "1 checkpoints match")

	rows[0].Hash = regtestGenesisHash
	require.NoError(t, NewCSVStorage(path).SaveRows(rows))
	_, err = run(t, &App{}, "verify", "--checkpoints", path)
	assert.Error(t, err)
}

func TestCheckpointsStdout(t *testing.T) {
	out, err := run(t, &App{}, "-n", "regtest", "checkpoints", "--csv", "-")
	require.NoError(t, err)

	var rows CheckpointRows
	require.NoError(t, gocsv.UnmarshalString(out, &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "regtest", rows[0].Network)
	assert.Equal(t, regtestGenesisHash, rows[0].Hash)

	out, err = run(t, &App{}, "checkpoints")
	require.NoError(t, err)
	assert.Contains(t, out, "       0  "+mainGenesisHash)
	assert.Contains(t, out, "1500 txs/day")
}

func TestProgress(t *testing.T) {
	now := time.Unix(mainHintTime+86400, 0)
	app := &App{now: func() time.Time { return now }}

	// 1500 txs past the checkpoint and one day of 1500 txs still ahead.
	out, err := run(t, app, "progress", "--height", "10", "--txcount", "1500",
		"--blocktime", "1689725227")
	require.NoError(t, err)
	assert.Equal(t, "0.500000\n", out)

	out, err = run(t, &App{}, "-n", "regtest", "progress", "--txcount", "0", "--blocktime", "0")
	require.NoError(t, err)
	assert.Equal(t, "1.000000\n", out)

	out, err = run(t, app, "progress", "--height=-1", "--txcount", "0", "--blocktime", "0")
	require.NoError(t, err)
	assert.Equal(t, "0.000000\n", out)

	for _, height := range []string{"--height=2147483648", "--height=4294967296", "--height=-2147483649"} {
		_, err = run(t, app, "progress", height, "--txcount", "0", "--blocktime", "0")
		require.Error(t, err, height)
		assert.Contains(t, err.Error(), "out of range")
	}
}

func TestMineRegtest(t *testing.T) {
	out, err := run(t, &App{}, "-n", "regtest", "mine")
	require.NoError(t, err)
	assert.Contains(t, out, "hash:        "+regtestGenesisHash)
	assert.Contains(t, out, "nonce:       0")
}

func TestMineFromNonce(t *testing.T) {
	out, err := run(t, &App{}, "mine", "--nonce", "1347020")
	require.NoError(t, err)
	assert.Contains(t, out, "hash:        "+mainGenesisHash)
	assert.Contains(t, out, "nonce:       1347040")
}

func TestMineTimeout(t *testing.T) {
	_, err := run(t, &App{}, "mine", "--bits", "1d00ffff", "--timeout", "1ns")
	assert.Error(t, err)
}

func TestMineBadBits(t *testing.T) {
	_, err := run(t, &App{}, "mine", "--bits", "zz")
	assert.Error(t, err)
}

func TestVerify(t *testing.T) {
	out, err := run(t, &App{}, "verify")
	require.NoError(t, err)
	assert.Contains(t, out, "main     "+mainGenesisHash+" ok")
	assert.Contains(t, out, "regtest  "+regtestGenesisHash+" ok")
}
