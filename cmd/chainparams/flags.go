// Copyright (c) 2020 The JaxNetwork developers
// Copyright (c) 2024 The NeoBytes developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package main

import (
	"time"

	"github.com/urfave/cli/v2"
	"gitlab.com/neobytes/neobytesd/types/chaincfg"
)

const (
	flagNetwork     = "network"
	flagFormat      = "format"
	flagHex         = "hex"
	flagDump        = "dump"
	flagCSV         = "csv"
	flagHeight      = "height"
	flagTxCount     = "txcount"
	flagBlockTime   = "blocktime"
	flagTime        = "time"
	flagBits        = "bits"
	flagNonce       = "nonce"
	flagText        = "text"
	flagTimeout     = "timeout"
	flagCheckpoints = "checkpoints"
)

func getFlags() map[string]cli.Flag {
	return map[string]cli.Flag{
		flagNetwork: &cli.StringFlag{
			Name:    flagNetwork,
			Aliases: []string{"n"},
			Value:   chaincfg.MainNet.String(),
			EnvVars: []string{"NEOBYTES_NETWORK"},
			Usage:   "network to inspect {" + chaincfg.NetworkNames() + "}",
		},
		flagFormat: &cli.StringFlag{
			Name:    flagFormat,
			Aliases: []string{"f"},
			Value:   "yaml",
			Usage:   "output format {yaml, json}",
		},
		flagHex: &cli.BoolFlag{
			Name:  flagHex,
			Usage: "print the serialized genesis block as hex",
		},
		flagDump: &cli.BoolFlag{
			Name:  flagDump,
			Usage: "dump the genesis block structure",
		},
		flagCSV: &cli.StringFlag{
			Name:  flagCSV,
			Usage: "write checkpoints as CSV to this path, - for stdout",
		},
		flagHeight: &cli.Int64Flag{
			Name:  flagHeight,
			Value: 0,
			Usage: "height of the local chain tip",
		},
		flagTxCount: &cli.Int64Flag{
			Name:     flagTxCount,
			Usage:    "total number of transactions up to the local chain tip",
			Required: true,
		},
		flagBlockTime: &cli.Int64Flag{
			Name:     flagBlockTime,
			Usage:    "unix timestamp of the local chain tip",
			Required: true,
		},
		flagTime: &cli.Int64Flag{
			Name:  flagTime,
			Usage: "genesis unix timestamp, defaults to the network's",
		},
		flagBits: &cli.StringFlag{
			Name:  flagBits,
			Usage: "genesis compact target as hex, defaults to the network's",
		},
		flagNonce: &cli.Uint64Flag{
			Name:  flagNonce,
			Usage: "first nonce to try",
		},
		flagText: &cli.StringFlag{
			Name:  flagText,
			Value: chaincfg.GenesisTimestampText,
			Usage: "coinbase timestamp text",
		},
		flagTimeout: &cli.DurationFlag{
			Name:  flagTimeout,
			Value: 10 * time.Minute,
			Usage: "give up searching after this long",
		},
		flagCheckpoints: &cli.StringFlag{
			Name:  flagCheckpoints,
			Usage: "CSV file of checkpoints to verify against the network",
		},
	}
}
