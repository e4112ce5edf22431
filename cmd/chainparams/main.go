// Copyright (c) 2020 The JaxNetwork developers
// Copyright (c) 2024 The NeoBytes developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package main

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gitlab.com/neobytes/neobytesd/txscript"
	"gitlab.com/neobytes/neobytesd/types/chaincfg"
	"gitlab.com/neobytes/neobytesd/types/pow"
)

var standardFlags = getFlags()

func main() {
	if err := newCliApp(&App{}).Run(os.Args); err != nil {
		println(err.Error())
		os.Exit(1)
	}
}

func newCliApp(app *App) *cli.App {
	return &cli.App{
		Name:     "chainparams",
		Usage:    "inspect and regenerate NeoBytes chain parameters",
		Flags:    app.InitFlags(),
		Before:   app.InitCfg,
		Commands: app.getCommands(),
	}
}

type App struct {
	registry *chaincfg.Registry
	params   *chaincfg.Params
	now      func() time.Time
}

func (app *App) InitFlags() []cli.Flag {
	return []cli.Flag{
		standardFlags[flagNetwork],
	}
}

func (app *App) InitCfg(c *cli.Context) error {
	var err error
	app.registry, err = chaincfg.NewRegistry()
	if err != nil {
		return cli.NewExitError(errors.Wrap(err, "unable to build network registry"), 1)
	}

	app.params, err = app.registry.Get(c.String(flagNetwork))
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	if app.now == nil {
		app.now = time.Now
	}
	return nil
}

func (app *App) getCommands() cli.Commands {
	return []*cli.Command{
		{
			Name:   "show",
			Usage:  "print the parameter summary of the network",
			Flags:  []cli.Flag{standardFlags[flagFormat]},
			Action: app.showCmd,
		},
		{
			Name:   "genesis",
			Usage:  "rebuild the genesis block and print its identity",
			Flags:  []cli.Flag{standardFlags[flagHex], standardFlags[flagDump]},
			Action: app.genesisCmd,
		},
		{
			Name:   "checkpoints",
			Usage:  "list the checkpoints of the network",
			Flags:  []cli.Flag{standardFlags[flagCSV]},
			Action: app.checkpointsCmd,
		},
		{
			Name:  "progress",
			Usage: "estimate verification progress for a chain tip",
			Flags: []cli.Flag{
				standardFlags[flagHeight],
				standardFlags[flagTxCount],
				standardFlags[flagBlockTime],
			},
			Action: app.progressCmd,
		},
		{
			Name:  "mine",
			Usage: "search a genesis nonce for new literals",
			Flags: []cli.Flag{
				standardFlags[flagTime],
				standardFlags[flagBits],
				standardFlags[flagNonce],
				standardFlags[flagText],
				standardFlags[flagTimeout],
			},
			Action: app.mineCmd,
		},
		{
			Name:   "verify",
			Usage:  "check every network and optionally an exported checkpoint file",
			Flags:  []cli.Flag{standardFlags[flagCheckpoints]},
			Action: app.verifyCmd,
		},
	}
}

func (app *App) showCmd(c *cli.Context) error {
	summary := app.params.Summary()

	var (
		out []byte
		err error
	)
	switch format := c.String(flagFormat); format {
	case "yaml":
		out, err = summary.YAML()
	case "json":
		out, err = json.MarshalIndent(summary, "", "  ")
		out = append(out, '\n')
	default:
		return cli.NewExitError(fmt.Sprintf("unknown format %q", format), 1)
	}
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	_, err = c.App.Writer.Write(out)
	return err
}

func (app *App) genesisCmd(c *cli.Context) error {
	w := c.App.Writer
	block := app.params.GenesisBlock()
	header := block.Header

	fmt.Fprintf(w, "network:     %s\n", app.params.Name)
	fmt.Fprintf(w, "hash:        %s\n", block.BlockHash())
	fmt.Fprintf(w, "merkle root: %s\n", header.MerkleRoot)
	fmt.Fprintf(w, "time:        %d\n", header.Timestamp.Unix())
	fmt.Fprintf(w, "bits:        %08x\n", header.Bits)
	fmt.Fprintf(w, "nonce:       %d\n", header.Nonce)
	fmt.Fprintf(w, "work:        %s\n", pow.CalcWork(header.Bits))
	coinbase := block.Transactions[0]
	fmt.Fprintf(w, "coinbase:    %s\n", coinbase.TxHash())

	sigScript, err := txscript.DisasmString(coinbase.TxIn[0].SignatureScript)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintf(w, "sig script:  %s\n", sigScript)

	pushes, err := txscript.PushedData(coinbase.TxIn[0].SignatureScript)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	if len(pushes) > 0 {
		fmt.Fprintf(w, "timestamp:   %s\n", pushes[len(pushes)-1])
	}

	pkScript := coinbase.TxOut[0].PkScript
	fmt.Fprintf(w, "output:      %d %s\n", coinbase.TxOut[0].Value, txscript.GetScriptClass(pkScript))

	if c.Bool(flagHex) {
		raw, err := block.Bytes()
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		fmt.Fprintf(w, "block:       %s\n", hex.EncodeToString(raw))

		txHex, err := coinbase.SerializeToHex()
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		fmt.Fprintf(w, "coinbase tx: %s\n", txHex)
	}

	if c.Bool(flagDump) {
		spew.Fdump(w, block)
	}
	return nil
}

func (app *App) checkpointsCmd(c *cli.Context) error {
	rows := rowsFromParams(app.params)

	switch path := c.String(flagCSV); path {
	case "":
		for _, row := range rows {
			fmt.Fprintf(c.App.Writer, "%8d  %s\n", row.Height, row.Hash)
		}
		hints := app.params.Checkpoints.Hints()
		fmt.Fprintf(c.App.Writer, "last checkpoint time %d, %d txs, %.0f txs/day\n",
			hints.Time.Unix(), hints.TxCount, hints.TxPerDay)
	case "-":
		if err := writeRows(c.App.Writer, rows); err != nil {
			return cli.NewExitError(err, 1)
		}
	default:
		if err := NewCSVStorage(path).SaveRows(rows); err != nil {
			return cli.NewExitError(errors.Wrap(err, "unable to save checkpoints"), 1)
		}
		fmt.Fprintf(c.App.Writer, "Saved %d checkpoints to %s\n", len(rows), path)
	}
	return nil
}

func (app *App) progressCmd(c *cli.Context) error {
	height := c.Int64(flagHeight)
	if height < math.MinInt32 || height > math.MaxInt32 {
		return cli.NewExitError(fmt.Sprintf("height %d is out of range", height), 1)
	}

	tip := chaincfg.SyncPoint{
		Height:    int32(height),
		TxCount:   c.Int64(flagTxCount),
		BlockTime: time.Unix(c.Int64(flagBlockTime), 0),
	}

	progress := app.params.Checkpoints.EstimatedProgress(tip, app.now())
	fmt.Fprintf(c.App.Writer, "%.6f\n", progress)
	return nil
}

func (app *App) mineCmd(c *cli.Context) error {
	opts := chaincfg.GenesisBlockOpts{
		TimestampText: c.String(flagText),
		OutputScript:  chaincfg.GenesisOutputScript(),
		Time:          app.params.GenesisBlock().Header.Timestamp,
		Nonce:         uint32(c.Uint64(flagNonce)),
		Bits:          app.params.GenesisBlock().Header.Bits,
		Version:       1,
		Reward:        chaincfg.GenesisReward,
	}
	if c.IsSet(flagTime) {
		opts.Time = time.Unix(c.Int64(flagTime), 0)
	}
	if c.IsSet(flagBits) {
		bits, err := strconv.ParseUint(c.String(flagBits), 16, 32)
		if err != nil {
			return cli.NewExitError(errors.Wrap(err, "invalid bits"), 1)
		}
		opts.Bits = uint32(bits)
	}

	block, err := chaincfg.CreateGenesisBlock(opts)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, c.Duration(flagTimeout))
	defer cancel()

	started := time.Now()
	hash, err := pow.SolveHeader(ctx, &block.Header)
	if err != nil {
		return cli.NewExitError(errors.Wrapf(err, "stopped at nonce %d", block.Header.Nonce), 1)
	}

	w := c.App.Writer
	fmt.Fprintf(w, "hash:        %s\n", hash)
	fmt.Fprintf(w, "merkle root: %s\n", block.Header.MerkleRoot)
	fmt.Fprintf(w, "time:        %d\n", block.Header.Timestamp.Unix())
	fmt.Fprintf(w, "bits:        %08x\n", block.Header.Bits)
	fmt.Fprintf(w, "nonce:       %d\n", block.Header.Nonce)
	fmt.Fprintf(w, "elapsed:     %s\n", time.Since(started).Round(time.Millisecond))
	return nil
}

func (app *App) verifyCmd(c *cli.Context) error {
	for _, params := range app.registry.Networks() {
		fmt.Fprintf(c.App.Writer, "%-8s %s ok\n", params.Name, params.GenesisHash())
	}

	path := c.String(flagCheckpoints)
	if path == "" {
		return nil
	}

	rows, err := NewCSVStorage(path).FetchData()
	if err != nil {
		return cli.NewExitError(errors.Wrap(err, "unable to read checkpoints"), 1)
	}
	points, err := rows.Checkpoints()
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	for i, cp := range points {
		params := app.params
		if rows[i].Network != "" {
			if params, err = app.registry.Get(rows[i].Network); err != nil {
				return cli.NewExitError(err, 1)
			}
		}
		hash := cp.Hash
		if !params.Checkpoints.Verify(cp.Height, &hash) {
			return cli.NewExitError(fmt.Sprintf("%s checkpoint at height %d does not match: %s",
				params.Name, cp.Height, cp.Hash), 1)
		}
	}

	fmt.Fprintf(c.App.Writer, "%d checkpoints match\n", len(points))
	return nil
}
