// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Copyright (c) 2024 The NeoBytes developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"gitlab.com/neobytes/neobytesd/config"
	"gitlab.com/neobytes/neobytesd/types/chaincfg"
	"gitlab.com/neobytes/neobytesd/version"
)

func main() {
	// Work around defer not working after os.Exit()
	if err := neobytesdMain(os.Args[1:], os.Stdout); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "FATAL:", err)
		os.Exit(1)
	}
}

// neobytesdMain is the real main function for neobytesd.  It is necessary to
// work around the fact that deferred functions do not run when os.Exit() is
// called.
func neobytesdMain(args []string, stdout io.Writer) error {
	// Load configuration and parse command line.
	cfg, err := config.LoadConfig(args)
	if err != nil {
		return err
	}

	if cfg.ShowVersion {
		fmt.Fprintln(stdout, "neobytesd version", version.GetVersion())
		return nil
	}

	config.InitLogging(cfg)
	defer config.Log.Info().Msg("Shutdown complete")

	// Show version at startup.
	config.Log.Info().Msgf("Version %s", version.GetVersion())

	// A genesis mismatch or any other inconsistent parameter table surfaces
	// here as a *chaincfg.FatalConfigError and aborts startup.
	params, err := config.SelectNetwork(cfg)
	if err != nil {
		config.Log.Error().Err(err).Msg("Can't select network")
		return err
	}

	if cfg.DumpParams {
		return dumpParams(stdout, params)
	}

	logSummary(params)

	ctx := interruptContext(context.Background(),
		config.Log.With().Str("ctx", "interruptListener").Logger())
	<-ctx.Done()
	return nil
}

func dumpParams(w io.Writer, params *chaincfg.Params) error {
	out, err := params.Summary().YAML()
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

func logSummary(params *chaincfg.Params) {
	last := params.Checkpoints.LastCheckpoint()
	config.Log.Info().
		Str("network", params.Name).
		Str("magic", params.Net.String()).
		Str("port", params.DefaultPort).
		Str("genesis", params.GenesisHash().String()).
		Int32("lastCheckpoint", last.Height).
		Int("dnsSeeds", len(params.DNSSeeds)).
		Bool("miningRequiresPeers", params.MiningRequiresPeers).
		Msg("Chain parameters loaded")
}
