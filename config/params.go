// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Copyright (c) 2024 The NeoBytes developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package config

import (
	"github.com/pkg/errors"
	"gitlab.com/neobytes/neobytesd/types/chaincfg"
)

// SelectNetwork pins the network named by cfg as the process-wide active
// parameter set.  It is the only place the daemon selects; it may succeed once.
func SelectNetwork(cfg *Config) (*chaincfg.Params, error) {
	params, err := chaincfg.SelectParams(cfg.Network)
	if err != nil {
		return nil, errors.Wrapf(err, "select network %q", cfg.Network)
	}

	Log.Info().
		Str("network", params.Name).
		Str("genesis", params.GenesisHash().String()).
		Str("port", params.DefaultPort).
		Msg("Active network selected")
	return params, nil
}
