// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2017 The Decred developers
// Copyright (c) 2020 The JaxNetwork developers
// Copyright (c) 2024 The NeoBytes developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package config

import (
	"sort"

	"github.com/rs/zerolog"
	"gitlab.com/neobytes/neobytesd/corelog"
	"gitlab.com/neobytes/neobytesd/types/chaincfg"
)

const (
	logUnitMAIN = "MAIN"
	logUnitCCFG = "CCFG"
)

// Log is the daemon's own logger.  It stays disabled until InitLogging runs.
var Log = corelog.Disabled

// subsystemLoggers maps each subsystem identifier to the function that hands
// a logger to the package behind it.
var subsystemLoggers = map[string]func(zerolog.Logger){
	logUnitMAIN: func(l zerolog.Logger) { Log = l },
	logUnitCCFG: chaincfg.UseLogger,
}

// SupportedSubsystems returns a sorted slice of the subsystem identifiers.
func SupportedSubsystems() []string {
	subsystems := make([]string, 0, len(subsystemLoggers))
	for subsysID := range subsystemLoggers {
		subsystems = append(subsystems, subsysID)
	}

	sort.Strings(subsystems)
	return subsystems
}

// InitLogging builds one logger per subsystem at the configured level and
// wires each into its package.
func InitLogging(cfg *Config) {
	level := cfg.LogLevel()
	for unit, use := range subsystemLoggers {
		use(corelog.New(unit, level, cfg.Log))
	}
}
