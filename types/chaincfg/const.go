/*
 * Copyright (c) 2021 The JaxNetwork developers
 * Copyright (c) 2024 The NeoBytes developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

const (
	// AtomsPerCoin is the number of base units in one NEOB.
	AtomsPerCoin = 1e8

	// MaxCoinAmount is the maximum transaction amount allowed in base units.
	MaxCoinAmount = 21e6 * AtomsPerCoin
)

const (
	// genesisMerkleRootStr is shared by every network since all of them use
	// the same coinbase.
	genesisMerkleRootStr = "a041e8d6859590ecc9baa0077724a864d9eefc06569395d82f35b6f77c12c237"

	// secondsPerDay scales the transactions-per-day progress hint.
	secondsPerDay = 24 * 60 * 60

	// sigcheckVerificationFactor weighs transactions past the last
	// checkpoint, which need full script checks.
	sigcheckVerificationFactor = 5.0
)
