// Copyright (c) 2024 The NeoBytes developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package version

// These are overridden at link time:
//
//	go build -ldflags "-X gitlab.com/neobytes/neobytesd/version.tag=v0.1.0 -X gitlab.com/neobytes/neobytesd/version.commit=abc123"
var (
	tag    = "v0.0.0"
	commit = "dev"
)

// GetVersion returns the build tag and commit, e.g. "v0.1.0-abc123".
func GetVersion() string {
	return tag + "-" + commit
}
