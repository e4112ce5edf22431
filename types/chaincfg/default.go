// Copyright (c) 2024 The NeoBytes developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"sync"
)

// The process-wide default registry and selection.  Only the outermost
// startup code should select; everything else takes a *Params explicitly.
var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
	defaultSelector *Selector
	defaultErr      error
)

func initDefault() {
	defaultOnce.Do(func() {
		defaultRegistry, defaultErr = NewRegistry()
		if defaultErr == nil {
			defaultSelector = NewSelector(defaultRegistry)
		}
	})
}

// DefaultRegistry returns the process-wide registry, building it on first use.
func DefaultRegistry() (*Registry, error) {
	initDefault()
	return defaultRegistry, defaultErr
}

// SelectParams pins name as the process-wide active network.  It may succeed
// at most once per process.
func SelectParams(name string) (*Params, error) {
	initDefault()
	if defaultErr != nil {
		return nil, defaultErr
	}
	return defaultSelector.Select(name)
}

// ActiveParams returns the process-wide active network.  It panics when
// SelectParams has not succeeded yet.
func ActiveParams() *Params {
	initDefault()
	if defaultErr != nil {
		panic(defaultErr)
	}
	return defaultSelector.MustActive()
}
