// Copyright (c) 2024 The NeoBytes developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"sync/atomic"

	"github.com/pkg/errors"
)

const (
	selectorUnselected uint32 = iota
	selectorSelecting
	selectorSelected
)

// Selector pins exactly one network as active.  The first successful Select
// wins; every later attempt fails with ErrNetworkAlreadySelected.  Reads
// after selection take no lock.  Build it with NewSelector; a zero Selector
// has nothing to resolve names against and never selects.
type Selector struct {
	registry *Registry
	state    uint32
	active   *Params
}

// NewSelector returns a selector resolving names through registry.
func NewSelector(registry *Registry) *Selector {
	return &Selector{registry: registry}
}

// Select resolves name and pins it as the active network.  An unknown name
// leaves the selector unselected.
func (s *Selector) Select(name string) (*Params, error) {
	if atomic.LoadUint32(&s.state) != selectorUnselected {
		return nil, errors.Wrapf(ErrNetworkAlreadySelected, "can't select %q", name)
	}

	if s.registry == nil {
		return nil, errors.Wrapf(ErrNoRegistry, "can't select %q", name)
	}

	params, err := s.registry.Get(name)
	if err != nil {
		return nil, err
	}

	if !atomic.CompareAndSwapUint32(&s.state, selectorUnselected, selectorSelecting) {
		return nil, errors.Wrapf(ErrNetworkAlreadySelected, "can't select %q", name)
	}
	s.active = params
	atomic.StoreUint32(&s.state, selectorSelected)

	log.Info().Str("network", params.Name).Str("genesis", params.GenesisHash().String()).
		Msg("network selected")
	return params, nil
}

// Active returns the selected parameters or ErrNetworkNotSelected.
func (s *Selector) Active() (*Params, error) {
	if atomic.LoadUint32(&s.state) != selectorSelected {
		return nil, ErrNetworkNotSelected
	}
	return s.active, nil
}

// MustActive is like Active but panics when no network is selected.  Reading
// the active network before startup selected one is a sequencing bug.
func (s *Selector) MustActive() *Params {
	params, err := s.Active()
	if err != nil {
		panic(err)
	}
	return params
}

// IsSelected reports whether a network has been pinned.
func (s *Selector) IsSelected() bool {
	return atomic.LoadUint32(&s.state) == selectorSelected
}
