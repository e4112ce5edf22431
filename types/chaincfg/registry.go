// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2024 The NeoBytes developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"github.com/pkg/errors"
	"gitlab.com/neobytes/neobytesd/types/wire"
)

// Registry resolves network identifiers to their parameters.  All parameter
// sets are built and verified when the registry is created; afterwards it is
// read-only and safe for concurrent use.
type Registry struct {
	ordered           []*Params
	byName            map[string]*Params
	byNet             map[wire.NeoNet]*Params
	pubKeyHashAddrIDs map[byte]struct{}
	scriptHashAddrIDs map[byte]struct{}
	hdPrivToPubKeyIDs map[[4]byte][]byte
}

// NewRegistry builds the main, test and regtest parameters.  Any failure is
// a *FatalConfigError.
func NewRegistry() (*Registry, error) {
	params := make([]*Params, 0, len(networkTables))
	for _, net := range Networks() {
		p, err := BuildParams(net)
		if err != nil {
			return nil, err
		}
		params = append(params, p)
	}

	registry, err := newRegistry(params...)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("networks", NetworkNames()).Msg("network registry ready")
	return registry, nil
}

// newRegistry indexes the parameter sets, refusing duplicate names, magic
// bytes and ports.
func newRegistry(params ...*Params) (*Registry, error) {
	r := &Registry{
		byName:            make(map[string]*Params, len(params)),
		byNet:             make(map[wire.NeoNet]*Params, len(params)),
		pubKeyHashAddrIDs: make(map[byte]struct{}),
		scriptHashAddrIDs: make(map[byte]struct{}),
		hdPrivToPubKeyIDs: make(map[[4]byte][]byte),
	}
	ports := make(map[string]string, len(params))

	for _, p := range params {
		if _, ok := r.byName[p.Name]; ok {
			return nil, fatalf(p.Name, ErrDuplicateNet, "name is already registered")
		}
		if other, ok := r.byNet[p.Net]; ok {
			return nil, fatalf(p.Name, ErrDuplicateNet,
				"magic %x is already used by %s", p.Net.Bytes(), other.Name)
		}
		if other, ok := ports[p.DefaultPort]; ok {
			return nil, fatalf(p.Name, ErrDuplicateNet,
				"port %s is already used by %s", p.DefaultPort, other)
		}

		r.ordered = append(r.ordered, p)
		r.byName[p.Name] = p
		r.byNet[p.Net] = p
		ports[p.DefaultPort] = p.Name
		r.pubKeyHashAddrIDs[p.PubKeyHashAddrID] = struct{}{}
		r.scriptHashAddrIDs[p.ScriptHashAddrID] = struct{}{}
		r.hdPrivToPubKeyIDs[p.HDPrivateKeyID] = p.HDPublicKeyID[:]
	}

	return r, nil
}

// Get returns the parameters registered under name, or an
// *UnknownNetworkError.
func (r *Registry) Get(name string) (*Params, error) {
	if p, ok := r.byName[name]; ok {
		return p, nil
	}
	return nil, &UnknownNetworkError{Name: name}
}

// ByNet returns the parameters whose message start bytes are net.
func (r *Registry) ByNet(net wire.NeoNet) (*Params, error) {
	if p, ok := r.byNet[net]; ok {
		return p, nil
	}
	return nil, &UnknownNetworkError{Name: net.String()}
}

// Networks returns the registered parameter sets in registration order.
func (r *Registry) Networks() []*Params {
	out := make([]*Params, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// IsPubKeyHashAddrID returns whether the id is an identifier known to prefix a
// pay-to-pubkey-hash address on any registered network.  This is used when
// decoding an address string into a specific address type.  It is up to the
// caller to check both this and IsScriptHashAddrID and decide whether an
// address is a pubkey hash address, script hash address, neither, or
// undeterminable (if both return true).
func (r *Registry) IsPubKeyHashAddrID(id byte) bool {
	_, ok := r.pubKeyHashAddrIDs[id]
	return ok
}

// IsScriptHashAddrID returns whether the id is an identifier known to prefix a
// pay-to-script-hash address on any registered network.  This is used when
// decoding an address string into a specific address type.  It is up to the
// caller to check both this and IsPubKeyHashAddrID and decide whether an
// address is a pubkey hash address, script hash address, neither, or
// undeterminable (if both return true).
func (r *Registry) IsScriptHashAddrID(id byte) bool {
	_, ok := r.scriptHashAddrIDs[id]
	return ok
}

// HDPrivateKeyToPublicKeyID accepts a private hierarchical deterministic
// extended key id and returns the associated public key id.  When the provided
// id is not registered, the ErrUnknownHDKeyID error will be returned.
func (r *Registry) HDPrivateKeyToPublicKeyID(id []byte) ([]byte, error) {
	if len(id) != 4 {
		return nil, errors.Wrapf(ErrUnknownHDKeyID, "id %x is not 4 bytes", id)
	}

	var key [4]byte
	copy(key[:], id)
	pubBytes, ok := r.hdPrivToPubKeyIDs[key]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownHDKeyID, "id %x", id)
	}

	out := make([]byte, len(pubBytes))
	copy(out, pubBytes)
	return out, nil
}
