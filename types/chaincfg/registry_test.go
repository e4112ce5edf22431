// Copyright (c) 2024 The NeoBytes developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"bytes"
	"math/big"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/neobytes/neobytesd/types/wire"
)

func mustRegistry(t *testing.T) *Registry {
	t.Helper()
	registry, err := NewRegistry()
	require.NoError(t, err)
	return registry
}

func TestRegistryGet(t *testing.T) {
	registry := mustRegistry(t)

	for _, name := range []string{"main", "test", "regtest"} {
		params, err := registry.Get(name)
		require.NoError(t, err)
		assert.Equal(t, name, params.Name)
	}

	for _, name := range []string{"anything-else", "", "MAIN", "testnet"} {
		params, err := registry.Get(name)
		assert.Nil(t, params)
		var unknown *UnknownNetworkError
		require.True(t, errors.As(err, &unknown), name)
		assert.Equal(t, name, unknown.Name)
		assert.Contains(t, err.Error(), "unknown network")
	}
}

func TestRegistryDistinctIdentity(t *testing.T) {
	registry := mustRegistry(t)
	networks := registry.Networks()
	require.Len(t, networks, 3)

	magics := make(map[[4]byte]string)
	ports := make(map[string]string)
	for _, params := range networks {
		magic := params.MessageStart()
		if other, ok := magics[magic]; ok {
			t.Fatalf("%s and %s share magic %x", params.Name, other, magic)
		}
		magics[magic] = params.Name

		if other, ok := ports[params.DefaultPort]; ok {
			t.Fatalf("%s and %s share port %s", params.Name, other, params.DefaultPort)
		}
		ports[params.DefaultPort] = params.Name

		byNet, err := registry.ByNet(params.Net)
		require.NoError(t, err)
		assert.Same(t, params, byNet)
	}

	_, err := registry.ByNet(wire.NeoNet(0xdeadbeef))
	var unknown *UnknownNetworkError
	assert.True(t, errors.As(err, &unknown))
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	main := mustBuild(t, MainNet)
	test := mustBuild(t, TestNet)

	_, err := newRegistry(main, main)
	assert.True(t, errors.Is(err, ErrDuplicateNet), "got %v", err)

	sameMagic := *test
	sameMagic.Name = "other"
	sameMagic.Net = main.Net
	_, err = newRegistry(main, &sameMagic)
	assert.True(t, errors.Is(err, ErrDuplicateNet), "got %v", err)

	samePort := *test
	samePort.DefaultPort = main.DefaultPort
	_, err = newRegistry(main, &samePort)
	assert.True(t, errors.Is(err, ErrDuplicateNet), "got %v", err)

	var fatal *FatalConfigError
	assert.True(t, errors.As(err, &fatal))
}

func TestRegistryPrefixQueries(t *testing.T) {
	registry := mustRegistry(t)

	assert.True(t, registry.IsPubKeyHashAddrID(53))
	assert.True(t, registry.IsPubKeyHashAddrID(112))
	assert.False(t, registry.IsPubKeyHashAddrID(0))
	assert.True(t, registry.IsScriptHashAddrID(21))
	assert.True(t, registry.IsScriptHashAddrID(18))
	assert.False(t, registry.IsScriptHashAddrID(5))

	pub, err := registry.HDPrivateKeyToPublicKeyID([]byte{0x04, 0x88, 0xad, 0xe4})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x04, 0x88, 0xb2, 0x1e}, pub)

	pub, err = registry.HDPrivateKeyToPublicKeyID([]byte{0x04, 0x35, 0x83, 0x94})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x04, 0x35, 0x87, 0xcf}, pub)

	// The returned slice is a copy.
	pub[0] = 0xff
	pub, err = registry.HDPrivateKeyToPublicKeyID([]byte{0x04, 0x35, 0x83, 0x94})
	require.NoError(t, err)
	assert.True(t, bytes.Equal([]byte{0x04, 0x35, 0x87, 0xcf}, pub))

	_, err = registry.HDPrivateKeyToPublicKeyID([]byte{0x04, 0x88})
	assert.True(t, errors.Is(err, ErrUnknownHDKeyID))
	_, err = registry.HDPrivateKeyToPublicKeyID([]byte{0x01, 0x02, 0x03, 0x04})
	assert.True(t, errors.Is(err, ErrUnknownHDKeyID))
}

func TestSelector(t *testing.T) {
	selector := NewSelector(mustRegistry(t))

	_, err := selector.Active()
	assert.True(t, errors.Is(err, ErrNetworkNotSelected))
	assert.Panics(t, func() { selector.MustActive() })
	assert.False(t, selector.IsSelected())

	// An unknown name is a caller error and leaves the selector open.
	_, err = selector.Select("mainnet")
	var unknown *UnknownNetworkError
	require.True(t, errors.As(err, &unknown))
	assert.False(t, selector.IsSelected())

	selected, err := selector.Select("test")
	require.NoError(t, err)
	assert.Equal(t, "test", selected.Name)

	active, err := selector.Active()
	require.NoError(t, err)
	assert.Same(t, selected, active)
	assert.Same(t, selected, selector.MustActive())

	for _, name := range []string{"test", "main", "bogus"} {
		_, err = selector.Select(name)
		assert.True(t, errors.Is(err, ErrNetworkAlreadySelected), name)
	}

	active, err = selector.Active()
	require.NoError(t, err)
	assert.Equal(t, "test", active.Name)
}

func TestSelectorZeroValue(t *testing.T) {
	var selector Selector

	params, err := selector.Select(MainNetName)
	assert.Nil(t, params)
	assert.True(t, errors.Is(err, ErrNoRegistry), "got %v", err)
	assert.False(t, selector.IsSelected())

	_, err = selector.Active()
	assert.True(t, errors.Is(err, ErrNetworkNotSelected))
}

func TestSharedParamsCopy(t *testing.T) {
	registry := mustRegistry(t)
	shared, err := registry.Get(MainNetName)
	require.NoError(t, err)
	powLimit := new(big.Int).Set(shared.Consensus.PowLimit)
	seeds := append([]DNSSeed(nil), shared.DNSSeeds...)
	require.NotEmpty(t, seeds)

	own := shared.Copy()
	own.Consensus.PowLimit.SetInt64(1)
	own.DNSSeeds[0] = DNSSeed{Name: "other", Host: "seed.invalid"}
	own.Consensus.Deployments[DeploymentCSV].BitNumber = 5
	own.GenesisBlock().Header.Nonce++

	again, err := registry.Get(MainNetName)
	require.NoError(t, err)
	assert.Same(t, shared, again)
	assert.Equal(t, 0, powLimit.Cmp(again.Consensus.PowLimit))
	assert.Equal(t, seeds, again.DNSSeeds)
	assert.Equal(t, uint8(0), again.Consensus.Deployments[DeploymentCSV].BitNumber)
	assert.Equal(t, again.GenesisHash(), own.GenesisHash())
	assert.Equal(t, again.GenesisBlock().BlockHash(), own.GenesisBlock().BlockHash())
	assert.NoError(t, again.Validate())
}

func TestSelectorConcurrentSelect(t *testing.T) {
	selector := NewSelector(mustRegistry(t))
	names := []string{"main", "test", "regtest", "main", "test", "regtest", "main", "test"}

	var (
		wg        sync.WaitGroup
		mtx       sync.Mutex
		succeeded []string
	)
	for _, name := range names {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			params, err := selector.Select(name)
			if err != nil {
				assert.True(t, errors.Is(err, ErrNetworkAlreadySelected))
				return
			}
			mtx.Lock()
			succeeded = append(succeeded, params.Name)
			mtx.Unlock()
		}(name)
	}
	wg.Wait()

	require.Len(t, succeeded, 1)
	active := selector.MustActive()
	assert.Equal(t, succeeded[0], active.Name)
}

func TestDefaultSelection(t *testing.T) {
	registry, err := DefaultRegistry()
	require.NoError(t, err)
	again, err := DefaultRegistry()
	require.NoError(t, err)
	assert.Same(t, registry, again)

	assert.Panics(t, func() { ActiveParams() })

	params, err := SelectParams("regtest")
	require.NoError(t, err)
	assert.Equal(t, "regtest", params.Name)
	assert.Same(t, params, ActiveParams())

	_, err = SelectParams("main")
	assert.True(t, errors.Is(err, ErrNetworkAlreadySelected))
	assert.Equal(t, "regtest", ActiveParams().Name)
}
