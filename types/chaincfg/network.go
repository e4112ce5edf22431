// Copyright (c) 2024 The NeoBytes developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"strings"
)

// Network is the closed set of NeoBytes networks.
type Network uint8

const (
	MainNet Network = iota
	TestNet
	RegTest
)

// Identifiers accepted by ParseNetwork.
const (
	MainNetName = "main"
	TestNetName = "test"
	RegTestName = "regtest"
)

var networkNames = map[Network]string{
	MainNet: MainNetName,
	TestNet: TestNetName,
	RegTest: RegTestName,
}

// Networks lists every network in declaration order.
func Networks() []Network {
	return []Network{MainNet, TestNet, RegTest}
}

// ParseNetwork maps an identifier to its Network.  Matching is exact;
// anything else yields an *UnknownNetworkError.
func ParseNetwork(name string) (Network, error) {
	for net, netName := range networkNames {
		if netName == name {
			return net, nil
		}
	}
	return 0, &UnknownNetworkError{Name: name}
}

// NetworkNames returns the accepted identifiers joined for help output.
func NetworkNames() string {
	names := make([]string, 0, len(networkNames))
	for _, net := range Networks() {
		names = append(names, networkNames[net])
	}
	return strings.Join(names, ", ")
}

func (n Network) String() string {
	if name, ok := networkNames[n]; ok {
		return name
	}
	return fmt.Sprintf("network(%d)", uint8(n))
}

// Params builds the parameters of the network.  See BuildParams.
func (n Network) Params() (*Params, error) {
	return BuildParams(n)
}
