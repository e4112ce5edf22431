// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Copyright (c) 2024 The NeoBytes developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"fmt"
)

// NeoNet represents which NeoBytes network a message belongs to.  The value
// is the little endian reading of the four message start bytes.
type NeoNet uint32

// Constants used to indicate the message NeoBytes network.  They can also be
// used to seek to the next message when a stream's state is unknown, but
// this package does not provide that functionality since it's generally a
// better idea to simply disconnect clients that are misbehaving over TCP.
const (
	// MainNet represents the main NeoBytes network, "Ella" on the wire.
	MainNet NeoNet = 0x61_6c_6c_45

	// TestNet represents the test network, "Snow" on the wire.
	TestNet NeoNet = 0x77_6f_6e_53

	// RegTest represents the regression test network, "Luna" on the wire.
	RegTest NeoNet = 0x61_6e_75_4c
)

// bnStrings is a map of NeoBytes networks back to their constant names for
// pretty printing.
var bnStrings = map[NeoNet]string{
	MainNet: "MainNet",
	TestNet: "TestNet",
	RegTest: "RegTest",
}

// String returns the NeoNet in human-readable form.
func (n NeoNet) String() string {
	if s, ok := bnStrings[n]; ok {
		return s
	}

	return fmt.Sprintf("Unknown NeoNet (%d)", uint32(n))
}

// Bytes returns the message start bytes in wire order.
func (n NeoNet) Bytes() [4]byte {
	var b [4]byte
	littleEndian.PutUint32(b[:], uint32(n))
	return b
}

// NeoNetFromBytes is the inverse of NeoNet.Bytes.
func NeoNetFromBytes(b [4]byte) NeoNet {
	return NeoNet(littleEndian.Uint32(b[:]))
}
