// Copyright (c) 2024 The NeoBytes developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainhash

import (
	"encoding/hex"
	"testing"
)

func mustDecodeHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	return b
}

func TestNeoScryptVectors(t *testing.T) {
	sequence := make([]byte, 80)
	for i := range sequence {
		sequence[i] = byte(i)
	}

	tests := []struct {
		name  string
		input []byte
		raw   string
	}{
		{
			name:  "zero header",
			input: make([]byte, 80),
			raw:   "2c400aba7b67aae2eb8afe32a31303b43a5b2ad884badd97c7984e6b7e3b2c7b",
		},
		{
			name:  "byte sequence",
			input: sequence,
			raw:   "7258961afb33fd12d00cacb8d63f4f4f52bb6917043865dd24a08f578853122d",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := make([]byte, HashSize)
			NeoScrypt(tt.input, out)
			if got := hex.EncodeToString(out); got != tt.raw {
				t.Fatalf("NeoScrypt() = %s, want %s", got, tt.raw)
			}
		})
	}
}

func TestFastKDF(t *testing.T) {
	out := make([]byte, 32)
	fastKDF(make([]byte, 80), make([]byte, 80), out)

	want := "8dbacf23a7a6b1ef9ea73e79522ae365b212f9006e7df991c3fa88668493a89e"
	if got := hex.EncodeToString(out); got != want {
		t.Fatalf("fastKDF() = %s, want %s", got, want)
	}
}

func TestNeoScryptHeaderHashes(t *testing.T) {
	// Serialized genesis headers of the three NeoBytes networks.
	tests := []struct {
		name   string
		header string
		hash   string
	}{
		{
			name:   "main",
			header: "01000000000000000000000000000000000000000000000000000000000000000000000037c2127cf7b6352fd895935606fceed964a8247707a0bac9ec909585d6e841a02b29b764f0ff0f1ee08d1400",
			hash:   "0000083c6edd8e5870c4f25857824125358a96c81b66dc5831ddd5e82a777758",
		},
		{
			name:   "test",
			header: "01000000000000000000000000000000000000000000000000000000000000000000000037c2127cf7b6352fd895935606fceed964a8247707a0bac9ec909585d6e841a050deb460f0ff0f1e70a10d00",
			hash:   "0000042e5e7347b96f676974fa0cd902956ae49ce78d4ca4978d59fa90d7343c",
		},
		{
			name:   "regtest",
			header: "01000000000000000000000000000000000000000000000000000000000000000000000037c2127cf7b6352fd895935606fceed964a8247707a0bac9ec909585d6e841a0bce0b460ffff7f2000000000",
			hash:   "0668630d663da4a6fcb0fa2e1f01f8d156082e2043354707f2f73f032842752b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NeoScryptH(mustDecodeHex(t, tt.header))
			if got.String() != tt.hash {
				t.Fatalf("NeoScryptH() = %v, want %v", got, tt.hash)
			}
		})
	}
}
