// Copyright (c) 2024 The NeoBytes developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainhash

import (
	"encoding/binary"
	"math/bits"

	"golang.org/x/crypto/blake2s"
)

// NeoScrypt parameters of profile 0, the one used for block headers:
// N = 128, r = 2, Salsa20/20 and ChaCha20/20 mixed in parallel, FastKDF
// built on keyed BLAKE2s-256.
const (
	neoscryptN      = 128
	neoscryptR      = 2
	neoscryptRounds = 20

	mixBlockWords = 16
	smixWords     = 2 * neoscryptR * mixBlockWords

	kdfBufSize    = 256
	kdfIterations = 32
	prfInputSize  = 64
	prfKeySize    = 32
	prfOutputSize = 32
)

// NeoScrypt writes the 32-byte NeoScrypt digest of input to out.
// out must be at least 32 bytes long.
func NeoScrypt(input, out []byte) {
	var buf [smixWords * 4]byte
	fastKDF(input, input, buf[:])

	var x, z [smixWords]uint32
	for i := range x {
		x[i] = binary.LittleEndian.Uint32(buf[i*4:])
	}
	z = x

	smix(&z, chachaCore)
	smix(&x, salsaCore)

	for i := range x {
		binary.LittleEndian.PutUint32(buf[i*4:], x[i]^z[i])
	}

	fastKDF(input, buf[:], out[:HashSize])
}

// fastKDF is the BLAKE2s based key derivation of NeoScrypt.  It fills
// output, which must not be longer than kdfBufSize.
func fastKDF(password, salt, output []byte) {
	var a [kdfBufSize + prfInputSize]byte
	var b [kdfBufSize + prfKeySize]byte

	fillRepeated(a[:kdfBufSize], password)
	copy(a[kdfBufSize:], a[:prfInputSize])
	fillRepeated(b[:kdfBufSize], salt)
	copy(b[kdfBufSize:], b[:prfKeySize])

	var prf [prfOutputSize]byte
	bufPtr := 0
	for i := 0; i < kdfIterations; i++ {
		h, err := blake2s.New256(b[bufPtr : bufPtr+prfKeySize])
		if err != nil {
			// only reachable with a key longer than 32 bytes
			panic(err)
		}
		h.Write(a[bufPtr : bufPtr+prfInputSize])
		h.Sum(prf[:0])

		bufPtr = 0
		for _, v := range prf {
			bufPtr += int(v)
		}
		bufPtr &= kdfBufSize - 1

		for j, v := range prf {
			b[bufPtr+j] ^= v
		}

		// Keep the head and the tail of the salt buffer in sync.
		if bufPtr < prfKeySize {
			n := prfKeySize - bufPtr
			copy(b[kdfBufSize+bufPtr:], b[bufPtr:bufPtr+n])
		}
		if kdfBufSize-bufPtr < prfOutputSize {
			n := prfOutputSize - (kdfBufSize - bufPtr)
			copy(b[:n], b[kdfBufSize:kdfBufSize+n])
		}
	}

	head := kdfBufSize - bufPtr
	if head >= len(output) {
		for j := range output {
			output[j] = b[bufPtr+j] ^ a[j]
		}
		return
	}

	for j := 0; j < head; j++ {
		output[j] = b[bufPtr+j] ^ a[j]
	}
	for j := 0; j < len(output)-head; j++ {
		output[head+j] = b[j] ^ a[head+j]
	}
}

func fillRepeated(dst, src []byte) {
	if len(src) == 0 {
		return
	}
	for i := 0; i < len(dst); i += copy(dst[i:], src) {
	}
}

// smix is the sequential memory-hard mixing step over 2*r 64-byte blocks.
func smix(x *[smixWords]uint32, core func([]uint32)) {
	var v [neoscryptN][smixWords]uint32

	for i := 0; i < neoscryptN; i++ {
		v[i] = *x
		blockMix(x, core)
	}

	for i := 0; i < neoscryptN; i++ {
		j := x[smixWords-mixBlockWords] & (neoscryptN - 1)
		for k := range x {
			x[k] ^= v[j][k]
		}
		blockMix(x, core)
	}
}

// blockMix chains the core over the four blocks (each block is xored with
// its predecessor, the first with the last) and swaps the middle two.
func blockMix(x *[smixWords]uint32, core func([]uint32)) {
	b0, b1, b2, b3 := x[0:16], x[16:32], x[32:48], x[48:64]

	xorWords(b0, b3)
	core(b0)
	xorWords(b1, b0)
	core(b1)
	xorWords(b2, b1)
	core(b2)
	xorWords(b3, b2)
	core(b3)

	var t [mixBlockWords]uint32
	copy(t[:], b1)
	copy(b1, b2)
	copy(b2, t[:])
}

func xorWords(dst, src []uint32) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}

// salsaCore applies the Salsa20/20 core to a 16 word block in place.
func salsaCore(b []uint32) {
	var x [mixBlockWords]uint32
	copy(x[:], b)

	for i := 0; i < neoscryptRounds; i += 2 {
		x[4] ^= bits.RotateLeft32(x[0]+x[12], 7)
		x[8] ^= bits.RotateLeft32(x[4]+x[0], 9)
		x[12] ^= bits.RotateLeft32(x[8]+x[4], 13)
		x[0] ^= bits.RotateLeft32(x[12]+x[8], 18)

		x[9] ^= bits.RotateLeft32(x[5]+x[1], 7)
		x[13] ^= bits.RotateLeft32(x[9]+x[5], 9)
		x[1] ^= bits.RotateLeft32(x[13]+x[9], 13)
		x[5] ^= bits.RotateLeft32(x[1]+x[13], 18)

		x[14] ^= bits.RotateLeft32(x[10]+x[6], 7)
		x[2] ^= bits.RotateLeft32(x[14]+x[10], 9)
		x[6] ^= bits.RotateLeft32(x[2]+x[14], 13)
		x[10] ^= bits.RotateLeft32(x[6]+x[2], 18)

		x[3] ^= bits.RotateLeft32(x[15]+x[11], 7)
		x[7] ^= bits.RotateLeft32(x[3]+x[15], 9)
		x[11] ^= bits.RotateLeft32(x[7]+x[3], 13)
		x[15] ^= bits.RotateLeft32(x[11]+x[7], 18)

		x[1] ^= bits.RotateLeft32(x[0]+x[3], 7)
		x[2] ^= bits.RotateLeft32(x[1]+x[0], 9)
		x[3] ^= bits.RotateLeft32(x[2]+x[1], 13)
		x[0] ^= bits.RotateLeft32(x[3]+x[2], 18)

		x[6] ^= bits.RotateLeft32(x[5]+x[4], 7)
		x[7] ^= bits.RotateLeft32(x[6]+x[5], 9)
		x[4] ^= bits.RotateLeft32(x[7]+x[6], 13)
		x[5] ^= bits.RotateLeft32(x[4]+x[7], 18)

		x[11] ^= bits.RotateLeft32(x[10]+x[9], 7)
		x[8] ^= bits.RotateLeft32(x[11]+x[10], 9)
		x[9] ^= bits.RotateLeft32(x[8]+x[11], 13)
		x[10] ^= bits.RotateLeft32(x[9]+x[8], 18)

		x[12] ^= bits.RotateLeft32(x[15]+x[14], 7)
		x[13] ^= bits.RotateLeft32(x[12]+x[15], 9)
		x[14] ^= bits.RotateLeft32(x[13]+x[12], 13)
		x[15] ^= bits.RotateLeft32(x[14]+x[13], 18)
	}

	for i := range b {
		b[i] += x[i]
	}
}

// chachaCore applies the ChaCha20/20 core to a 16 word block in place.
func chachaCore(b []uint32) {
	var x [mixBlockWords]uint32
	copy(x[:], b)

	for i := 0; i < neoscryptRounds; i += 2 {
		quarterRound(&x, 0, 4, 8, 12)
		quarterRound(&x, 1, 5, 9, 13)
		quarterRound(&x, 2, 6, 10, 14)
		quarterRound(&x, 3, 7, 11, 15)

		quarterRound(&x, 0, 5, 10, 15)
		quarterRound(&x, 1, 6, 11, 12)
		quarterRound(&x, 2, 7, 8, 13)
		quarterRound(&x, 3, 4, 9, 14)
	}

	for i := range b {
		b[i] += x[i]
	}
}

func quarterRound(x *[mixBlockWords]uint32, a, b, c, d int) {
	x[a] += x[b]
	x[d] = bits.RotateLeft32(x[d]^x[a], 16)
	x[c] += x[d]
	x[b] = bits.RotateLeft32(x[b]^x[c], 12)
	x[a] += x[b]
	x[d] = bits.RotateLeft32(x[d]^x[a], 8)
	x[c] += x[d]
	x[b] = bits.RotateLeft32(x[b]^x[c], 7)
}
