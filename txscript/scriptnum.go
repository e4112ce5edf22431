// Copyright (c) 2015-2017 The btcsuite developers
// Copyright (c) 2024 The NeoBytes developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

// ScriptNum represents a numeric value used in the scripting engine with
// special handling to deal with the subtle semantics required by consensus.
//
// All numbers are stored on the data and alt stacks encoded as little endian
// with a sign bit.  All numeric opcodes such as OP_ADD, OP_SUB, and OP_MUL,
// are only allowed to operate on 4-byte integers in the range [-2^31 + 1,
// 2^31 - 1], however the results of numeric operations may overflow and remain
// valid so long as they are not used as inputs to other numeric operations or
// otherwise interpreted as an integer.
type ScriptNum int64

// Bytes returns the number serialized as a little endian with a sign bit.
//
// Example encodings:
//        127 -> [0x7f]
//       -127 -> [0xff]
//        128 -> [0x80 0x00]
//       -128 -> [0x80 0x80]
//        129 -> [0x81 0x00]
//       -129 -> [0x81 0x80]
//        256 -> [0x00 0x01]
//       -256 -> [0x00 0x81]
//      32767 -> [0xff 0x7f]
//     -32767 -> [0xff 0xff]
//      32768 -> [0x00 0x80 0x00]
//     -32768 -> [0x00 0x80 0x80]
func (n ScriptNum) Bytes() []byte {
	// Zero encodes as an empty byte slice.
	if n == 0 {
		return nil
	}

	// Take the absolute value and keep track of whether it was originally
	// negative.
	isNegative := n < 0
	if isNegative {
		n = -n
	}

	// Encode to little endian.  The maximum number of encoded bytes is 9
	// (8 bytes for max int64 plus a potential byte for sign extension).
	result := make([]byte, 0, 9)
	for n > 0 {
		result = append(result, byte(n&0xff))
		n >>= 8
	}

	// When the most significant byte already has the high bit set, an
	// additional high byte is required to indicate whether the number is
	// negative or positive.  The additional byte is removed when converting
	// back to an integral and its high bit is used to denote the sign.
	//
	// Otherwise, when the most significant byte does not already have the
	// high bit set, use it to indicate the value is negative, if needed.
	if result[len(result)-1]&0x80 != 0 {
		extraByte := byte(0x00)
		if isNegative {
			extraByte = 0x80
		}
		result = append(result, extraByte)

	} else if isNegative {
		result[len(result)-1] |= 0x80
	}

	return result
}
