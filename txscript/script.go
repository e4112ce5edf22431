// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2024 The NeoBytes developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrMalformedPush is returned when a data push runs past the end of the
// script.
var ErrMalformedPush = errors.New("malformed push")

// parsedOpcode represents an opcode that has been parsed along with any data
// pushed by it.
type parsedOpcode struct {
	value byte
	data  []byte
}

// isSmallInt returns whether or not the opcode is considered a small integer,
// which is an OP_0, or OP_1 through OP_16.
func isSmallInt(op byte) bool {
	return op == OP_0 || (op >= OP_1 && op <= OP_16)
}

// asSmallInt returns the passed opcode, which must be true according to
// isSmallInt(), as an integer.
func asSmallInt(op byte) int {
	if op == OP_0 {
		return 0
	}

	return int(op - (OP_1 - 1))
}

// parseScript walks the script and splits it into opcodes and their pushed
// data.  Opcodes other than data pushes carry no payload.  On a malformed
// push the opcodes parsed before it are returned along with the error.
func parseScript(script []byte) ([]parsedOpcode, error) {
	pops := make([]parsedOpcode, 0, len(script))
	for i := 0; i < len(script); {
		op := script[i]
		i++

		var dataLen int
		switch {
		case op >= OP_DATA_1 && op <= OP_DATA_75:
			dataLen = int(op)

		case op == OP_PUSHDATA1:
			if len(script[i:]) < 1 {
				return pops, errors.Wrapf(ErrMalformedPush,
					"OP_PUSHDATA1 at offset %d has no length", i-1)
			}
			dataLen = int(script[i])
			i++

		case op == OP_PUSHDATA2:
			if len(script[i:]) < 2 {
				return pops, errors.Wrapf(ErrMalformedPush,
					"OP_PUSHDATA2 at offset %d has no length", i-1)
			}
			dataLen = int(binary.LittleEndian.Uint16(script[i:]))
			i += 2

		case op == OP_PUSHDATA4:
			if len(script[i:]) < 4 {
				return pops, errors.Wrapf(ErrMalformedPush,
					"OP_PUSHDATA4 at offset %d has no length", i-1)
			}
			dataLen = int(binary.LittleEndian.Uint32(script[i:]))
			i += 4

		default:
			pops = append(pops, parsedOpcode{value: op})
			continue
		}

		if dataLen < 0 || len(script[i:]) < dataLen {
			return pops, errors.Wrapf(ErrMalformedPush,
				"opcode 0x%02x requires %d bytes, script has %d remaining",
				op, dataLen, len(script[i:]))
		}
		pops = append(pops, parsedOpcode{value: op, data: script[i : i+dataLen]})
		i += dataLen
	}

	return pops, nil
}

// opcodeName returns the assembly name of the opcode.
func opcodeName(op byte) string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	switch {
	case op >= OP_1 && op <= OP_16:
		return fmt.Sprintf("OP_%d", asSmallInt(op))
	case op >= OP_DATA_1 && op <= OP_DATA_75:
		return fmt.Sprintf("OP_DATA_%d", op)
	}

	return fmt.Sprintf("OP_UNKNOWN%d", op)
}

// DisasmString formats a disassembled script for one line printing.  Data
// pushes are shown as hex, every other opcode by name.  When the script fails
// to parse, the returned string contains the disassembled script up to the
// point the failure occurred along with the string '[error]' appended, and
// the error is returned.
func DisasmString(script []byte) (string, error) {
	pops, err := parseScript(script)

	var parts []string
	for _, pop := range pops {
		if pop.data != nil || (pop.value >= OP_DATA_1 && pop.value <= OP_PUSHDATA4) {
			parts = append(parts, hex.EncodeToString(pop.data))
			continue
		}
		parts = append(parts, opcodeName(pop.value))
	}
	if err != nil {
		parts = append(parts, "[error]")
	}

	return strings.Join(parts, " "), err
}
