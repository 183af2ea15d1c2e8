// Package bits provides read-only bitfield extraction over a 32-bit MIPS
// instruction word: plain shift-and-mask, since decoded Instructions are
// never re-encoded bit by bit — the original word is kept around unchanged
// wherever a caller needs it back.
package bits

// Field extracts the [bit, bit+width) range of word as an unsigned value,
// bit 0 being the least significant bit — the MIPS field layout convention
// used throughout the ISA manuals (e.g. opcode is Field(w, 26, 6)).
func Field(word uint32, bit, width int) uint32 {
	mask := uint32(1)<<width - 1
	return (word >> bit) & mask
}

// SignExtend16 sign-extends a 16-bit immediate field to int32, the
// conversion every I-type arithmetic/load/store instruction applies to its
// low half before combining it with a hi-half upper value.
func SignExtend16(value uint16) int32 {
	return int32(int16(value))
}

// Opcode extracts the primary 6-bit opcode field (bits 31-26).
func Opcode(word uint32) uint32 { return Field(word, 26, 6) }

// Rs extracts the rs register field (bits 25-21).
func Rs(word uint32) uint32 { return Field(word, 21, 5) }

// Rt extracts the rt register field (bits 20-16).
func Rt(word uint32) uint32 { return Field(word, 16, 5) }

// Rd extracts the rd register field (bits 15-11).
func Rd(word uint32) uint32 { return Field(word, 11, 5) }

// Shamt extracts the 5-bit shift amount field (bits 10-6).
func Shamt(word uint32) uint32 { return Field(word, 6, 5) }

// Funct extracts the SPECIAL secondary opcode field (bits 5-0).
func Funct(word uint32) uint32 { return Field(word, 0, 6) }

// Imm16 extracts the 16-bit immediate field (bits 15-0).
func Imm16(word uint32) uint16 { return uint16(Field(word, 0, 16)) }

// Target extracts the 26-bit jump target field (bits 25-0).
func Target(word uint32) uint32 { return Field(word, 0, 26) }

// JumpTarget reconstructs the full 32-bit address of a J-type target given
// the address of the delay slot instruction following the jump: the top 4
// bits come from that address (MIPS jumps never cross a 256MB segment) and
// the low 28 bits are the 26-bit field shifted left by 2.
func JumpTarget(word uint32, delaySlotPC uint32) uint32 {
	return (delaySlotPC & 0xF0000000) | (Target(word) << 2)
}
