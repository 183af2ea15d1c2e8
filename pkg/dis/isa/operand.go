package isa

import (
	"fmt"

	"github.com/n64decomp/mipsdis/pkg/dis/isa/registers"
)

// Register is an operand slot holding a general-purpose, floating point or
// coprocessor-0 register reference. The zero value (Class nil) means the
// slot is unused — not every Instruction fills all three register slots.
type Register struct {
	Class  registers.Class
	Number int
}

// IsSet reports whether this register slot is actually used by the
// instruction it belongs to.
func (r Register) IsSet() bool {
	return r.Class != registers.ClassNone
}

func (r Register) String(abi ABI) string {
	if !r.IsSet() {
		return ""
	}
	return registers.Name(r.Class, r.Number, registers.ABI(abi))
}

// Immediate is the single 16-bit immediate slot an I-type instruction
// carries, already split into its raw bits and the sign/zero-extension
// rule its consumer applies (addiu/loads/stores sign-extend; andi/ori/xori
// zero-extend; the Hi/Lo Pairer needs to know which to reconstruct
// addresses correctly).
type Immediate struct {
	Raw      uint16
	SignedOp bool
}

// Value returns the immediate either sign- or zero-extended to int64
// depending on SignedOp.
func (imm Immediate) Value() int64 {
	if imm.SignedOp {
		return int64(int16(imm.Raw))
	}
	return int64(imm.Raw)
}

func (imm Immediate) String() string {
	return fmt.Sprintf("%d", imm.Raw)
}

// Target is the raw operand of a jump or branch: for J-type instructions
// the 26-bit word-aligned field; for branches a 16-bit signed word offset
// relative to the delay slot's address. Resolution to an absolute VRAM is
// the Section Analyzer's job (it knows the instruction's address), not the
// Decoder's — the Decoder only ever sees one word in isolation.
type Target struct {
	IsJType bool
	// Raw26 is the raw 26-bit field for J-type instructions.
	Raw26 uint32
	// Offset is the signed word offset for branch-type instructions.
	Offset int16
}
