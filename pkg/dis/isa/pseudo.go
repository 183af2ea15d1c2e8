package isa

import "github.com/n64decomp/mipsdis/pkg/dis/isa/registers"

// Pseudo recognizes the single-instruction idioms spec.md §4.A lists:
// the raw decode retains its real opcode (Instruction is never mutated);
// Pseudo returns the alternate mnemonic to render instead, selected at
// emit time, and ok=false when no pseudo form applies.
func (i Instruction) Pseudo() (mnemonic string, ok bool) {
	isZero := func(r Register) bool {
		return r.IsSet() && r.Class == registers.ClassGPR && r.Number == 0
	}

	switch i.Opcode {
	case Opcode_SLL:
		if isZero(i.Rd) && isZero(i.Rt) && i.Imm != nil && i.Imm.Raw == 0 {
			return "nop", true
		}
	case Opcode_OR:
		if isZero(i.Rt) {
			return "move", true
		}
		if isZero(i.Rs) {
			return "move", true
		}
	case Opcode_ADDU:
		if isZero(i.Rt) {
			return "move", true
		}
	case Opcode_ADDIU:
		if isZero(i.Rs) {
			return "li", true
		}
	case Opcode_ADDI:
		if isZero(i.Rs) {
			return "li", true
		}
	case Opcode_ORI:
		if isZero(i.Rs) {
			return "li", true
		}
	case Opcode_BEQ:
		if isZero(i.Rs) && isZero(i.Rt) {
			return "b", true
		}
		if isZero(i.Rt) {
			return "beqz", true
		}
	case Opcode_BNE:
		if isZero(i.Rt) {
			return "bnez", true
		}
	case Opcode_BEQL:
		if isZero(i.Rt) {
			return "beqzl", true
		}
	case Opcode_BNEL:
		if isZero(i.Rt) {
			return "bnezl", true
		}
	case Opcode_BGEZAL:
		if isZero(i.Rs) {
			return "bal", true
		}
	case Opcode_NOR:
		if isZero(i.Rt) {
			return "not", true
		}
	case Opcode_SUB:
		if isZero(i.Rs) {
			return "neg", true
		}
	case Opcode_SUBU:
		if isZero(i.Rs) {
			return "negu", true
		}
	}

	return "", false
}
