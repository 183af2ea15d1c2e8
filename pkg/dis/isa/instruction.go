package isa

import (
	"fmt"
	"strings"

	"github.com/n64decomp/mipsdis/pkg/dis/isa/registers"
)

// Instruction is an immutable decoded record (spec.md §3 "Instructions are
// created by the Decoder and never mutated"). Symbolic rewriting performed
// by the Hi/Lo Pairer and the formatter never touches this value — it
// produces a separate annotated view (see pkg/dis/hilo.Overlay) keyed by
// instruction position, per spec.md §9's "immutable overlay" guidance.
type Instruction struct {
	Raw     uint32
	Opcode  Opcode
	Dialect Dialect

	Rs, Rt, Rd Register
	Imm        *Immediate
	Target     *Target
}

// String renders the raw (non-pseudo, non-symbolic) form of the
// instruction under the given ABI. Pseudo-op rendering and symbolic operand
// substitution are applied by higher layers, which hold the context this
// one doesn't.
func (i Instruction) String(abi ABI) string {
	var parts []string
	for _, r := range []Register{i.Rd, i.Rs, i.Rt} {
		if r.IsSet() {
			parts = append(parts, r.String(abi))
		}
	}
	if i.Imm != nil {
		parts = append(parts, i.Imm.String())
	}
	if i.Target != nil {
		if i.Target.IsJType {
			parts = append(parts, fmt.Sprintf("0x%x", i.Target.Raw26<<2))
		} else {
			parts = append(parts, fmt.Sprintf("%+d", i.Target.Offset))
		}
	}
	if len(parts) == 0 {
		return i.Opcode.String()
	}
	return i.Opcode.String() + " " + strings.Join(parts, ", ")
}

// Classification is the boolean fact sheet spec.md §3 says every
// Instruction carries. It is computed on demand from Opcode rather than
// stored, since it is a pure function of the opcode (and, for has-delay-slot
// branches, always true for every branch/jump in MIPS) — storing it
// redundantly on every Instruction would just be a cache that can never go
// stale, so there's nothing gained by keeping it resident.
type Classification struct {
	IsBranch          bool
	IsJump            bool
	HasDelaySlot      bool
	IsLikelyBranch    bool
	ReadsRA           bool
	WritesRA          bool
	IsLoad            bool
	IsStore           bool
	IsFloatCoproc     bool
	IsCoproc0         bool
	IsTrap            bool
	HiLoLowHalfSigned bool
}

func (i Instruction) Classify() Classification {
	c := Classification{}

	switch i.Opcode {
	case Opcode_BEQ, Opcode_BNE, Opcode_BLEZ, Opcode_BGTZ,
		Opcode_BLTZ, Opcode_BGEZ, Opcode_BC1F, Opcode_BC1T,
		Opcode_BEQZ, Opcode_BNEZ, Opcode_B:
		c.IsBranch = true
		c.HasDelaySlot = true
	case Opcode_BEQL, Opcode_BNEL, Opcode_BLEZL, Opcode_BGTZL,
		Opcode_BLTZL, Opcode_BGEZL, Opcode_BC1FL, Opcode_BC1TL,
		Opcode_BEQZL, Opcode_BNEZL:
		c.IsBranch = true
		c.HasDelaySlot = true
		c.IsLikelyBranch = true
	case Opcode_BLTZAL, Opcode_BGEZAL, Opcode_BAL:
		c.IsBranch = true
		c.HasDelaySlot = true
		c.WritesRA = true
	case Opcode_BLTZALL, Opcode_BGEZALL:
		c.IsBranch = true
		c.HasDelaySlot = true
		c.IsLikelyBranch = true
		c.WritesRA = true
	case Opcode_J:
		c.IsJump = true
		c.HasDelaySlot = true
	case Opcode_JAL:
		c.IsJump = true
		c.HasDelaySlot = true
		c.WritesRA = true
	case Opcode_JR:
		c.IsJump = true
		c.HasDelaySlot = true
		c.ReadsRA = i.Rs.Number == 31
	case Opcode_JALR:
		c.IsJump = true
		c.HasDelaySlot = true
		c.WritesRA = true
	}

	switch i.Opcode {
	case Opcode_LB, Opcode_LH, Opcode_LWL, Opcode_LW, Opcode_LBU, Opcode_LHU, Opcode_LWR,
		Opcode_LWU, Opcode_LL, Opcode_LD, Opcode_LDL, Opcode_LDR, Opcode_LWC1, Opcode_LDC1,
		Opcode_LQV:
		c.IsLoad = true
	}
	switch i.Opcode {
	case Opcode_SB, Opcode_SH, Opcode_SWL, Opcode_SW, Opcode_SWR, Opcode_SC, Opcode_SD,
		Opcode_SDL, Opcode_SDR, Opcode_SWC1, Opcode_SDC1, Opcode_SQV:
		c.IsStore = true
	}

	switch i.Opcode {
	case Opcode_ADD_S, Opcode_SUB_S, Opcode_MUL_S, Opcode_DIV_S, Opcode_SQRT_S, Opcode_ABS_S,
		Opcode_MOV_S, Opcode_NEG_S, Opcode_ADD_D, Opcode_SUB_D, Opcode_MUL_D, Opcode_DIV_D,
		Opcode_SQRT_D, Opcode_ABS_D, Opcode_MOV_D, Opcode_NEG_D,
		Opcode_CVT_S_D, Opcode_CVT_S_W, Opcode_CVT_S_L, Opcode_CVT_D_S, Opcode_CVT_D_W,
		Opcode_CVT_D_L, Opcode_CVT_W_S, Opcode_CVT_W_D, Opcode_CVT_L_S, Opcode_CVT_L_D,
		Opcode_TRUNC_W_S, Opcode_TRUNC_W_D, Opcode_C_EQ_S, Opcode_C_LT_S, Opcode_C_LE_S,
		Opcode_C_EQ_D, Opcode_C_LT_D, Opcode_C_LE_D, Opcode_MFC1, Opcode_DMFC1, Opcode_MTC1,
		Opcode_DMTC1, Opcode_CFC1, Opcode_CTC1, Opcode_LWC1, Opcode_SWC1, Opcode_LDC1, Opcode_SDC1:
		c.IsFloatCoproc = true
	}

	switch i.Opcode {
	case Opcode_MFC0, Opcode_MTC0, Opcode_TLBR, Opcode_TLBWI, Opcode_TLBWR, Opcode_TLBP, Opcode_ERET:
		c.IsCoproc0 = true
	}

	switch i.Opcode {
	case Opcode_SYSCALL, Opcode_BREAK, Opcode_TGE, Opcode_TGEU, Opcode_TLT, Opcode_TLTU,
		Opcode_TEQ, Opcode_TNE:
		c.IsTrap = true
	}

	switch i.Opcode {
	case Opcode_ADDIU, Opcode_ADDI, Opcode_DADDI, Opcode_DADDIU, Opcode_SLTI,
		Opcode_LB, Opcode_LH, Opcode_LW, Opcode_LBU, Opcode_LHU, Opcode_LWU, Opcode_LD,
		Opcode_SB, Opcode_SH, Opcode_SW, Opcode_SD, Opcode_LWC1, Opcode_SWC1, Opcode_LDC1, Opcode_SDC1:
		c.HiLoLowHalfSigned = true
	}

	return c
}

// UsesRegisterClass reports whether any of this instruction's register
// slots belong to the given class — used by the Section Analyzer to decide
// whether to render COP0/FPU register names in diagnostics.
func (i Instruction) UsesRegisterClass(class registers.Class) bool {
	for _, r := range []Register{i.Rs, i.Rt, i.Rd} {
		if r.IsSet() && r.Class == class {
			return true
		}
	}
	return false
}
