package isa

import (
	"github.com/n64decomp/mipsdis/pkg/dis/bits"
	"github.com/n64decomp/mipsdis/pkg/dis/isa/registers"
)

// Decode decodes one 32-bit machine word into a typed Instruction for the
// given dialect. word must already be byte-order-corrected by the caller —
// see isa.ReadWord for middle/little/big endian handling — Decode itself
// only ever sees a native-order uint32. Decoding never fails: an
// unrecognized bit pattern returns Opcode_INVALID rather than an error
// (spec.md §4.A, §7).
func Decode(word uint32, dialect Dialect) Instruction {
	inst := Instruction{Raw: word, Dialect: dialect, Opcode: Opcode_INVALID}

	primary := bits.Opcode(word)

	switch primary {
	case 0x00:
		decodeSpecial(word, &inst)
	case 0x01:
		decodeRegimm(word, &inst)
	case 0x02:
		decodeJType(word, &inst, Opcode_J)
	case 0x03:
		decodeJType(word, &inst, Opcode_JAL)
	case 0x04:
		decodeBranch(word, &inst, Opcode_BEQ, true)
	case 0x05:
		decodeBranch(word, &inst, Opcode_BNE, true)
	case 0x06:
		decodeBranchRtZero(word, &inst, Opcode_BLEZ)
	case 0x07:
		decodeBranchRtZero(word, &inst, Opcode_BGTZ)
	case 0x08:
		decodeIType(word, &inst, Opcode_ADDI, true)
	case 0x09:
		decodeIType(word, &inst, Opcode_ADDIU, true)
	case 0x0A:
		decodeIType(word, &inst, Opcode_SLTI, true)
	case 0x0B:
		decodeIType(word, &inst, Opcode_SLTIU, true)
	case 0x0C:
		decodeIType(word, &inst, Opcode_ANDI, false)
	case 0x0D:
		decodeIType(word, &inst, Opcode_ORI, false)
	case 0x0E:
		decodeIType(word, &inst, Opcode_XORI, false)
	case 0x0F:
		decodeLUI(word, &inst)
	case 0x10:
		decodeCOP0(word, &inst)
	case 0x11:
		decodeCOP1(word, &inst)
	case 0x12:
		decodeCOP2(word, &inst, dialect)
	case 0x1C:
		decodeSpecial2(word, &inst, dialect)
	case 0x1F:
		decodeSpecial3(word, &inst, dialect)
	case 0x14:
		decodeBranch(word, &inst, Opcode_BEQL, true)
	case 0x15:
		decodeBranch(word, &inst, Opcode_BNEL, true)
	case 0x16:
		decodeBranchRtZero(word, &inst, Opcode_BLEZL)
	case 0x17:
		decodeBranchRtZero(word, &inst, Opcode_BGTZL)
	case 0x18:
		decodeIType(word, &inst, Opcode_DADDI, true)
	case 0x19:
		decodeIType(word, &inst, Opcode_DADDIU, true)
	case 0x1A:
		decodeIType(word, &inst, Opcode_LDL, true)
	case 0x1B:
		decodeIType(word, &inst, Opcode_LDR, true)
	case 0x20:
		decodeIType(word, &inst, Opcode_LB, true)
	case 0x21:
		decodeIType(word, &inst, Opcode_LH, true)
	case 0x22:
		decodeIType(word, &inst, Opcode_LWL, true)
	case 0x23:
		decodeIType(word, &inst, Opcode_LW, true)
	case 0x24:
		decodeIType(word, &inst, Opcode_LBU, true)
	case 0x25:
		decodeIType(word, &inst, Opcode_LHU, true)
	case 0x26:
		decodeIType(word, &inst, Opcode_LWR, true)
	case 0x27:
		decodeIType(word, &inst, Opcode_LWU, true)
	case 0x28:
		decodeIType(word, &inst, Opcode_SB, true)
	case 0x29:
		decodeIType(word, &inst, Opcode_SH, true)
	case 0x2A:
		decodeIType(word, &inst, Opcode_SWL, true)
	case 0x2B:
		decodeIType(word, &inst, Opcode_SW, true)
	case 0x2C:
		decodeIType(word, &inst, Opcode_SDL, true)
	case 0x2D:
		decodeIType(word, &inst, Opcode_SDR, true)
	case 0x2E:
		decodeIType(word, &inst, Opcode_SWR, true)
	case 0x2F:
		decodeIType(word, &inst, Opcode_CACHE, true)
	case 0x30:
		decodeIType(word, &inst, Opcode_LL, true)
	case 0x31:
		decodeCOP1Load(word, &inst, Opcode_LWC1)
	case 0x32:
		decodeCOP2Load(word, &inst, dialect, Opcode_LQV)
	case 0x35:
		decodeCOP1Load(word, &inst, Opcode_LDC1)
	case 0x37:
		decodeIType(word, &inst, Opcode_LD, true)
	case 0x38:
		decodeIType(word, &inst, Opcode_SC, true)
	case 0x39:
		decodeCOP1Load(word, &inst, Opcode_SWC1)
	case 0x3A:
		decodeCOP2Load(word, &inst, dialect, Opcode_SQV)
	case 0x3D:
		decodeCOP1Load(word, &inst, Opcode_SDC1)
	case 0x3F:
		decodeIType(word, &inst, Opcode_SD, true)
	}

	return inst
}

func decodeIType(word uint32, inst *Instruction, op Opcode, signed bool) {
	inst.Opcode = op
	inst.Rs = Register{Class: registers.ClassGPR, Number: int(bits.Rs(word))}
	inst.Rt = Register{Class: registers.ClassGPR, Number: int(bits.Rt(word))}
	imm := Immediate{Raw: bits.Imm16(word), SignedOp: signed}
	inst.Imm = &imm
}

func decodeLUI(word uint32, inst *Instruction) {
	inst.Opcode = Opcode_LUI
	inst.Rt = Register{Class: registers.ClassGPR, Number: int(bits.Rt(word))}
	imm := Immediate{Raw: bits.Imm16(word), SignedOp: false}
	inst.Imm = &imm
}

func decodeBranch(word uint32, inst *Instruction, op Opcode, twoRegisters bool) {
	inst.Opcode = op
	inst.Rs = Register{Class: registers.ClassGPR, Number: int(bits.Rs(word))}
	if twoRegisters {
		inst.Rt = Register{Class: registers.ClassGPR, Number: int(bits.Rt(word))}
	}
	inst.Target = &Target{Offset: int16(bits.Imm16(word))}
}

func decodeBranchRtZero(word uint32, inst *Instruction, op Opcode) {
	inst.Opcode = op
	inst.Rs = Register{Class: registers.ClassGPR, Number: int(bits.Rs(word))}
	inst.Target = &Target{Offset: int16(bits.Imm16(word))}
}

func decodeJType(word uint32, inst *Instruction, op Opcode) {
	inst.Opcode = op
	inst.Target = &Target{IsJType: true, Raw26: bits.Target(word)}
}

func decodeCOP1Load(word uint32, inst *Instruction, op Opcode) {
	inst.Opcode = op
	inst.Rs = Register{Class: registers.ClassGPR, Number: int(bits.Rs(word))}
	inst.Rt = Register{Class: registers.ClassFPR, Number: int(bits.Rt(word))}
	imm := Immediate{Raw: bits.Imm16(word), SignedOp: true}
	inst.Imm = &imm
}

func decodeCOP2Load(word uint32, inst *Instruction, dialect Dialect, op Opcode) {
	inst.Opcode = op
	inst.Rs = Register{Class: registers.ClassGPR, Number: int(bits.Rs(word))}
	class := registers.ClassCOP2Vector
	if dialect == DialectGTE {
		class = registers.ClassCOP2GTE
	}
	inst.Rt = Register{Class: class, Number: int(bits.Rt(word))}
	imm := Immediate{Raw: bits.Imm16(word), SignedOp: true}
	inst.Imm = &imm
}

// SPECIAL (primary opcode 0) dispatches on the 6-bit funct field.
func decodeSpecial(word uint32, inst *Instruction) {
	rd := Register{Class: registers.ClassGPR, Number: int(bits.Rd(word))}
	rs := Register{Class: registers.ClassGPR, Number: int(bits.Rs(word))}
	rt := Register{Class: registers.ClassGPR, Number: int(bits.Rt(word))}
	shamt := bits.Shamt(word)

	rType := func(op Opcode) {
		inst.Opcode = op
		inst.Rd, inst.Rs, inst.Rt = rd, rs, rt
	}
	shiftType := func(op Opcode) {
		inst.Opcode = op
		inst.Rd, inst.Rt = rd, rt
		imm := Immediate{Raw: uint16(shamt), SignedOp: false}
		inst.Imm = &imm
	}
	shiftVType := func(op Opcode) {
		inst.Opcode = op
		inst.Rd, inst.Rt, inst.Rs = rd, rt, rs
	}
	mulDivType := func(op Opcode) {
		inst.Opcode = op
		inst.Rs, inst.Rt = rs, rt
	}

	switch bits.Funct(word) {
	case 0x00:
		shiftType(Opcode_SLL)
	case 0x02:
		shiftType(Opcode_SRL)
	case 0x03:
		shiftType(Opcode_SRA)
	case 0x04:
		shiftVType(Opcode_SLLV)
	case 0x06:
		shiftVType(Opcode_SRLV)
	case 0x07:
		shiftVType(Opcode_SRAV)
	case 0x08:
		inst.Opcode = Opcode_JR
		inst.Rs = rs
	case 0x09:
		inst.Opcode = Opcode_JALR
		inst.Rd, inst.Rs = rd, rs
	case 0x0C:
		inst.Opcode = Opcode_SYSCALL
	case 0x0D:
		inst.Opcode = Opcode_BREAK
	case 0x0F:
		inst.Opcode = Opcode_SYNC
	case 0x10:
		inst.Opcode = Opcode_MFHI
		inst.Rd = rd
	case 0x11:
		inst.Opcode = Opcode_MTHI
		inst.Rs = rs
	case 0x12:
		inst.Opcode = Opcode_MFLO
		inst.Rd = rd
	case 0x13:
		inst.Opcode = Opcode_MTLO
		inst.Rs = rs
	case 0x14:
		shiftVType(Opcode_DSLLV)
	case 0x16:
		shiftVType(Opcode_DSRLV)
	case 0x17:
		shiftVType(Opcode_DSRAV)
	case 0x18:
		mulDivType(Opcode_MULT)
	case 0x19:
		mulDivType(Opcode_MULTU)
	case 0x1A:
		mulDivType(Opcode_DIV)
	case 0x1B:
		mulDivType(Opcode_DIVU)
	case 0x1C:
		mulDivType(Opcode_DMULT)
	case 0x1D:
		mulDivType(Opcode_DMULTU)
	case 0x1E:
		mulDivType(Opcode_DDIV)
	case 0x1F:
		mulDivType(Opcode_DDIVU)
	case 0x20:
		rType(Opcode_ADD)
	case 0x21:
		rType(Opcode_ADDU)
	case 0x22:
		rType(Opcode_SUB)
	case 0x23:
		rType(Opcode_SUBU)
	case 0x24:
		rType(Opcode_AND)
	case 0x25:
		rType(Opcode_OR)
	case 0x26:
		rType(Opcode_XOR)
	case 0x27:
		rType(Opcode_NOR)
	case 0x2A:
		rType(Opcode_SLT)
	case 0x2B:
		rType(Opcode_SLTU)
	case 0x2C:
		rType(Opcode_DADD)
	case 0x2D:
		rType(Opcode_DADDU)
	case 0x2E:
		rType(Opcode_DSUB)
	case 0x2F:
		rType(Opcode_DSUBU)
	case 0x30:
		mulDivType(Opcode_TGE)
	case 0x31:
		mulDivType(Opcode_TGEU)
	case 0x32:
		mulDivType(Opcode_TLT)
	case 0x33:
		mulDivType(Opcode_TLTU)
	case 0x34:
		mulDivType(Opcode_TEQ)
	case 0x36:
		mulDivType(Opcode_TNE)
	case 0x38:
		shiftType(Opcode_DSLL)
	case 0x3A:
		shiftType(Opcode_DSRL)
	case 0x3B:
		shiftType(Opcode_DSRA)
	case 0x3C:
		shiftType(Opcode_DSLL32)
	case 0x3E:
		shiftType(Opcode_DSRL32)
	case 0x3F:
		shiftType(Opcode_DSRA32)
	}
}

// REGIMM (primary opcode 1) dispatches on the rt field.
func decodeRegimm(word uint32, inst *Instruction) {
	rs := Register{Class: registers.ClassGPR, Number: int(bits.Rs(word))}
	branch := func(op Opcode) {
		inst.Opcode = op
		inst.Rs = rs
		inst.Target = &Target{Offset: int16(bits.Imm16(word))}
	}

	switch bits.Rt(word) {
	case 0x00:
		branch(Opcode_BLTZ)
	case 0x01:
		branch(Opcode_BGEZ)
	case 0x02:
		branch(Opcode_BLTZL)
	case 0x03:
		branch(Opcode_BGEZL)
	case 0x10:
		branch(Opcode_BLTZAL)
	case 0x11:
		branch(Opcode_BGEZAL)
	case 0x12:
		branch(Opcode_BLTZALL)
	case 0x13:
		branch(Opcode_BGEZALL)
	}
}

// COP0 (primary opcode 0x10) dispatches on the rs field for register moves
// and on the funct field (with rs==COP_FUNCT sentinel 0x10) for TLB/system
// operations.
func decodeCOP0(word uint32, inst *Instruction) {
	rs := bits.Rs(word)
	rt := Register{Class: registers.ClassGPR, Number: int(bits.Rt(word))}
	rd := Register{Class: registers.ClassCOP0, Number: int(bits.Rd(word))}

	switch rs {
	case 0x00:
		inst.Opcode = Opcode_MFC0
		inst.Rt, inst.Rd = rt, rd
		return
	case 0x04:
		inst.Opcode = Opcode_MTC0
		inst.Rt, inst.Rd = rt, rd
		return
	case 0x10:
		switch bits.Funct(word) {
		case 0x01:
			inst.Opcode = Opcode_TLBR
		case 0x02:
			inst.Opcode = Opcode_TLBWI
		case 0x06:
			inst.Opcode = Opcode_TLBWR
		case 0x08:
			inst.Opcode = Opcode_TLBP
		case 0x18:
			inst.Opcode = Opcode_ERET
		}
	}
}

// COP1 (primary opcode 0x11) dispatches on rs for register moves/branches
// and on funct (with rs==fmt selecting single/double precision) for the
// arithmetic unit.
func decodeCOP1(word uint32, inst *Instruction) {
	rs := bits.Rs(word)
	rt := Register{Class: registers.ClassGPR, Number: int(bits.Rt(word))}
	fs := Register{Class: registers.ClassFPR, Number: int(bits.Rd(word))}
	ft := Register{Class: registers.ClassFPR, Number: int(bits.Rt(word))}

	switch rs {
	case 0x00:
		inst.Opcode = Opcode_MFC1
		inst.Rt, inst.Rd = rt, fs
		return
	case 0x01:
		inst.Opcode = Opcode_DMFC1
		inst.Rt, inst.Rd = rt, fs
		return
	case 0x02:
		inst.Opcode = Opcode_CFC1
		inst.Rt, inst.Rd = rt, Register{Class: registers.ClassCOP0, Number: int(bits.Rd(word))}
		return
	case 0x04:
		inst.Opcode = Opcode_MTC1
		inst.Rt, inst.Rd = rt, fs
		return
	case 0x05:
		inst.Opcode = Opcode_DMTC1
		inst.Rt, inst.Rd = rt, fs
		return
	case 0x06:
		inst.Opcode = Opcode_CTC1
		inst.Rt, inst.Rd = rt, Register{Class: registers.ClassCOP0, Number: int(bits.Rd(word))}
		return
	case 0x08:
		decodeCOP1Branch(word, inst)
		return
	}

	fmtField := rs
	fd2 := Register{Class: registers.ClassFPR, Number: int(bits.Rd(word))}

	pick := func(single, double Opcode) Opcode {
		if fmtField == 0x11 {
			return double
		}
		return single
	}

	switch bits.Funct(word) {
	case 0x00:
		inst.Opcode = pick(Opcode_ADD_S, Opcode_ADD_D)
		inst.Rd, inst.Rs, inst.Rt = fd2, fs, ft
	case 0x01:
		inst.Opcode = pick(Opcode_SUB_S, Opcode_SUB_D)
		inst.Rd, inst.Rs, inst.Rt = fd2, fs, ft
	case 0x02:
		inst.Opcode = pick(Opcode_MUL_S, Opcode_MUL_D)
		inst.Rd, inst.Rs, inst.Rt = fd2, fs, ft
	case 0x03:
		inst.Opcode = pick(Opcode_DIV_S, Opcode_DIV_D)
		inst.Rd, inst.Rs, inst.Rt = fd2, fs, ft
	case 0x04:
		inst.Opcode = pick(Opcode_SQRT_S, Opcode_SQRT_D)
		inst.Rd, inst.Rs = fd2, fs
	case 0x05:
		inst.Opcode = pick(Opcode_ABS_S, Opcode_ABS_D)
		inst.Rd, inst.Rs = fd2, fs
	case 0x06:
		inst.Opcode = pick(Opcode_MOV_S, Opcode_MOV_D)
		inst.Rd, inst.Rs = fd2, fs
	case 0x07:
		inst.Opcode = pick(Opcode_NEG_S, Opcode_NEG_D)
		inst.Rd, inst.Rs = fd2, fs
	case 0x09:
		inst.Opcode = pick(Opcode_TRUNC_W_S, Opcode_TRUNC_W_D)
		inst.Rd, inst.Rs = fd2, fs
	case 0x20:
		if fmtField == 0x11 {
			inst.Opcode = Opcode_CVT_S_D
		} else if fmtField == 0x14 {
			inst.Opcode = Opcode_CVT_S_W
		} else if fmtField == 0x15 {
			inst.Opcode = Opcode_CVT_S_L
		}
		inst.Rd, inst.Rs = fd2, fs
	case 0x21:
		if fmtField == 0x10 {
			inst.Opcode = Opcode_CVT_D_S
		} else if fmtField == 0x14 {
			inst.Opcode = Opcode_CVT_D_W
		} else if fmtField == 0x15 {
			inst.Opcode = Opcode_CVT_D_L
		}
		inst.Rd, inst.Rs = fd2, fs
	case 0x24:
		inst.Opcode = pick(Opcode_CVT_W_S, Opcode_CVT_W_D)
		inst.Rd, inst.Rs = fd2, fs
	case 0x25:
		inst.Opcode = pick(Opcode_CVT_L_S, Opcode_CVT_L_D)
		inst.Rd, inst.Rs = fd2, fs
	case 0x32:
		inst.Opcode = pick(Opcode_C_EQ_S, Opcode_C_EQ_D)
		inst.Rs, inst.Rt = fs, ft
	case 0x3C:
		inst.Opcode = pick(Opcode_C_LT_S, Opcode_C_LT_D)
		inst.Rs, inst.Rt = fs, ft
	case 0x3E:
		inst.Opcode = pick(Opcode_C_LE_S, Opcode_C_LE_D)
		inst.Rs, inst.Rt = fs, ft
	}
}

func decodeCOP1Branch(word uint32, inst *Instruction) {
	switch bits.Rt(word) {
	case 0x00:
		inst.Opcode = Opcode_BC1F
	case 0x01:
		inst.Opcode = Opcode_BC1T
	case 0x02:
		inst.Opcode = Opcode_BC1FL
	case 0x03:
		inst.Opcode = Opcode_BC1TL
	}
	inst.Target = &Target{Offset: int16(bits.Imm16(word))}
}

// COP2 (primary opcode 0x12) is the dialect's overlay slot: RSP fills it
// with vector instructions, GTE with PS1 geometry ops, R4300/EE leave it
// mostly to MFC2/MTC2-style moves. Only a representative subset of each
// dialect's extended opcode space is implemented — see DESIGN.md.
func decodeCOP2(word uint32, inst *Instruction, dialect Dialect) {
	rs := bits.Rs(word)
	rt := Register{Class: registers.ClassGPR, Number: int(bits.Rt(word))}

	switch dialect {
	case DialectRSP:
		decodeCOP2RSP(word, inst, rs, rt)
	case DialectGTE:
		decodeCOP2GTE(word, inst, rs, rt)
	case DialectALLEGREX:
		decodeCOP2VFPU(word, inst, rs, rt)
	default:
		switch rs {
		case 0x00:
			inst.Opcode = Opcode_MFC2
			inst.Rt = rt
		case 0x04:
			inst.Opcode = Opcode_MTC2
			inst.Rt = rt
		}
	}
}

func decodeCOP2RSP(word uint32, inst *Instruction, rs uint32, rt Register) {
	vd := Register{Class: registers.ClassCOP2Vector, Number: int(bits.Rd(word))}
	vs := Register{Class: registers.ClassCOP2Vector, Number: int(bits.Shamt(word))}
	vt := Register{Class: registers.ClassCOP2Vector, Number: int(bits.Rt(word))}

	switch rs {
	case 0x00:
		inst.Opcode = Opcode_MFC2
		inst.Rt = rt
		return
	case 0x04:
		inst.Opcode = Opcode_MTC2
		inst.Rt = rt
		return
	}

	switch bits.Funct(word) {
	case 0x08:
		inst.Opcode = Opcode_VMULF
		inst.Rd, inst.Rs, inst.Rt = vd, vs, vt
	case 0x0F:
		inst.Opcode = Opcode_VMACF
		inst.Rd, inst.Rs, inst.Rt = vd, vs, vt
	case 0x10:
		inst.Opcode = Opcode_VADD
		inst.Rd, inst.Rs, inst.Rt = vd, vs, vt
	case 0x11:
		inst.Opcode = Opcode_VSUB
		inst.Rd, inst.Rs, inst.Rt = vd, vs, vt
	case 0x33:
		inst.Opcode = Opcode_VMOV
		inst.Rd, inst.Rt = vd, vt
	case 0x1D:
		inst.Opcode = Opcode_VSAR
		inst.Rd = vd
	}
}

func decodeCOP2GTE(word uint32, inst *Instruction, rs uint32, rt Register) {
	switch rs {
	case 0x00:
		inst.Opcode = Opcode_GTE_MFC2
		inst.Rt = rt
		return
	case 0x04:
		inst.Opcode = Opcode_GTE_MTC2
		inst.Rt = rt
		return
	}

	switch bits.Funct(word) {
	case 0x01:
		inst.Opcode = Opcode_RTPS
	case 0x06:
		inst.Opcode = Opcode_NCLIP
	case 0x12:
		inst.Opcode = Opcode_MVMVA
	case 0x1D:
		inst.Opcode = Opcode_AVSZ3
	case 0x1E:
		inst.Opcode = Opcode_AVSZ4
	case 0x30:
		inst.Opcode = Opcode_RTPT
	}
}

// SPECIAL2 (primary opcode 0x1C) carries the PS2 EE's MMI multimedia
// extensions. Only a representative subset is decoded; see DESIGN.md.
func decodeSpecial2(word uint32, inst *Instruction, dialect Dialect) {
	if dialect != DialectEE {
		return
	}
	rd := Register{Class: registers.ClassGPR, Number: int(bits.Rd(word))}
	rs := Register{Class: registers.ClassGPR, Number: int(bits.Rs(word))}
	rt := Register{Class: registers.ClassGPR, Number: int(bits.Rt(word))}

	switch bits.Funct(word) {
	case 0x08:
		inst.Opcode = Opcode_PADDB
		inst.Rd, inst.Rs, inst.Rt = rd, rs, rt
	case 0x09:
		inst.Opcode = Opcode_PSUBB
		inst.Rd, inst.Rs, inst.Rt = rd, rs, rt
	case 0x12:
		inst.Opcode = Opcode_PAND
		inst.Rd, inst.Rs, inst.Rt = rd, rs, rt
	case 0x13:
		inst.Opcode = Opcode_POR
		inst.Rd, inst.Rs, inst.Rt = rd, rs, rt
	case 0x04:
		inst.Opcode = Opcode_PLZCW
		inst.Rd, inst.Rs = rd, rs
	}
}

// SPECIAL3 (primary opcode 0x1F) carries MIPS32/ALLEGREX bit-manipulation
// extensions (wsbh/seb/seh) dispatched on the sa field alongside funct 0x20.
func decodeSpecial3(word uint32, inst *Instruction, dialect Dialect) {
	if dialect != DialectALLEGREX {
		return
	}
	rd := Register{Class: registers.ClassGPR, Number: int(bits.Rd(word))}
	rt := Register{Class: registers.ClassGPR, Number: int(bits.Rt(word))}

	if bits.Funct(word) != 0x20 {
		return
	}
	switch bits.Shamt(word) {
	case 0x02:
		inst.Opcode = Opcode_WSBH
		inst.Rd, inst.Rt = rd, rt
	case 0x10:
		inst.Opcode = Opcode_SEB
		inst.Rd, inst.Rt = rd, rt
	case 0x18:
		inst.Opcode = Opcode_SEH
		inst.Rd, inst.Rt = rd, rt
	}
}

func decodeCOP2VFPU(word uint32, inst *Instruction, rs uint32, rt Register) {
	switch rs {
	case 0x00:
		inst.Opcode = Opcode_MFC2
		inst.Rt = rt
		return
	case 0x04:
		inst.Opcode = Opcode_MTC2
		inst.Rt = rt
		return
	}

	switch bits.Funct(word) {
	case 0x00:
		inst.Opcode = Opcode_VFPU_VADD
	case 0x01:
		inst.Opcode = Opcode_VFPU_VMUL
	case 0x02:
		inst.Opcode = Opcode_VFPU_VMOV
	}
}
