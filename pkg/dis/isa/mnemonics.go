package isa

import (
	"fmt"
	"math/bits"
)

// mnemonics maps every Opcode to its assembly mnemonic. Every Opcode value
// below totalOpcodes must have an entry here; init() panics otherwise, the
// same invariant the teacher's OpCodesDescriptor enforces over its own
// opcode table.
var mnemonics = map[Opcode]string{
	Opcode_INVALID: ".word",

	Opcode_ADD: "add", Opcode_ADDU: "addu", Opcode_SUB: "sub", Opcode_SUBU: "subu",
	Opcode_AND: "and", Opcode_OR: "or", Opcode_XOR: "xor", Opcode_NOR: "nor",
	Opcode_SLT: "slt", Opcode_SLTU: "sltu",
	Opcode_MULT: "mult", Opcode_MULTU: "multu", Opcode_DIV: "div", Opcode_DIVU: "divu",
	Opcode_DADD: "dadd", Opcode_DADDU: "daddu", Opcode_DSUB: "dsub", Opcode_DSUBU: "dsubu",
	Opcode_DMULT: "dmult", Opcode_DMULTU: "dmultu", Opcode_DDIV: "ddiv", Opcode_DDIVU: "ddivu",

	Opcode_SLL: "sll", Opcode_SRL: "srl", Opcode_SRA: "sra",
	Opcode_SLLV: "sllv", Opcode_SRLV: "srlv", Opcode_SRAV: "srav",
	Opcode_DSLL: "dsll", Opcode_DSRL: "dsrl", Opcode_DSRA: "dsra",
	Opcode_DSLLV: "dsllv", Opcode_DSRLV: "dsrlv", Opcode_DSRAV: "dsrav",
	Opcode_DSLL32: "dsll32", Opcode_DSRL32: "dsrl32", Opcode_DSRA32: "dsra32",

	Opcode_JR: "jr", Opcode_JALR: "jalr",
	Opcode_MFHI: "mfhi", Opcode_MFLO: "mflo", Opcode_MTHI: "mthi", Opcode_MTLO: "mtlo",

	Opcode_SYSCALL: "syscall", Opcode_BREAK: "break",
	Opcode_TGE: "tge", Opcode_TGEU: "tgeu", Opcode_TLT: "tlt", Opcode_TLTU: "tltu",
	Opcode_TEQ: "teq", Opcode_TNE: "tne", Opcode_SYNC: "sync",

	Opcode_ADDI: "addi", Opcode_ADDIU: "addiu", Opcode_SLTI: "slti", Opcode_SLTIU: "sltiu",
	Opcode_ANDI: "andi", Opcode_ORI: "ori", Opcode_XORI: "xori", Opcode_LUI: "lui",
	Opcode_DADDI: "daddi", Opcode_DADDIU: "daddiu",

	Opcode_LB: "lb", Opcode_LH: "lh", Opcode_LWL: "lwl", Opcode_LW: "lw",
	Opcode_LBU: "lbu", Opcode_LHU: "lhu", Opcode_LWR: "lwr", Opcode_LWU: "lwu",
	Opcode_SB: "sb", Opcode_SH: "sh", Opcode_SWL: "swl", Opcode_SW: "sw", Opcode_SWR: "swr",
	Opcode_LL: "ll", Opcode_SC: "sc",
	Opcode_LD: "ld", Opcode_SD: "sd", Opcode_LDL: "ldl", Opcode_LDR: "ldr",
	Opcode_SDL: "sdl", Opcode_SDR: "sdr",
	Opcode_LWC1: "lwc1", Opcode_SWC1: "swc1", Opcode_LDC1: "ldc1", Opcode_SDC1: "sdc1",
	Opcode_CACHE: "cache",

	Opcode_BEQ: "beq", Opcode_BNE: "bne", Opcode_BLEZ: "blez", Opcode_BGTZ: "bgtz",
	Opcode_BEQL: "beql", Opcode_BNEL: "bnel", Opcode_BLEZL: "blezl", Opcode_BGTZL: "bgtzl",

	Opcode_BLTZ: "bltz", Opcode_BGEZ: "bgez", Opcode_BLTZL: "bltzl", Opcode_BGEZL: "bgezl",
	Opcode_BLTZAL: "bltzal", Opcode_BGEZAL: "bgezal",
	Opcode_BLTZALL: "bltzall", Opcode_BGEZALL: "bgezall",

	Opcode_J: "j", Opcode_JAL: "jal",

	Opcode_MFC0: "mfc0", Opcode_MTC0: "mtc0",
	Opcode_TLBR: "tlbr", Opcode_TLBWI: "tlbwi", Opcode_TLBWR: "tlbwr", Opcode_TLBP: "tlbp",
	Opcode_ERET: "eret",

	Opcode_MFC1: "mfc1", Opcode_DMFC1: "dmfc1", Opcode_CFC1: "cfc1",
	Opcode_MTC1: "mtc1", Opcode_DMTC1: "dmtc1", Opcode_CTC1: "ctc1",
	Opcode_BC1F: "bc1f", Opcode_BC1T: "bc1t", Opcode_BC1FL: "bc1fl", Opcode_BC1TL: "bc1tl",
	Opcode_ADD_S: "add.s", Opcode_SUB_S: "sub.s", Opcode_MUL_S: "mul.s", Opcode_DIV_S: "div.s",
	Opcode_SQRT_S: "sqrt.s", Opcode_ABS_S: "abs.s", Opcode_MOV_S: "mov.s", Opcode_NEG_S: "neg.s",
	Opcode_ADD_D: "add.d", Opcode_SUB_D: "sub.d", Opcode_MUL_D: "mul.d", Opcode_DIV_D: "div.d",
	Opcode_SQRT_D: "sqrt.d", Opcode_ABS_D: "abs.d", Opcode_MOV_D: "mov.d", Opcode_NEG_D: "neg.d",
	Opcode_CVT_S_D: "cvt.s.d", Opcode_CVT_S_W: "cvt.s.w", Opcode_CVT_S_L: "cvt.s.l",
	Opcode_CVT_D_S: "cvt.d.s", Opcode_CVT_D_W: "cvt.d.w", Opcode_CVT_D_L: "cvt.d.l",
	Opcode_CVT_W_S: "cvt.w.s", Opcode_CVT_W_D: "cvt.w.d",
	Opcode_CVT_L_S: "cvt.l.s", Opcode_CVT_L_D: "cvt.l.d",
	Opcode_TRUNC_W_S: "trunc.w.s", Opcode_TRUNC_W_D: "trunc.w.d",
	Opcode_C_EQ_S: "c.eq.s", Opcode_C_LT_S: "c.lt.s", Opcode_C_LE_S: "c.le.s",
	Opcode_C_EQ_D: "c.eq.d", Opcode_C_LT_D: "c.lt.d", Opcode_C_LE_D: "c.le.d",

	Opcode_VMULF: "vmulf", Opcode_VMACF: "vmacf", Opcode_VADD: "vadd", Opcode_VSUB: "vsub",
	Opcode_VMOV: "vmov", Opcode_VSAR: "vsar", Opcode_LQV: "lqv", Opcode_SQV: "sqv",
	Opcode_MFC2: "mfc2", Opcode_MTC2: "mtc2",

	Opcode_RTPS: "rtps", Opcode_RTPT: "rtpt", Opcode_MVMVA: "mvmva", Opcode_NCLIP: "nclip",
	Opcode_AVSZ3: "avsz3", Opcode_AVSZ4: "avsz4",
	Opcode_GTE_MFC2: "mfc2", Opcode_GTE_MTC2: "mtc2",

	Opcode_VFPU_VADD: "vfpu.vadd", Opcode_VFPU_VMUL: "vfpu.vmul", Opcode_VFPU_VMOV: "vfpu.vmov",
	Opcode_WSBH: "wsbh", Opcode_SEB: "seb", Opcode_SEH: "seh", Opcode_BITREV: "bitrev",

	Opcode_PADDB: "paddb", Opcode_PSUBB: "psubb", Opcode_PAND: "pand", Opcode_POR: "por",
	Opcode_PLZCW: "plzcw", Opcode_QMFC2: "qmfc2", Opcode_QMTC2: "qmtc2",

	Opcode_NOP: "nop", Opcode_MOVE: "move", Opcode_LI: "li", Opcode_LA: "la",
	Opcode_B: "b", Opcode_BAL: "bal", Opcode_NOT: "not",
	Opcode_NEG: "neg", Opcode_NEGU: "negu",
	Opcode_BEQZ: "beqz", Opcode_BNEZ: "bnez", Opcode_BEQZL: "beqzl", Opcode_BNEZL: "bnezl",
}

func (op Opcode) String() string {
	if m, ok := mnemonics[op]; ok {
		return m
	}
	return fmt.Sprintf("opcode(%d)", op)
}

// OpcodeBits is the minimum number of bits needed to enumerate every
// supported opcode value, mirroring the teacher's OpCodesDescriptor.OpCodeBits.
func OpcodeBits() int {
	return bits.Len(uint(totalOpcodes - 1))
}

func init() {
	for i := Opcode(0); i < totalOpcodes; i++ {
		if _, ok := mnemonics[i]; !ok {
			panic(fmt.Sprintf("isa: missing mnemonic entry for opcode %d — add it to the mnemonics table", i))
		}
	}
}
