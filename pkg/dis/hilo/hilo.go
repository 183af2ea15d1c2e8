// Package hilo implements the Hi/Lo Pairer (spec.md §4.E): given a
// function's decoded instructions, it reconstructs the 32-bit addresses
// MIPS code builds out of a `lui`/low-half-user pair and resolves them
// against the Global Context.
package hilo

import (
	"github.com/n64decomp/mipsdis/pkg/dis/context"
	"github.com/n64decomp/mipsdis/pkg/dis/diag"
	"github.com/n64decomp/mipsdis/pkg/dis/isa"
	"github.com/n64decomp/mipsdis/pkg/dis/isa/registers"
)

// Range names a VRAM span a reconstructed address must fall inside to be
// eligible for an UNKNOWN-stub tie-break (spec.md §4.E "if outside all
// known ranges, do not pair").
type Range struct{ Start, End uint32 }

func (r Range) contains(vram uint32) bool {
	return r.Start != r.End && vram >= r.Start && vram < r.End
}

func anyContains(ranges []Range, vram uint32) bool {
	for _, r := range ranges {
		if r.contains(vram) {
			return true
		}
	}
	return false
}

// Role distinguishes the two halves of a pair so a formatter can render
// `%hi(sym)`/`%lo(sym)` style operands appropriately.
type Role uint

const (
	RoleHi Role = iota
	RoleLo
)

// Annotation is the symbolic substitute for one Instruction's raw
// immediate (spec.md §3 "symbolic rewriting produces a new annotated
// view, not a mutated Instruction").
type Annotation struct {
	Role   Role
	Symbol *context.ContextSymbol
	Addend int64
}

// Overlay maps instruction index to its symbolic Annotation, keeping the
// underlying []isa.Instruction slice untouched — see isa.Instruction's doc
// comment.
type Overlay struct {
	byIndex map[int]Annotation
}

func newOverlay() *Overlay {
	return &Overlay{byIndex: make(map[int]Annotation)}
}

func (o *Overlay) Get(index int) (Annotation, bool) {
	a, ok := o.byIndex[index]
	return a, ok
}

func (o *Overlay) set(index int, a Annotation) {
	o.byIndex[index] = a
}

// Len reports how many instructions carry an annotation.
func (o *Overlay) Len() int {
	return len(o.byIndex)
}

type luiState struct {
	index int
	upper uint16
}

type regKey struct {
	class  registers.Class
	number int
}

func keyOf(r isa.Register) regKey {
	return regKey{class: r.Class, number: r.Number}
}

var lowHalfUsers = map[isa.Opcode]bool{
	isa.Opcode_ADDIU: true, isa.Opcode_ADDI: true,
	isa.Opcode_DADDIU: true, isa.Opcode_DADDI: true,
	isa.Opcode_ORI: true, isa.Opcode_ANDI: true, isa.Opcode_XORI: true,
	isa.Opcode_LB: true, isa.Opcode_LH: true, isa.Opcode_LW: true, isa.Opcode_LD: true,
	isa.Opcode_LBU: true, isa.Opcode_LHU: true, isa.Opcode_LWU: true,
	isa.Opcode_LWL: true, isa.Opcode_LWR: true, isa.Opcode_LDL: true, isa.Opcode_LDR: true,
	isa.Opcode_LWC1: true, isa.Opcode_LDC1: true, isa.Opcode_LQV: true,
	isa.Opcode_SB: true, isa.Opcode_SH: true, isa.Opcode_SW: true, isa.Opcode_SD: true,
	isa.Opcode_SWL: true, isa.Opcode_SWR: true, isa.Opcode_SDL: true, isa.Opcode_SDR: true,
	isa.Opcode_SWC1: true, isa.Opcode_SDC1: true, isa.Opcode_SQV: true,
}

// destRegister approximates which register slot an Instruction writes, for
// lastLui invalidation purposes (spec.md §4.E "cleared whenever any
// instruction writes rD"). Branches and stores write nothing; jal/bal
// write $ra; jalr writes its Rd (defaulting to $ra); everything else with
// an Rd writes Rd, otherwise Rt.
func destRegister(inst isa.Instruction) (isa.Register, bool) {
	c := inst.Classify()
	if c.IsStore || c.IsBranch {
		return isa.Register{}, false
	}
	if c.WritesRA {
		if inst.Rd.IsSet() {
			return inst.Rd, true
		}
		return isa.Register{Class: registers.ClassGPR, Number: 31}, true
	}
	if inst.Rd.IsSet() {
		return inst.Rd, true
	}
	if inst.Rt.IsSet() {
		return inst.Rt, true
	}
	return isa.Register{}, false
}

// Pair runs the Hi/Lo Pairer over one function's instruction stream
// (spec.md §4.E). gpValue, when hasGP is true, enables $gp-relative
// pairing. ranges is the set of known section VRAM spans consulted for the
// "create an UNKNOWN stub" tie-break.
func Pair(
	instrs []isa.Instruction,
	vrams []uint32,
	ctx *context.Context,
	category context.OverlayCategory,
	id context.OverlayID,
	ranges []Range,
	gpValue uint32,
	hasGP bool,
	diags *diag.Collector,
) *Overlay {
	overlay := newOverlay()
	lastLui := make(map[regKey]luiState)

	for i, inst := range instrs {
		if inst.Opcode == isa.Opcode_LUI && inst.Rt.IsSet() && inst.Imm != nil {
			lastLui[keyOf(inst.Rt)] = luiState{index: i, upper: inst.Imm.Raw}
			continue
		}

		if lowHalfUsers[inst.Opcode] && inst.Rs.IsSet() && inst.Imm != nil {
			tryPair(overlay, ctx, category, id, ranges, lastLui, diags, i, inst, vrams[i], gpValue, hasGP)
		}

		if inst.Classify().WritesRA || inst.Opcode == isa.Opcode_JAL {
			// Conservative: a call clobbers caller-saved state, spec.md §4.E
			// says to invalidate everything rather than track callee behavior.
			for k := range lastLui {
				delete(lastLui, k)
			}
		}

		// Multi-use of one lui (struct field access) stays live across lo-half
		// users that don't write the lui's own register; only an actual
		// overwrite invalidates it. The lui case itself already `continue`d
		// above, so this never fires on the instruction that just set it.
		if dest, ok := destRegister(inst); ok {
			delete(lastLui, keyOf(dest))
		}
	}

	return overlay
}

func tryPair(
	overlay *Overlay,
	ctx *context.Context,
	category context.OverlayCategory,
	id context.OverlayID,
	ranges []Range,
	lastLui map[regKey]luiState,
	diags *diag.Collector,
	index int,
	inst isa.Instruction,
	vram uint32,
	gpValue uint32,
	hasGP bool,
) {
	rsKey := keyOf(inst.Rs)

	if inst.Rs.Class == registers.ClassGPR && inst.Rs.Number == 28 && hasGP {
		addr := gpValue + uint32(int32(inst.Imm.Value()))
		commitPair(overlay, ctx, category, id, ranges, diags, index, -1, vram, addr)
		return
	}

	lu, ok := lastLui[rsKey]
	if !ok {
		return
	}

	addr := (uint32(lu.upper) << 16) + uint32(int32(inst.Imm.Value()))
	commitPair(overlay, ctx, category, id, ranges, diags, index, lu.index, vram, addr)
}

func commitPair(
	overlay *Overlay,
	ctx *context.Context,
	category context.OverlayCategory,
	id context.OverlayID,
	ranges []Range,
	diags *diag.Collector,
	loIndex, hiIndex int,
	fromVRAM uint32,
	addr uint32,
) {
	key := context.Key{Category: category, ID: id, VRAM: addr}

	sym, exact := ctx.Find(key)
	addend := int64(0)
	if !exact {
		if found, ok := ctx.FindContaining(category, id, addr); ok {
			sym = found
			addend = int64(addr) - int64(found.Key.VRAM)
		} else if anyContains(ranges, addr) {
			sym = ctx.GetOrCreate(key)
		} else {
			diags.Infof("hilo", "reconstructed address 0x%08X matches no known section, leaving immediate raw", addr)
			return
		}
	}

	sym.AddReferrer(fromVRAM)

	if hiIndex >= 0 {
		overlay.set(hiIndex, Annotation{Role: RoleHi, Symbol: sym, Addend: addend})
	}
	overlay.set(loIndex, Annotation{Role: RoleLo, Symbol: sym, Addend: addend})
}
