package section

import (
	"github.com/n64decomp/mipsdis/pkg/dis/config"
	"github.com/n64decomp/mipsdis/pkg/dis/context"
	"github.com/n64decomp/mipsdis/pkg/dis/diag"
	"github.com/n64decomp/mipsdis/pkg/dis/isa"
)

// TextResult is everything the .text walk produces for one Section (spec.md
// §4.D): the decoded instruction stream, and the call/branch targets it
// discovered — boundary computation and rodata migration are the Function
// Splitter's job (pkg/dis/function), not this walk's.
type TextResult struct {
	Instructions []isa.Instruction
	// VRAMs[i] is the address isa.Instruction Instructions[i] was decoded from.
	VRAMs []uint32

	// CallTargets holds every address called via jal/bal/jalr-with-known-target
	// found in this section — candidates for FUNCTION promotion.
	CallTargets []uint32
	// BranchTargets holds every address reached via a conditional branch or
	// plain j — candidates for BRANCH_LABEL, unless the Function Splitter
	// later decides a given target is actually a function boundary.
	BranchTargets []uint32
}

// WalkText decodes every word of sec and records control-flow destinations
// into ctx (spec.md §4.D). sec.Kind is assumed to be context.SectionText;
// callers are responsible for routing by section kind.
func WalkText(sec Section, cfg config.Config, ctx *context.Context, diags *diag.Collector) (*TextResult, error) {
	n := len(sec.Data) / 4
	res := &TextResult{
		Instructions: make([]isa.Instruction, n),
		VRAMs:        make([]uint32, n),
	}

	for i := 0; i < n; i++ {
		vram := sec.VRAM + uint32(i*4)
		word := isa.ReadWord(sec.Data, i*4, cfg.Endian)
		inst := isa.Decode(word, cfg.Dialect)

		res.Instructions[i] = inst
		res.VRAMs[i] = vram

		if inst.Opcode == isa.Opcode_INVALID {
			diags.Advisoryf("section.text", vram, "word 0x%08X did not decode under dialect %s", word, cfg.Dialect)
			continue
		}

		classifyControlFlow(sec, cfg, ctx, diags, inst, vram, res)
	}

	return res, nil
}

// classifyControlFlow resolves a branch/jump Instruction's target to an
// absolute VRAM (the Decoder never does this — it only ever sees one word
// in isolation, spec.md §4.A) and records the destination in the Global
// Context as either a function-call candidate or a local branch label.
func classifyControlFlow(sec Section, cfg config.Config, ctx *context.Context, diags *diag.Collector, inst isa.Instruction, vram uint32, res *TextResult) {
	c := inst.Classify()
	if !c.IsBranch && !c.IsJump {
		return
	}

	var target uint32
	var known bool

	switch {
	case inst.Target != nil && inst.Target.IsJType:
		target = ((vram + 4) & 0xF0000000) | (inst.Target.Raw26 << 2)
		known = true
	case inst.Target != nil && !inst.Target.IsJType:
		target = uint32(int64(vram) + 4 + int64(inst.Target.Offset)*4)
		known = true
	default:
		// jr/jalr: register-indirect, target unknown until an Instruction
		// Resolution pass (e.g. jump-table driven) supplies it.
	}
	if !known {
		return
	}

	key := context.Key{Category: sec.Category, ID: sec.ID, VRAM: target}

	if inst.Opcode == isa.Opcode_JAL || c.WritesRA {
		res.CallTargets = append(res.CallTargets, target)
		sym := ctx.AddReferrer(key, vram)
		ctx.PromoteType(sym, context.TypeFunction, func(from, to context.SymbolType) {
			diags.Warnf("section.text", target, "call target already typed %s, cannot promote to %s", from, to)
		})
		return
	}

	res.BranchTargets = append(res.BranchTargets, target)
	sym := ctx.AddReferrer(key, vram)
	if sec.Contains(target) {
		ctx.PromoteType(sym, context.TypeBranchLabel, func(from, to context.SymbolType) {
			diags.Infof("section.text", "branch target 0x%08X already typed %s", target, from)
		})
	}
}
