package symbrowse

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
)

// runREPL drives a line-oriented command loop over b, reading lines
// through chzyer/readline's standard New-then-Readline idiom so the user
// gets history and line editing for free.
func runREPL(b *browser, in io.Reader, out io.Writer) error {
	rl, err := readline.New("symbrowse> ")
	if err != nil {
		return fmt.Errorf("symbrowse: opening readline: %w", err)
	}
	defer rl.Close()

	fmt.Fprintln(out, "symbrowse REPL — commands: list, funcs [section-index], sym <name|0xADDR>, diag, quit")

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		if dispatch(b, line, out) {
			return nil
		}
	}
}

// dispatch executes one REPL command line and reports whether the loop
// should terminate. Split out from runREPL so the command logic is
// testable without driving an actual terminal.
func dispatch(b *browser, line string, out io.Writer) (quit bool) {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) == 0 {
		return false
	}

	switch fields[0] {
	case "quit", "exit":
		return true
	case "list":
		for _, s := range b.sections() {
			fmt.Fprintf(out, "[%d] %-16s %-8s 0x%08X funcs=%d\n", s.Index, s.Name, s.Kind, s.VRAM, s.Functions)
		}
	case "funcs":
		idx := -1
		if len(fields) > 1 {
			n, err := strconv.Atoi(fields[1])
			if err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
				return false
			}
			idx = n
		}
		fns, err := b.functions(idx)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			return false
		}
		for _, fn := range fns {
			tag := ""
			if fn.Handwritten {
				tag = " (handwritten)"
			}
			fmt.Fprintf(out, "0x%08X %-24s instrs=%d%s\n", fn.VRAM, fn.Name, fn.Instrs, tag)
		}
	case "sym":
		if len(fields) < 2 {
			fmt.Fprintln(out, "usage: sym <name|0xADDR>")
			return false
		}
		matches := b.lookup(fields[1])
		if len(matches) == 0 {
			fmt.Fprintln(out, "no match")
			return false
		}
		for _, sym := range matches {
			fmt.Fprintln(out, formatSymbol(sym))
		}
	case "diag":
		for _, e := range b.an.Diagnostics.Entries() {
			fmt.Fprintln(out, e.String())
		}
	default:
		fmt.Fprintf(out, "unknown command %q\n", fields[0])
	}
	return false
}
