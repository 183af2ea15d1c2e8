package symbrowse

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// runTUI builds the full-screen split view: a tree of sections on the
// left, a detail pane on the right. Selecting a section node lists that
// section's functions in the detail pane; this is read-only —
// there is no edit path back into the Analysis.
func runTUI(b *browser) error {
	app := tview.NewApplication()

	detail := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)
	detail.SetBorder(true).SetTitle(" detail ")

	tree := tview.NewTreeView()
	root := tview.NewTreeNode("sections").SetSelectable(false)
	tree.SetRoot(root).SetCurrentNode(root)
	tree.SetBorder(true).SetTitle(" sections ")

	for _, s := range b.sections() {
		s := s
		label := fmt.Sprintf("[%d] %s (%s) 0x%08X", s.Index, s.Name, s.Kind, s.VRAM)
		node := tview.NewTreeNode(label).SetSelectable(true)
		node.SetReference(s.Index)
		root.AddChild(node)
	}

	tree.SetSelectedFunc(func(node *tview.TreeNode) {
		idx, ok := node.GetReference().(int)
		if !ok {
			return
		}
		fns, err := b.functions(idx)
		if err != nil {
			detail.SetText(fmt.Sprintf("[red]error: %v", err))
			return
		}
		text := ""
		for _, fn := range fns {
			tag := ""
			if fn.Handwritten {
				tag = " (handwritten)"
			}
			text += fmt.Sprintf("0x%08X %-24s instrs=%d%s\n", fn.VRAM, fn.Name, fn.Instrs, tag)
		}
		if text == "" {
			text = "(no functions in this section)"
		}
		detail.SetText(text)
	})

	flex := tview.NewFlex().
		AddItem(tree, 0, 1, true).
		AddItem(detail, 0, 2, false)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyCtrlC || event.Rune() == 'q' {
			app.Stop()
			return nil
		}
		return event
	})

	return app.SetRoot(flex, true).SetFocus(tree).Run()
}
