package disas

import (
	"bytes"
	"testing"

	"github.com/n64decomp/mipsdis/pkg/dis"
	"github.com/n64decomp/mipsdis/pkg/dis/config"
	"github.com/n64decomp/mipsdis/pkg/dis/context"
	"github.com/n64decomp/mipsdis/pkg/dis/isa"
	"github.com/n64decomp/mipsdis/pkg/dis/section"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintReport_RendersFunctionAndDiagnostics(t *testing.T) {
	buf := make([]byte, 4)
	isa.PutWord(buf, 0, isa.EndianBig, 0x03E00008) // jr $ra
	sections := []section.Section{
		{Kind: context.SectionText, Name: ".text", VRAM: 0x80000000, Data: buf},
	}

	an, err := dis.Analyze(sections, config.Default(), nil)
	require.NoError(t, err)

	var out bytes.Buffer
	printReport(&out, an)

	rendered := out.String()
	assert.Contains(t, rendered, "section .text")
	assert.Contains(t, rendered, "0x80000000")
}
