package registers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGPRName(t *testing.T) {
	t.Run("o32 abi names zero and ra", func(t *testing.T) {
		assert.Equal(t, "$zero", Name(ClassGPR, 0, ABIO32))
		assert.Equal(t, "$ra", Name(ClassGPR, 31, ABIO32))
		assert.Equal(t, "$t4", Name(ClassGPR, 12, ABIO32))
	})

	t.Run("n64 abi renames registers 8-11 to a4-a7", func(t *testing.T) {
		assert.Equal(t, "$a4", Name(ClassGPR, 8, ABIN64))
		assert.Equal(t, "$a7", Name(ClassGPR, 11, ABIN64))
	})

	t.Run("numeric abi ignores convention", func(t *testing.T) {
		assert.Equal(t, "$0", Name(ClassGPR, 0, ABINumeric))
		assert.Equal(t, "$31", Name(ClassGPR, 31, ABINumeric))
	})

	t.Run("out of range falls back to numeric", func(t *testing.T) {
		assert.Equal(t, "$?", Name(ClassGPR, 99, ABIO32))
	})
}

func TestCOP0Name(t *testing.T) {
	assert.Equal(t, "$Index", Name(ClassCOP0, 0, ABIO32))
	assert.Equal(t, "$Status", Name(ClassCOP0, 12, ABIO32))
	assert.Equal(t, "$EntryLo0", Name(ClassCOP0, 2, ABIO32))
}

func TestFPRName(t *testing.T) {
	assert.Equal(t, "$f0", Name(ClassFPR, 0, ABIO32))
	assert.Equal(t, "$f12", Name(ClassFPR, 12, ABIO32))
}

func TestGTEName(t *testing.T) {
	assert.Equal(t, "$OTZ", Name(ClassCOP2GTE, 7, ABIO32))
}

func TestHiLoName(t *testing.T) {
	assert.Equal(t, "hi", Name(ClassHiLo, 0, ABIO32))
	assert.Equal(t, "lo", Name(ClassHiLo, 1, ABIO32))
}
