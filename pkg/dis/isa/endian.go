package isa

import "encoding/binary"

// Endian selects the byte order a Section's raw bytes are stored in.
// Middle-endian ("word-swapped") ROMs store each 32-bit word as its two
// halfwords in big-endian order, each halfword little-endian
// (0xAABBCCDD is stored as BB AA DD CC); it shows up on a handful
// of N64 dumps produced by buggy copiers.
type Endian uint

const (
	EndianBig Endian = iota
	EndianLittle
	EndianMiddle
)

func (e Endian) String() string {
	switch e {
	case EndianBig:
		return "big"
	case EndianLittle:
		return "little"
	case EndianMiddle:
		return "middle"
	default:
		return "unknown"
	}
}

// ReadWord reads one 32-bit machine word out of buf at the given byte
// offset, applying the endianness conversion. Middle-endian is decoded by
// first byte-swapping the two halfwords of the word, which turns it into an
// ordinary big-endian word: 0xAABBCCDD stored middle-endian on disk as the
// bytes "BB AA DD CC" reads back as 0xAABBCCDD here, matching spec example
// 6 (0xAABBCCDD middle-endian decodes identically to 0xBBAADDCC big-endian
// read naively).
func ReadWord(buf []byte, offset int, endian Endian) uint32 {
	switch endian {
	case EndianLittle:
		return binary.LittleEndian.Uint32(buf[offset:])
	case EndianMiddle:
		b := buf[offset : offset+4]
		swapped := [4]byte{b[1], b[0], b[3], b[2]}
		return binary.BigEndian.Uint32(swapped[:])
	default:
		return binary.BigEndian.Uint32(buf[offset:])
	}
}

// PutWord is the inverse of ReadWord, used by round-trip tests to confirm a
// re-encoded instruction reproduces the original bytes exactly.
func PutWord(buf []byte, offset int, endian Endian, word uint32) {
	switch endian {
	case EndianLittle:
		binary.LittleEndian.PutUint32(buf[offset:], word)
	case EndianMiddle:
		var tmp [4]byte
		binary.BigEndian.PutUint32(tmp[:], word)
		buf[offset+0] = tmp[1]
		buf[offset+1] = tmp[0]
		buf[offset+2] = tmp[3]
		buf[offset+3] = tmp[2]
	default:
		binary.BigEndian.PutUint32(buf[offset:], word)
	}
}
