package disasm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starfighterlily/nova16/asm"
)

// assembleSource is the roundtrip fixture: assemble src and hand the
// resulting binary to Decode, so these tests exercise disasm against
// the assembler's own encoding rather than hand-written byte literals.
func assembleSource(t *testing.T, src string) []byte {
	t.Helper()
	res, err := asm.Assemble(src)
	require.NoError(t, err)
	return res.Binary
}

func TestDecodeNoOperandInstruction(t *testing.T) {
	bin := assembleSource(t, "NOP\nHLT\n")
	lines := Decode(bin, 0)
	require.Len(t, lines, 2)
	assert.Equal(t, "NOP", lines[0].Text)
	assert.Equal(t, uint16(0), lines[0].Addr)
	assert.Equal(t, "HLT", lines[1].Text)
	assert.Equal(t, uint16(1), lines[1].Addr)
}

func TestDecodeRegisterAndImmediateOperands(t *testing.T) {
	bin := assembleSource(t, "MOV R0, 0x05\n")
	lines := Decode(bin, 0)
	require.Len(t, lines, 1)
	assert.Equal(t, "MOV R0, 0x05", lines[0].Text)
}

func TestDecodeMemoryOperandForms(t *testing.T) {
	bin := assembleSource(t, "MOV [0x2000], R0\nMOV [P0], R1\nMOV [P0+5], R2\n")
	lines := Decode(bin, 0)
	require.Len(t, lines, 3)
	assert.Equal(t, "MOV [0x2000], R0", lines[0].Text)
	assert.Equal(t, "MOV [P0], R1", lines[1].Text)
	assert.Equal(t, "MOV [P0+0x05], R2", lines[2].Text)
}

func TestDecodeFoldsPrintableRunIntoDefstr(t *testing.T) {
	bin := assembleSource(t, `DEFSTR "hey"`)
	lines := Decode(bin, 0)
	require.Len(t, lines, 1)
	assert.Equal(t, `DEFSTR "hey"`, lines[0].Text)
	assert.Equal(t, []byte{'h', 'e', 'y', 0}, lines[0].Bytes)
}

func TestDecodeShortRunIsNotFoldedIntoDefstr(t *testing.T) {
	// Two printable bytes followed by NUL falls under the three-byte
	// floor (§6) and is decoded byte by byte instead.
	lines := Decode([]byte{'h', 'i', 0x00}, 0)
	for _, l := range lines {
		assert.NotContains(t, l.Text, "DEFSTR")
	}
}

func TestDecodeUnknownOpcodeEmitsDB(t *testing.T) {
	// 0xFE has no handler in the dispatch table (reserved).
	lines := Decode([]byte{0xFE}, 0x1000)
	require.Len(t, lines, 1)
	assert.Equal(t, "DB 0xFE", lines[0].Text)
	assert.Equal(t, uint16(0x1000), lines[0].Addr)
}

func TestDecodeTruncatedInstructionDoesNotPanic(t *testing.T) {
	// MOV (0x06) takes two operands but the mode byte is missing: must
	// degrade to a DB line and resume, never panic.
	lines := Decode([]byte{0x06}, 0)
	require.Len(t, lines, 1)
	assert.Equal(t, "DB 0x06", lines[0].Text)
}

func TestDecodeOrgOffsetsAddresses(t *testing.T) {
	bin := assembleSource(t, "NOP\nNOP\n")
	lines := Decode(bin, 0x8000)
	require.Len(t, lines, 2)
	assert.Equal(t, uint16(0x8000), lines[0].Addr)
	assert.Equal(t, uint16(0x8001), lines[1].Addr)
}

func TestDirectIndexedMemoryOperandDecodesWithoutPanic(t *testing.T) {
	// The assembler never emits this form (§9's open question), but the
	// mode byte encoding exists and the disassembler must read it back:
	// opcode MOV, one mode byte (class3=memory, direct|indexed), then a
	// 2-byte base address and a 1-byte offset.
	raw := []byte{0x06, 0b11000011, 0x20, 0x00, 0x05, 0x00}
	lines := Decode(raw, 0)
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0].Text, "[0x2000+0x05]")
}

func TestLineStringFormat(t *testing.T) {
	l := Line{Addr: 0x100, Bytes: []byte{0xFF}, Text: "NOP"}
	s := l.String()
	assert.Contains(t, s, "0x0100:")
	assert.Contains(t, s, "FF")
	assert.Contains(t, s, "NOP")
}
