package asm

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleNoOperandInstructions(t *testing.T) {
	res, err := Assemble("NOP\nHLT\n")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0x00}, res.Binary)
}

func TestAssembleRegisterAndImmediateOperands(t *testing.T) {
	res, err := Assemble("MOV R0, 0x05\n")
	require.NoError(t, err)
	// opcode, mode byte (class1=register, class2=imm8), reg code, imm.
	require.Len(t, res.Binary, 4)
	assert.Equal(t, byte(0x06), res.Binary[0])
}

func TestAssembleLabelsAndBranches(t *testing.T) {
	src := "START:\n  MOV R0, 0x01\n  JMP START\n"
	res, err := Assemble(src)
	require.NoError(t, err)
	assert.NotEmpty(t, res.Binary)
}

func TestAssembleEquBindsLiteralValue(t *testing.T) {
	res, err := Assemble("LIMIT EQU 0x10\nMOV R0, LIMIT\n")
	require.NoError(t, err)
	// MOV R0, LIMIT: opcode, mode byte, reg code, imm16 value (symbol
	// references are always sized as 16-bit immediates), low byte last.
	assert.Equal(t, byte(0x10), res.Binary[len(res.Binary)-1])
}

func TestAssembleOrgProducesSegments(t *testing.T) {
	src := "ORG 0x1000\nNOP\nORG 0x2000\nHLT\n"
	res, err := Assemble(src)
	require.NoError(t, err)
	require.Len(t, res.Segments, 2)
	assert.Equal(t, uint16(0x1000), res.Segments[0].Start)
	assert.Equal(t, uint16(0x2000), res.Segments[1].Start)
}

func TestAssembleUnknownInstructionReportsLine(t *testing.T) {
	_, err := Assemble("NOP\nBOGUS R0\n")
	require.Error(t, err)
	errs, ok := err.(Errors)
	require.True(t, ok)
	require.Len(t, errs, 1)
	assert.Equal(t, 2, errs[0].Line)
}

func TestAssembleUnknownSymbolReportsLine(t *testing.T) {
	_, err := Assemble("MOV R0, NOWHERE\n")
	require.Error(t, err)
	errs, ok := err.(Errors)
	require.True(t, ok)
	assert.Equal(t, 1, errs[0].Line)
}

func TestAssembleDBExceedingByteRangeErrors(t *testing.T) {
	_, err := Assemble("DB 300\n")
	require.Error(t, err)
}

func TestAssembleDWExceedingWordRangeErrors(t *testing.T) {
	_, err := Assemble("DW 70000\n")
	require.Error(t, err)
}

func TestAssembleDefstrOverLimitErrors(t *testing.T) {
	big := `"` + string(make([]byte, 255)) + `"`
	_, err := Assemble("DEFSTR " + big)
	require.Error(t, err)
}

func TestAssembleDirectIndexedMemoryIsRejected(t *testing.T) {
	_, err := Assemble("MOV [0x2000+R1], R0\n")
	require.Error(t, err)
	errs, ok := err.(Errors)
	require.True(t, ok)
	assert.Contains(t, errs[0].Msg, "direct-indexed")
}

func TestAssembleDBStringLiteral(t *testing.T) {
	res, err := Assemble(`DB "AB", 0x00`)
	require.NoError(t, err)
	assert.Equal(t, []byte{'A', 'B', 0x00}, res.Binary)
}

func TestAssembleDefstrEmitsTerminator(t *testing.T) {
	res, err := Assemble(`DEFSTR "hi"`)
	require.NoError(t, err)
	assert.Equal(t, []byte{'h', 'i', 0x00}, res.Binary)
}

func TestAssembleFileWritesBinAndOrgSidecar(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "prog.asm")
	require.NoError(t, os.WriteFile(src, []byte("ORG 0x1000\nNOP\nORG 0x2000\nHLT\n"), 0o644))

	binPath, err := AssembleFile(src)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "prog.bin"), binPath)

	bin, err := os.ReadFile(binPath)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0x00}, bin)

	orgPath := filepath.Join(dir, "prog.org")
	_, err = os.Stat(orgPath)
	require.NoError(t, err)
}

func TestAssembleFileSingleSegmentAtZeroSkipsOrgSidecar(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "prog.asm")
	require.NoError(t, os.WriteFile(src, []byte("NOP\nHLT\n"), 0o644))

	binPath, err := AssembleFile(src)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "prog.org"))
	assert.True(t, os.IsNotExist(err))
	_ = binPath
}
