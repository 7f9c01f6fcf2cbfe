package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOperandRegister(t *testing.T) {
	o, err := parseOperand("R3")
	require.NoError(t, err)
	assert.Equal(t, classRegister, o.class)
	assert.Equal(t, "R3", o.regName)
}

func TestParseOperandSmallImmediateIsImm8(t *testing.T) {
	o, err := parseOperand("0x10")
	require.NoError(t, err)
	assert.Equal(t, classImmediate8, o.class)
}

func TestParseOperandLargeImmediateIsImm16(t *testing.T) {
	o, err := parseOperand("0x1000")
	require.NoError(t, err)
	assert.Equal(t, classImmediate16, o.class)
}

func TestParseOperandHiLoByteOfSymbol(t *testing.T) {
	hi, err := parseOperand("LABEL:")
	require.NoError(t, err)
	assert.True(t, hi.hiByte)
	assert.Equal(t, "LABEL", hi.symbol)

	lo, err := parseOperand(":LABEL")
	require.NoError(t, err)
	assert.True(t, lo.loByte)
}

func TestParseMemoryOperandRegisterIndirect(t *testing.T) {
	o, err := parseOperand("[P0]")
	require.NoError(t, err)
	assert.Equal(t, classRegisterIndirect, o.class)
	assert.Equal(t, "P0", o.regName)
}

func TestParseMemoryOperandRegisterIndexedPositiveOffset(t *testing.T) {
	o, err := parseOperand("[P0+5]")
	require.NoError(t, err)
	assert.Equal(t, classRegisterIndexed, o.class)
	assert.Equal(t, 5, o.indexLit)
}

func TestParseMemoryOperandRegisterIndexedNegativeOffset(t *testing.T) {
	o, err := parseOperand("[P0-1]")
	require.NoError(t, err)
	assert.Equal(t, classRegisterIndexed, o.class)
	assert.Equal(t, -1, o.indexLit)
}

func TestParseMemoryOperandDirect(t *testing.T) {
	o, err := parseOperand("[0x3000]")
	require.NoError(t, err)
	assert.Equal(t, classDirect, o.class)
	assert.Equal(t, uint16(0x3000), o.addrLit)
}

func TestParseMemoryOperandDirectIndexedFlagged(t *testing.T) {
	o, err := parseOperand("[0x2000+R1]")
	require.NoError(t, err)
	assert.Equal(t, "R1", o.indexedDirectReg)
}

func TestParseMemoryOperandRegisterPlusSymbolOffsetRejected(t *testing.T) {
	_, err := parseOperand("[P0+SOMEWHERE]")
	require.Error(t, err)
}

func TestParseNumberHexAndDecimal(t *testing.T) {
	n, ok := parseNumber("0x1F")
	require.True(t, ok)
	assert.Equal(t, 31, n)

	n, ok = parseNumber("31")
	require.True(t, ok)
	assert.Equal(t, 31, n)

	n, ok = parseNumber("-2")
	require.True(t, ok)
	assert.Equal(t, -2, n)
}
