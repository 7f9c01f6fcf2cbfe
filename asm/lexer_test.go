package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeLineStripsComments(t *testing.T) {
	l := tokenizeLine("MOV R0, 0x01 ; set R0", 1)
	assert.Equal(t, "MOV", l.op)
	assert.Equal(t, "R0, 0x01", l.operand)
}

func TestTokenizeLineHonorsSemicolonInsideString(t *testing.T) {
	l := tokenizeLine(`DEFSTR "a;b"`, 1)
	assert.Equal(t, `"a;b"`, l.operand)
}

func TestTokenizeLineParsesLabel(t *testing.T) {
	l := tokenizeLine("LOOP: MOV R0, 0x01", 1)
	assert.Equal(t, "LOOP", l.label)
	assert.Equal(t, "MOV", l.op)
}

func TestTokenizeLineParsesLabelOnlyLine(t *testing.T) {
	l := tokenizeLine("LOOP:", 1)
	assert.Equal(t, "LOOP", l.label)
	assert.Empty(t, l.op)
}

func TestTokenizeLineParsesEqu(t *testing.T) {
	l := tokenizeLine("LIMIT EQU 0x10", 1)
	assert.True(t, l.isEqu)
	assert.Equal(t, "LIMIT", l.label)
	assert.Equal(t, "0x10", l.operand)
}

func TestTokenizeLineBlankReturnsNil(t *testing.T) {
	assert.Nil(t, tokenizeLine("   ", 1))
	assert.Nil(t, tokenizeLine("; only a comment", 1))
}

func TestSplitOperandsRespectsBracketsAndCommas(t *testing.T) {
	got := splitOperands("[P0+5], R1, 0x02")
	assert.Equal(t, []string{"[P0+5]", "R1", "0x02"}, got)
}

func TestSplitOperandsRespectsCommaInsideString(t *testing.T) {
	got := splitOperands(`"a,b", 0x01`)
	assert.Equal(t, []string{`"a,b"`, "0x01"}, got)
}
