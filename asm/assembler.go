// Package asm implements the Nova-16 two-pass assembler (§4.5):
// tokenizer, operand classifier, symbol table, pass-1 instruction/
// directive sizing, and pass-2 byte emission into a binary image plus
// an optional multi-segment `.org` sidecar.
package asm

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/starfighterlily/nova16/cpu"
)

// Segment is one ORG-delimited span of the assembled image: start
// address, its offset into the concatenated output, and its length.
type Segment struct {
	Start  uint16
	Offset int
	Length int
}

// Result is a completed assembly: the binary image and its segment
// map (empty when the source never used ORG, i.e. the whole image
// loads at address 0).
type Result struct {
	Binary   []byte
	Segments []Segment
}

// instrDef is one instruction table entry, inverted from cpu's
// opcode->mnemonic table into mnemonic->opcode for the assembler.
type instrDef struct {
	opcode   byte
	operands int
}

var instructionTable = buildInstructionTable()

func buildInstructionTable() map[string]instrDef {
	out := make(map[string]instrDef)
	for op, info := range cpu.OpcodeTable() {
		out[info.Name] = instrDef{opcode: op, operands: info.Operands}
	}
	return out
}

// Assemble translates Nova-16 source into a binary image. On error it
// returns an Errors (every line-tagged error collected, per §7); no
// Result is produced in that case.
func Assemble(source string) (*Result, error) {
	lines := lexSource(source)

	symbols, sizes, errs := pass1(lines)
	if len(errs) > 0 {
		return nil, errs
	}

	bin, segs, errs := pass2(lines, symbols, sizes)
	if len(errs) > 0 {
		return nil, errs
	}

	return &Result{Binary: bin, Segments: segs}, nil
}

// AssembleFile assembles the source at srcPath and writes
// srcPath-with-.bin-extension (and, for multi-segment output or a single
// segment not starting at 0, its sibling .org file), per §6's assembler
// CLI contract.
func AssembleFile(srcPath string) (binPath string, err error) {
	src, err := os.ReadFile(srcPath)
	if err != nil {
		return "", fmt.Errorf("reading %q: %w", srcPath, err)
	}

	result, err := Assemble(string(src))
	if err != nil {
		return "", err
	}

	ext := filepath.Ext(srcPath)
	base := strings.TrimSuffix(srcPath, ext)
	binPath = base + ".bin"
	if err := os.WriteFile(binPath, result.Binary, 0o644); err != nil {
		return "", fmt.Errorf("writing %q: %w", binPath, err)
	}

	if len(result.Segments) > 1 || (len(result.Segments) == 1 && result.Segments[0].Start != 0) {
		orgPath := base + ".org"
		if err := os.WriteFile(orgPath, []byte(formatOrgFile(result.Segments)), 0o644); err != nil {
			return "", fmt.Errorf("writing %q: %w", orgPath, err)
		}
	}

	return binPath, nil
}

func formatOrgFile(segs []Segment) string {
	var sb strings.Builder
	for _, s := range segs {
		fmt.Fprintf(&sb, "0x%04X %d %d\n", s.Start, s.Length, s.Offset)
	}
	return sb.String()
}

// lexSource tokenizes every physical line, dropping blanks/comments.
func lexSource(source string) []*line {
	var out []*line
	for i, raw := range strings.Split(source, "\n") {
		if l := tokenizeLine(raw, i+1); l != nil {
			out = append(out, l)
		}
	}
	return out
}
