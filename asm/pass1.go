package asm

import (
	"fmt"
	"strings"
)

// lineInfo is pass 1's per-line output: where it lands in the address
// space and, for instructions/directives, the parsed operand data pass
// 2 reuses instead of re-parsing.
type lineInfo struct {
	addr    uint16
	size    int
	ops     []operandRef
	dbItems []directiveItem
	strData []byte
}

// pass1 walks every line once, tracking a location counter reset by
// each ORG, assigning labels to the current LC, binding EQU symbols to
// their literal value, and sizing every instruction/directive
// occurrence (§4.5). Operand classification errors are collected here;
// unresolved-symbol errors are deferred to pass 2, since symbols may
// be defined later in the source.
func pass1(lines []*line) (map[string]uint16, []lineInfo, Errors) {
	symbols := make(map[string]uint16)
	infos := make([]lineInfo, len(lines))
	var errs Errors

	var lc uint16
	for i, l := range lines {
		if l.isEqu {
			n, ok := parseNumber(l.operand)
			if !ok {
				if v, ok2 := symbols[l.operand]; ok2 {
					n = int(v)
				} else {
					errs = append(errs, &LineError{l.lineNo, fmt.Sprintf("EQU value %q is neither a number nor a previously-defined symbol", l.operand)})
					continue
				}
			}
			symbols[l.label] = uint16(n)
			continue
		}

		if l.label != "" {
			symbols[l.label] = lc
		}
		infos[i].addr = lc

		if l.op == "" {
			continue
		}

		switch l.op {
		case "ORG":
			n, ok := parseNumber(l.operand)
			if !ok {
				errs = append(errs, &LineError{l.lineNo, fmt.Sprintf("bad ORG address %q", l.operand)})
				continue
			}
			lc = uint16(n)
			infos[i].addr = lc
			continue
		case "EQU":
			// `label: EQU value` binds the label to the value, like the
			// `label EQU value` form handled above; a bare EQU with no
			// preceding label is a malformed directive.
			if l.label == "" {
				errs = append(errs, &LineError{l.lineNo, "EQU requires a label"})
				continue
			}
			n, ok := parseNumber(l.operand)
			if !ok {
				v, ok2 := symbols[l.operand]
				if !ok2 {
					errs = append(errs, &LineError{l.lineNo, fmt.Sprintf("EQU value %q is neither a number nor a previously-defined symbol", l.operand)})
					continue
				}
				n = int(v)
			}
			symbols[l.label] = uint16(n)
			continue
		case "DB":
			items, err := parseDirectiveItems(l.operand)
			if err != nil {
				errs = append(errs, &LineError{l.lineNo, err.Error()})
				continue
			}
			for _, it := range items {
				if !it.isString && (it.n < 0 || it.n > 255) {
					errs = append(errs, &LineError{l.lineNo, fmt.Sprintf("DB value %d exceeds a byte (0-255)", it.n)})
				}
			}
			infos[i].dbItems = items
			infos[i].size = dbSize(items)
			lc += uint16(infos[i].size)
			continue
		case "DW":
			items, err := parseDirectiveItems(l.operand)
			if err != nil {
				errs = append(errs, &LineError{l.lineNo, err.Error()})
				continue
			}
			for _, it := range items {
				if it.isString {
					errs = append(errs, &LineError{l.lineNo, "DW does not accept string literals"})
					continue
				}
				if it.n < 0 || it.n > 65535 {
					errs = append(errs, &LineError{l.lineNo, fmt.Sprintf("DW value %d exceeds a word (0-65535)", it.n)})
				}
			}
			infos[i].dbItems = items
			infos[i].size = 2 * len(items)
			lc += uint16(infos[i].size)
			continue
		case "DEFSTR":
			b, err := parseStringLiteral(strings.TrimSpace(l.operand))
			if err != nil {
				errs = append(errs, &LineError{l.lineNo, err.Error()})
				continue
			}
			if len(b) > 254 {
				errs = append(errs, &LineError{l.lineNo, fmt.Sprintf("DEFSTR content (%d bytes) exceeds the 254-byte limit", len(b))})
			}
			infos[i].strData = b
			infos[i].size = defstrSize(b)
			lc += uint16(infos[i].size)
			continue
		}

		def, ok := instructionTable[l.op]
		if !ok {
			errs = append(errs, &LineError{l.lineNo, fmt.Sprintf("unknown instruction %q", l.op)})
			continue
		}

		toks := splitOperands(l.operand)
		if len(toks) != def.operands {
			errs = append(errs, &LineError{l.lineNo, fmt.Sprintf("%s takes %d operand(s), got %d", l.op, def.operands, len(toks))})
			continue
		}

		ops := make([]operandRef, len(toks))
		size := 1 // opcode
		if def.operands > 0 {
			size += (def.operands + 2) / 3 // one mode byte per group of <=3 operands
		}
		bad := false
		for j, tok := range toks {
			o, err := parseOperand(tok)
			if err != nil {
				errs = append(errs, &LineError{l.lineNo, err.Error()})
				bad = true
				continue
			}
			if o.indexedDirectReg != "" {
				errs = append(errs, &LineError{l.lineNo, fmt.Sprintf("direct-indexed memory operand %q is not assemblable (register offset on a literal address)", tok)})
				bad = true
				continue
			}
			ops[j] = o
			size += o.encodedSize()
		}
		if bad {
			continue
		}
		infos[i].ops = ops
		infos[i].size = size
		lc += uint16(size)
	}

	return symbols, infos, errs
}
