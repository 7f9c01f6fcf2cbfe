package asm

import (
	"fmt"

	"github.com/starfighterlily/nova16/cpu"
)

// pass2 re-walks the source, using pass 1's per-line sizing and
// operand classification to resolve symbols (now fully known) and
// emit bytes, tracking ORG-delimited segments (§4.5).
func pass2(lines []*line, symbols map[string]uint16, infos []lineInfo) ([]byte, []Segment, Errors) {
	var (
		out       []byte
		segs      []Segment
		errs      Errors
		segStart  uint16
		segOffset int
		segOpen   bool
	)

	closeSegment := func() {
		if segOpen && len(out)-segOffset > 0 {
			segs = append(segs, Segment{Start: segStart, Offset: segOffset, Length: len(out) - segOffset})
		}
		segOpen = false
	}

	for i, l := range lines {
		if l.isEqu || (l.op == "" && l.label != "") {
			continue
		}

		switch l.op {
		case "":
			continue
		case "ORG":
			closeSegment()
			segStart = infos[i].addr
			segOffset = len(out)
			segOpen = true
			continue
		case "EQU":
			continue
		case "DB":
			for _, it := range infos[i].dbItems {
				if it.isString {
					out = append(out, it.bytes...)
				} else {
					out = append(out, byte(it.n))
				}
			}
			continue
		case "DW":
			for _, it := range infos[i].dbItems {
				out = append(out, byte(it.n>>8), byte(it.n))
			}
			continue
		case "DEFSTR":
			out = append(out, infos[i].strData...)
			out = append(out, 0)
			continue
		}

		def := instructionTable[l.op]
		out = append(out, def.opcode)

		ops := infos[i].ops
		for g := 0; g < len(ops); g += 3 {
			end := g + 3
			if end > len(ops) {
				end = len(ops)
			}
			group := ops[g:end]
			var mode byte
			var indexed, direct bool
			for j, o := range group {
				class, idx, dir := o.addrModeBits()
				mode |= byte(class) << uint(j*2)
				if o.class == classRegisterIndexed || o.class == classDirect {
					indexed, direct = idx, dir
				}
			}
			if indexed {
				mode |= 0x40
			}
			if direct {
				mode |= 0x80
			}
			out = append(out, mode)

			for _, o := range group {
				b, err := encodeOperand(o, symbols)
				if err != nil {
					errs = append(errs, &LineError{l.lineNo, err.Error()})
					continue
				}
				out = append(out, b...)
			}
		}
	}
	closeSegment()

	if len(errs) > 0 {
		return nil, nil, errs
	}
	return out, segs, nil
}

// encodeOperand emits one operand's data bytes, resolving a symbol
// reference against the now-complete symbol table.
func encodeOperand(o operandRef, symbols map[string]uint16) ([]byte, error) {
	resolve := func() (uint16, error) {
		if o.symbol == "" {
			return o.imm, nil
		}
		v, ok := symbols[o.symbol]
		if !ok {
			return 0, fmt.Errorf("unknown symbol %q", o.symbol)
		}
		return v, nil
	}

	switch o.class {
	case classRegister, classRegisterIndirect:
		code, _ := cpu.RegisterCode(o.regName)
		return []byte{code}, nil
	case classRegisterIndexed:
		code, _ := cpu.RegisterCode(o.regName)
		return []byte{code, byte(o.indexLit)}, nil
	case classDirect:
		return []byte{byte(o.addrLit >> 8), byte(o.addrLit)}, nil
	case classImmediate8:
		if o.hiByte {
			v, err := resolve()
			if err != nil {
				return nil, err
			}
			return []byte{byte(v >> 8)}, nil
		}
		if o.loByte {
			v, err := resolve()
			if err != nil {
				return nil, err
			}
			return []byte{byte(v)}, nil
		}
		v, err := resolve()
		if err != nil {
			return nil, err
		}
		return []byte{byte(v)}, nil
	case classImmediate16:
		v, err := resolve()
		if err != nil {
			return nil, err
		}
		return []byte{byte(v >> 8), byte(v)}, nil
	}
	return nil, fmt.Errorf("internal error: unhandled operand class")
}
