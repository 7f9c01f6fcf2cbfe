package asm

import "fmt"

// LineError is a single assembler error tied to a source line, per
// §7's error-handling design: the assembler reports line numbers and
// keeps parsing to collect additional errors rather than stopping at
// the first one.
type LineError struct {
	Line int
	Msg  string
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Errors collects every LineError raised during assembly. Assemble
// returns it (as an error) when non-empty; no .bin is produced.
type Errors []*LineError

func (e Errors) Error() string {
	if len(e) == 1 {
		return e[0].Error()
	}
	s := fmt.Sprintf("%d assembler errors:\n", len(e))
	for _, le := range e {
		s += "  " + le.Error() + "\n"
	}
	return s
}
