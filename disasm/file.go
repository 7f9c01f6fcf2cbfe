package disasm

import (
	"fmt"
	"os"
)

// DecodeFile reads path and disassembles it, loading its first byte at
// org. It is the file-system entry point the `disasm` CLI subcommand
// uses (§6).
func DecodeFile(path string, org uint16) ([]Line, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return Decode(data, org), nil
}
