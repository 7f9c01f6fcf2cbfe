package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/starfighterlily/nova16/disasm"
)

// orgFlag is the load address disassembly starts labeling from
// (§6: `<disasm> <file.bin> [--org 0xADDR]`).
var orgFlag string

var disasmCmd = &cobra.Command{
	Use:   "disasm path/to/image.bin",
	Short: "disassemble a Nova-16 binary image",
	Args:  cobra.ExactArgs(1),
	RunE:  runDisasm,
}

func init() {
	disasmCmd.Flags().StringVar(&orgFlag, "org", "0x0000", "load address the first byte is disassembled at")
}

func runDisasm(cmd *cobra.Command, args []string) error {
	org, err := strconv.ParseUint(strings.TrimPrefix(orgFlag, "0x"), 16, 16)
	if err != nil {
		return fmt.Errorf("bad --org address %q: %w", orgFlag, err)
	}

	lines, err := disasm.DecodeFile(args[0], uint16(org))
	if err != nil {
		return err
	}
	for _, l := range lines {
		fmt.Println(l.String())
	}
	return nil
}
