package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/starfighterlily/nova16/asm"
)

// asmCmd assembles a source file into a .bin image (and, for
// multi-segment output or a single segment not starting at 0, a sibling
// .org file), per §6's assembler CLI
// contract: exit 0 on success, non-zero with a per-line error report
// otherwise.
var asmCmd = &cobra.Command{
	Use:   "asm path/to/source.asm",
	Short: "assemble a Nova-16 source file into a binary image",
	Args:  cobra.ExactArgs(1),
	RunE:  runAsm,
}

func runAsm(cmd *cobra.Command, args []string) error {
	binPath, err := asm.AssembleFile(args[0])
	if err != nil {
		if errs, ok := err.(asm.Errors); ok {
			for _, le := range errs {
				fmt.Printf("Error on line %d: %s\n", le.Line, le.Msg)
			}
			return fmt.Errorf("%d assembler error(s)", len(errs))
		}
		return err
	}
	fmt.Println(binPath)
	return nil
}
