// Package cmd implements the nova16 command-line front end: the
// emulator, assembler, and disassembler as subcommands of one Cobra
// root (§6's CLI contract). Grounded on the teacher pack's
// bradford-hamilton/chippy cmd/ package, generalized from a
// single-purpose runner into a three-command toolchain.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the base for every nova16 subcommand.
var rootCmd = &cobra.Command{
	Use:   "nova16 [command]",
	Short: "nova16 is a Nova-16 emulator, assembler, and disassembler",
	Long:  "nova16 assembles, disassembles, and runs programs for the Nova-16 fantasy 16-bit computer",
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(asmCmd)
	rootCmd.AddCommand(disasmCmd)
}

// Execute runs nova16 according to the user's subcommand and flags.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
