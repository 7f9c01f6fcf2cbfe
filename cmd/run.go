package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/starfighterlily/nova16/machine"
	"github.com/starfighterlily/nova16/sound"
)

// runCmd loads a binary image and runs it to completion (HLT, a fault,
// or SIGINT/SIGTERM), per §9's hosting-program operations.
var runCmd = &cobra.Command{
	Use:   "run path/to/image.bin",
	Short: "run a Nova-16 binary image",
	Args:  cobra.ExactArgs(1),
	RunE:  runImage,
}

func runImage(cmd *cobra.Command, args []string) error {
	m := machine.New(sound.NewSynth())
	if err := m.Load(args[0]); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigQuit := make(chan os.Signal, 1)
	signal.Notify(sigQuit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigQuit
		cancel()
	}()

	if err := m.Run(ctx); err != nil {
		return fmt.Errorf("halted: %w", err)
	}
	fmt.Printf("halted: %s\n", m.CPU())
	return nil
}
