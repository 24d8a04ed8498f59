// Command kilo is a minimal, single-file-at-a-time terminal text editor.
// It opens a file (or starts empty), lets you navigate and edit it
// byte-by-byte, search incrementally, and save — all drawn with in-band
// ANSI escapes directly on a raw-mode TTY.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kilo/internal/kilo"
	"kilo/internal/tty"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kilo [filename]",
		Short: "A minimal raw-mode terminal text editor",
		Args:  cobra.MaximumNArgs(1),
		RunE:  run,
	}
}

func run(cmd *cobra.Command, args []string) error {
	dev, err := tty.Open()
	if err != nil {
		return fmt.Errorf("enabling raw mode: %w", err)
	}
	defer dev.Restore()

	ed, err := kilo.New(dev, os.Stdout)
	if err != nil {
		return fmt.Errorf("starting editor: %w", err)
	}

	if len(args) >= 1 {
		if err := ed.Open(args[0]); err != nil {
			ed.Die(err)
		}
	}

	ed.Run()
	return nil
}
