package cmd

import (
	"fmt"
	"os"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"sicasm/assembler"
)

func newDumpCmd() *cobra.Command {
	var color bool

	dumpCmd := &cobra.Command{
		Use:   "dump objectFile",
		Short: "Pretty-print an assembled object program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			obj, err := assembler.ReadObject(f)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			head, err := obj.Header()
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			printer := pp.New()
			printer.SetColoringEnabled(color)
			printer.SetOutput(cmd.OutOrStdout())
			printer.Println(head)
			printer.Println(obj)
			return nil
		},
	}
	dumpCmd.Flags().BoolVar(&color, "color", false, "colorize the output")
	return dumpCmd
}
