package cmd

import (
	goflag "flag"
	"fmt"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"sicasm/assembler"
)

// NewRootCmd builds the sicasm command tree.
func NewRootCmd() *cobra.Command {
	var (
		opts    assembler.Options
		out     string
		quiet   bool
		symbols bool
	)

	rootCmd := &cobra.Command{
		Use:   "sicasm sourceFile",
		Short: "Two-pass assembler for the SIC machine",
		Long: `Sicasm assembles a SIC source file into an object program made of
Header, Text, Modification and End records. The object program is written
next to the source as <sourceFile>.obj unless --out says otherwise, and is
only written when assembly succeeds.`,

		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// glog wants its flag set parsed; cobra already did the parsing
			if !cmd.Flags().Changed("logtostderr") {
				if err := goflag.Set("logtostderr", "true"); err != nil {
					return err
				}
			}
			return goflag.CommandLine.Parse(nil)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			if out == "" {
				out = assembler.ObjectFileName(filename)
			}
			res, err := assembler.AssembleFile(filename, out, opts)
			if err != nil {
				return err
			}
			if symbols {
				if err := assembler.PrintSymbols(cmd.ErrOrStderr(), res.Symbols); err != nil {
					return err
				}
			}
			if !quiet {
				fmt.Fprint(cmd.OutOrStdout(), res.Object.String())
			}
			return nil
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&out, "out", "o", "", "file name for the object program (default <sourceFile>.obj)")
	flags.BoolVar(&opts.Strict, "strict", false, "treat undefined and duplicate symbols as errors")
	flags.BoolVarP(&quiet, "quiet", "q", false, "do not echo the object program")
	flags.BoolVar(&symbols, "symbols", false, "print the symbol table to stderr")
	rootCmd.PersistentFlags().AddGoFlagSet(goflag.CommandLine)

	rootCmd.AddCommand(newDumpCmd())
	return rootCmd
}

// Execute runs the command line and logs any failure.
func Execute() error {
	err := NewRootCmd().Execute()
	if err != nil {
		glog.Errorf("Error: %v", err)
	}
	glog.Flush()
	return err
}
