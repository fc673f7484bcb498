package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pcfg",
	Short: "Induce, binarize, and parse with probabilistic context-free grammars",
	Long: `pcfg provides the end-to-end pipeline for constituent parsing with PCFGs:
- induce: treebank trees -> normalized grammar
- binarise / debinarise: Markovization and its inverse
- parse: weighted CYK decoding over a binarized grammar
- unk / smooth: corpus-level out-of-vocabulary transforms`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}

// unimplemented prints a diagnostic and exits 22. It is called for the parse
// options this driver does not implement (-p deductive, -k, -a); an unknown
// subcommand is reported by cobra as an error and exits 1 through main.
func unimplemented(what string) {
	fmt.Fprintf(os.Stderr, "pcfg: %s is not implemented\n", what)
	os.Exit(22)
}
