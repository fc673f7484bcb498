package main

import (
	"fmt"
	"os"

	pcfg "github.com/ling0322/pcfg-go"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "debinarise",
		Short: "Invert binarise: splice synthetic Markovized nodes back into flat-arity trees",
		RunE: func(cmd *cobra.Command, args []string) error {
			return processLines(os.Stdin, os.Stdout, func(line string) (string, bool) {
				if len(line) == 0 {
					return "", false
				}
				tree, err := pcfg.ParseBinarizedTreeLine(line)
				if err != nil {
					fmt.Fprintf(os.Stderr, "debinarise: skipping malformed tree: %v\n", err)
					return "", false
				}
				bare := pcfg.Debinarize(tree)
				return bare.SExpr(), true
			})
		},
	}
	rootCmd.AddCommand(cmd)
}
