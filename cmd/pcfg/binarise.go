package main

import (
	"fmt"
	"os"

	pcfg "github.com/ling0322/pcfg-go"
	"github.com/spf13/cobra"
)

func init() {
	var h, v int
	cmd := &cobra.Command{
		Use:   "binarise",
		Short: "Binarize treebank trees read on stdin via horizontal/vertical Markovization",
		RunE: func(cmd *cobra.Command, args []string) error {
			return processLines(os.Stdin, os.Stdout, func(line string) (string, bool) {
				if len(line) == 0 {
					return "", false
				}
				tree, err := pcfg.ParseTreeLine(line)
				if err != nil {
					fmt.Fprintf(os.Stderr, "binarise: skipping malformed tree: %v\n", err)
					return "", false
				}
				binarized := pcfg.Markovize(tree, v, h)
				return binarized.SExpr(), true
			})
		},
	}
	// Claim the "help" flag name with no shorthand so cobra's default
	// help-flag registration doesn't collide with -h below.
	cmd.Flags().Bool("help", false, "help for binarise")
	cmd.Flags().IntVarP(&h, "horizontal", "h", 999, "sibling context window retained on synthetic nodes")
	cmd.Flags().IntVarP(&v, "vertical", "v", 1, "vertical order: non-preterminal nodes keep up to v-1 ancestor labels (v <= 1: none)")
	rootCmd.AddCommand(cmd)
}
