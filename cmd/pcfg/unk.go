package main

import (
	"bufio"
	"fmt"
	"os"

	pcfg "github.com/ling0322/pcfg-go"
	"github.com/spf13/cobra"
)

// readAllTrees reads every tree line from stdin, reporting malformed lines
// to stderr and skipping them.
func readAllTrees() ([]*pcfg.Tree, error) {
	var trees []*pcfg.Tree
	scanner := bufio.NewScanner(os.Stdin)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}
		tree, err := pcfg.ParseTreeLine(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping malformed tree at line %d: %v\n", lineNum, err)
			continue
		}
		trees = append(trees, tree)
	}
	return trees, scanner.Err()
}

func init() {
	var threshold int
	cmd := &cobra.Command{
		Use:   "unk",
		Short: "Replace rare corpus words with the literal UNK",
		RunE: func(cmd *cobra.Command, args []string) error {
			trees, err := readAllTrees()
			if err != nil {
				return err
			}
			keep := keepWordsAcross(trees, threshold)
			for _, tree := range trees {
				fmt.Println(pcfg.UnkifyTree(tree, keep).SExpr())
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&threshold, "threshold", "t", 0, "keep words with a corpus count strictly above this threshold")
	rootCmd.AddCommand(cmd)
}

func init() {
	var threshold int
	cmd := &cobra.Command{
		Use:   "smooth",
		Short: "Replace rare corpus words with their unknown-word signature",
		RunE: func(cmd *cobra.Command, args []string) error {
			trees, err := readAllTrees()
			if err != nil {
				return err
			}
			keep := keepWordsAcross(trees, threshold)
			for _, tree := range trees {
				fmt.Println(pcfg.SmoothTree(tree, keep, pcfg.DefaultSignature).SExpr())
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&threshold, "threshold", "t", 0, "keep words with a corpus count strictly above this threshold")
	rootCmd.AddCommand(cmd)
}

func keepWordsAcross(trees []*pcfg.Tree, threshold int) map[string]bool {
	counts := map[string]int{}
	for _, tree := range trees {
		for w, c := range pcfg.CountLeaves(tree) {
			counts[w] += c
		}
	}
	return pcfg.KeepWords(counts, threshold)
}
