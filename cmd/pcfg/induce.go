package main

import (
	"bufio"
	"fmt"
	"os"

	pcfg "github.com/ling0322/pcfg-go"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "induce [GRAMMAR]",
		Short: "Induce a normalized PCFG from treebank trees read on stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInduce,
	}
	rootCmd.AddCommand(cmd)
}

func runInduce(cmd *cobra.Command, args []string) error {
	counts := pcfg.NewRuleCounts()

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
			fmt.Fprintf(os.Stderr, "induce: skipping malformed tree at line %d: %v\n", lineNum, err)
			continue
		}
		pcfg.InduceTree(tree, counts)
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	grammar := pcfg.Normalize(counts)

	if len(args) == 1 {
		base := args[0]
		return writeGrammarFiles(grammar, base)
	}
	if err := pcfg.WriteRules(os.Stdout, grammar); err != nil {
		return err
	}
	if err := pcfg.WriteLexicon(os.Stdout, grammar); err != nil {
		return err
	}
	return pcfg.WriteWords(os.Stdout, grammar)
}

func writeGrammarFiles(grammar *pcfg.PCFG, base string) error {
	rulesFile, err := os.Create(base + ".rules")
	if err != nil {
		return err
	}
	defer rulesFile.Close()
	if err := pcfg.WriteRules(rulesFile, grammar); err != nil {
		return err
	}

	lexiconFile, err := os.Create(base + ".lexicon")
	if err != nil {
		return err
	}
	defer lexiconFile.Close()
	if err := pcfg.WriteLexicon(lexiconFile, grammar); err != nil {
		return err
	}

	wordsFile, err := os.Create(base + ".words")
	if err != nil {
		return err
	}
	defer wordsFile.Close()
	return pcfg.WriteWords(wordsFile, grammar)
}
