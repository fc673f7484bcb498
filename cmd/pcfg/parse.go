package main

import (
	"log"
	"os"

	pcfg "github.com/ling0322/pcfg-go"
	"github.com/spf13/cobra"
)

func init() {
	var (
		algorithm string
		initSym   string
		unk       bool
		smooth    bool
		threshold float64
		rank      int
		kbest     int
		astarPath string
	)

	cmd := &cobra.Command{
		Use:   "parse RULES LEXICON",
		Short: "Parse sentences read on stdin with weighted CYK over a binarized grammar",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("kbest") {
				unimplemented("-k")
			}
			if cmd.Flags().Changed("astar") {
				unimplemented("-a")
			}
			if algorithm == "deductive" {
				unimplemented("-p deductive")
			} else if algorithm != "cyk" {
				log.Fatalf("pcfg: unknown parsing algorithm %q", algorithm)
			}
			if unk && smooth {
				log.Fatal("pcfg: -u and -s are mutually exclusive")
			}

			idx, err := loadRuleIndex(args[0], args[1], pcfg.Symbol(initSym))
			if err != nil {
				return err
			}

			var prune pcfg.PruneOptions
			if cmd.Flags().Changed("threshold") {
				t := threshold
				prune.Threshold = &t
			}
			if cmd.Flags().Changed("rank") {
				r := rank
				prune.Rank = &r
			}

			return processLines(os.Stdin, os.Stdout, func(line string) (string, bool) {
				tokens := pcfg.ParseSentenceLine(line)
				if len(tokens) == 0 {
					return "", false
				}
				return parseSentence(idx, tokens, unk, smooth, prune), true
			})
		},
	}

	cmd.Flags().StringVarP(&algorithm, "paradigm", "p", "cyk", "parsing paradigm: cyk|deductive")
	cmd.Flags().StringVarP(&initSym, "init", "i", "ROOT", "initial (start) non-terminal")
	cmd.Flags().BoolVarP(&unk, "unk", "u", false, "replace out-of-vocabulary tokens with UNK before decoding")
	cmd.Flags().BoolVarP(&smooth, "smooth", "s", false, "replace out-of-vocabulary tokens with their signature before decoding")
	cmd.Flags().Float64VarP(&threshold, "threshold", "t", 0, "prune entries below this fraction of a cell's max weight")
	cmd.Flags().IntVarP(&rank, "rank", "r", 0, "prune to the top-rank entries of a cell")
	cmd.Flags().IntVarP(&kbest, "kbest", "k", 0, "unimplemented: k-best enumeration")
	cmd.Flags().StringVarP(&astarPath, "astar", "a", "", "unimplemented: A* heuristic path")
	rootCmd.AddCommand(cmd)
}

func loadRuleIndex(rulesPath, lexiconPath string, initial pcfg.Symbol) (*pcfg.RuleIndex, error) {
	rulesFile, err := os.Open(rulesPath)
	if err != nil {
		return nil, err
	}
	defer rulesFile.Close()
	rules, err := pcfg.ReadRules(rulesFile)
	if err != nil {
		return nil, err
	}

	lexiconFile, err := os.Open(lexiconPath)
	if err != nil {
		return nil, err
	}
	defer lexiconFile.Close()
	lexicon, err := pcfg.ReadLexicon(lexiconFile)
	if err != nil {
		return nil, err
	}

	idx := pcfg.NewRuleIndex(initial)
	for _, wr := range rules {
		idx.InsertRule(wr)
	}
	for _, wr := range lexicon {
		idx.InsertRule(wr)
	}
	return idx, nil
}

func parseSentence(idx *pcfg.RuleIndex, tokens []string, unk, smooth bool, prune pcfg.PruneOptions) string {
	sentence := tokens
	var overwritten map[int]string
	switch {
	case unk:
		sentence, overwritten = pcfg.Unkify(tokens, idx)
	case smooth:
		sentence, overwritten = pcfg.Smooth(tokens, idx, pcfg.DefaultSignature)
	}

	result := pcfg.Decode(idx, sentence, prune)
	if result == nil {
		return noparseTree(tokens).SExpr()
	}

	if overwritten != nil {
		pcfg.Deunkify(result, overwritten)
	}
	return pcfg.ToTree(result).SExpr()
}

func noparseTree(tokens []string) *pcfg.Node {
	children := make([]*pcfg.Node, len(tokens))
	for i, t := range tokens {
		children[i] = &pcfg.Node{Symbol: pcfg.Symbol(t)}
	}
	return &pcfg.Node{Symbol: pcfg.Symbol("NOPARSE"), Children: children}
}
