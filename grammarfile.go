package pcfg

import (
	"bufio"
	"io"
	"log"
	"sort"
	"strings"
)

// WriteRules writes every non-lexical rule of pcfg to w, one per line,
// sorted for deterministic output.
func WriteRules(w io.Writer, g *PCFG) error {
	lines := make([]string, 0, len(g.Rules))
	for _, wr := range g.Rules {
		if !wr.Rule.IsLexical() {
			lines = append(lines, wr.String())
		}
	}
	return writeSortedLines(w, lines)
}

// WriteLexicon writes every lexical rule of pcfg to w, one per line, sorted
// for deterministic output.
func WriteLexicon(w io.Writer, g *PCFG) error {
	lines := make([]string, 0, len(g.Rules))
	for _, wr := range g.Rules {
		if wr.Rule.IsLexical() {
			lines = append(lines, wr.String())
		}
	}
	return writeSortedLines(w, lines)
}

// WriteWords writes every distinct terminal appearing in a lexical rule of
// pcfg, one per line, sorted.
func WriteWords(w io.Writer, g *PCFG) error {
	seen := map[string]bool{}
	var words []string
	for _, wr := range g.Rules {
		if wr.Rule.IsLexical() && !seen[wr.Rule.RHSText] {
			seen[wr.Rule.RHSText] = true
			words = append(words, wr.Rule.RHSText)
		}
	}
	sort.Strings(words)
	return writeSortedLines(w, words)
}

func writeSortedLines(w io.Writer, lines []string) error {
	sort.Strings(lines)
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if _, err := bw.WriteString("\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadRules reads a .rules file, skipping (with a diagnostic to stderr) any
// line that parses as lexical-form: that's the wrong kind of rule for this
// file.
func ReadRules(r io.Reader) ([]WeightedRule, error) {
	return readGrammarLines(r, func(wr WeightedRule) bool { return !wr.Rule.IsLexical() })
}

// ReadLexicon reads a .lexicon file, skipping (with a diagnostic to stderr)
// any line that parses as non-lexical form.
func ReadLexicon(r io.Reader) ([]WeightedRule, error) {
	return readGrammarLines(r, func(wr WeightedRule) bool { return wr.Rule.IsLexical() })
}

func readGrammarLines(r io.Reader, keep func(WeightedRule) bool) ([]WeightedRule, error) {
	var out []WeightedRule
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		wr, err := ParseGrammarLine(line)
		if err != nil {
			log.Printf("grammarfile: skipping malformed rule at line %d: %v", lineNum, err)
			continue
		}
		if !keep(wr) {
			log.Printf("grammarfile: skipping wrong-kind rule at line %d: %q", lineNum, line)
			continue
		}
		out = append(out, wr)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ReadWords reads a .words file, one token per line.
func ReadWords(r io.Reader) ([]string, error) {
	var out []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out, scanner.Err()
}
