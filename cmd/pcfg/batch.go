package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sync/errgroup"
)

const batchSize = 256

// lineResult is one line's transform outcome: ok is false when the line was
// skipped (malformed input, diagnostic already printed by transform).
type lineResult struct {
	text string
	ok   bool
}

// processLines reads newline-delimited records from in, applies transform to
// each, and writes the non-skipped results to out in the same order as the
// input, one per line. Lines within a batch are transformed concurrently;
// batches themselves run strictly in sequence, so output order always
// matches input order.
func processLines(in io.Reader, out io.Writer, transform func(line string) (string, bool)) error {
	writer := bufio.NewWriter(out)
	defer writer.Flush()

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var batch []string
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		results := make([]lineResult, len(batch))

		g, _ := errgroup.WithContext(context.Background())
		g.SetLimit(runtime.NumCPU())
		for i, line := range batch {
			i, line := i, line
			g.Go(func() error {
				text, ok := transform(line)
				results[i] = lineResult{text: text, ok: ok}
				return nil
			})
		}
		_ = g.Wait()

		for _, r := range results {
			if !r.ok {
				continue
			}
			if _, err := fmt.Fprintln(writer, r.text); err != nil {
				return err
			}
		}
		batch = batch[:0]
		return nil
	}

	for scanner.Scan() {
		batch = append(batch, scanner.Text())
		if len(batch) >= batchSize {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if err := flush(); err != nil {
		return err
	}
	return writer.Flush()
}
