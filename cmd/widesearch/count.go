package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

type countResult struct {
	Pattern  string `json:"pattern"`
	Encoding string `json:"encoding"`
	Count    int    `json:"count"`
	Limited  bool   `json:"limited"`
	Strategy string `json:"strategy"`
}

func newCountCmd(opts *globalOptions) *cobra.Command {
	var (
		maxCount int
		last     bool
	)
	cmd := &cobra.Command{
		Use:   "count <pattern> <file>",
		Short: "Count non-overlapping occurrences of a pattern",
		Long: `The count command counts non-overlapping occurrences of a pattern. Matches
are taken left to right, or right to left with --last, which only matters for
patterns that overlap themselves.

Example:
  widesearch count "ment" article.txt
  widesearch count --max 10 -e utf-32le "a" article.utf32`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCountCmd(cmd, opts, args[0], args[1], maxCount, last)
		},
	}
	cmd.Flags().IntVar(&maxCount, "max", -1, "Stop counting after this many matches (negative = unlimited)")
	cmd.Flags().BoolVar(&last, "last", false, "Take matches from the right")
	return cmd
}

func runCountCmd(cmd *cobra.Command, opts *globalOptions, pattern, file string, maxCount int, last bool) error {
	in, err := opts.load(cmd, pattern, file)
	if err != nil {
		return err
	}
	searchOpts, err := opts.searchOptions()
	if err != nil {
		return err
	}

	start := time.Now()
	out := runCount(in, maxCount, last, searchOpts)
	opts.logger.Debug("count finished",
		"strategy", out.strategy.String(),
		"count", out.count,
		"elapsed", time.Since(start))

	res := countResult{
		Pattern:  pattern,
		Encoding: in.enc.Name(),
		Count:    out.count,
		Limited:  maxCount >= 0 && out.count == maxCount,
		Strategy: out.strategy.String(),
	}
	if opts.jsonOut {
		return printJSON(cmd.OutOrStdout(), res)
	}
	if res.Limited {
		fmt.Fprintf(cmd.OutOrStdout(), "%d (limited to %d)\n", res.Count, maxCount)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.Count)
	return nil
}
