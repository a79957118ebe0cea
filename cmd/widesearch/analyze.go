package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mhr3/widesearch/fastsearch"
)

type analyzeResult struct {
	Pattern     string                   `json:"pattern"`
	Encoding    string                   `json:"encoding"`
	Units       int                      `json:"units"`
	Forward     fastsearch.Factorization `json:"forward"`
	Reverse     fastsearch.Factorization `json:"reverse"`
	HaystackLen int                      `json:"haystack_len"`
	Strategy    string                   `json:"strategy"`
}

func newAnalyzeCmd(opts *globalOptions) *cobra.Command {
	var haystackLen int
	cmd := &cobra.Command{
		Use:   "analyze <pattern>",
		Short: "Show the critical factorization of a pattern",
		Long: `The analyze command prints the critical factorization the two-way matcher
uses for a pattern in both search directions, and the strategy that would be
picked for a haystack of --haystack-len code units.

Example:
  widesearch analyze abcdabcabc
  widesearch analyze --haystack-len 50000 -e utf-16le "Bridging"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyzeCmd(cmd, opts, args[0], haystackLen)
		},
	}
	cmd.Flags().IntVar(&haystackLen, "haystack-len", 10000, "Haystack length in code units used to pick a strategy")
	return cmd
}

func runAnalyzeCmd(cmd *cobra.Command, opts *globalOptions, pattern string, haystackLen int) error {
	enc, err := opts.lookupEncoding()
	if err != nil {
		return err
	}
	searchOpts, err := opts.searchOptions()
	if err != nil {
		return err
	}
	raw, err := enc.Encode(pattern)
	if err != nil {
		return fmt.Errorf("pattern cannot be represented in %s: %w", enc, err)
	}
	units, err := enc.Decode(raw)
	if err != nil {
		return err
	}
	if units.Len() == 0 {
		return fmt.Errorf("pattern must not be empty")
	}

	fwd, rev, strategy := analyzeUnits(units, haystackLen, searchOpts)
	res := analyzeResult{
		Pattern:     pattern,
		Encoding:    enc.Name(),
		Units:       units.Len(),
		Forward:     fwd,
		Reverse:     rev,
		HaystackLen: haystackLen,
		Strategy:    strategy.String(),
	}
	if opts.jsonOut {
		return printJSON(cmd.OutOrStdout(), res)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "pattern: %q (%d %s units)\n", pattern, res.Units, res.Encoding)
	for _, f := range []struct {
		name string
		f    fastsearch.Factorization
	}{{"forward", fwd}, {"reverse", rev}} {
		kind := "non-periodic"
		if f.f.Periodic {
			kind = "periodic"
		}
		fmt.Fprintf(w, "%s: cut=%d period=%d gap=%d %s\n", f.name, f.f.Cut, f.f.Period, f.f.Gap, kind)
	}
	fmt.Fprintf(w, "strategy for %d units: %s\n", haystackLen, res.Strategy)
	return nil
}
