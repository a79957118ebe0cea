package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/mhr3/widesearch/codeunit"
	"github.com/mhr3/widesearch/utf8"
)

type findResult struct {
	Pattern  string `json:"pattern"`
	Encoding string `json:"encoding"`
	Found    bool   `json:"found"`
	Unit     int    `json:"unit"`
	Byte     int    `json:"byte"`
	Rune     *int   `json:"rune,omitempty"`
	Context  string `json:"context,omitempty"`
	Strategy string `json:"strategy"`
}

func newFindCmd(opts *globalOptions) *cobra.Command {
	var (
		last         bool
		contextUnits int
	)
	cmd := &cobra.Command{
		Use:   "find <pattern> <file>",
		Short: "Print the offset of the first occurrence of a pattern",
		Long: `The find command prints the offset of the first occurrence of a pattern,
or of the last one with --last. Offsets are given in code units and bytes, and
in code points for UTF-8 input. Use "-" to read standard input.

Example:
  widesearch find "adaptive learning" article.txt
  widesearch find --last -e utf-16le "Title" article.utf16`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFindCmd(cmd, opts, args[0], args[1], last, contextUnits)
		},
	}
	cmd.Flags().BoolVar(&last, "last", false, "Search from the right for the last occurrence")
	cmd.Flags().IntVar(&contextUnits, "context", 20, "Code units of context to print around the match (0 to disable)")
	return cmd
}

func runFindCmd(cmd *cobra.Command, opts *globalOptions, pattern, file string, last bool, contextUnits int) error {
	in, err := opts.load(cmd, pattern, file)
	if err != nil {
		return err
	}
	searchOpts, err := opts.searchOptions()
	if err != nil {
		return err
	}

	start := time.Now()
	out := runFind(in, last, searchOpts)
	opts.logger.Debug("search finished",
		"strategy", out.strategy.String(),
		"cut", out.analysis.Cut,
		"period", out.analysis.Period,
		"periodic", out.analysis.Periodic,
		"elapsed", time.Since(start))

	res := findResult{
		Pattern:  pattern,
		Encoding: in.enc.Name(),
		Found:    out.found,
		Unit:     -1,
		Byte:     -1,
		Strategy: out.strategy.String(),
	}
	if out.found {
		res.Unit = out.unit
		res.Byte = in.haystack.ByteOffset(out.unit)
		if in.enc == codeunit.UTF8 {
			n, err := utf8.RuneCount(in.raw[:res.Byte])
			if err != nil {
				return err
			}
			res.Rune = &n
		}
		if contextUnits > 0 {
			if res.Context, err = snippet(in, out.unit, contextUnits); err != nil {
				return err
			}
		}
	}

	w := cmd.OutOrStdout()
	if opts.jsonOut {
		return printJSON(w, res)
	}
	if !res.Found {
		fmt.Fprintf(w, "%q not found\n", pattern)
		return nil
	}
	fmt.Fprintf(w, "unit %d, byte %d", res.Unit, res.Byte)
	if res.Rune != nil {
		fmt.Fprintf(w, ", code point %d", *res.Rune)
	}
	fmt.Fprintln(w)
	if res.Context != "" {
		fmt.Fprintln(w, strconv.Quote(res.Context))
	}
	return nil
}

// snippet returns the text around a match, widened by contextUnits units on
// each side. For UTF-8 the context is counted in code points so that none
// is split.
func snippet(in *input, unit, contextUnits int) (string, error) {
	width := in.enc.Width()
	from := in.haystack.ByteOffset(unit)
	to := from + in.pattern.Len()*width

	if in.enc == codeunit.UTF8 {
		lo := utf8.PrevRuneStart(in.raw, from, contextUnits)
		hi := to
		for n := 0; n < contextUnits && hi < len(in.raw); n++ {
			hi = min(hi+utf8.LeadByteLen(in.raw[hi]), len(in.raw))
		}
		return string(in.raw[lo:hi]), nil
	}

	lo := max(from-contextUnits*width, in.haystack.Skip)
	hi := min(to+contextUnits*width, len(in.raw))
	return in.enc.DecodeString(in.raw[lo:hi])
}
