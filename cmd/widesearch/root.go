package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mhr3/widesearch/codeunit"
	"github.com/mhr3/widesearch/fastsearch"
)

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	encoding string
	strategy string
	jsonOut  bool
	verbose  bool
	tuning   fastsearch.Tuning

	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{
		tuning: fastsearch.DefaultTuning(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	cmd := &cobra.Command{
		Use:   "widesearch",
		Short: "Search encoded text files for a literal pattern",
		Long: `widesearch locates literal patterns in text stored as 8, 16 or 32-bit
code units. The pattern is given as UTF-8 on the command line and converted to
the file's encoding before searching, so offsets are reported in code units of
that encoding.`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if opts.verbose {
				level = slog.LevelDebug
			}
			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.encoding, "encoding", "e", "utf-8", "Encoding of the input file")
	flags.StringVar(&opts.strategy, "strategy", "auto", "Matching strategy: auto, single, default, twoway or adaptive")
	flags.BoolVar(&opts.jsonOut, "json", false, "Output in JSON format")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log diagnostics to stderr")
	flags.IntVar(&opts.tuning.SmallHaystack, "small-haystack", opts.tuning.SmallHaystack, "Haystacks shorter than this always use the default scan")
	flags.IntVar(&opts.tuning.MediumHaystack, "medium-haystack", opts.tuning.MediumHaystack, "Haystacks shorter than this use the default scan for short patterns")
	flags.IntVar(&opts.tuning.ShortPattern, "short-pattern", opts.tuning.ShortPattern, "Pattern length below which medium haystacks use the default scan")
	flags.IntVar(&opts.tuning.TinyPattern, "tiny-pattern", opts.tuning.TinyPattern, "Patterns shorter than this always use the default scan")
	flags.IntVar(&opts.tuning.AdaptiveMinRemaining, "adaptive-min-remaining", opts.tuning.AdaptiveMinRemaining, "Units left in the haystack required to switch to two-way")

	cmd.AddCommand(newFindCmd(opts), newCountCmd(opts), newAnalyzeCmd(opts), newEncodingsCmd(opts))
	return cmd
}

func execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func (o *globalOptions) searchOptions() (fastsearch.Options, error) {
	s, err := fastsearch.ParseStrategy(o.strategy)
	if err != nil {
		return fastsearch.Options{}, err
	}
	return fastsearch.Options{Strategy: s, Tuning: o.tuning}, nil
}

func (o *globalOptions) lookupEncoding() (codeunit.Encoding, error) {
	return codeunit.Lookup(o.encoding)
}

// printJSON writes v to w as indented JSON.
func printJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func newEncodingsCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "encodings",
		Short: "List supported encodings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			type row struct {
				Name  string `json:"name"`
				Width int    `json:"width"`
			}
			var rows []row
			for _, e := range codeunit.Encodings() {
				rows = append(rows, row{Name: e.Name(), Width: e.Width()})
			}
			if opts.jsonOut {
				return printJSON(cmd.OutOrStdout(), rows)
			}
			for _, r := range rows {
				fmt.Fprintf(cmd.OutOrStdout(), "%-14s %d-byte units\n", r.Name, r.Width)
			}
			return nil
		},
	}
}
