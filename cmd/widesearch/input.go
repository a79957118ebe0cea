package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mhr3/widesearch/codeunit"
)

// input is a pattern and a haystack decoded into the same encoding.
type input struct {
	enc      codeunit.Encoding
	raw      []byte
	haystack codeunit.Buffer
	pattern  codeunit.Buffer
}

// readSource reads the named file, or standard input for "-".
func readSource(cmd *cobra.Command, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(name)
}

func (o *globalOptions) load(cmd *cobra.Command, pattern, file string) (*input, error) {
	enc, err := o.lookupEncoding()
	if err != nil {
		return nil, err
	}

	raw, err := readSource(cmd, file)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	haystack, err := enc.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s as %s: %w", file, enc, err)
	}

	encoded, err := enc.Encode(pattern)
	if err != nil {
		return nil, fmt.Errorf("pattern cannot be represented in %s: %w", enc, err)
	}
	// The pattern is already valid, and a leading U+FEFF in it is text.
	pat := enc.Units(encoded)
	if pat.Len() == 0 {
		return nil, fmt.Errorf("pattern must not be empty")
	}

	o.logger.Debug("loaded input",
		"file", file,
		"encoding", enc.Name(),
		"bytes", len(raw),
		"units", haystack.Len(),
		"pattern_units", pat.Len())
	return &input{enc: enc, raw: raw, haystack: haystack, pattern: pat}, nil
}
