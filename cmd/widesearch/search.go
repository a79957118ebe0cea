package main

import (
	"github.com/mhr3/widesearch/codeunit"
	"github.com/mhr3/widesearch/fastsearch"
)

// outcome is the result of running one search over an input.
type outcome struct {
	unit     int
	found    bool
	count    int
	strategy fastsearch.Strategy
	analysis fastsearch.Factorization
}

func findIn[T fastsearch.CodeUnit](h, p []T, last bool, opts fastsearch.Options) outcome {
	s := fastsearch.NewSearcherWithOptions(p, opts)
	i, ok := s.Find(h, last)
	return outcome{unit: i, found: ok, strategy: s.Strategy(len(h)), analysis: s.Analyze(last)}
}

func countIn[T fastsearch.CodeUnit](h, p []T, maxCount int, last bool, opts fastsearch.Options) outcome {
	s := fastsearch.NewSearcherWithOptions(p, opts)
	return outcome{count: s.Count(h, maxCount, last), strategy: s.Strategy(len(h)), analysis: s.Analyze(last)}
}

// runFind dispatches on the code unit width of in.
func runFind(in *input, last bool, opts fastsearch.Options) outcome {
	h, p := in.haystack, in.pattern
	switch in.enc.Width() {
	case 2:
		return findIn(h.U16, p.U16, last, opts)
	case 4:
		return findIn(h.U32, p.U32, last, opts)
	}
	return findIn(h.U8, p.U8, last, opts)
}

func runCount(in *input, maxCount int, last bool, opts fastsearch.Options) outcome {
	h, p := in.haystack, in.pattern
	switch in.enc.Width() {
	case 2:
		return countIn(h.U16, p.U16, maxCount, last, opts)
	case 4:
		return countIn(h.U32, p.U32, maxCount, last, opts)
	}
	return countIn(h.U8, p.U8, maxCount, last, opts)
}

func analyzeUnits(b codeunit.Buffer, haystackLen int, opts fastsearch.Options) (fwd, rev fastsearch.Factorization, strategy fastsearch.Strategy) {
	switch b.Encoding.Width() {
	case 2:
		s := fastsearch.NewSearcherWithOptions(b.U16, opts)
		return s.Analyze(false), s.Analyze(true), s.Strategy(haystackLen)
	case 4:
		s := fastsearch.NewSearcherWithOptions(b.U32, opts)
		return s.Analyze(false), s.Analyze(true), s.Strategy(haystackLen)
	}
	s := fastsearch.NewSearcherWithOptions(b.U8, opts)
	return s.Analyze(false), s.Analyze(true), s.Strategy(haystackLen)
}
