// Package align provides batched semi-global pairwise sequence alignment
// with affine gap penalties.
//
// An Aligner computes, per (query, target) pair, the optimal score, the
// aligned coordinate ranges on both sequences, and a coalesced run-length
// CIGAR. Query prefix and suffix are free (unpenalized, unaligned); the
// target is consumed in full. Batched and single-pair execution produce
// identical results for every pair.
package align

import (
	"fmt"
	"runtime"

	"github.com/mkarjala/palign/cigar"
	"github.com/mkarjala/palign/gotoh"
)

// Default scoring and capacity parameters.
const (
	DefaultMatch        = 2
	DefaultMismatch     = 3
	DefaultGapOpen      = 5
	DefaultGapExtend    = 2
	DefaultMaxQueryLen  = 2048
	DefaultMaxTargetLen = 8192
	DefaultMaxBatch     = 512
)

// Config holds the scoring scheme and capacity limits of an Aligner.
// Mismatch, GapOpen and GapExtend are penalty magnitudes and are applied
// negatively; a gap run of length L costs GapOpen + (L-1)*GapExtend.
type Config struct {
	Match        int // score contributed by a matching column
	Mismatch     int // penalty for a mismatching column
	GapOpen      int // penalty for the first unit of a gap run
	GapExtend    int // penalty for each further gap unit
	MaxQueryLen  int // maximum accepted query length
	MaxTargetLen int // maximum accepted target length
	MaxBatch     int // pairs per dispatched mini-batch
	Workers      int // parallel alignments within a mini-batch (default: NumCPU)
}

// DefaultConfig returns the documented default configuration.
func DefaultConfig() Config {
	return Config{
		Match:        DefaultMatch,
		Mismatch:     DefaultMismatch,
		GapOpen:      DefaultGapOpen,
		GapExtend:    DefaultGapExtend,
		MaxQueryLen:  DefaultMaxQueryLen,
		MaxTargetLen: DefaultMaxTargetLen,
		MaxBatch:     DefaultMaxBatch,
	}
}

func (c Config) validate() error {
	if c.Mismatch < 0 || c.GapOpen < 0 || c.GapExtend < 0 {
		return fmt.Errorf("%w: penalties must be non-negative", ErrConfig)
	}
	if c.MaxQueryLen <= 0 {
		return fmt.Errorf("%w: MaxQueryLen must be positive, got %d", ErrConfig, c.MaxQueryLen)
	}
	if c.MaxTargetLen <= 0 {
		return fmt.Errorf("%w: MaxTargetLen must be positive, got %d", ErrConfig, c.MaxTargetLen)
	}
	if c.MaxBatch <= 0 {
		return fmt.Errorf("%w: MaxBatch must be positive, got %d", ErrConfig, c.MaxBatch)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: Workers must not be negative, got %d", ErrConfig, c.Workers)
	}
	return nil
}

// Result is the alignment of one pair. QBeg/QEnd and SBeg/SEnd are
// half-open offsets into query and target. Ops and Lens are the coalesced
// run-length CIGAR: equal length, no two adjacent Ops equal.
type Result struct {
	Score int
	QBeg  int
	QEnd  int
	SBeg  int
	SEnd  int
	Ops   []cigar.Op
	Lens  []int
}

// CIGAR renders the coalesced runs as SAM-style text, e.g. "12M1X3D".
func (r *Result) CIGAR() string { return cigar.Format(r.Ops, r.Lens) }

// Aligner computes pairwise alignments under one immutable Config.
// Safe for concurrent use.
type Aligner struct {
	cfg     Config
	workers int
	kernel  Kernel
}

// New returns an Aligner backed by the built-in CPU kernel, or an error
// wrapping ErrConfig if cfg is invalid.
func New(cfg Config) (*Aligner, error) {
	return NewWithKernel(cfg, gotohKernel{sc: gotoh.Scoring{
		Match:     cfg.Match,
		Mismatch:  cfg.Mismatch,
		GapOpen:   cfg.GapOpen,
		GapExtend: cfg.GapExtend,
	}})
}

// NewWithKernel returns an Aligner backed by a caller-supplied kernel.
func NewWithKernel(cfg Config, k Kernel) (*Aligner, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	return &Aligner{cfg: cfg, workers: workers, kernel: k}, nil
}

// Config returns the aligner's configuration.
func (a *Aligner) Config() Config { return a.cfg }

// Align aligns a single pair. It fails with ErrQueryTooLong,
// ErrTargetTooLong or ErrAlphabet on invalid input.
func (a *Aligner) Align(query, target string) (*Result, error) {
	q, t, err := a.prepare(query, target)
	if err != nil {
		return nil, err
	}
	return a.alignPair(q, t)
}

// prepare enforces capacity limits and sanitizes both sequences.
func (a *Aligner) prepare(query, target string) (q, t []byte, err error) {
	if len(query) > a.cfg.MaxQueryLen {
		return nil, nil, fmt.Errorf("query length %d exceeds maximum %d: %w",
			len(query), a.cfg.MaxQueryLen, ErrQueryTooLong)
	}
	if len(target) > a.cfg.MaxTargetLen {
		return nil, nil, fmt.Errorf("target length %d exceeds maximum %d: %w",
			len(target), a.cfg.MaxTargetLen, ErrTargetTooLong)
	}
	if q, err = sanitize(query); err != nil {
		return nil, nil, fmt.Errorf("query: %w", err)
	}
	if t, err = sanitize(target); err != nil {
		return nil, nil, fmt.Errorf("target: %w", err)
	}
	return q, t, nil
}

// alignPair is the single per-pair code path shared by Align and
// AlignBatch; the batch path invoking exactly this function is what
// guarantees batched results equal single-pair results.
func (a *Aligner) alignPair(q, t []byte) (*Result, error) {
	raw, err := a.kernel.AlignPair(q, t)
	if err != nil {
		return nil, err
	}
	ops, lens := cigar.Coalesce(raw.Trace)
	return &Result{
		Score: raw.Score,
		QBeg:  raw.QBeg,
		QEnd:  raw.QEnd,
		SBeg:  raw.SBeg,
		SEnd:  raw.SEnd,
		Ops:   ops,
		Lens:  lens,
	}, nil
}
