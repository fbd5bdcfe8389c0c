// palign aligns pairs of nucleotide sequences from two FASTA files.
//
// The i-th query record is aligned against the i-th target record
// (semi-global, affine gaps: query ends free, target consumed in full)
// and one TSV row is written per pair.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mkarjala/palign/align"
	"github.com/mkarjala/palign/seqio"
)

var version = "dev"

const (
	exitSuccess = 0
	exitError   = 1
)

type config struct {
	queryFile  string
	targetFile string
	outputFile string
	match      int
	mismatch   int
	gapOpen    int
	gapExtend  int
	maxQuery   int
	maxTarget  int
	maxBatch   int
	workers    int
}

func main() {
	os.Exit(run())
}

func run() int {
	cfg, done := parseFlags()
	if done {
		return exitSuccess
	}

	if cfg.queryFile == "" || cfg.targetFile == "" {
		fmt.Fprintln(os.Stderr, "error: both -q and -t are required")
		flag.Usage()
		return exitError
	}

	queries, err := readFASTA(cfg.queryFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s: %v\n", cfg.queryFile, err)
		return exitError
	}
	targets, err := readFASTA(cfg.targetFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s: %v\n", cfg.targetFile, err)
		return exitError
	}

	output, cleanup, err := openOutput(cfg.outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitError
	}
	defer cleanup()

	if err := execute(cfg, queries, targets, output); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitError
	}

	return exitSuccess
}

func parseFlags() (config, bool) {
	var cfg config
	var showVersion, showHelp bool

	flag.StringVar(&cfg.queryFile, "q", "", "query FASTA file (.gz/.zst supported, - for stdin)")
	flag.StringVar(&cfg.targetFile, "t", "", "target FASTA file (.gz/.zst supported)")
	flag.StringVar(&cfg.outputFile, "o", "", "output TSV file (default: stdout)")
	flag.IntVar(&cfg.match, "match", align.DefaultMatch, "match score")
	flag.IntVar(&cfg.mismatch, "mismatch", align.DefaultMismatch, "mismatch penalty")
	flag.IntVar(&cfg.gapOpen, "gap-open", align.DefaultGapOpen, "gap open penalty")
	flag.IntVar(&cfg.gapExtend, "gap-extend", align.DefaultGapExtend, "gap extend penalty")
	flag.IntVar(&cfg.maxQuery, "max-query", align.DefaultMaxQueryLen, "maximum query length")
	flag.IntVar(&cfg.maxTarget, "max-target", align.DefaultMaxTargetLen, "maximum target length")
	flag.IntVar(&cfg.maxBatch, "batch", align.DefaultMaxBatch, "pairs per mini-batch")
	flag.IntVar(&cfg.workers, "w", 0, "parallel alignments per mini-batch (default: NumCPU)")
	flag.BoolVar(&showVersion, "version", false, "show version and exit")
	flag.BoolVar(&showHelp, "h", false, "show help")

	flag.Usage = usage
	flag.Parse()

	if showHelp {
		flag.Usage()
		return cfg, true
	}

	if showVersion {
		fmt.Printf("palign version %s\n", version)
		return cfg, true
	}

	return cfg, false
}

func usage() {
	fmt.Fprintf(os.Stderr, `palign - Batched semi-global pairwise sequence alignment

Aligns the i-th query against the i-th target and writes one TSV row per
pair: query ID, target ID, score, query range, target range, CIGAR.

Usage:
  palign -q queries.fa -t targets.fa [-o results.tsv]

Options:
`)
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
Examples:
  palign -q reads.fa -t refs.fa -o out.tsv       Align two FASTA files
  palign -q reads.fa.zst -t refs.fa.gz           Compressed inputs
  palign -q reads.fa -t refs.fa -batch 64 -w 8   Tune batching
`)
}

func readFASTA(path string) ([]seqio.Record, error) {
	in, err := seqio.Open(path)
	if err != nil {
		return nil, err
	}
	defer in.Close() //nolint:errcheck // read-only input
	return seqio.ReadAll(in)
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" || path == "-" {
		bw := bufio.NewWriterSize(os.Stdout, 1<<20)
		return bw, func() { _ = bw.Flush() }, nil
	}

	f, err := os.Create(path) //nolint:gosec // CLI tool needs to create user-specified files
	if err != nil {
		return nil, nil, fmt.Errorf("cannot create output: %w", err)
	}
	bw := bufio.NewWriterSize(f, 1<<20)
	return bw, func() { _ = bw.Flush(); _ = f.Close() }, nil
}

func execute(cfg config, queries, targets []seqio.Record, w io.Writer) error {
	aligner, err := align.New(align.Config{
		Match:        cfg.match,
		Mismatch:     cfg.mismatch,
		GapOpen:      cfg.gapOpen,
		GapExtend:    cfg.gapExtend,
		MaxQueryLen:  cfg.maxQuery,
		MaxTargetLen: cfg.maxTarget,
		MaxBatch:     cfg.maxBatch,
		Workers:      cfg.workers,
	})
	if err != nil {
		return err
	}

	qs := make([]string, len(queries))
	for i, rec := range queries {
		qs[i] = string(rec.Seq)
	}
	ts := make([]string, len(targets))
	for i, rec := range targets {
		ts[i] = string(rec.Seq)
	}

	results, err := aligner.AlignBatch(qs, ts)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "#query\ttarget\tscore\tq_beg\tq_end\ts_beg\ts_end\tcigar"); err != nil {
		return err
	}
	for i, res := range results {
		_, err := fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%d\t%s\n",
			queries[i].ID, targets[i].ID,
			res.Score, res.QBeg, res.QEnd, res.SBeg, res.SEnd, res.CIGAR())
		if err != nil {
			return err
		}
	}
	return nil
}
