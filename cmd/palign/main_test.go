package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mkarjala/palign/align"
	"github.com/mkarjala/palign/seqio"
)

func defaultTestConfig() config {
	return config{
		match:     align.DefaultMatch,
		mismatch:  align.DefaultMismatch,
		gapOpen:   align.DefaultGapOpen,
		gapExtend: align.DefaultGapExtend,
		maxQuery:  align.DefaultMaxQueryLen,
		maxTarget: align.DefaultMaxTargetLen,
		maxBatch:  align.DefaultMaxBatch,
	}
}

func TestExecuteIdentityPairs(t *testing.T) {
	t.Parallel()

	queries := []seqio.Record{
		{ID: "q1", Seq: []byte("AAATCG")},
		{ID: "q2", Seq: []byte("ACGT")},
	}
	targets := []seqio.Record{
		{ID: "t1", Seq: []byte("AAATCG")},
		{ID: "t2", Seq: []byte("ACGT")},
	}

	var out bytes.Buffer
	if err := execute(defaultTestConfig(), queries, targets, &out); err != nil {
		t.Fatalf("execute: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines: %q", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[0], "#query\ttarget") {
		t.Fatalf("missing header line: %q", lines[0])
	}
	if want := "q1\tt1\t12\t0\t6\t0\t6\t6M"; lines[1] != want {
		t.Fatalf("row 1 mismatch:\n got %q\nwant %q", lines[1], want)
	}
	if want := "q2\tt2\t8\t0\t4\t0\t4\t4M"; lines[2] != want {
		t.Fatalf("row 2 mismatch:\n got %q\nwant %q", lines[2], want)
	}
}

func TestExecuteShapeMismatch(t *testing.T) {
	t.Parallel()

	queries := []seqio.Record{{ID: "q1", Seq: []byte("ACGT")}}
	var out bytes.Buffer
	err := execute(defaultTestConfig(), queries, nil, &out)
	if err == nil {
		t.Fatal("expected an error for mismatched record counts")
	}
	if out.Len() != 0 {
		t.Fatalf("no output expected on failure, got %q", out.String())
	}
}

func TestReadFASTAFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "reads.fa")
	content := ">r1 first read\nACGT\nACGT\n>r2\nTTTT\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write test file: %v", err)
	}

	recs, err := readFASTA(path)
	if err != nil {
		t.Fatalf("readFASTA: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].ID != "r1" || string(recs[0].Seq) != "ACGTACGT" {
		t.Fatalf("unexpected first record: %+v", recs[0])
	}
	if recs[1].ID != "r2" || string(recs[1].Seq) != "TTTT" {
		t.Fatalf("unexpected second record: %+v", recs[1])
	}
}

func TestOpenOutputFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.tsv")
	w, cleanup, err := openOutput(path)
	if err != nil {
		t.Fatalf("openOutput: %v", err)
	}
	if _, err := w.Write([]byte("hello\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	cleanup()

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(got) != "hello\n" {
		t.Fatalf("content mismatch: %q", got)
	}
}
