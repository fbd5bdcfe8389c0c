// Package seqio reads nucleotide sequences from FASTA input, with
// transparent gzip and zstd decompression.
package seqio

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Record is a single FASTA sequence.
type Record struct {
	ID  string // first whitespace-delimited token of the header line
	Seq []byte
}

// Reader parses FASTA records from an input stream.
type Reader struct {
	reader *bufio.Reader
	line   []byte // reusable buffer for reading lines
	header []byte // header line of the next record, already consumed
	eof    bool
}

// NewReader creates a FASTA reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		reader: bufio.NewReaderSize(r, 1<<20), // 1MB buffer
		line:   make([]byte, 0, 512),
	}
}

// Next reads and returns the next record. Sequence data may span multiple
// lines; blank lines are skipped. Returns io.EOF when no records remain.
func (r *Reader) Next() (*Record, error) {
	header, err := r.nextHeader()
	if err != nil {
		return nil, err
	}

	rec := &Record{ID: headerID(header)}
	seq := make([]byte, 0, 256)
	for {
		line, err := r.readLine()
		if errors.Is(err, io.EOF) {
			r.eof = true
			break
		}
		if err != nil {
			return nil, err
		}
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			// Start of the next record; stash its header.
			r.header = append(r.header[:0], line...)
			break
		}
		seq = append(seq, line...)
	}
	rec.Seq = seq
	return rec, nil
}

func (r *Reader) nextHeader() ([]byte, error) {
	if len(r.header) > 0 {
		h := r.header
		r.header = r.header[:0]
		return h, nil
	}
	if r.eof {
		return nil, io.EOF
	}
	for {
		line, err := r.readLine()
		if err != nil {
			return nil, err
		}
		if len(line) == 0 {
			continue
		}
		if line[0] != '>' {
			return nil, fmt.Errorf("invalid FASTA: expected '>' header, got %q", truncate(line))
		}
		return line, nil
	}
}

// headerID extracts the record ID from a '>' header line.
func headerID(header []byte) string {
	h := bytes.TrimSpace(header[1:])
	if i := bytes.IndexAny(h, " \t"); i >= 0 {
		h = h[:i]
	}
	return string(h)
}

func truncate(line []byte) string {
	const show = 20
	if len(line) <= show {
		return string(line)
	}
	return string(line[:show]) + "..."
}

// readLine reads a line from the input, stripping the newline.
// Reuses an internal buffer to minimize allocations.
func (r *Reader) readLine() ([]byte, error) {
	r.line = r.line[:0]

	for {
		segment, isPrefix, err := r.reader.ReadLine()
		if err != nil {
			return nil, err
		}

		r.line = append(r.line, segment...)

		if !isPrefix {
			break
		}
	}

	// Trim any trailing CR (for Windows line endings)
	r.line = bytes.TrimSuffix(r.line, []byte{'\r'})

	return r.line, nil
}

// ReadAll parses every record from r.
func ReadAll(r io.Reader) ([]Record, error) {
	fr := NewReader(r)
	var recs []Record
	for {
		rec, err := fr.Next()
		if errors.Is(err, io.EOF) {
			return recs, nil
		}
		if err != nil {
			return nil, err
		}
		recs = append(recs, *rec)
	}
}
