// Package cigar defines alignment edit operations and run-length coalescing.
package cigar

import "strconv"

// Op is a single per-column edit operation code.
type Op uint8

// Operation codes as emitted by the alignment kernel.
const (
	OpMatch    Op = 0 // query base equals target base
	OpMismatch Op = 1 // aligned bases differ
	OpDel      Op = 2 // target base aligned to a gap in the query
	OpIns      Op = 3 // query base aligned to a gap in the target
)

var opLetters = [4]byte{'M', 'X', 'D', 'I'}

// Byte returns the SAM-style letter for the operation ('M', 'X', 'D', 'I').
func (o Op) Byte() byte {
	if o > OpIns {
		return '?'
	}
	return opLetters[o]
}

func (o Op) String() string { return string(o.Byte()) }

// ConsumesQuery reports whether the operation advances the query position.
func (o Op) ConsumesQuery() bool { return o != OpDel }

// ConsumesTarget reports whether the operation advances the target position.
func (o Op) ConsumesTarget() bool { return o != OpIns }

// Coalesce merges maximal runs of identical adjacent operations into parallel
// (ops, lens) slices, preserving order. An empty trace yields empty slices.
func Coalesce(trace []Op) (ops []Op, lens []int) {
	if len(trace) == 0 {
		return nil, nil
	}
	ops = make([]Op, 0, 8)
	lens = make([]int, 0, 8)
	cur := trace[0]
	run := 1
	for _, op := range trace[1:] {
		if op == cur {
			run++
			continue
		}
		ops = append(ops, cur)
		lens = append(lens, run)
		cur = op
		run = 1
	}
	ops = append(ops, cur)
	lens = append(lens, run)
	return ops, lens
}

// Format renders coalesced runs as SAM-style text, e.g. "12M1X3D".
// ops and lens must have equal length; the empty alignment renders as "".
func Format(ops []Op, lens []int) string {
	if len(ops) == 0 {
		return ""
	}
	buf := make([]byte, 0, len(ops)*4)
	for i, op := range ops {
		buf = strconv.AppendInt(buf, int64(lens[i]), 10)
		buf = append(buf, op.Byte())
	}
	return string(buf)
}
