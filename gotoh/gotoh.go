// Package gotoh implements semi-global pairwise alignment with affine gap
// penalties (Gotoh recurrence) and full traceback.
//
// Boundary conditions: the query may have an unpenalized, unaligned prefix
// and suffix; the target is consumed in full. A gap run of length L costs
// GapOpen + (L-1)*GapExtend, so the first gap unit costs GapOpen alone.
package gotoh

import (
	"math"
	"sync"

	"github.com/mkarjala/palign/cigar"
)

// Scoring holds the affine-gap scoring scheme. Mismatch, GapOpen and
// GapExtend are penalty magnitudes and are applied negatively.
type Scoring struct {
	Match     int
	Mismatch  int
	GapOpen   int
	GapExtend int
}

// Result is the raw kernel output for one pair: the optimal score, the
// aligned half-open coordinate ranges, and one trace entry per aligned
// column (uncoalesced).
type Result struct {
	Score int
	QBeg  int
	QEnd  int
	SBeg  int
	SEnd  int
	Trace []cigar.Op
}

// Traceback cell encoding: two bits for the H-state predecessor plus one
// extension flag each for the E (deletion) and F (insertion) states.
const (
	fromStart byte = 0 // alignment begins here (column 0)
	fromDiag  byte = 1
	fromE     byte = 2
	fromF     byte = 3
	hMask     byte = 0x03
	eExtBit   byte = 0x04
	fExtBit   byte = 0x08
)

const negInf = math.MinInt32 / 2

// scratch holds reusable DP working memory. Pooled so concurrent
// alignments each own their buffers exclusively for one call.
type scratch struct {
	tb      []byte
	h, f    []int
	lastCol []int
}

var scratchPool = sync.Pool{New: func() any { return &scratch{} }}

func ensureBytes(v []byte, n int) []byte {
	if n <= cap(v) {
		return v[:n]
	}
	return make([]byte, n)
}

func ensureInts(v []int, n, init int) []int {
	if n <= cap(v) {
		v = v[:n]
	} else {
		v = make([]int, n)
	}
	for i := range v {
		v[i] = init
	}
	return v
}

// matches reports whether two sanitized bases align as a match.
// N is ambiguous and never matches, including against another N.
func matches(a, b byte) bool {
	return a == b && a != 'N'
}

// Align computes the optimal semi-global alignment of query against target.
// Both sequences must already be sanitized to uppercase A/C/G/T/N bytes.
//
// Tie-breaking is fixed: the H recurrence prefers diagonal over deletion
// over insertion, gap states prefer opening over extending, and among
// equally scoring alignment ends the smallest query offset wins.
func Align(query, target []byte, sc Scoring) Result {
	m, n := len(query), len(target)
	width := n + 1

	sp := scratchPool.Get().(*scratch)
	defer scratchPool.Put(sp)

	sp.tb = ensureBytes(sp.tb, (m+1)*width)
	sp.h = ensureInts(sp.h, width, 0)
	sp.f = ensureInts(sp.f, width, negInf)
	sp.lastCol = ensureInts(sp.lastCol, m+1, 0)

	tb, h, f := sp.tb, sp.h, sp.f

	// Row 0: no query consumed, so the target prefix can only be covered
	// by a deletion run.
	tb[0] = fromStart
	e := negInf
	for j := 1; j <= n; j++ {
		openE := h[j-1] - sc.GapOpen
		extE := e - sc.GapExtend
		cell := fromE
		if openE >= extE {
			e = openE
		} else {
			e = extE
			cell |= eExtBit
		}
		h[j] = e
		tb[j] = cell
	}
	sp.lastCol[0] = h[n]

	for i := 1; i <= m; i++ {
		qc := query[i-1]
		row := i * width
		diag := h[0] // H[i-1][0]
		h[0] = 0     // free query prefix
		tb[row] = fromStart
		e = negInf
		for j := 1; j <= n; j++ {
			var cell byte

			// E: target base against a gap in the query (deletion).
			openE := h[j-1] - sc.GapOpen
			extE := e - sc.GapExtend
			if openE >= extE {
				e = openE
			} else {
				e = extE
				cell |= eExtBit
			}

			// F: query base against a gap in the target (insertion).
			// h[j] still holds H[i-1][j] at this point.
			openF := h[j] - sc.GapOpen
			extF := f[j] - sc.GapExtend
			if openF >= extF {
				f[j] = openF
			} else {
				f[j] = extF
				cell |= fExtBit
			}

			sub := -sc.Mismatch
			if matches(qc, target[j-1]) {
				sub = sc.Match
			}
			best := diag + sub
			cell |= fromDiag
			if e > best {
				best = e
				cell = cell&^hMask | fromE
			}
			if f[j] > best {
				best = f[j]
				cell = cell&^hMask | fromF
			}

			diag = h[j]
			h[j] = best
			tb[row+j] = cell
		}
		sp.lastCol[i] = h[n]
	}

	// The alignment must end on the last target column; the query suffix
	// beyond it is skipped for free.
	score := sp.lastCol[0]
	qEnd := 0
	for i := 1; i <= m; i++ {
		if sp.lastCol[i] > score {
			score = sp.lastCol[i]
			qEnd = i
		}
	}

	trace := make([]cigar.Op, 0, n+qEnd)
	i, j := qEnd, n
	qBeg := 0
	state := fromDiag // means: currently in the H state
walk:
	for {
		cell := tb[i*width+j]
		switch state {
		case fromDiag:
			switch cell & hMask {
			case fromStart:
				qBeg = i
				break walk
			case fromDiag:
				op := cigar.OpMismatch
				if matches(query[i-1], target[j-1]) {
					op = cigar.OpMatch
				}
				trace = append(trace, op)
				i--
				j--
			case fromE:
				state = fromE
			case fromF:
				state = fromF
			}
		case fromE:
			trace = append(trace, cigar.OpDel)
			j--
			if cell&eExtBit == 0 {
				state = fromDiag
			}
		case fromF:
			trace = append(trace, cigar.OpIns)
			i--
			if cell&fExtBit == 0 {
				state = fromDiag
			}
		}
	}

	for a, b := 0, len(trace)-1; a < b; a, b = a+1, b-1 {
		trace[a], trace[b] = trace[b], trace[a]
	}

	return Result{
		Score: score,
		QBeg:  qBeg,
		QEnd:  qEnd,
		SBeg:  0,
		SEnd:  n,
		Trace: trace,
	}
}
