package align

import (
	"github.com/mkarjala/palign/cigar"
	"github.com/mkarjala/palign/gotoh"
)

// Raw is the uncoalesced per-pair output of an alignment kernel: the
// optimal score, half-open aligned ranges on query and target, and one
// trace entry per aligned column.
type Raw struct {
	Score int
	QBeg  int
	QEnd  int
	SBeg  int
	SEnd  int
	Trace []cigar.Op
}

// Kernel is the pairwise alignment substrate. Inputs are sanitized
// uppercase A/C/G/T/N bytes whose lengths the caller has already checked
// against the configured capacity limits.
//
// Implementations must be pure per pair: safe for concurrent invocations
// and with tie-breaking that does not depend on how calls are batched.
type Kernel interface {
	AlignPair(query, target []byte) (Raw, error)
}

// gotohKernel backs the default Aligner with the CPU reference
// implementation.
type gotohKernel struct {
	sc gotoh.Scoring
}

func (k gotohKernel) AlignPair(query, target []byte) (Raw, error) {
	r := gotoh.Align(query, target, k.sc)
	return Raw{
		Score: r.Score,
		QBeg:  r.QBeg,
		QEnd:  r.QEnd,
		SBeg:  r.SBeg,
		SEnd:  r.SEnd,
		Trace: r.Trace,
	}, nil
}
