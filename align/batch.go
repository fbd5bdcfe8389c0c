package align

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// AlignBatch aligns queries[i] against targets[i] for every i and returns
// the results in input order.
//
// The call fails with ErrShapeMismatch before any work if the two slices
// differ in length. Every pair is validated and sanitized before any
// dispatch; a pair exceeding a capacity limit or containing a disallowed
// symbol fails the whole call with a PairError naming its index, and no
// partial results are returned.
//
// Pairs are partitioned into consecutive mini-batches of at most
// Config.MaxBatch. Mini-batches are dispatched one at a time; pairs
// within a mini-batch run in parallel, each through the same per-pair
// function the single Align call uses, so for every pair the batched
// result is identical to the single-pair result.
func (a *Aligner) AlignBatch(queries, targets []string) ([]*Result, error) {
	if len(queries) != len(targets) {
		return nil, fmt.Errorf("%d queries vs %d targets: %w",
			len(queries), len(targets), ErrShapeMismatch)
	}
	n := len(queries)
	if n == 0 {
		return []*Result{}, nil
	}

	// Pre-flight: reject any invalid pair before dispatching work.
	qs := make([][]byte, n)
	ts := make([][]byte, n)
	for i := range queries {
		q, t, err := a.prepare(queries[i], targets[i])
		if err != nil {
			return nil, &PairError{Index: i, Err: err}
		}
		qs[i], ts[i] = q, t
	}

	results := make([]*Result, n)
	for beg := 0; beg < n; beg += a.cfg.MaxBatch {
		end := min(beg+a.cfg.MaxBatch, n)
		if err := a.dispatch(beg, qs[beg:end], ts[beg:end], results[beg:end]); err != nil {
			return nil, err
		}
	}
	return results, nil
}

// dispatch runs one mini-batch. Each pair writes into its own slot of
// out, so input order is preserved by construction.
func (a *Aligner) dispatch(base int, qs, ts [][]byte, out []*Result) error {
	var g errgroup.Group
	g.SetLimit(a.workers)
	for i := range qs {
		g.Go(func() error {
			res, err := a.alignPair(qs[i], ts[i])
			if err != nil {
				return &PairError{Index: base + i, Err: err}
			}
			out[i] = res
			return nil
		})
	}
	return g.Wait()
}
