package cigar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		trace    []Op
		wantOps  []Op
		wantLens []int
	}{
		{
			name:     "empty",
			trace:    nil,
			wantOps:  nil,
			wantLens: nil,
		},
		{
			name:     "single op",
			trace:    []Op{OpMatch},
			wantOps:  []Op{OpMatch},
			wantLens: []int{1},
		},
		{
			name:     "single run",
			trace:    []Op{OpMatch, OpMatch, OpMatch},
			wantOps:  []Op{OpMatch},
			wantLens: []int{3},
		},
		{
			name:     "alternating",
			trace:    []Op{OpMatch, OpDel, OpMatch, OpIns},
			wantOps:  []Op{OpMatch, OpDel, OpMatch, OpIns},
			wantLens: []int{1, 1, 1, 1},
		},
		{
			name:     "mixed runs",
			trace:    []Op{OpMatch, OpMatch, OpMismatch, OpDel, OpDel, OpDel, OpMatch},
			wantOps:  []Op{OpMatch, OpMismatch, OpDel, OpMatch},
			wantLens: []int{2, 1, 3, 1},
		},
		{
			name:     "repeated op separated by another",
			trace:    []Op{OpDel, OpDel, OpMatch, OpDel, OpDel},
			wantOps:  []Op{OpDel, OpMatch, OpDel},
			wantLens: []int{2, 1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ops, lens := Coalesce(tt.trace)
			assert.Equal(t, tt.wantOps, ops)
			assert.Equal(t, tt.wantLens, lens)

			// Coalescing invariants hold for every input.
			assert.Len(t, lens, len(ops))
			for i := 1; i < len(ops); i++ {
				assert.NotEqual(t, ops[i-1], ops[i], "adjacent runs must differ")
			}
			total := 0
			for _, l := range lens {
				assert.Positive(t, l)
				total += l
			}
			assert.Equal(t, len(tt.trace), total)
		})
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", Format(nil, nil))
	assert.Equal(t, "6M", Format([]Op{OpMatch}, []int{6}))
	assert.Equal(t, "12M1X3D2I", Format(
		[]Op{OpMatch, OpMismatch, OpDel, OpIns},
		[]int{12, 1, 3, 2},
	))
}

func TestOpProperties(t *testing.T) {
	t.Parallel()

	assert.Equal(t, byte('M'), OpMatch.Byte())
	assert.Equal(t, byte('X'), OpMismatch.Byte())
	assert.Equal(t, byte('D'), OpDel.Byte())
	assert.Equal(t, byte('I'), OpIns.Byte())

	assert.True(t, OpMatch.ConsumesQuery())
	assert.True(t, OpMatch.ConsumesTarget())
	assert.False(t, OpDel.ConsumesQuery())
	assert.True(t, OpDel.ConsumesTarget())
	assert.True(t, OpIns.ConsumesQuery())
	assert.False(t, OpIns.ConsumesTarget())
}
