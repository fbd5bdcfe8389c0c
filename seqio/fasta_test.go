package seqio

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAll(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []Record
	}{
		{
			name:  "single record",
			input: ">seq1\nACGT\n",
			want:  []Record{{ID: "seq1", Seq: []byte("ACGT")}},
		},
		{
			name:  "multi-line sequence",
			input: ">seq1\nACGT\nTTAA\nGG\n",
			want:  []Record{{ID: "seq1", Seq: []byte("ACGTTTAAGG")}},
		},
		{
			name:  "multiple records",
			input: ">a\nAAAA\n>b\nCCCC\n>c\nGGGG\n",
			want: []Record{
				{ID: "a", Seq: []byte("AAAA")},
				{ID: "b", Seq: []byte("CCCC")},
				{ID: "c", Seq: []byte("GGGG")},
			},
		},
		{
			name:  "header description stripped from ID",
			input: ">chr1 Homo sapiens chromosome 1\nACGT\n",
			want:  []Record{{ID: "chr1", Seq: []byte("ACGT")}},
		},
		{
			name:  "blank lines skipped",
			input: "\n>a\nAC\n\nGT\n\n>b\nTT\n",
			want: []Record{
				{ID: "a", Seq: []byte("ACGT")},
				{ID: "b", Seq: []byte("TT")},
			},
		},
		{
			name:  "windows line endings",
			input: ">a\r\nACGT\r\n>b\r\nTTTT\r\n",
			want: []Record{
				{ID: "a", Seq: []byte("ACGT")},
				{ID: "b", Seq: []byte("TTTT")},
			},
		},
		{
			name:  "no trailing newline",
			input: ">a\nACGT",
			want:  []Record{{ID: "a", Seq: []byte("ACGT")}},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ReadAll(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadAllInvalidInput(t *testing.T) {
	t.Parallel()

	_, err := ReadAll(strings.NewReader("ACGT\n>late header\nAAAA\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid FASTA")
}

func TestReaderNextSequence(t *testing.T) {
	t.Parallel()

	r := NewReader(strings.NewReader(">a\nAC\n>b\nGT\n"))

	first, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "a", first.ID)
	assert.Equal(t, []byte("AC"), first.Seq)

	second, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "b", second.ID)
	assert.Equal(t, []byte("GT"), second.Seq)

	_, err = r.Next()
	assert.ErrorIs(t, err, io.EOF)
}
