package partition_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/katalvlaran/lvconn/partition"
)

func TestEquivalent(t *testing.T) {
	base := partition.Partition[string]{{"A", "B"}, {"C", "D"}, {"E", "F", "G"}}

	tests := []struct {
		name  string
		other partition.Partition[string]
		want  bool
	}{
		{"identical", partition.Partition[string]{{"A", "B"}, {"C", "D"}, {"E", "F", "G"}}, true},
		{"reordered", partition.Partition[string]{{"G", "E", "F"}, {"B", "A"}, {"D", "C"}}, true},
		{"merged", partition.Partition[string]{{"A", "B", "C", "D"}, {"E", "F", "G"}}, false},
		{"moved vertex", partition.Partition[string]{{"A", "B", "C"}, {"D"}, {"E", "F", "G"}}, false},
		{"swapped across", partition.Partition[string]{{"A", "C"}, {"B", "D"}, {"E", "F", "G"}}, false},
		{"duplicate vertex", partition.Partition[string]{{"A", "A"}, {"C", "D"}, {"E", "F", "G"}}, false},
		{"foreign vertex", partition.Partition[string]{{"A", "Z"}, {"C", "D"}, {"E", "F", "G"}}, false},
		{"fewer", partition.Partition[string]{{"A", "B"}, {"C", "D"}}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, partition.Equivalent(base, tc.other))
			assert.Equal(t, tc.want, partition.Equivalent(tc.other, base))
		})
	}
}

func TestEquivalent_Empty(t *testing.T) {
	assert.True(t, partition.Equivalent(partition.Partition[int]{}, nil))
	assert.False(t, partition.Equivalent(partition.Partition[int]{{1}}, nil))
}

func TestValidate(t *testing.T) {
	vertices := []string{"A", "B", "C", "D"}

	require.NoError(t, partition.Validate(partition.Partition[string]{{"A", "C"}, {"D", "B"}}, vertices))

	err := partition.Validate(partition.Partition[string]{{"A", "B"}, {"B", "C", "D"}}, vertices)
	assert.ErrorIs(t, err, partition.ErrDuplicateVertex)

	err = partition.Validate(partition.Partition[string]{{"A", "B", "C", "D", "Z"}}, vertices)
	assert.ErrorIs(t, err, partition.ErrUnknownVertex)

	err = partition.Validate(partition.Partition[string]{{"A", "B"}, {"D"}}, vertices)
	assert.ErrorIs(t, err, partition.ErrMissingVertex)
	assert.Contains(t, err.Error(), "e.g. C")

	err = partition.Validate(partition.Partition[string]{{"A", "B", "C", "D"}, {}}, vertices)
	assert.ErrorIs(t, err, partition.ErrEmptyComponent)

	require.NoError(t, partition.Validate(partition.Partition[string]{}, nil))
}

func TestQueries(t *testing.T) {
	p := partition.Partition[string]{{"A", "B", "C"}, {"D", "E"}, {"X"}}

	assert.Equal(t, 3, p.Len())
	assert.Equal(t, 6, p.Size())
	assert.True(t, p.Connected("A", "C"))
	assert.False(t, p.Connected("A", "D"))
	assert.False(t, p.Connected("A", "Q"))
	assert.True(t, p.Connected("X", "X"))

	i, ok := p.ComponentOf("E")
	assert.True(t, ok)
	assert.Equal(t, 1, i)
	_, ok = p.ComponentOf("Q")
	assert.False(t, ok)

	assert.Equal(t, map[string]int{"A": 0, "B": 0, "C": 0, "D": 1, "E": 1, "X": 2}, p.Index())

	got := p.Sets()
	require.Len(t, got, 3)
	assert.True(t, got[0].Equal(sets.New("A", "B", "C")))
	assert.True(t, got[2].Equal(sets.New("X")))
}

func TestSorted(t *testing.T) {
	p := partition.Partition[string]{{"G", "E", "F"}, {"D", "C"}, {"B", "A"}}
	got := partition.Sorted(p, func(a, b string) bool { return a < b })

	want := partition.Partition[string]{{"A", "B"}, {"C", "D"}, {"E", "F", "G"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Sorted mismatch (-want +got):\n%s", diff)
	}
	// input untouched
	assert.Equal(t, partition.Component[string]{"G", "E", "F"}, p[0])
}
