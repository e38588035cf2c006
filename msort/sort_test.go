package msort

import (
	"testing"

	"github.com/forestrie/go-listsort/chain"
	"github.com/forestrie/go-listsort/listtesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSort(t *testing.T) {
	type args struct {
		values []int
		lo, hi int
	}
	tests := []struct {
		name string
		args args
		want []int
	}{
		{"single element sorts to itself", args{[]int{5}, 0, 0}, []int{5}},
		{"two elements out of order", args{[]int{3, 1}, 0, 1}, []int{1, 3}},
		{"two elements in order", args{[]int{1, 3}, 0, 1}, []int{1, 3}},
		{"six elements", args{[]int{5, 3, 8, 1, 9, 2}, 0, 5}, []int{1, 2, 3, 5, 8, 9}},
		{"duplicates preserved", args{[]int{4, 4, 4}, 0, 2}, []int{4, 4, 4}},
		{"negative values", args{[]int{0, -7, 3, -1}, 0, 3}, []int{-7, -1, 0, 3}},
		{"sub range only", args{[]int{9, 4, 1, 3, 2, 0}, 1, 4}, []int{9, 1, 2, 3, 4, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := chain.NewArena()
			head, err := chain.Build(a, tt.args.values)
			require.NoError(t, err)

			head, err = Sort(a, head, tt.args.lo, tt.args.hi)
			require.NoError(t, err)
			assert.Equal(t, tt.want, chain.Values(a, head))

			// every pre-merge chain has been released
			assert.Equal(t, len(tt.args.values), a.Live())

			require.NoError(t, chain.Destroy(a, head))
			assert.Equal(t, a.Allocs(), a.Releases())
		})
	}
}

func TestSortEmpty(t *testing.T) {
	a := chain.NewArena()
	head, err := chain.Build(a, nil)
	require.NoError(t, err)

	head, err = Sort(a, head, 0, -1)
	require.NoError(t, err)
	assert.Equal(t, chain.NoRef, head)
	assert.Equal(t, []int{}, chain.Values(a, head))
	assert.Equal(t, uint64(0), a.Allocs())

	head, err = SortAll(a, head)
	require.NoError(t, err)
	assert.Equal(t, chain.NoRef, head)
	assert.Equal(t, uint64(0), a.Allocs())
}

func TestSortTerminalRangeDoesNotAllocate(t *testing.T) {
	a := chain.NewArena()
	head, err := chain.Build(a, []int{5})
	require.NoError(t, err)

	got, err := Sort(a, head, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, head, got)
	assert.Equal(t, uint64(1), a.Allocs())
}

func TestSortInvalidBounds(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		lo, hi int
	}{
		{"negative lo", []int{1, 2, 3}, -1, 2},
		{"hi past the end", []int{1, 2, 3}, 0, 3},
		{"lo beyond hi+1", []int{1, 2, 3}, 2, 0},
		{"non empty range on the empty chain", nil, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := chain.NewArena()
			head, err := chain.Build(a, tt.values)
			require.NoError(t, err)
			allocs := a.Allocs()

			got, err := Sort(a, head, tt.lo, tt.hi)
			require.ErrorIs(t, err, ErrInvalidBounds)
			assert.Equal(t, head, got)
			assert.Equal(t, allocs, a.Allocs())
			assert.Equal(t, len(tt.values), len(chain.Values(a, got)))
		})
	}
}

func TestSortRandomised(t *testing.T) {
	tc := listtesting.NewTestContext(t, listtesting.TestConfig{TestLabelPrefix: "TestSortRandomised"})

	for _, n := range []int{0, 1, 2, 3, 7, 16, 33, 100} {
		a := chain.NewArena()
		values := tc.RandomValues(n, 100)

		head, err := chain.Build(a, values)
		require.NoError(t, err)
		head, err = SortAll(a, head)
		require.NoError(t, err)

		got := chain.Values(a, head)
		tc.RequireNonDecreasing(got)
		// a permutation of the input: same multiset
		assert.Equal(t, listtesting.Sorted(values), got)

		require.NoError(t, chain.Destroy(a, head))
		tc.RequireBalanced(a)
	}
}

func TestSortIdempotent(t *testing.T) {
	a := chain.NewArena()
	head, err := chain.Build(a, []int{6, 2, 2, 9, 0, 5, 1})
	require.NoError(t, err)

	head, err = SortAll(a, head)
	require.NoError(t, err)
	first := chain.Values(a, head)

	head, err = SortAll(a, head)
	require.NoError(t, err)
	assert.Equal(t, first, chain.Values(a, head))

	require.NoError(t, chain.Destroy(a, head))
	assert.Equal(t, 0, a.Live())
}

func TestSortIsStable(t *testing.T) {
	// key in the high bits, input position in the low byte
	tag := func(key, pos int) int { return key<<8 | pos }
	keys := []int{3, 1, 3, 2, 1, 3, 2, 1}

	values := make([]int, len(keys))
	for i, k := range keys {
		values[i] = tag(k, i)
	}

	a := chain.NewArena()
	head, err := chain.Build(a, values)
	require.NoError(t, err)

	head, err = SortAll(a, head, WithKey(func(v int) int { return v >> 8 }))
	require.NoError(t, err)

	want := []int{
		tag(1, 1), tag(1, 4), tag(1, 7),
		tag(2, 3), tag(2, 6),
		tag(3, 0), tag(3, 2), tag(3, 5),
	}
	assert.Equal(t, want, chain.Values(a, head))

	require.NoError(t, chain.Destroy(a, head))
	assert.Equal(t, 0, a.Live())
}

func TestSortExhaustedReturnsOwnedChain(t *testing.T) {
	values := []int{5, 3, 8, 1, 9, 2}

	// every merge needs a full copy alongside the original
	a := chain.NewArena(chain.WithCapacity(2*len(values) - 1))
	head, err := chain.Build(a, values)
	require.NoError(t, err)

	head, err = SortAll(a, head)
	require.ErrorIs(t, err, chain.ErrArenaExhausted)

	assert.ElementsMatch(t, values, chain.Values(a, head))
	assert.Equal(t, len(values), a.Live())

	require.NoError(t, chain.Destroy(a, head))
	assert.Equal(t, 0, a.Live())
}
