package Sorts

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

var rg = rand.New(rand.NewSource(0))

func TestMergeSort_Small(t *testing.T) {
	var nilSlice []int
	assert.NotPanics(t, func() { MergeSort(nilSlice) })
	assert.Nil(t, nilSlice)

	empty := []int{}
	MergeSort(empty)
	assert.Empty(t, empty)

	one := []int{42}
	MergeSort(one)
	assert.Equal(t, []int{42}, one)

	two := []int{2, 1}
	MergeSort(two)
	assert.Equal(t, []int{1, 2}, two)
}

func TestMergeSort_Sample(t *testing.T) {
	nums := []int{5, 0, 1, 7, 3, 2, 4, 9, 6, 8}
	MergeSort(nums)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, nums)
}

func TestMergeSort_Duplicates(t *testing.T) {
	nums := []int{3, 1, 3, 3, -2, 1, 0, -2, 3}
	MergeSort(nums)
	assert.Equal(t, []int{-2, -2, 0, 1, 1, 3, 3, 3, 3}, nums)

	strs := []string{"b", "a", "b", "c", "a"}
	MergeSort(strs)
	assert.Equal(t, []string{"a", "a", "b", "b", "c"}, strs)
}

func TestMergeSort_Random(t *testing.T) {
	for _, n := range []int{3, 10, 17, 128, 1000, 4097} {
		a := make([]int, n)
		for i := range a {
			a[i] = rg.Intn(n/2+1) - n/4
		}
		want := slices.Clone(a)
		slices.Sort(want)
		MergeSort(a)
		assert.Equal(t, want, a, "size %d", n)
	}
	f := make([]float64, 500)
	for i := range f {
		f[i] = rg.NormFloat64()
	}
	want := slices.Clone(f)
	slices.Sort(want)
	MergeSort(f)
	assert.Equal(t, want, f)
}

func TestMergeSortFunc_Stable(t *testing.T) {
	type item struct {
		key, seq int
	}
	a := make([]item, 2000)
	for i := range a {
		a[i] = item{rg.Intn(20), i}
	}
	want := slices.Clone(a)
	slices.SortStableFunc(want, func(x, y item) int {
		return x.key - y.key
	})
	MergeSortFunc(a, func(x, y item) bool {
		return x.key < y.key
	})
	assert.Equal(t, want, a)
	for i := 1; i < len(a); i++ {
		if a[i-1].key == a[i].key && a[i-1].seq > a[i].seq {
			t.Fatalf("equal keys reordered at %d: %v before %v", i, a[i-1], a[i])
		}
	}
}

func TestMergeSortFunc_Descending(t *testing.T) {
	a := []int{4, 9, 1, 9, 0}
	MergeSortFunc(a, func(x, y int) bool { return x > y })
	assert.Equal(t, []int{9, 9, 4, 1, 0}, a)
}
