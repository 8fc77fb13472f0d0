package internal

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeqConcat(t *testing.T) {
	assert := assert.New(t)

	seq := IterSeqConcat(slices.Values([]int{1, 2}), slices.Values([]int{}), slices.Values([]int{3}))
	assert.Equal([]int{1, 2, 3}, slices.Collect(seq))

	// Early stop.
	var got []int
	for v := range seq {
		got = append(got, v)
		if v == 2 {
			break
		}
	}
	assert.Equal([]int{1, 2}, got)
}

func TestLcm(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		values []int
		lcm    int
	}{
		{nil, 1},
		{[]int{1}, 1},
		{[]int{1, 1, 1}, 1},
		{[]int{2, 3}, 6},
		{[]int{4, 6}, 12},
		{[]int{2, 3, 1, 1, 1, 1, 1}, 6},
		{[]int{5, 0}, 5},
	}

	for _, entry := range table {
		assert.Equal(entry.lcm, Lcm(entry.values...), entry.values)
	}

	assert.Equal(6, Gcd(12, 18))
	assert.Equal(7, Gcd(7, 0))
}
