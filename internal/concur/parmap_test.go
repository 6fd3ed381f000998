package concur_test

import (
	"fmt"
	"math"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ctron/ts-bindgen/internal/concur"
)

func TestParMap(t *testing.T) {
	mkMap := func(n int) map[int]int {
		m := map[int]int{}
		for i := 0; i < n; i++ {
			m[i] = 2 * i
		}
		return m
	}

	inputs := mkMap(1000)

	inputsBad := mkMap(1000)
	inputsBad[4] = -8

	type testCase struct {
		inputs  map[int]int
		workers int
		batch   int
	}

	increment := func(m map[int]int) (map[int]int, error) {
		out := map[int]int{}
		for k, v := range m {
			if v < 0 {
				return nil, fmt.Errorf("neg")
			}
			out[k] = v + 1
		}
		return out, nil
	}

	testCases := []testCase{
		{inputs, -1, 3},
		{inputs, 2, 3},
		{inputs, 4, 3},
		{inputsBad, -1, 3},
		{inputsBad, 2, 3},
		{inputsBad, 4, 3},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(fmt.Sprintf("w%d__b%d", tc.workers, tc.batch), func(t *testing.T) {
			var ops atomic.Uint64

			inc := func(m map[int]int) (map[int]int, error) {
				assert.LessOrEqual(t, len(m), tc.batch)
				ops.Add(1)
				return increment(m)
			}

			actual, actualErr := concur.ParMap(tc.inputs, inc, tc.workers, tc.batch)
			expect, expectErr := increment(tc.inputs)
			assert.Equal(t, int(math.Ceil(float64(len(tc.inputs))/float64(tc.batch))), int(ops.Load()))
			assert.Equal(t, expectErr, actualErr)
			assert.Equal(t, expect, actual)
		})
	}
}

func TestParMapRejectsZeroBatch(t *testing.T) {
	_, err := concur.ParMap(map[int]int{1: 1}, func(m map[int]int) (map[int]int, error) { return m, nil }, 1, 0)
	assert.Error(t, err)
}
