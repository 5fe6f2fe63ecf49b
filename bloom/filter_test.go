package bloom_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/fwojciec/termgate/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_AddAndTest(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	// Hash not yet added should return false
	assert.False(t, f.Test("9f86d081884c7d65"))

	f.Add("9f86d081884c7d65")

	assert.True(t, f.Test("9f86d081884c7d65"))

	// Different hash should still return false
	assert.False(t, f.Test("60303ae22b998861"))
}

func TestFilter_EstimatedCount(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.Equal(t, uint(0), f.EstimatedCount())

	f.Add("hash-1")
	f.Add("hash-2")
	f.Add("hash-3")

	count := f.EstimatedCount()
	assert.True(t, count >= 2 && count <= 4, "expected count near 3, got %d", count)
}

func TestFilter_AddIsIdempotent(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	f.Add("hash-1")
	countAfterFirst := f.EstimatedCount()

	f.Add("hash-1")
	f.Add("hash-1")

	assert.Equal(t, countAfterFirst, f.EstimatedCount())
	assert.True(t, f.Test("hash-1"))
}

func TestFilter_ConcurrentUse(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.Add(fmt.Sprintf("hash-%d", i))
			f.Test(fmt.Sprintf("hash-%d", i))
		}()
	}
	wg.Wait()

	for i := range 50 {
		assert.True(t, f.Test(fmt.Sprintf("hash-%d", i)))
	}
}

func TestFilter_FalsePositiveRate(t *testing.T) {
	t.Parallel()

	const (
		numItems   = 10000
		fpRate     = 0.01
		testProbes = 10000
	)

	f := bloom.NewFilter(numItems, fpRate)

	for i := range numItems {
		f.Add(fmt.Sprintf("added-%d", i))
	}

	falsePositives := 0
	for i := range testProbes {
		if f.Test(fmt.Sprintf("notadded-%d", i)) {
			falsePositives++
		}
	}

	// Allow up to 2% to account for statistical variance
	actualRate := float64(falsePositives) / float64(testProbes)
	assert.Less(t, actualRate, 0.02, "false positive rate %f exceeds 2%%", actualRate)
}
