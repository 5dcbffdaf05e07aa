package fn_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-fnkit/fn"
)

func TestCombinators(t *testing.T) {
	assert.Equal(t, 7, fn.Identity(7))
	assert.True(t, fn.True[int]())
	assert.False(t, fn.False[string]("x", "y"))
	assert.Equal(t, "k", fn.Constant[int]("k")(1, 2, 3))
	assert.Equal(t, "HELLO", fn.Pipe("hello", strings.ToUpper))
	fn.Noop(1, 2)

	add := func(a, b int) int { return a + b }
	add10 := fn.Partial(add, 10)
	assert.Equal(t, 15, add10(5))
}

func TestOnce(t *testing.T) {
	calls := 0
	load := fn.Once(func() int {
		calls++
		return 42
	})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			load()
		}()
	}
	wg.Wait()
	assert.Equal(t, 42, load())
	assert.Equal(t, 1, calls)
}

func TestMemoize(t *testing.T) {
	calls := map[int]int{}
	square := fn.Memoize(func(n int) int {
		calls[n]++
		return n * n
	})

	assert.Equal(t, 9, square(3))
	assert.Equal(t, 9, square(3))
	assert.Equal(t, 16, square(4))
	assert.Equal(t, map[int]int{3: 1, 4: 1}, calls)
}

func TestFixedPoint(t *testing.T) {
	fact := fn.FixedPoint(func(self func(int) int) func(int) int {
		return func(n int) int {
			if n <= 1 {
				return 1
			}
			return n * self(n-1)
		}
	})
	assert.Equal(t, 120, fact(5))
	assert.Equal(t, 1, fact(0))
}
