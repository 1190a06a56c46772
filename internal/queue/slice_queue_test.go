package queue

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliceQueue(t *testing.T) {
	assert := assert.New(t)
	t.Run("Empty Queue", func(t *testing.T) {
		q := NewSliceQueue[string](1)

		assert.True(q.IsEmpty())
		assert.Equal(0, q.Length())

		_, ok := q.Dequeue()
		assert.False(ok)

		_, ok = q.Peek()
		assert.False(ok)
	})

	t.Run("Enqueue and Dequeue", func(t *testing.T) {
		q := NewSliceQueue[string](1)

		q.Enqueue("data1")
		assert.False(q.IsEmpty())
		assert.Equal(1, q.Length())

		q.Enqueue("data2")
		assert.Equal(2, q.Length())

		item1, ok := q.Dequeue()
		assert.True(ok)
		assert.Equal("data1", item1)
		assert.Equal(1, q.Length())

		item2, ok := q.Dequeue()
		assert.True(ok)
		assert.Equal("data2", item2)
		assert.True(q.IsEmpty())

		_, ok = q.Dequeue()
		assert.False(ok)
		assert.True(q.IsEmpty())
	})

	t.Run("Peek", func(t *testing.T) {
		q := NewSliceQueue[string](1)

		q.Enqueue("data1")

		head, ok := q.Peek()
		assert.True(ok)
		assert.Equal("data1", head)
		assert.Equal(1, q.Length()) // Length should not change after peek

		q.Enqueue("data2")

		head, ok = q.Peek()
		assert.True(ok)
		assert.Equal("data1", head)
		assert.Equal(2, q.Length())

		q.Dequeue()
		head, ok = q.Peek()
		assert.True(ok)
		assert.Equal("data2", head)
		assert.Equal(1, q.Length())

		q.Dequeue()
		_, ok = q.Peek()
		assert.False(ok)
		assert.Equal(0, q.Length())
	})

	t.Run("Reset", func(t *testing.T) {
		q := NewSliceQueue[int](4)
		for i := 0; i < 4; i++ {
			q.Enqueue(i)
		}
		q.Reset()
		assert.True(q.IsEmpty())
		assert.Equal(0, q.Length())
	})

	t.Run("Concurrency", func(t *testing.T) {
		var mu sync.Mutex
		q := NewSliceQueue[string](1)

		var wg sync.WaitGroup
		for i := 0; i < 1000; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				mu.Lock()
				q.Enqueue(strconv.Itoa(i))
				mu.Unlock()
			}(i)
		}
		wg.Wait()

		assert.Equal(1000, q.Length())

		wg.Add(1000)
		for i := 0; i < 1000; i++ {
			go func() {
				defer wg.Done()
				mu.Lock()
				q.Dequeue()
				mu.Unlock()
			}()
		}
		wg.Wait()

		assert.True(q.IsEmpty())
	})
}
