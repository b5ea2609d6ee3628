package notify

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHub_DeliversInSubscriptionOrder(t *testing.T) {
	var h Hub[int]
	var got []string

	h.Subscribe(func(e int) { got = append(got, "first") })
	h.Subscribe(func(e int) { got = append(got, "second") })

	h.Publish(1)
	assert.Equal(t, []string{"first", "second"}, got)
}

func TestHub_Cancel(t *testing.T) {
	var h Hub[string]
	calls := 0
	cancel := h.Subscribe(func(string) { calls++ })

	h.Publish("a")
	cancel()
	cancel()
	h.Publish("b")

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, h.Len())
}

func TestHub_SubscriberMayCancelItself(t *testing.T) {
	var h Hub[int]
	var cancel func()
	calls := 0
	cancel = h.Subscribe(func(int) {
		calls++
		cancel()
	})

	h.Publish(1)
	h.Publish(2)
	assert.Equal(t, 1, calls)
}

func TestHub_ConcurrentPublish(t *testing.T) {
	var h Hub[int]
	var mu sync.Mutex
	sum := 0
	h.Subscribe(func(e int) {
		mu.Lock()
		sum += e
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 1; i <= 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			h.Publish(n)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 5050, sum)
}
