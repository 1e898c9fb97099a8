// Package buffer provides the queue behind channel-based event observers.
package buffer

import (
	"sync"
)

// Unbounded provides non-blocking sends with unlimited buffering.
// Producers (the agent run goroutine) never wait for consumers (UI goroutines).
//
// Usage:
//
//	buf := buffer.NewUnbounded[reactagent.Event]()
//	go func() {
//	    for item := range buf.Receive() {
//	        render(item)
//	    }
//	}()
//	buf.Send(event) // never blocks
//	buf.Close()     // receive channel closes once drained
type Unbounded[T any] struct {
	mu     sync.Mutex
	queue  []T
	head   int
	closed bool

	// wake holds at most one pending wake-up for the pump goroutine.
	wake chan struct{}
	out  chan T
}

// NewUnbounded creates a new unbounded buffer and starts its pump goroutine.
func NewUnbounded[T any]() *Unbounded[T] {
	b := &Unbounded[T]{
		queue: make([]T, 0, 32),
		wake:  make(chan struct{}, 1),
		out:   make(chan T),
	}
	go b.pump()
	return b
}

// pump moves queued items to the output channel until closed and drained.
func (b *Unbounded[T]) pump() {
	defer close(b.out)
	for {
		item, ok, done := b.next()
		if done {
			return
		}
		if !ok {
			<-b.wake
			continue
		}
		b.out <- item
	}
}

// next pops the oldest item. done is true once the buffer is closed and empty.
func (b *Unbounded[T]) next() (item T, ok bool, done bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.head == len(b.queue) {
		// Reuse the backing array once fully consumed.
		b.queue = b.queue[:0]
		b.head = 0
		return item, false, b.closed
	}

	item = b.queue[b.head]
	var zero T
	b.queue[b.head] = zero
	b.head++
	return item, true, false
}

func (b *Unbounded[T]) signal() {
	select {
	case b.wake <- struct{}{}:
	default:
	}
}

// Send adds an item to the buffer. It never blocks and is safe from any goroutine.
// Items sent after Close are dropped.
func (b *Unbounded[T]) Send(item T) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.queue = append(b.queue, item)
	b.mu.Unlock()
	b.signal()
}

// Receive returns the channel items are delivered on, in send order.
func (b *Unbounded[T]) Receive() <-chan T {
	return b.out
}

// Close stops accepting items. Pending items are still delivered before Receive closes.
// It's safe to call multiple times.
func (b *Unbounded[T]) Close() {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()
	b.signal()
}

// Len returns the number of items not yet handed to the receive channel.
func (b *Unbounded[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.queue) - b.head
}
