package events

import (
	"sync/atomic"

	"github.com/lixenwraith/blockcast/constants"
)

// FeedbackQueue is a lock-free MPSC ring buffer for feedback events
// Thread-Safety:
//   - Push: Lock-free CAS, multiple producers OK
//   - Consume: Single consumer (audio loop)
//   - Published flags prevent reading partial writes
//
// Overflow: Oldest events overwritten when full
type FeedbackQueue struct {
	events    [constants.FeedbackQueueSize]FeedbackEvent
	published [constants.FeedbackQueueSize]atomic.Bool // True = slot fully written
	head      atomic.Uint64                            // Read index
	tail      atomic.Uint64                            // Write index
}

func NewFeedbackQueue() *FeedbackQueue {
	return &FeedbackQueue{}
}

// Push adds event using lock-free CAS with published flags pattern
func (q *FeedbackQueue) Push(event FeedbackEvent) {
	for {
		currentTail := q.tail.Load()
		nextTail := currentTail + 1

		if q.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & constants.FeedbackBufferMask

			q.events[idx] = event
			q.published[idx].Store(true) // MUST be after write

			// Advance head if overwriting unread events
			currentHead := q.head.Load()
			if nextTail-currentHead > constants.FeedbackQueueSize {
				q.head.CompareAndSwap(currentHead, nextTail-constants.FeedbackQueueSize)
			}
			return
		}
	}
}

// Consume returns all pending events in FIFO order and advances head
func (q *FeedbackQueue) Consume() []FeedbackEvent {
	for {
		loadedHead := q.head.Load()
		currentTail := q.tail.Load()

		if currentTail == loadedHead {
			return nil
		}

		currentHead := loadedHead
		available := currentTail - currentHead
		if available > constants.FeedbackQueueSize {
			// Producer lapped the reader; skip to the oldest retained slot
			available = constants.FeedbackQueueSize
			currentHead = currentTail - constants.FeedbackQueueSize
		}

		result := make([]FeedbackEvent, 0, available)
		for i := uint64(0); i < available; i++ {
			idx := (currentHead + i) & constants.FeedbackBufferMask

			if !q.published[idx].Load() {
				break // Writer incomplete
			}

			result = append(result, q.events[idx])
			q.published[idx].Store(false)
		}

		newHead := currentHead + uint64(len(result))
		if q.head.CompareAndSwap(loadedHead, newHead) {
			if len(result) == 0 {
				return nil
			}
			return result
		}
	}
}

// Len returns the number of unread events
func (q *FeedbackQueue) Len() int {
	n := q.tail.Load() - q.head.Load()
	if n > constants.FeedbackQueueSize {
		n = constants.FeedbackQueueSize
	}
	return int(n)
}
