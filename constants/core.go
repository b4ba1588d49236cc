package constants

import "time"

// Game Loop Timing
const (
	// IdleRenderInterval bounds the wait for the next input event; a frame is drawn on expiry
	IdleRenderInterval = 100 * time.Millisecond

	// InputQueueSize is the buffered capacity between the input poller and the game loop
	InputQueueSize = 64
)

// Feedback Queue
const (
	// FeedbackQueueSize is the fixed capacity of the feedback ring buffer (power of two)
	FeedbackQueueSize = 64

	// FeedbackBufferMask is the bitmask for fast modulo operations (64 - 1)
	FeedbackBufferMask = 63
)

// HeuristicCacheCapacity caps memoized board evaluations before the cache is reset
const HeuristicCacheCapacity = 4096
