package audio

import (
	"context"
	"errors"
	"io"
	"log"
	"time"

	"github.com/lixenwraith/blockcast/constants"
	"github.com/lixenwraith/blockcast/events"
)

// Consumer drains the feedback queue into a SoundManager on a fixed tick.
// It is the queue's single consumer.
type Consumer struct {
	queue    *events.FeedbackQueue
	sounds   *SoundManager
	logger   *log.Logger
	interval time.Duration
}

// NewConsumer creates a consumer; logger may be nil
func NewConsumer(queue *events.FeedbackQueue, sounds *SoundManager, logger *log.Logger) *Consumer {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Consumer{
		queue:    queue,
		sounds:   sounds,
		logger:   logger,
		interval: constants.AudioDrainInterval,
	}
}

// Run drains until ctx is done. Events are consumed even when audio is off so
// the queue never backs up.
func (c *Consumer) Run(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Drain()
		}
	}
}

// Drain plays every queued event and returns how many were consumed
func (c *Consumer) Drain() int {
	batch := c.queue.Consume()
	for _, ev := range batch {
		if err := c.sounds.PlayFeedback(ev); err != nil {
			if errors.Is(err, ErrNotInitialized) {
				continue
			}
			c.logger.Printf("play %s: %v", ev.Kind, err)
		}
	}
	return len(batch)
}
