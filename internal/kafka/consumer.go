package kafka

import (
	"context"
	"log"

	"github.com/segmentio/kafka-go"
)

// Handler must return nil only when processing succeeded and the
// offset may be committed.
type Handler func(ctx context.Context, m kafka.Message) error

type Consumer struct {
	r       *kafka.Reader
	workers int
	logger  *log.Logger
	commit  func(ctx context.Context, msgs ...kafka.Message) error
}

func NewConsumer(brokers []string, group, topic string, workers int, logger *log.Logger) *Consumer {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		GroupID:        group,
		Topic:          topic,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: 0, // manual commit
	})
	if workers <= 0 {
		workers = 1
	}
	return &Consumer{r: r, workers: workers, logger: logger, commit: r.CommitMessages}
}

// Start reads messages and feeds a worker pool until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context, h Handler) error {
	defer c.r.Close()

	jobs := make(chan kafka.Message, 1024)

	for i := 0; i < c.workers; i++ {
		go func() {
			for m := range jobs {
				c.process(ctx, m, h)
			}
		}()
	}

	for {
		m, err := c.r.ReadMessage(ctx)
		if err != nil {
			close(jobs)
			select {
			case <-ctx.Done():
				return nil
			default:
				return err
			}
		}
		select {
		case jobs <- m:
		case <-ctx.Done():
			close(jobs)
			return nil
		}
	}
}

// process runs the handler and commits the offset only on success.
// Failures are logged in the worker itself, so a burst of them can
// never back up into the read loop.
func (c *Consumer) process(ctx context.Context, m kafka.Message, h Handler) {
	if err := h(ctx, m); err != nil {
		c.logger.Printf("handle %s/%d@%d: %v", m.Topic, m.Partition, m.Offset, err)
		return
	}
	if err := c.commit(ctx, m); err != nil {
		c.logger.Printf("commit %s/%d@%d: %v", m.Topic, m.Partition, m.Offset, err)
	}
}
