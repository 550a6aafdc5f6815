// Package kafka wraps segmentio/kafka-go with the small async
// producer and worker-pool consumer this service needs.
package kafka

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
)

// Producer buffers messages in a channel and writes them from a single
// goroutine, so publishers never block on the broker.
type Producer struct {
	w       *kafka.Writer
	inbox   chan kafka.Message
	closeCh chan struct{}
	logger  *log.Logger
	write   func(kafka.Message)

	mu     sync.Mutex
	closed bool
}

func NewProducer(brokers []string, topic string, buf int, logger *log.Logger) *Producer {
	p := &Producer{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			Async:        true,
		},
		inbox:   make(chan kafka.Message, buf),
		closeCh: make(chan struct{}),
		logger:  logger,
	}
	p.write = p.writeKafka
	return p
}

// Start runs the write loop. It keeps accepting messages until Close
// is called, independent of any request or signal context, so requests
// still draining during shutdown can publish safely.
func (p *Producer) Start() {
	go func() {
		for m := range p.inbox {
			p.write(m)
		}
		_ = p.w.Close()
		close(p.closeCh)
	}()
}

func (p *Producer) writeKafka(m kafka.Message) {
	if err := p.w.WriteMessages(context.Background(), m); err != nil {
		p.logger.Printf("kafka write: %v", err)
	}
}

// Publish enqueues a message. It only blocks when the buffer is full.
// After Close the message is dropped with a log line instead of
// panicking.
func (p *Producer) Publish(key, value []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		p.logger.Printf("kafka publish after close: message dropped")
		return
	}
	p.inbox <- kafka.Message{Key: key, Value: value, Time: time.Now()}
}

// Close stops intake, flushes whatever is buffered and waits for the
// write loop to exit. Safe to call more than once.
func (p *Producer) Close() {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.inbox)
	}
	p.mu.Unlock()
	<-p.closeCh
}
