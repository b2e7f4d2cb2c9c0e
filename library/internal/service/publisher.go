package service

import (
	"context"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"

	"github.com/Astemirdum/library-desk/pkg/circuit_breaker"
	"github.com/Astemirdum/library-desk/pkg/kafka"
)

// Publisher hands activity events to the broker. Failures never undo the
// operation that produced the event.
type Publisher interface {
	Publish(ctx context.Context, ev kafka.Event) error
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, kafka.Event) error { return nil }

type enqueuer struct {
	producer sarama.SyncProducer
	cb       circuit_breaker.CircuitBreaker
	topic    string
}

func NewEnqueuer(producer sarama.SyncProducer, cb circuit_breaker.CircuitBreaker) Publisher {
	return &enqueuer{
		producer: producer,
		cb:       cb,
		topic:    kafka.ActivityTopic,
	}
}

func (q *enqueuer) Publish(_ context.Context, ev kafka.Event) error {
	data, err := kafka.Marshal(ev)
	if err != nil {
		return errors.Wrap(err, "marshal event")
	}
	msg := &sarama.ProducerMessage{
		Topic: q.topic,
		Key:   sarama.StringEncoder(ev.UserID),
		Value: sarama.ByteEncoder(data),
	}
	return q.cb.Call(func() error {
		_, _, err := q.producer.SendMessage(msg)
		return err
	})
}
