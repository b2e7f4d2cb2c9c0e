package handler

import (
	"context"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-desk/pkg/kafka"
)

type recordActivity func(ctx context.Context, ev kafka.Event) error

// Consumer writes activity events from the broker into the activity log.
type Consumer struct {
	record recordActivity
	log    *zap.Logger
}

func NewConsumer(record recordActivity, log *zap.Logger) *Consumer {
	return &Consumer{
		record: record,
		log:    log.Named("consumer"),
	}
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			if err := consumer.handle(session.Context(), message); err != nil {
				consumer.log.Error("record activity", zap.Error(err), zap.Int64("offset", message.Offset))
				continue
			}
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

// handle returns an error only when the message should be redelivered.
func (consumer *Consumer) handle(ctx context.Context, message *sarama.ConsumerMessage) error {
	var ev kafka.Event
	if err := kafka.Unmarshal(message.Value, &ev); err != nil {
		consumer.log.Error("skip malformed event", zap.Error(err), zap.Int64("offset", message.Offset))
		return nil
	}
	if err := consumer.record(ctx, ev); err != nil {
		return err
	}
	consumer.log.Debug("activity recorded",
		zap.String("type", string(ev.Type)),
		zap.Time("timestamp", message.Timestamp))
	return nil
}
