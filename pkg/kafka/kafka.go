package kafka

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	ActivityTopic         = "library.activity"
	ActivityConsumerGroup = "library-activity"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS"`
}

func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

type EventType string

const (
	EventItemIssued          EventType = "transaction.issued"
	EventItemReturned        EventType = "transaction.returned"
	EventFineSettled         EventType = "transaction.fine_settled"
	EventMembershipCreated   EventType = "membership.created"
	EventMembershipExtended  EventType = "membership.extended"
	EventMembershipCancelled EventType = "membership.cancelled"
)

// Event is the payload written to ActivityTopic.
type Event struct {
	Type             EventType `json:"type"`
	UserID           string    `json:"userId"`
	ItemID           int64     `json:"itemId,omitempty"`
	TransactionID    int64     `json:"transactionId,omitempty"`
	MembershipNumber string    `json:"membershipNumber,omitempty"`
	Amount           float64   `json:"amount,omitempty"`
	OccurredAt       time.Time `json:"occurredAt"`
}

func Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true
	defaultCfg.Producer.Timeout = 5 * time.Second

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

func NewConsumer(cfg Config, group string) (sarama.ConsumerGroup, error) {
	defaultCfg := sarama.NewConfig()
	defaultCfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	defaultCfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}

	return sarama.NewConsumerGroup(cfg.Addrs, group, defaultCfg)
}

// Consume runs the consumer group session loop until ctx is done.
func Consume(ctx context.Context, group sarama.ConsumerGroup, handler sarama.ConsumerGroupHandler, log *zap.Logger, topics ...string) {
	for {
		if err := group.Consume(ctx, topics, handler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return
			}
			log.Error("kafka.Consume", zap.Error(err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Second):
			}
		}
		if ctx.Err() != nil {
			return
		}
	}
}
