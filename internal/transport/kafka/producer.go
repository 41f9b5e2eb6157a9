package kafka

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/IBM/sarama"

	"service-dispatch/internal/domain"
	"service-dispatch/internal/logx"
	"service-dispatch/internal/retry"
)

var newSyncProducer = sarama.NewSyncProducer

// Publisher announces committed bags on a Kafka topic.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	retrier  *retry.Retrier
	logger   logx.Logger
}

// NewPublisher creates a bag publisher. It returns nil, nil when Kafka is not
// configured; a nil *Publisher drops every bag.
func NewPublisher(logger logx.Logger, brokers []string, topic string, retrier *retry.Retrier) (*Publisher, error) {
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" {
		return nil, nil
	}
	if logger == nil {
		logger = logx.Nop()
	}
	if retrier == nil {
		retrier = retry.New(retry.Config{MaxAttempts: 1}, logger, nil)
	}

	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 0

	p, err := newSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}
	return &Publisher{
		producer: p,
		topic:    topic,
		retrier:  retrier,
		logger:   logger.With(logx.String("topic", topic)),
	}, nil
}

// PublishBag sends the bag keyed by courier id.
func (p *Publisher) PublishBag(ctx context.Context, b domain.Bag) error {
	if p == nil {
		return nil
	}
	payload, err := json.Marshal(FromBag(b))
	if err != nil {
		return retry.Permanent(err)
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(b.CourierID),
		Value: sarama.ByteEncoder(payload),
	}
	return p.retrier.Do(ctx, "publish_bag", func(context.Context) error {
		partition, offset, err := p.producer.SendMessage(msg)
		if err != nil {
			return classify(err)
		}
		p.logger.Debug("bag published",
			logx.String("bag_id", b.ID),
			logx.Int("partition", int(partition)),
			logx.Any("offset", offset),
		)
		return nil
	})
}

// Close closes the underlying producer.
func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.producer.Close()
}
