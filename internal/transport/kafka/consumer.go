package kafka

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/prometheus/client_golang/prometheus"

	"service-dispatch/internal/logx"
	"service-dispatch/internal/retry"
	"service-dispatch/internal/service/orders"
)

// HandleFunc processes a single orders.Event from Kafka
type HandleFunc func(context.Context, orders.Event) error

var newConsumerGroup = sarama.NewConsumerGroup

const (
	resultOK      = "ok"
	resultSkipped = "skipped"
	resultRetry   = "retry"
)

// Consumer wraps a Sarama consumer group and dispatches events to a handler
type Consumer struct {
	group   sarama.ConsumerGroup
	topic   string
	handler HandleFunc
	logger  logx.Logger
	events  *prometheus.CounterVec
	backoff time.Duration
}

// NewConsumer creates a new Kafka consumer. It returns nil, nil when Kafka
// is not configured. events may be nil.
func NewConsumer(logger logx.Logger, brokers []string, groupID, topic string, h HandleFunc, events *prometheus.CounterVec) (*Consumer, error) {
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" || strings.TrimSpace(groupID) == "" {
		return nil, nil
	}
	if logger == nil {
		logger = logx.Nop()
	}

	cfg := sarama.NewConfig()
	cfg.Consumer.Offsets.Initial = sarama.OffsetOldest

	group, err := newConsumerGroup(brokers, groupID, cfg)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		group:   group,
		topic:   topic,
		handler: h,
		logger:  logger.With(logx.String("topic", topic), logx.String("group", groupID)),
		events:  events,
		backoff: time.Second,
	}, nil
}

// Run consumes until ctx is done. Consume errors are logged and retried.
func (c *Consumer) Run(ctx context.Context) error {
	if c == nil {
		return nil
	}

	h := &groupHandler{c: c}

	for {
		if err := c.group.Consume(ctx, []string{c.topic}, h); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.logger.Error("kafka consume error", logx.Err(err))
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.backoff):
			}
			continue
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// Close closes the consumer group.
func (c *Consumer) Close() error {
	if c == nil {
		return nil
	}
	return c.group.Close()
}

func (c *Consumer) count(eventType, result string) {
	if c.events == nil {
		return
	}
	if eventType == "" {
		eventType = "unknown"
	}
	c.events.WithLabelValues(eventType, result).Inc()
}

type groupHandler struct{ c *Consumer }

func (h *groupHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *groupHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim marks malformed and permanently failing messages and moves on.
// Any other handler error ends the claim so the message is redelivered.
func (h *groupHandler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	c := h.c
	for msg := range claim.Messages() {
		var dto EventDTO
		if err := json.Unmarshal(msg.Value, &dto); err != nil {
			c.logger.Warn("kafka bad json", logx.Int("partition", int(msg.Partition)), logx.Err(err))
			c.count("", resultSkipped)
			sess.MarkMessage(msg, "")
			continue
		}
		ev := ToDomain(dto)
		if ev.OrderID == "" && ev.Type != orders.EventCourierUpserted {
			c.logger.Warn("kafka empty order_id", logx.String("type", ev.Type))
			c.count(ev.Type, resultSkipped)
			sess.MarkMessage(msg, "")
			continue
		}

		if err := c.handler(sess.Context(), ev); err != nil {
			if retry.IsPermanent(err) {
				c.logger.Warn("kafka handle failed, skipping message",
					logx.String("order_id", ev.OrderID),
					logx.String("type", ev.Type),
					logx.Err(err),
				)
				c.count(ev.Type, resultSkipped)
				sess.MarkMessage(msg, "")
				continue
			}
			c.logger.Error("kafka handle failed, retry",
				logx.String("order_id", ev.OrderID),
				logx.String("type", ev.Type),
				logx.Err(err),
			)
			c.count(ev.Type, resultRetry)
			return err
		}

		c.count(ev.Type, resultOK)
		sess.MarkMessage(msg, "")
	}
	return nil
}
