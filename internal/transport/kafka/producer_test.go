package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/require"

	"service-dispatch/internal/domain"
	"service-dispatch/internal/logx"
	"service-dispatch/internal/retry"
)

type fakeProducer struct {
	sarama.SyncProducer

	sendFn func(*sarama.ProducerMessage) error
	sent   []*sarama.ProducerMessage
	closed bool
}

func (p *fakeProducer) SendMessage(msg *sarama.ProducerMessage) (int32, int64, error) {
	p.sent = append(p.sent, msg)
	if p.sendFn != nil {
		if err := p.sendFn(msg); err != nil {
			return -1, -1, err
		}
	}
	return 0, int64(len(p.sent)), nil
}

func (p *fakeProducer) Close() error {
	p.closed = true
	return nil
}

type counterStub struct{ n int }

func (c *counterStub) Inc() { c.n++ }

func testBag() domain.Bag {
	return domain.NewBag("b1", "c-1", []string{"o1", "o2"}, 12, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
}

func TestPublisher_PublishBag_EncodesAndKeysByCourier(t *testing.T) {
	t.Parallel()

	fp := &fakeProducer{}
	p := &Publisher{producer: fp, topic: "bags", retrier: retry.New(retry.Config{MaxAttempts: 1}, nil, nil), logger: logx.Nop()}

	require.NoError(t, p.PublishBag(context.Background(), testBag()))
	require.Len(t, fp.sent, 1)

	msg := fp.sent[0]
	require.Equal(t, "bags", msg.Topic)
	key, err := msg.Key.Encode()
	require.NoError(t, err)
	require.Equal(t, "c-1", string(key))

	raw, err := msg.Value.Encode()
	require.NoError(t, err)
	var dto BagEventDTO
	require.NoError(t, json.Unmarshal(raw, &dto))
	require.Equal(t, "BAG-000012", dto.Number)
	require.Equal(t, []string{"o1", "o2"}, dto.OrderIDs)

	require.NoError(t, p.Close())
	require.True(t, fp.closed)
}

func TestPublisher_PublishBag_RetriesTransientErrors(t *testing.T) {
	t.Parallel()

	calls := 0
	fp := &fakeProducer{sendFn: func(*sarama.ProducerMessage) error {
		calls++
		if calls < 3 {
			return sarama.ErrLeaderNotAvailable
		}
		return nil
	}}
	ctr := &counterStub{}
	p := &Publisher{producer: fp, topic: "bags", retrier: retry.New(retry.Config{MaxAttempts: 5}, nil, ctr), logger: logx.Nop()}

	require.NoError(t, p.PublishBag(context.Background(), testBag()))
	require.Equal(t, 3, calls)
	require.Equal(t, 2, ctr.n)
}

func TestPublisher_PublishBag_PermanentErrorNotRetried(t *testing.T) {
	t.Parallel()

	fp := &fakeProducer{sendFn: func(*sarama.ProducerMessage) error {
		return sarama.ErrMessageSizeTooLarge
	}}
	p := &Publisher{producer: fp, topic: "bags", retrier: retry.New(retry.Config{MaxAttempts: 5}, nil, nil), logger: logx.Nop()}

	err := p.PublishBag(context.Background(), testBag())
	require.ErrorIs(t, err, sarama.ErrMessageSizeTooLarge)
	require.True(t, retry.IsPermanent(err))
	require.Len(t, fp.sent, 1)
}

func TestPublisher_NilIsNoop(t *testing.T) {
	t.Parallel()

	var p *Publisher
	require.NoError(t, p.PublishBag(context.Background(), testBag()))
	require.NoError(t, p.Close())
}

func TestNewPublisher_SkipsWhenNotConfigured(t *testing.T) {
	t.Parallel()

	p, err := NewPublisher(nil, nil, "bags", nil)
	require.NoError(t, err)
	require.Nil(t, p)

	p, err = NewPublisher(nil, []string{"b:9092"}, " ", nil)
	require.NoError(t, err)
	require.Nil(t, p)
}

func TestNewPublisher_ConfiguresSyncProducer(t *testing.T) {
	orig := newSyncProducer
	t.Cleanup(func() { newSyncProducer = orig })

	var seen *sarama.Config
	newSyncProducer = func(_ []string, cfg *sarama.Config) (sarama.SyncProducer, error) {
		seen = cfg
		return &fakeProducer{}, nil
	}

	p, err := NewPublisher(nil, []string{"b:9092"}, "bags", nil)
	require.NoError(t, err)
	require.NotNil(t, p)
	require.True(t, seen.Producer.Return.Successes)
	require.Equal(t, sarama.WaitForAll, seen.Producer.RequiredAcks)
}

func TestNewPublisher_ReturnsProducerError(t *testing.T) {
	orig := newSyncProducer
	t.Cleanup(func() { newSyncProducer = orig })

	sentinel := errors.New("no brokers")
	newSyncProducer = func([]string, *sarama.Config) (sarama.SyncProducer, error) {
		return nil, sentinel
	}

	_, err := NewPublisher(nil, []string{"b:9092"}, "bags", nil)
	require.ErrorIs(t, err, sentinel)
}
