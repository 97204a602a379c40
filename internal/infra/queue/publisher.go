package queue

import (
	"context"

	"github.com/bytedance/sonic"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Publisher publishes JSON events to a topic exchange. Moderation
// outcomes and sprint workflow events go through here so offline
// consumers (mailers, activity feeds) can pick them up.
type Publisher struct {
	ch  *amqp.Channel
	log *zap.Logger
}

func NewPublisher(conn *amqp.Connection, exchange string, log *zap.Logger) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, err
	}
	return &Publisher{ch: ch, log: log}, nil
}

func (p *Publisher) PublishJSON(ctx context.Context, exchange, routingKey string, data interface{}) error {
	body, err := sonic.Marshal(data)
	if err != nil {
		return err
	}
	err = p.ch.PublishWithContext(ctx, exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		p.log.Sugar().Errorw("publish failed", "exchange", exchange, "routingKey", routingKey, "err", err)
		return err
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.ch.Close()
}
