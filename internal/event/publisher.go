package event

import (
	"encoding/json"
	"time"

	"github.com/bhosaleparag/tution-platform-sub000/pkg/logger"

	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

// Publisher fans quiz lifecycle events out on a RabbitMQ topic exchange. The
// event type doubles as the routing key (quiz.published, attempt.started,
// attempt.completed).
type Publisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

func NewPublisher(amqpURL, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}
	return &Publisher{conn: conn, channel: ch, exchange: exchange}, nil
}

func (p *Publisher) Publish(eventType string, payload any) error {
	body, err := json.Marshal(map[string]any{
		"type":        eventType,
		"payload":     payload,
		"occurred_at": time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	err = p.channel.Publish(p.exchange, eventType, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		logger.Log.Warn("event publish failed",
			zap.String("type", eventType),
			zap.Error(err))
		return err
	}
	logger.Log.Debug("event published", zap.String("type", eventType))
	return nil
}

func (p *Publisher) Close() {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}
