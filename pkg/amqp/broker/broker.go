package broker

import (
	"github.com/ElmaazouziSara/song-stream-daily/pkg/amqp"

	amqpgo "github.com/rabbitmq/amqp091-go"
)

const maxRetries = 3

type messageBroker struct {
	conn *amqpgo.Connection
	ch   *amqpgo.Channel
}

// NewBroker dials the AMQP server at the given URL and opens a channel.
func NewBroker(url string) (amqp.MessageBroker, error) {
	var conn *amqpgo.Connection
	var err error

	for retries := 0; retries < maxRetries; retries++ {
		conn, err = amqpgo.Dial(url)
		if err == nil {
			break
		}
	}
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	return &messageBroker{
		conn: conn,
		ch:   ch,
	}, nil
}

// ExchangeDeclare declares durable exchanges.
func (b *messageBroker) ExchangeDeclare(exchange ...amqp.Exchange) error {
	for _, ex := range exchange {
		if err := b.ch.ExchangeDeclare(ex.Name, ex.Kind, true, false, false, false, nil); err != nil {
			return err
		}
	}
	return nil
}

// Publish sends a message to an exchange.
func (b *messageBroker) Publish(exchange, key string, msg []byte, headers map[string]any) error {
	return b.ch.Publish(exchange, key, true, false, amqp.Publishing{
		ContentType: "application/octet-stream",
		Headers:     headers,
		Body:        msg,
	})
}

func (b *messageBroker) Close() {
	_ = b.ch.Close()
	_ = b.conn.Close()
}
