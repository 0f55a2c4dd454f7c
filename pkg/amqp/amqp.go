package amqp

import (
	amqpgo "github.com/rabbitmq/amqp091-go"
)

// MessageIdHeader carries the message type so consumers can dispatch without
// decoding the body.
const MessageIdHeader = "x-message-id"

// SummaryMsgId identifies a ChartSummary payload.
const SummaryMsgId = uint8(1)

type Publishing = amqpgo.Publishing

type Exchange struct {
	Name string
	Kind string
}

// MessageBroker is the slice of the broker surface the publisher uses.
type MessageBroker interface {
	ExchangeDeclare(exchange ...Exchange) error
	Publish(exchange, key string, msg []byte, headers map[string]any) error
	Close()
}
