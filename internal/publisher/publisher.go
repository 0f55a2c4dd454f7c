package publisher

import (
	"github.com/ElmaazouziSara/song-stream-daily/pkg/amqp"
	"github.com/ElmaazouziSara/song-stream-daily/pkg/message"
)

// Publisher announces completed days on an AMQP exchange. Consumers learn
// that a date's artifacts are ready without polling the output directory.
type Publisher struct {
	broker   amqp.MessageBroker
	exchange string
	key      string
}

func New(b amqp.MessageBroker, exchange, key string) (*Publisher, error) {
	if err := b.ExchangeDeclare(amqp.Exchange{Name: exchange, Kind: "fanout"}); err != nil {
		return nil, err
	}
	return &Publisher{broker: b, exchange: exchange, key: key}, nil
}

func (p *Publisher) PublishSummary(s message.ChartSummary) error {
	body, err := s.ToBytes()
	if err != nil {
		return err
	}
	headers := map[string]any{amqp.MessageIdHeader: amqp.SummaryMsgId}
	return p.broker.Publish(p.exchange, p.key, body, headers)
}

func (p *Publisher) Close() {
	p.broker.Close()
}
