package notify

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

const defaultExchange = "foodfest_events"

// AMQPSink publishes order events to a RabbitMQ fanout exchange so external
// dashboards can subscribe. Publish failures are logged and swallowed;
// notification delivery must never fail the triggering operation. Emit
// blocks for up to the publish timeout when the broker misbehaves, so wire
// it through Async rather than calling it from a request handler directly.
type AMQPSink struct {
	conn     *amqp091.Connection
	channel  *amqp091.Channel
	exchange string
}

func NewAMQPSink(url string) (*AMQPSink, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	err = channel.ExchangeDeclare(
		defaultExchange,
		"fanout",
		false, // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &AMQPSink{conn: conn, channel: channel, exchange: defaultExchange}, nil
}

func (s *AMQPSink) Emit(event string, payload interface{}) {
	body, err := json.Marshal(Event{Name: event, Payload: payload, At: time.Now()})
	if err != nil {
		log.Println("[NOTIFY] [ERROR] marshal event:", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = s.channel.PublishWithContext(
		ctx,
		s.exchange,
		"", // fanout ignores routing keys
		false,
		false,
		amqp091.Publishing{
			ContentType: "application/json",
			Body:        body,
			Timestamp:   time.Now(),
		},
	)
	if err != nil {
		log.Println("[NOTIFY] [ERROR] publish event:", err)
	}
}

func (s *AMQPSink) Close() error {
	if err := s.channel.Close(); err != nil {
		s.conn.Close()
		return err
	}
	return s.conn.Close()
}
