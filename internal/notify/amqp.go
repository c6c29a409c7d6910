package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"
)

const publishTimeout = 5 * time.Second

type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

// AMQPMailer publishes messages to a RabbitMQ queue that is consumed
// by a separate mail delivery worker.
//
// Publishing is guarded by a circuit breaker so that an unavailable
// broker does not slow down every request that fires an alert.
type AMQPMailer struct {
	conn     *amqp091.Connection
	channel  publisher
	exchange string
	queue    string
	breaker  *gobreaker.CircuitBreaker
}

// NewAMQPMailer connects to the broker and declares the exchange and
// the queue for alert mails.
func NewAMQPMailer(url, exchange, queue string) (*AMQPMailer, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange, // name
		"direct", // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	_, err = channel.QueueDeclare(
		queue, // name
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	// The routing key is the queue name for the direct exchange
	err = channel.QueueBind(queue, queue, exchange, false, nil)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	mailer := newAMQPMailer(channel, exchange, queue)
	mailer.conn = conn
	return mailer, nil
}

func newAMQPMailer(channel publisher, exchange, queue string) *AMQPMailer {
	settings := gobreaker.Settings{
		Name:     "amqp-mailer",
		Interval: 60 * time.Second,
		Timeout:  30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state changed")
		},
	}

	return &AMQPMailer{
		channel:  channel,
		exchange: exchange,
		queue:    queue,
		breaker:  gobreaker.NewCircuitBreaker(settings),
	}
}

func (m *AMQPMailer) Send(ctx context.Context, msg Message) error {
	if err := validate(msg); err != nil {
		return err
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	_, err = m.breaker.Execute(func() (any, error) {
		ctx, cancel := context.WithTimeout(ctx, publishTimeout)
		defer cancel()

		return nil, m.channel.PublishWithContext(
			ctx,
			m.exchange, // exchange
			m.queue,    // routing key
			false,      // mandatory
			false,      // immediate
			amqp091.Publishing{
				ContentType:  "application/json",
				DeliveryMode: amqp091.Persistent,
				Timestamp:    time.Now(),
				Body:         body,
			},
		)
	})
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	log.Debug().Str("to", msg.To).Str("exchange", m.exchange).Str("queue", m.queue).Msg("published alert mail")
	return nil
}

// Close closes the connection to the broker.
func (m *AMQPMailer) Close() error {
	if m.conn != nil {
		return m.conn.Close()
	}
	return nil
}
