package events

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

const publishTimeout = 5 * time.Second

type publishChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// AMQPPublisher publishes TransactionChanged messages to a durable topic
// exchange.
type AMQPPublisher struct {
	conn         *amqp091.Connection
	channel      publishChannel
	exchangeName string
	log          *logrus.Logger
	mutex        sync.Mutex
}

func NewAMQPPublisher(url, exchangeName string, log *logrus.Logger) (*AMQPPublisher, error) {
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
		exchangeName, // name
		"topic",      // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &AMQPPublisher{
		conn:         conn,
		channel:      channel,
		exchangeName: exchangeName,
		log:          log,
	}, nil
}

func (p *AMQPPublisher) PublishTransactionChanged(ctx context.Context, msg TransactionChanged) error {
	body, err := msg.ToJSON()
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	p.mutex.Lock()
	defer p.mutex.Unlock()

	err = p.channel.PublishWithContext(
		ctx,
		p.exchangeName,
		msg.RoutingKey(),
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    msg.OccurredAt,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	p.log.WithFields(logrus.Fields{
		"exchange":      p.exchangeName,
		"routingKey":    msg.RoutingKey(),
		"transactionID": msg.TransactionID.String(),
	}).Debug("AMQPPublisher.PublishTransactionChanged")

	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	var firstErr error
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			firstErr = err
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
