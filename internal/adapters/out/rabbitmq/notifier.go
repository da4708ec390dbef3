// Package rabbitmq publishes domain notifications to a RabbitMQ broker.
// Delivery is fire-and-forget: the order core treats a publish failure as a
// loggable event, never as a reason to fail the originating transaction.
package rabbitmq

import (
	"context"
	"encoding/json"
	"time"

	"dinein/internal/core/domain/model/kernel"

	"github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 10 * time.Second

// tableClearedMessage is the wire payload for a table release notification.
type tableClearedMessage struct {
	OrderID    string    `json:"order_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// CompletionNotifier publishes table-cleared notifications to a fanout
// exchange so every interested consumer (kitchen display, reporting)
// receives a copy.
type CompletionNotifier struct {
	channel  *amqp091.Channel
	exchange string
}

// NewCompletionNotifier creates a notifier bound to the given exchange.
// Declares the exchange as a durable fanout so publishing never races
// consumer setup.
func NewCompletionNotifier(channel *amqp091.Channel, exchange string) (*CompletionNotifier, error) {
	err := channel.ExchangeDeclare(
		exchange,
		"fanout",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, err
	}

	return &CompletionNotifier{
		channel:  channel,
		exchange: exchange,
	}, nil
}

// TableCleared publishes a notification that completing the given order
// released its table.
func (n *CompletionNotifier) TableCleared(ctx context.Context, orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(tableClearedMessage{
		OrderID:    orderID.String(),
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	return n.channel.PublishWithContext(
		ctx,
		n.exchange,
		"",    // routing key, ignored by fanout
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
		},
	)
}
