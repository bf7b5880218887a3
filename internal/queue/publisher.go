package queue

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/event-ticketing/internal/config"
)

const orderPaidQueueName = "order.paid"

// PublishOrderPaid publishes an OrderPaidEvent to the order.paid queue.
// Errors are logged and returned so callers can ignore failures without
// interrupting the request flow; a down broker must never fail a payment.
// Messages are marked persistent.
func PublishOrderPaid(ctx context.Context, event OrderPaidEvent) error {
	conn, err := amqp.Dial(config.AMQPURL())
	if err != nil {
		logrus.WithError(err).Warn("rabbitmq: dial failed")
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		logrus.WithError(err).Warn("rabbitmq: channel open failed")
		return err
	}
	defer func() { _ = ch.Close() }()

	// Durable so messages survive broker restarts. Declare is idempotent.
	if _, err := ch.QueueDeclare(orderPaidQueueName, true, false, false, false, nil); err != nil {
		logrus.WithError(err).Warn("rabbitmq: queue declare failed")
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		logrus.WithError(err).Warn("rabbitmq: marshal event failed")
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", orderPaidQueueName, false, false, pub); err != nil {
		logrus.WithError(err).Warn("rabbitmq: publish failed")
		return err
	}
	return nil
}
