package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
	"github.com/sangkips/customer-directory-api/internal/domains/customers"
	"github.com/sangkips/customer-directory-api/internal/queue"
)

// Consumer is the delivery source the worker drains.
type Consumer interface {
	Consume() (<-chan amqp091.Delivery, error)
}

type Worker struct {
	consumer Consumer
	recorder Recorder
}

func NewWorker(consumer Consumer, recorder Recorder) *Worker {
	return &Worker{
		consumer: consumer,
		recorder: recorder,
	}
}

func (w *Worker) Start(ctx context.Context) error {
	msgs, err := w.consumer.Consume()
	if err != nil {
		return fmt.Errorf("failed to start consumer: %w", err)
	}

	log.Info().Msg("worker started, waiting for customer events")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("worker shutting down")
			return nil
		case d, ok := <-msgs:
			if !ok {
				return fmt.Errorf("rabbitMQ channel closed")
			}
			w.processMessage(ctx, d)
		}
	}
}

func (w *Worker) processMessage(ctx context.Context, d amqp091.Delivery) {
	var evt queue.CustomerEvent
	if err := json.Unmarshal(d.Body, &evt); err != nil {
		log.Error().Err(err).Msg("failed to unmarshal customer event")
		d.Reject(false)
		return
	}

	switch evt.Type {
	case customers.EventCustomerCreated, customers.EventCustomerDeleted:
	default:
		log.Warn().Str("event", evt.Type).Str("event_id", evt.ID).Msg("unknown customer event type")
		d.Reject(false)
		return
	}

	if err := w.recorder.Record(ctx, evt); err != nil {
		log.Error().Err(err).Str("event_id", evt.ID).Msg("failed to record customer event")
		d.Nack(false, true)
		return
	}

	d.Ack(false)
}
