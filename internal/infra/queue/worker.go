package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ethiocodes/nexora/internal/usecase"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Consumer é o subconjunto de *amqp.Channel usado pelo worker.
type Consumer interface {
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
}

// Worker consome q.interactions e entrega cada mensagem pelo Dispatcher
// (normalmente o notify.Router com email e sms).
type Worker struct {
	Channel    Consumer
	Dispatcher usecase.NotificationGateway
	Logger     *zap.Logger
	OnResult   func(msg usecase.OutboundMessage, err error)
}

func NewWorker(ch Consumer, dispatcher usecase.NotificationGateway, logger *zap.Logger) *Worker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Worker{Channel: ch, Dispatcher: dispatcher, Logger: logger}
}

// Start bloqueia até ctx ser cancelado ou o canal de entregas fechar.
func (w *Worker) Start(ctx context.Context, queueName string) error {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("falha ao registrar consumidor RabbitMQ: %w", err)
	}

	w.Logger.Info("👂 worker listening", zap.String("queue", queueName))
	for {
		select {
		case <-ctx.Done():
			w.Logger.Info("⚠️ worker stopped", zap.String("queue", queueName))
			return nil
		case d, ok := <-msgs:
			if !ok {
				w.Logger.Warn("delivery channel closed", zap.String("queue", queueName))
				return nil
			}
			w.handleDelivery(ctx, d)
		}
	}
}

func (w *Worker) handleDelivery(ctx context.Context, d amqp.Delivery) {
	var payload InteractionPayload
	if err := json.Unmarshal(d.Body, &payload); err != nil {
		// Mensagem malformada: rejeita sem requeue, vai para a DLQ.
		w.Logger.Error("❌ invalid payload", zap.Error(err))
		_ = d.Nack(false, false)
		return
	}

	msg := payload.OutboundMessage
	err := w.Dispatcher.Deliver(ctx, msg)
	if w.OnResult != nil {
		w.OnResult(msg, err)
	}
	if err != nil {
		w.Logger.Error("❌ delivery failed",
			zap.String("lead_id", msg.LeadID),
			zap.Int64("interaction_id", msg.InteractionID),
			zap.Error(err))
		_ = d.Nack(false, false)
		return
	}

	w.Logger.Info("✅ interaction delivered",
		zap.String("lead_id", msg.LeadID),
		zap.String("type", string(msg.Type)))
	_ = d.Ack(false)
}
