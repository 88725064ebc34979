package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ethiocodes/nexora/internal/usecase"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// InteractionPayload é o corpo JSON publicado em q.interactions.
type InteractionPayload struct {
	usecase.OutboundMessage
	Origin string `json:"origin"`
}

// Publisher é o subconjunto de *amqp.Channel usado pelo producer.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// Producer implementa o gateway de notificação publicando na fila; quem envia
// de fato é o Worker.
type Producer struct {
	Ch     Publisher
	Logger *zap.Logger
}

func NewProducer(ch Publisher, logger *zap.Logger) *Producer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Producer{Ch: ch, Logger: logger}
}

func (p *Producer) Deliver(ctx context.Context, msg usecase.OutboundMessage) error {
	body, err := json.Marshal(InteractionPayload{OutboundMessage: msg, Origin: "admin-crm"})
	if err != nil {
		return fmt.Errorf("erro ao converter payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			MessageId:    fmt.Sprintf("%d", msg.InteractionID),
		},
	)
	if err != nil {
		return fmt.Errorf("falha ao publicar no RabbitMQ: %w", err)
	}

	p.Logger.Info("📤 interaction queued",
		zap.String("lead_id", msg.LeadID),
		zap.Int64("interaction_id", msg.InteractionID))
	return nil
}
