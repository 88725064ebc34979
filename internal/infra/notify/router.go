package notify

import (
	"context"

	"github.com/ethiocodes/nexora/internal/entity"
	"github.com/ethiocodes/nexora/internal/usecase"
	"go.uber.org/zap"
)

// Router escolhe o canal pelo tipo da interação. Tipo sem canal (ligação,
// nota) só fica registrado no histórico.
type Router struct {
	channels map[entity.InteractionType]usecase.NotificationGateway
	logger   *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{
		channels: make(map[entity.InteractionType]usecase.NotificationGateway),
		logger:   logger,
	}
}

func (r *Router) Handle(t entity.InteractionType, g usecase.NotificationGateway) *Router {
	r.channels[t] = g
	return r
}

func (r *Router) Deliver(ctx context.Context, msg usecase.OutboundMessage) error {
	g, ok := r.channels[msg.Type]
	if !ok {
		r.logger.Debug("no channel for interaction type, recorded only",
			zap.String("type", string(msg.Type)),
			zap.String("lead_id", msg.LeadID))
		return nil
	}
	return g.Deliver(ctx, msg)
}
