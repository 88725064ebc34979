package notify

import (
	"context"
	"time"

	"github.com/ethiocodes/nexora/internal/usecase"
	"go.uber.org/zap"
)

// SimulatedGateway finge a entrega: espera Delay e responde sucesso.
type SimulatedGateway struct {
	Delay  time.Duration
	Logger *zap.Logger
}

func NewSimulatedGateway(delay time.Duration, logger *zap.Logger) *SimulatedGateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SimulatedGateway{Delay: delay, Logger: logger}
}

func (g *SimulatedGateway) Deliver(ctx context.Context, msg usecase.OutboundMessage) error {
	if g.Delay > 0 {
		timer := time.NewTimer(g.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	g.Logger.Info("📨 simulated delivery",
		zap.String("lead_id", msg.LeadID),
		zap.String("type", string(msg.Type)),
		zap.String("subject", msg.Subject))
	return nil
}
