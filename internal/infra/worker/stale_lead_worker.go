package worker

import (
	"context"
	"time"

	"github.com/ethiocodes/nexora/internal/entity"
	"github.com/ethiocodes/nexora/internal/usecase"
	"go.uber.org/zap"
)

// StaleLeadWorker conta os leads que continuam New depois de After. Só mede,
// nunca altera um lead.
type StaleLeadWorker struct {
	Leads  usecase.LeadCollection
	After  time.Duration
	Tick   time.Duration
	Logger *zap.Logger
	Report func(count int)
	Now    func() time.Time
}

func NewStaleLeadWorker(leads usecase.LeadCollection, after time.Duration, logger *zap.Logger, report func(int)) *StaleLeadWorker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StaleLeadWorker{
		Leads:  leads,
		After:  after,
		Tick:   time.Minute,
		Logger: logger,
		Report: report,
		Now:    time.Now,
	}
}

func (w *StaleLeadWorker) Start(ctx context.Context) {
	w.Logger.Info("🕒 stale lead worker started", zap.Duration("after", w.After))

	ticker := time.NewTicker(w.Tick)
	defer ticker.Stop()

	w.Sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			w.Logger.Info("⚠️ stale lead worker stopped")
			return
		case <-ticker.C:
			w.Sweep(ctx)
		}
	}
}

// Sweep faz uma passada e devolve quantos leads estão parados.
func (w *StaleLeadWorker) Sweep(ctx context.Context) int {
	cutoff := w.Now().Add(-w.After)

	stale := 0
	for _, l := range w.Leads.Snapshot(ctx) {
		if l.Status == entity.LeadNew && l.Date.Before(cutoff) {
			stale++
		}
	}

	if w.Report != nil {
		w.Report(stale)
	}
	if stale > 0 {
		w.Logger.Info("⏱️ leads waiting for first contact", zap.Int("count", stale))
	}
	return stale
}
