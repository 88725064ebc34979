package worker

import (
	"context"
	"testing"
	"time"

	"github.com/ethiocodes/nexora/internal/entity"
	"github.com/ethiocodes/nexora/internal/infra/memory"
	"github.com/stretchr/testify/assert"
)

func TestStaleLeadWorker_Sweep(t *testing.T) {
	now := time.Date(2025, 10, 12, 12, 0, 0, 0, time.UTC)
	leads := memory.NewCollection([]entity.Lead{
		{ID: "old-new", Status: entity.LeadNew, Date: now.Add(-72 * time.Hour)},
		{ID: "fresh-new", Status: entity.LeadNew, Date: now.Add(-time.Hour)},
		{ID: "old-contacted", Status: entity.LeadContacted, Date: now.Add(-72 * time.Hour)},
	})

	var reported int
	w := NewStaleLeadWorker(leads, 48*time.Hour, nil, func(n int) { reported = n })
	w.Now = func() time.Time { return now }

	assert.Equal(t, 1, w.Sweep(context.Background()))
	assert.Equal(t, 1, reported)
	assert.Equal(t, entity.LeadNew, leads.Snapshot(context.Background())[0].Status)
}

func TestStaleLeadWorker_StartStopsOnCancel(t *testing.T) {
	leads := memory.NewCollection[entity.Lead](nil)
	sweeps := make(chan int, 10)
	w := NewStaleLeadWorker(leads, time.Hour, nil, func(n int) {
		select {
		case sweeps <- n:
		default:
		}
	})
	w.Tick = 5 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	assert.Equal(t, 0, <-sweeps)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}
