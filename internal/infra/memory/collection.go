package memory

import (
	"context"
	"slices"
	"sync"
)

// Collection guarda um slice que nunca é alterado no lugar: cada mudança
// produz um slice novo que substitui o anterior.
type Collection[T any] struct {
	mu      sync.RWMutex
	items   []T
	version uint64
}

func NewCollection[T any](seed []T) *Collection[T] {
	items := make([]T, len(seed))
	copy(items, seed)
	return &Collection[T]{items: items}
}

// Snapshot devolve a coleção atual. O slice vem com capacidade cortada, então
// um append de quem chamou nunca escreve no array compartilhado.
func (c *Collection[T]) Snapshot(ctx context.Context) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clip(c.items)
}

// Apply calcula a próxima versão com fn e troca a coleção só se não houver erro.
func (c *Collection[T]) Apply(ctx context.Context, fn func(current []T) ([]T, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	next, err := fn(slices.Clip(c.items))
	if err != nil {
		return err
	}
	c.items = next
	c.version++
	return nil
}

// Version conta quantas trocas já aconteceram.
func (c *Collection[T]) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
