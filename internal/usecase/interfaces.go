package usecase

import (
	"context"

	"github.com/ethiocodes/nexora/internal/entity"
)

// Collection é uma coleção em memória trocada por inteiro a cada mudança.
// Snapshot nunca deve ser alterado por quem o recebe; Apply só troca a coleção
// se fn não retornar erro.
type Collection[T any] interface {
	Snapshot(ctx context.Context) []T
	Apply(ctx context.Context, fn func(current []T) ([]T, error)) error
}

type (
	LeadCollection        = Collection[entity.Lead]
	BookingCollection     = Collection[entity.Booking]
	ServiceCollection     = Collection[entity.Service]
	BlogPostCollection    = Collection[entity.BlogPost]
	TestimonialCollection = Collection[entity.Testimonial]
)

// NotificationGateway entrega uma interação do CRM (email, sms, ligação, nota).
type NotificationGateway interface {
	Deliver(ctx context.Context, msg OutboundMessage) error
}
