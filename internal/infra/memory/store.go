package memory

import "github.com/ethiocodes/nexora/internal/entity"

// Store reúne as coleções do painel. Tudo vive só em memória e some quando o
// processo termina.
type Store struct {
	Leads        *Collection[entity.Lead]
	Bookings     *Collection[entity.Booking]
	Services     *Collection[entity.Service]
	Posts        *Collection[entity.BlogPost]
	Testimonials *Collection[entity.Testimonial]

	Features []entity.Feature
	Pricing  []entity.PricingPlan
	FAQs     []entity.FAQ
}

type Seed struct {
	Leads        []entity.Lead
	Bookings     []entity.Booking
	Services     []entity.Service
	Posts        []entity.BlogPost
	Testimonials []entity.Testimonial
	Features     []entity.Feature
	Pricing      []entity.PricingPlan
	FAQs         []entity.FAQ
}

func NewStore(seed Seed) *Store {
	return &Store{
		Leads:        NewCollection(seed.Leads),
		Bookings:     NewCollection(seed.Bookings),
		Services:     NewCollection(seed.Services),
		Posts:        NewCollection(seed.Posts),
		Testimonials: NewCollection(seed.Testimonials),
		Features:     seed.Features,
		Pricing:      seed.Pricing,
		FAQs:         seed.FAQs,
	}
}
