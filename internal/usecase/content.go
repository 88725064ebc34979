package usecase

import "github.com/ethiocodes/nexora/internal/entity"

// SiteContent é o conteúdo fixo exibido no site público.
type SiteContent struct {
	Features []entity.Feature     `json:"features"`
	Pricing  []entity.PricingPlan `json:"pricing"`
	FAQs     []entity.FAQ         `json:"faqs"`
}
