package entity

// Conteúdo estático do site, só leitura.

type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Highlighted bool   `json:"highlighted"`
}

type PricingPlan struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	CTA         string `json:"cta"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
