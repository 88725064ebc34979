package entity

import "errors"

var ErrServiceNotFound = errors.New("service not found")

// ServiceIcons são as chaves de ícone que o site sabe desenhar.
var ServiceIcons = []string{
	"code", "smartphone", "palette", "cloud", "server", "briefcase",
	"landmark", "shield-check", "network", "wrench", "lightbulb",
}

func ValidServiceIcon(icon string) bool {
	for _, i := range ServiceIcons {
		if i == icon {
			return true
		}
	}
	return false
}

type Service struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	ShortDesc string   `json:"short_desc"`
	FullDesc  string   `json:"full_desc"`
	Features  []string `json:"features"`
	Icon      string   `json:"icon"`
	Category  string   `json:"category"`
	Price     *float64 `json:"price,omitempty"`
	Duration  *int     `json:"duration,omitempty"` // minutos
}
