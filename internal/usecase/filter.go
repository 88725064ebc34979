package usecase

import (
	"sort"
	"strings"

	"github.com/ethiocodes/nexora/internal/entity"
)

// AllFilter é o valor de filtro que significa "sem restrição".
const AllFilter = "All"

// DefaultLeadTags aparecem no filtro mesmo que nenhum lead as use ainda.
var DefaultLeadTags = []string{"VIP", "Enterprise", "Startup", "Government", "Follow-up"}

type Predicate[T any] func(T) bool

// Filter devolve, em ordem, os itens que satisfazem todos os predicados.
// Sem predicados o resultado tem os mesmos itens da entrada.
func Filter[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
next:
	for _, it := range items {
		for _, p := range preds {
			if !p(it) {
				continue next
			}
		}
		out = append(out, it)
	}
	return out
}

// MatchSearch: busca vazia casa com tudo; senão, substring sem diferenciar
// maiúsculas em qualquer um dos campos.
func MatchSearch(query string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func isUnconstrained(filter string) bool {
	return filter == "" || filter == AllFilter
}

type LeadQuery struct {
	Search string
	Status string
	Tag    string
}

func (q LeadQuery) Predicates() []Predicate[entity.Lead] {
	var preds []Predicate[entity.Lead]
	if strings.TrimSpace(q.Search) != "" {
		preds = append(preds, func(l entity.Lead) bool { return MatchSearch(q.Search, l.Name, l.Email) })
	}
	if !isUnconstrained(q.Status) {
		preds = append(preds, func(l entity.Lead) bool { return string(l.Status) == q.Status })
	}
	if !isUnconstrained(q.Tag) {
		preds = append(preds, func(l entity.Lead) bool { return l.HasTag(q.Tag) })
	}
	return preds
}

type BookingQuery struct {
	Search string
	Status string
}

func (q BookingQuery) Predicates() []Predicate[entity.Booking] {
	var preds []Predicate[entity.Booking]
	if strings.TrimSpace(q.Search) != "" {
		preds = append(preds, func(b entity.Booking) bool {
			return MatchSearch(q.Search, b.ClientName, b.ClientEmail, b.ServiceName)
		})
	}
	if !isUnconstrained(q.Status) {
		preds = append(preds, func(b entity.Booking) bool { return string(b.Status) == q.Status })
	}
	return preds
}

type ServiceQuery struct {
	Search   string
	Category string
}

func (q ServiceQuery) Predicates() []Predicate[entity.Service] {
	var preds []Predicate[entity.Service]
	if strings.TrimSpace(q.Search) != "" {
		preds = append(preds, func(s entity.Service) bool { return MatchSearch(q.Search, s.Title, s.ShortDesc) })
	}
	if !isUnconstrained(q.Category) {
		preds = append(preds, func(s entity.Service) bool { return s.Category == q.Category })
	}
	return preds
}

type BlogQuery struct {
	Search   string
	Category string
}

func (q BlogQuery) Predicates() []Predicate[entity.BlogPost] {
	var preds []Predicate[entity.BlogPost]
	if strings.TrimSpace(q.Search) != "" {
		preds = append(preds, func(p entity.BlogPost) bool { return MatchSearch(q.Search, p.Title, p.Excerpt) })
	}
	if !isUnconstrained(q.Category) {
		preds = append(preds, func(p entity.BlogPost) bool { return p.Category == q.Category })
	}
	return preds
}

func FilterLeads(leads []entity.Lead, q LeadQuery) []entity.Lead {
	return Filter(leads, q.Predicates()...)
}

func FilterBookings(bookings []entity.Booking, q BookingQuery) []entity.Booking {
	return Filter(bookings, q.Predicates()...)
}

func FilterServices(services []entity.Service, q ServiceQuery) []entity.Service {
	return Filter(services, q.Predicates()...)
}

func FilterBlogPosts(posts []entity.BlogPost, q BlogQuery) []entity.BlogPost {
	return Filter(posts, q.Predicates()...)
}

// AvailableTags junta as tags padrão com as usadas pelos leads, sem repetição.
// As extras entram em ordem alfabética depois das padrão.
func AvailableTags(leads []entity.Lead) []string {
	seen := make(map[string]bool)
	out := make([]string, 0, len(DefaultLeadTags))
	for _, t := range DefaultLeadTags {
		seen[t] = true
		out = append(out, t)
	}
	var extra []string
	for _, l := range leads {
		for _, t := range l.Tags {
			if !seen[t] {
				seen[t] = true
				extra = append(extra, t)
			}
		}
	}
	sort.Strings(extra)
	return append(out, extra...)
}

// ServiceCategories: "All" seguido das categorias na ordem em que aparecem.
func ServiceCategories(services []entity.Service) []string {
	cats := make([]string, 0, len(services))
	for _, s := range services {
		cats = append(cats, s.Category)
	}
	return categoriesWithAll(cats)
}

func BlogCategories(posts []entity.BlogPost) []string {
	cats := make([]string, 0, len(posts))
	for _, p := range posts {
		cats = append(cats, p.Category)
	}
	return categoriesWithAll(cats)
}

func categoriesWithAll(cats []string) []string {
	seen := map[string]bool{AllFilter: true}
	out := []string{AllFilter}
	for _, c := range cats {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
