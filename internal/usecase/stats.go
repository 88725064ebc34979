package usecase

import (
	"context"
	"math"

	"github.com/ethiocodes/nexora/internal/entity"
)

const (
	loyaltyBase  = 62
	loyaltyBonus = 33
	loyaltyMax   = 95
)

type DashboardStats struct {
	TotalRevenue     float64                      `json:"total_revenue"`
	MonthlyRevenue   float64                      `json:"monthly_revenue"`
	LoyaltyScore     int                          `json:"loyalty_score"`
	TotalLeads       int                          `json:"total_leads"`
	NewLeads         int                          `json:"new_leads"`
	LeadsByStatus    map[entity.LeadStatus]int    `json:"leads_by_status"`
	TotalBookings    int                          `json:"total_bookings"`
	BookingsByStatus map[entity.BookingStatus]int `json:"bookings_by_status"`
	Services         int                          `json:"services"`
	Posts            int                          `json:"posts"`
}

// LoyaltyScore = 62 + 33 * (novos / total), limitado a [0, 95]. Sem leads o
// resultado é a base.
func LoyaltyScore(newLeads, totalLeads int) int {
	if totalLeads <= 0 {
		return loyaltyBase
	}
	ratio := float64(newLeads) / float64(totalLeads)
	score := loyaltyBase + int(math.Round(loyaltyBonus*ratio))
	if score < 0 {
		return 0
	}
	if score > loyaltyMax {
		return loyaltyMax
	}
	return score
}

// ComputeStats recalcula tudo a partir das coleções; nada fica guardado.
func ComputeStats(leads []entity.Lead, bookings []entity.Booking, services []entity.Service, posts []entity.BlogPost) DashboardStats {
	s := DashboardStats{
		TotalLeads:       len(leads),
		LeadsByStatus:    make(map[entity.LeadStatus]int, len(entity.LeadStatuses)),
		TotalBookings:    len(bookings),
		BookingsByStatus: make(map[entity.BookingStatus]int, len(entity.BookingStatuses)),
		Services:         len(services),
		Posts:            len(posts),
	}
	for _, st := range entity.LeadStatuses {
		s.LeadsByStatus[st] = 0
	}
	for _, st := range entity.BookingStatuses {
		s.BookingsByStatus[st] = 0
	}

	for _, l := range leads {
		s.LeadsByStatus[l.Status]++
	}
	for _, b := range bookings {
		s.BookingsByStatus[b.Status]++
		if b.Billable() {
			s.TotalRevenue += b.Amount
		}
	}

	s.NewLeads = s.LeadsByStatus[entity.LeadNew]
	s.MonthlyRevenue = s.TotalRevenue / 12
	s.LoyaltyScore = LoyaltyScore(s.NewLeads, s.TotalLeads)
	return s
}

type StatsUseCase struct {
	Leads    LeadCollection
	Bookings BookingCollection
	Services ServiceCollection
	Posts    BlogPostCollection
}

func NewStatsUseCase(leads LeadCollection, bookings BookingCollection, services ServiceCollection, posts BlogPostCollection) *StatsUseCase {
	return &StatsUseCase{Leads: leads, Bookings: bookings, Services: services, Posts: posts}
}

func (uc *StatsUseCase) Dashboard(ctx context.Context) DashboardStats {
	return ComputeStats(
		uc.Leads.Snapshot(ctx),
		uc.Bookings.Snapshot(ctx),
		uc.Services.Snapshot(ctx),
		uc.Posts.Snapshot(ctx),
	)
}
