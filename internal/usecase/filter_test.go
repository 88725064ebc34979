package usecase

import (
	"testing"

	"github.com/ethiocodes/nexora/internal/entity"
	"github.com/stretchr/testify/assert"
)

func sampleLeads() []entity.Lead {
	return []entity.Lead{
		{ID: "1", Name: "Abebe Bikila", Email: "abebe@marathon.et", Status: entity.LeadNew, Tags: []string{"Startup"}},
		{ID: "2", Name: "Sara Tadesse", Email: "sara@fintech.et", Status: entity.LeadContacted, Tags: []string{"Enterprise", "Partner"}},
		{ID: "3", Name: "Hana Girma", Email: "hana@addisgov.et", Status: entity.LeadNew, Tags: []string{"Government"}},
	}
}

func ids(leads []entity.Lead) []string {
	out := make([]string, 0, len(leads))
	for _, l := range leads {
		out = append(out, l.ID)
	}
	return out
}

func TestFilterLeads(t *testing.T) {
	leads := sampleLeads()

	tests := []struct {
		name string
		q    LeadQuery
		want []string
	}{
		{"no filter returns everything in order", LeadQuery{}, []string{"1", "2", "3"}},
		{"All is unconstrained", LeadQuery{Status: AllFilter, Tag: AllFilter}, []string{"1", "2", "3"}},
		{"search is case-insensitive on name", LeadQuery{Search: "SARA"}, []string{"2"}},
		{"search matches email", LeadQuery{Search: "addisgov"}, []string{"3"}},
		{"status", LeadQuery{Status: "New"}, []string{"1", "3"}},
		{"tag", LeadQuery{Tag: "Enterprise"}, []string{"2"}},
		{"conjunction", LeadQuery{Search: "a", Status: "New", Tag: "Government"}, []string{"3"}},
		{"no match", LeadQuery{Search: "zzz"}, []string{}},
		{"blank search ignored", LeadQuery{Search: "   "}, []string{"1", "2", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(FilterLeads(leads, tt.q)))
		})
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	leads := sampleLeads()
	before := ids(leads)

	out := FilterLeads(leads, LeadQuery{Status: "New"})
	out[0].Name = "changed"

	assert.Equal(t, before, ids(leads))
	assert.Equal(t, "Abebe Bikila", leads[0].Name)
}

func TestFilterBookingsServicesPosts(t *testing.T) {
	bookings := []entity.Booking{
		{ID: "a", ClientName: "Sara", ServiceName: "Cybersecurity", Status: entity.BookingConfirmed},
		{ID: "b", ClientName: "Abebe", ClientEmail: "abebe@x.et", ServiceName: "Custom Software", Status: entity.BookingPending},
	}
	assert.Len(t, FilterBookings(bookings, BookingQuery{Search: "custom"}), 1)
	assert.Len(t, FilterBookings(bookings, BookingQuery{Status: "Confirmed"}), 1)

	services := []entity.Service{
		{ID: "x", Title: "Custom Software", ShortDesc: "Tailored systems", Category: "Engineering"},
		{ID: "y", Title: "UI/UX", ShortDesc: "Interfaces", Category: "Design"},
	}
	assert.Equal(t, "x", FilterServices(services, ServiceQuery{Search: "tailored"})[0].ID)
	assert.Equal(t, "y", FilterServices(services, ServiceQuery{Category: "Design"})[0].ID)

	posts := []entity.BlogPost{
		{Slug: "p1", Title: "Resilience", Excerpt: "traffic spikes", Category: "Engineering"},
		{Slug: "p2", Title: "Scaling", Excerpt: "team culture", Category: "Growth"},
	}
	assert.Equal(t, "p2", FilterBlogPosts(posts, BlogQuery{Search: "CULTURE"})[0].Slug)
	assert.Empty(t, FilterBlogPosts(posts, BlogQuery{Category: "Government"}))
}

func TestAvailableTags(t *testing.T) {
	tags := AvailableTags(sampleLeads())
	assert.Equal(t, append(append([]string{}, DefaultLeadTags...), "Partner"), tags)
	assert.Equal(t, DefaultLeadTags, AvailableTags(nil))
}

func TestCategories(t *testing.T) {
	services := []entity.Service{{Category: "Engineering"}, {Category: "Design"}, {Category: "Engineering"}, {Category: ""}}
	assert.Equal(t, []string{"All", "Engineering", "Design"}, ServiceCategories(services))
	assert.Equal(t, []string{"All"}, BlogCategories(nil))
}

func TestCollectionHelpers(t *testing.T) {
	base := []int{1, 2, 3}

	assert.Equal(t, []int{0, 1, 2, 3}, Prepend(base, 0))
	assert.Equal(t, []int{1, 2, 3, 4}, Append(base, 4))
	assert.Equal(t, []int{1, 9, 3}, ReplaceAt(base, 1, 9))
	assert.Equal(t, []int{1, 3}, RemoveAt(base, 1))
	assert.Equal(t, []int{1, 2, 3}, base)

	assert.Equal(t, 2, IndexOf(base, func(n int) bool { return n == 3 }))
	assert.Equal(t, -1, IndexOf(base, func(n int) bool { return n == 7 }))

	_, ok := Find(base, func(n int) bool { return n > 5 })
	assert.False(t, ok)
}

func TestUniqueKey(t *testing.T) {
	taken := map[string]bool{"cloud-migration": true, "cloud-migration-2": true}
	isTaken := func(k string) bool { return taken[k] }

	assert.Equal(t, "fresh", UniqueKey("fresh", isTaken))
	assert.Equal(t, "cloud-migration-3", UniqueKey("cloud-migration", isTaken))
}
