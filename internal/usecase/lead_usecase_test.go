package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/ethiocodes/nexora/internal/entity"
	"github.com/ethiocodes/nexora/internal/infra/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLeadUseCase(t *testing.T) (*LeadUseCase, *memory.Collection[entity.Lead]) {
	t.Helper()
	leads := memory.NewCollection(sampleLeads())
	uc := NewLeadUseCase(leads, nil)
	uc.Now = func() time.Time { return time.Date(2025, 10, 12, 9, 0, 0, 0, time.FixedZone("EAT", 3*3600)) }
	return uc, leads
}

func TestCaptureLead_PrependsNewLead(t *testing.T) {
	uc, leads := newLeadUseCase(t)
	ctx := context.Background()

	lead, err := uc.Capture(ctx, CaptureLeadInput{Name: "Abebe Bikila", Email: "abebe@test.com", Industry: "fintech"})
	require.NoError(t, err)

	assert.Equal(t, entity.LeadNew, lead.Status)
	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, time.UTC, lead.Date.Location())

	all := leads.Snapshot(ctx)
	require.Len(t, all, 4)
	assert.Equal(t, lead.ID, all[0].ID)

	again, err := uc.Capture(ctx, CaptureLeadInput{Name: "Abebe Bikila", Email: "abebe@test.com"})
	require.NoError(t, err)
	assert.NotEqual(t, lead.ID, again.ID)
}

func TestCaptureLead_Validation(t *testing.T) {
	uc, leads := newLeadUseCase(t)

	_, err := uc.Capture(context.Background(), CaptureLeadInput{Name: " ", Email: "not-an-email", Phone: "12"})
	require.Error(t, err)
	assert.Equal(t, CodeValidation, ErrorCode(err))

	var de *DomainError
	require.ErrorAs(t, err, &de)
	assert.Len(t, de.Fields, 3)
	assert.Equal(t, 3, leads.Len())
}

func TestUpdateStatusAndToggleTag(t *testing.T) {
	uc, _ := newLeadUseCase(t)
	ctx := context.Background()

	lead, err := uc.UpdateStatus(ctx, "1", entity.LeadClient)
	require.NoError(t, err)
	assert.Equal(t, entity.LeadClient, lead.Status)

	_, err = uc.UpdateStatus(ctx, "1", "Lost")
	assert.Equal(t, CodeValidation, ErrorCode(err))

	_, err = uc.UpdateStatus(ctx, "missing", entity.LeadVIP)
	assert.Equal(t, CodeNotFound, ErrorCode(err))

	once, err := uc.ToggleTag(ctx, "2", "VIP")
	require.NoError(t, err)
	assert.True(t, once.HasTag("VIP"))

	twice, err := uc.ToggleTag(ctx, "2", "VIP")
	require.NoError(t, err)
	assert.Equal(t, []string{"Enterprise", "Partner"}, twice.Tags)
}

func TestUpdateLead_IgnoresEmptyFields(t *testing.T) {
	uc, _ := newLeadUseCase(t)

	lead, err := uc.Update(context.Background(), "2", UpdateLeadInput{Notes: "Wants a call on Friday", Website: "www.yenepay.com"})
	require.NoError(t, err)

	assert.Equal(t, "Sara Tadesse", lead.Name)
	assert.Equal(t, "sara@fintech.et", lead.Email)
	assert.Equal(t, "Wants a call on Friday", lead.Notes)
	assert.Equal(t, "www.yenepay.com", lead.Website)
}

func TestUpdateLead_RejectsBlankRequiredFields(t *testing.T) {
	uc, leads := newLeadUseCase(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input UpdateLeadInput
		field string
	}{
		{"blank name", UpdateLeadInput{Name: "   "}, "name"},
		{"blank email", UpdateLeadInput{Email: "\t "}, "email"},
		{"name too long", UpdateLeadInput{Name: strings.Repeat("a", 201)}, "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Update(ctx, "1", tt.input)
			var de *DomainError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, CodeValidation, de.Code)
			require.Len(t, de.Fields, 1)
			assert.Equal(t, tt.field, de.Fields[0].Field)
		})
	}

	lead, _ := Find(leads.Snapshot(ctx), byLeadID("1"))
	assert.Equal(t, "Abebe Bikila", lead.Name)
	assert.Equal(t, "abebe@marathon.et", lead.Email)
}

func TestUpdateLead_TrimsInput(t *testing.T) {
	uc, _ := newLeadUseCase(t)

	lead, err := uc.Update(context.Background(), "1", UpdateLeadInput{Name: "  Abebe B.  ", Email: " abebe@new.et "})
	require.NoError(t, err)
	assert.Equal(t, "Abebe B.", lead.Name)
	assert.Equal(t, "abebe@new.et", lead.Email)
}

func TestDeleteLead(t *testing.T) {
	uc, leads := newLeadUseCase(t)
	ctx := context.Background()

	require.NoError(t, uc.Delete(ctx, "2"))
	assert.Equal(t, []string{"1", "3"}, ids(leads.Snapshot(ctx)))

	assert.Equal(t, CodeNotFound, ErrorCode(uc.Delete(ctx, "2")))
}

func TestLeadTags(t *testing.T) {
	uc, _ := newLeadUseCase(t)
	assert.Contains(t, uc.Tags(context.Background()), "Partner")
}
