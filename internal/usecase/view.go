package usecase

import (
	"context"
	"sync"

	"github.com/ethiocodes/nexora/internal/entity"
)

type AdminTab string

const (
	TabDashboard AdminTab = "dashboard"
	TabCalendar  AdminTab = "calendar"
	TabClients   AdminTab = "clients"
	TabServices  AdminTab = "services"
	TabBlog      AdminTab = "blog"
	TabSettings  AdminTab = "settings"
)

func (t AdminTab) Valid() bool {
	switch t {
	case TabDashboard, TabCalendar, TabClients, TabServices, TabBlog, TabSettings:
		return true
	}
	return false
}

type ViewState struct {
	Tab          AdminTab     `json:"tab"`
	SelectedLead *entity.Lead `json:"selected_lead,omitempty"`
}

// ViewController guarda só o ID do lead aberto; o registro é sempre relido da
// coleção, então edições aparecem na hora e um lead removido some da seleção.
type ViewController struct {
	Leads LeadCollection

	mu         sync.Mutex
	tab        AdminTab
	selectedID string
}

func NewViewController(leads LeadCollection) *ViewController {
	return &ViewController{Leads: leads, tab: TabDashboard}
}

func (v *ViewController) SetTab(tab AdminTab) error {
	if !tab.Valid() {
		return validationFailed([]ValidationError{{"tab", "is not a known admin tab"}})
	}
	v.mu.Lock()
	v.tab = tab
	v.mu.Unlock()
	return nil
}

func (v *ViewController) SelectLead(ctx context.Context, id string) (entity.Lead, error) {
	lead, ok := Find(v.Leads.Snapshot(ctx), byLeadID(id))
	if !ok {
		return entity.Lead{}, &DomainError{Code: CodeNotFound, Message: entity.ErrLeadNotFound.Error() + ": " + id, Err: entity.ErrLeadNotFound}
	}
	v.mu.Lock()
	v.selectedID = id
	v.tab = TabClients
	v.mu.Unlock()
	return lead, nil
}

func (v *ViewController) ClearSelection() {
	v.mu.Lock()
	v.selectedID = ""
	v.mu.Unlock()
}

func (v *ViewController) State(ctx context.Context) ViewState {
	v.mu.Lock()
	defer v.mu.Unlock()

	state := ViewState{Tab: v.tab}
	if v.selectedID == "" {
		return state
	}
	lead, ok := Find(v.Leads.Snapshot(ctx), byLeadID(v.selectedID))
	if !ok {
		v.selectedID = ""
		return state
	}
	state.SelectedLead = &lead
	return state
}
