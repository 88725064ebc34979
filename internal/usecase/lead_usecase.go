package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/ethiocodes/nexora/internal/entity"
	"github.com/jinzhu/copier"
	"go.uber.org/zap"
)

type LeadUseCase struct {
	Leads  LeadCollection
	Logger *zap.Logger
	Now    func() time.Time
}

func NewLeadUseCase(leads LeadCollection, logger *zap.Logger) *LeadUseCase {
	return &LeadUseCase{
		Leads:  leads,
		Logger: orNop(logger),
		Now:    time.Now,
	}
}

func byLeadID(id string) func(entity.Lead) bool {
	return func(l entity.Lead) bool { return l.ID == id }
}

// Capture registra um lead vindo do formulário público. O lead novo vai para o
// topo da lista.
func (uc *LeadUseCase) Capture(ctx context.Context, input CaptureLeadInput) (*entity.Lead, error) {
	if errs := ValidateCaptureLeadInput(input); len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	lead := entity.NewLead(input.Name, input.Email, input.Phone, input.Website, input.Industry, input.Issue, uc.Now())

	err := uc.Leads.Apply(ctx, func(current []entity.Lead) ([]entity.Lead, error) {
		return Prepend(current, *lead), nil
	})
	if err != nil {
		return nil, storeFailure(uc.Logger, "capture_lead", lead.Email, err)
	}

	uc.Logger.Info("lead captured",
		zap.String("lead_id", lead.ID),
		zap.String("industry", lead.Industry))
	return lead, nil
}

func (uc *LeadUseCase) List(ctx context.Context, q LeadQuery) []entity.Lead {
	return FilterLeads(uc.Leads.Snapshot(ctx), q)
}

func (uc *LeadUseCase) Tags(ctx context.Context) []string {
	return AvailableTags(uc.Leads.Snapshot(ctx))
}

func (uc *LeadUseCase) Get(ctx context.Context, id string) (entity.Lead, error) {
	lead, ok := Find(uc.Leads.Snapshot(ctx), byLeadID(id))
	if !ok {
		return entity.Lead{}, storeFailure(uc.Logger, "get_lead", id, entity.ErrLeadNotFound, entity.ErrLeadNotFound)
	}
	return lead, nil
}

func (uc *LeadUseCase) UpdateStatus(ctx context.Context, id string, status entity.LeadStatus) (entity.Lead, error) {
	if !status.Valid() {
		return entity.Lead{}, validationFailed([]ValidationError{{"status", "must be one of New, Contacted, Closed, Client, VIP"}})
	}
	return uc.modify(ctx, "update_lead_status", id, func(l entity.Lead) (entity.Lead, error) {
		l.Status = status
		return l, nil
	})
}

func (uc *LeadUseCase) ToggleTag(ctx context.Context, id, tag string) (entity.Lead, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return entity.Lead{}, validationFailed([]ValidationError{{"tag", "is required"}})
	}
	return uc.modify(ctx, "toggle_lead_tag", id, func(l entity.Lead) (entity.Lead, error) {
		return l.WithTagToggled(tag), nil
	})
}

func (uc *LeadUseCase) Update(ctx context.Context, id string, input UpdateLeadInput) (entity.Lead, error) {
	if errs := ValidateUpdateLeadInput(input); len(errs) > 0 {
		return entity.Lead{}, validationFailed(errs)
	}
	input = input.trimmed()
	return uc.modify(ctx, "update_lead", id, func(l entity.Lead) (entity.Lead, error) {
		if err := copier.CopyWithOption(&l, &input, copier.Option{IgnoreEmpty: true}); err != nil {
			return l, err
		}
		return l, nil
	})
}

// Delete remove o lead da coleção de vez.
func (uc *LeadUseCase) Delete(ctx context.Context, id string) error {
	err := uc.Leads.Apply(ctx, func(current []entity.Lead) ([]entity.Lead, error) {
		i := IndexOf(current, byLeadID(id))
		if i < 0 {
			return nil, entity.ErrLeadNotFound
		}
		return RemoveAt(current, i), nil
	})
	if err != nil {
		return storeFailure(uc.Logger, "delete_lead", id, err, entity.ErrLeadNotFound)
	}
	uc.Logger.Info("lead deleted", zap.String("lead_id", id))
	return nil
}

func (uc *LeadUseCase) modify(ctx context.Context, op, id string, fn func(entity.Lead) (entity.Lead, error)) (entity.Lead, error) {
	var updated entity.Lead
	err := uc.Leads.Apply(ctx, func(current []entity.Lead) ([]entity.Lead, error) {
		i := IndexOf(current, byLeadID(id))
		if i < 0 {
			return nil, entity.ErrLeadNotFound
		}
		next, err := fn(current[i])
		if err != nil {
			return nil, err
		}
		updated = next
		return ReplaceAt(current, i, next), nil
	})
	if err != nil {
		return entity.Lead{}, storeFailure(uc.Logger, op, id, err, entity.ErrLeadNotFound)
	}
	return updated, nil
}
