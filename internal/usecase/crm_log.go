package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ethiocodes/nexora/internal/entity"
	"go.uber.org/zap"
)

// CRMLog guarda o histórico de interações por lead. O histórico é semeado na
// primeira abertura e depois só cresce; trocar de lead não apaga nada.
type CRMLog struct {
	Leads   LeadCollection
	Gateway NotificationGateway
	Logger  *zap.Logger
	Now     func() time.Time

	mu      sync.Mutex
	history map[string][]entity.Interaction
	sending map[string]bool
	lastID  int64
}

func NewCRMLog(leads LeadCollection, gateway NotificationGateway, logger *zap.Logger) *CRMLog {
	return &CRMLog{
		Leads:   leads,
		Gateway: gateway,
		Logger:  orNop(logger),
		Now:     time.Now,
		history: make(map[string][]entity.Interaction),
		sending: make(map[string]bool),
	}
}

// Open devolve o histórico do lead, mais recente primeiro.
func (c *CRMLog) Open(ctx context.Context, leadID string) ([]entity.Interaction, error) {
	lead, err := c.lead(ctx, leadID)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.historyLocked(lead), nil
}

// Sending indica se há um envio em andamento para o lead.
func (c *CRMLog) Sending(leadID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sending[leadID]
}

// Send entrega o rascunho pelo gateway e registra a interação no topo do
// histórico. Só um envio por lead pode estar em andamento; uma segunda
// chamada nesse intervalo é rejeitada, não enfileirada.
func (c *CRMLog) Send(ctx context.Context, leadID string, draft InteractionDraft) (entity.Interaction, error) {
	if errs := ValidateInteractionDraft(draft); len(errs) > 0 {
		return entity.Interaction{}, validationFailed(errs)
	}
	if draft.Type == "" {
		draft.Type = entity.InteractionEmail
	}

	lead, err := c.lead(ctx, leadID)
	if err != nil {
		return entity.Interaction{}, err
	}

	c.mu.Lock()
	if c.sending[leadID] {
		c.mu.Unlock()
		c.Logger.Warn("send rejected, another send is in flight", zap.String("lead_id", leadID))
		return entity.Interaction{}, &DomainError{Code: CodeSendInProgress, Message: "a message is already being sent for this lead"}
	}
	c.sending[leadID] = true
	id := c.nextIDLocked()
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.sending, leadID)
		c.mu.Unlock()
	}()

	title := strings.TrimSpace(draft.Subject)
	if title == "" {
		title = defaultInteractionTitle(draft.Type)
	}

	msg := OutboundMessage{
		InteractionID: id,
		LeadID:        lead.ID,
		LeadName:      lead.Name,
		LeadEmail:     lead.Email,
		LeadPhone:     lead.Phone,
		Type:          draft.Type,
		Subject:       title,
		Content:       draft.Content,
	}
	if err := c.Gateway.Deliver(ctx, msg); err != nil {
		c.Logger.Error("interaction delivery failed",
			zap.String("lead_id", leadID),
			zap.String("type", string(draft.Type)),
			zap.Error(err))
		return entity.Interaction{}, &TechnicalError{Code: CodeDeliveryFailed, Message: "delivery failed: " + err.Error(), Err: err}
	}

	interaction := entity.Interaction{
		ID:      id,
		LeadID:  lead.ID,
		Type:    draft.Type,
		Date:    c.Now().UTC(),
		Title:   title,
		Content: draft.Content,
		Status:  entity.InteractionSent,
	}

	// O lead pode ter sido removido durante a entrega; Forget já rodou e o
	// histórico não pode voltar.
	c.mu.Lock()
	lead, ok := Find(c.Leads.Snapshot(ctx), byLeadID(leadID))
	if !ok {
		c.mu.Unlock()
		c.Logger.Warn("lead removed while sending, interaction not recorded",
			zap.String("lead_id", leadID),
			zap.Int64("interaction_id", id))
		return entity.Interaction{}, &DomainError{Code: CodeNotFound, Message: entity.ErrLeadNotFound.Error() + ": " + leadID, Err: entity.ErrLeadNotFound}
	}
	current := c.historyLocked(lead)
	c.history[leadID] = Prepend(current, interaction)
	c.mu.Unlock()

	c.Logger.Info("interaction sent",
		zap.String("lead_id", leadID),
		zap.Int64("interaction_id", id),
		zap.String("type", string(draft.Type)))
	return interaction, nil
}

// Forget descarta o histórico de um lead removido.
func (c *CRMLog) Forget(leadID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.history, leadID)
}

func (c *CRMLog) lead(ctx context.Context, leadID string) (entity.Lead, error) {
	lead, ok := Find(c.Leads.Snapshot(ctx), byLeadID(leadID))
	if !ok {
		return entity.Lead{}, storeFailure(c.Logger, "open_crm_log", leadID, entity.ErrLeadNotFound, entity.ErrLeadNotFound)
	}
	return lead, nil
}

func (c *CRMLog) historyLocked(lead entity.Lead) []entity.Interaction {
	h, ok := c.history[lead.ID]
	if !ok {
		h = c.seedLocked(lead)
		c.history[lead.ID] = h
	}
	out := make([]entity.Interaction, len(h))
	copy(out, h)
	return out
}

// seedLocked cria o histórico inicial a partir dos próprios dados do lead.
func (c *CRMLog) seedLocked(lead entity.Lead) []entity.Interaction {
	subject := lead.Issue
	if subject == "" {
		subject = "your project"
	}
	return []entity.Interaction{
		{
			ID:      c.nextIDLocked(),
			LeadID:  lead.ID,
			Type:    entity.InteractionEmail,
			Date:    lead.Date.Add(time.Hour),
			Title:   "Welcome to EthioCodes",
			Content: fmt.Sprintf("Hi %s, thanks for reaching out about %s. Our team will get back to you shortly.", firstName(lead.Name), subject),
			Status:  entity.InteractionDelivered,
		},
		{
			ID:      c.nextIDLocked(),
			LeadID:  lead.ID,
			Type:    entity.InteractionNote,
			Date:    lead.Date,
			Title:   "Lead captured",
			Content: fmt.Sprintf("Submitted the booking form (industry: %s).", orDash(lead.Industry)),
			Status:  entity.InteractionCompleted,
		},
	}
}

// nextIDLocked gera IDs baseados no relógio, sempre crescentes.
func (c *CRMLog) nextIDLocked() int64 {
	id := c.Now().UnixMilli()
	if id <= c.lastID {
		id = c.lastID + 1
	}
	c.lastID = id
	return id
}

func defaultInteractionTitle(t entity.InteractionType) string {
	switch t {
	case entity.InteractionSMS:
		return "SMS sent"
	case entity.InteractionCall:
		return "Call logged"
	case entity.InteractionNote:
		return "Note added"
	default:
		return "Email sent"
	}
}

func firstName(name string) string {
	if f := strings.Fields(name); len(f) > 0 {
		return f[0]
	}
	return "there"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
