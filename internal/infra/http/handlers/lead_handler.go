package handlers

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/ethiocodes/nexora/internal/entity"
	"github.com/ethiocodes/nexora/internal/infra/http/middleware"
	"github.com/ethiocodes/nexora/internal/usecase"
	"github.com/go-chi/chi/v5"
)

type LeadHandler struct {
	uc          *usecase.LeadUseCase
	crm         *usecase.CRMLog
	rateLimiter *RateLimiter
}

func NewLeadHandler(uc *usecase.LeadUseCase, crm *usecase.CRMLog, limiter *RateLimiter) *LeadHandler {
	return &LeadHandler{
		uc:          uc,
		crm:         crm,
		rateLimiter: limiter,
	}
}

type CaptureLeadResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Lead    *entity.Lead `json:"lead,omitempty"`
}

// CaptureLead é o formulário público de contato/agendamento.
func (h *LeadHandler) CaptureLead(w http.ResponseWriter, r *http.Request) {
	if h.rateLimiter != nil && !h.rateLimiter.Allow(getClientIP(r)) {
		writeErrorResponse(w, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests. Please try again later.")
		return
	}

	var input usecase.CaptureLeadInput
	if !decodeJSON(w, r, &input) {
		return
	}

	lead, err := h.uc.Capture(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordLeadCaptured()
	writeJSON(w, http.StatusCreated, CaptureLeadResponse{Success: true, Lead: lead})
}

// Create é o "adicionar lead" do painel; mesmas regras do formulário público,
// sem limite de taxa.
func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CaptureLeadInput
	if !decodeJSON(w, r, &input) {
		return
	}
	lead, err := h.uc.Capture(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, lead)
}

func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	leads := h.uc.List(r.Context(), usecase.LeadQuery{
		Search: q.Get("search"),
		Status: q.Get("status"),
		Tag:    q.Get("tag"),
	})
	writeJSON(w, http.StatusOK, listResponse[entity.Lead]{Items: leads, Total: len(leads)})
}

func (h *LeadHandler) Tags(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"tags": h.uc.Tags(r.Context())})
}

func (h *LeadHandler) Get(w http.ResponseWriter, r *http.Request) {
	lead, err := h.uc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateLeadInput
	if !decodeJSON(w, r, &input) {
		return
	}
	lead, err := h.uc.Update(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Status entity.LeadStatus `json:"status"`
	}
	if !decodeJSON(w, r, &input) {
		return
	}
	lead, err := h.uc.UpdateStatus(r.Context(), chi.URLParam(r, "id"), input.Status)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) ToggleTag(w http.ResponseWriter, r *http.Request) {
	lead, err := h.uc.ToggleTag(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "tag"))
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

// Delete remove o lead e o histórico de CRM dele.
func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.uc.Delete(r.Context(), id); err != nil {
		writeUseCaseError(w, err)
		return
	}
	if h.crm != nil {
		h.crm.Forget(id)
	}
	w.WriteHeader(http.StatusNoContent)
}

// getClientIP usa o primeiro IP do X-Forwarded-For quando houver proxy.
func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

type visitor struct {
	count     int
	lastReset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	now := time.Now()

	if !exists {
		rl.visitors[ip] = &visitor{count: 1, lastReset: now}
		return true
	}

	if now.Sub(v.lastReset) > rl.window {
		v.count = 1
		v.lastReset = now
		return true
	}

	v.count++
	return v.count <= rl.limit
}

// Cleanup roda até done fechar, descartando visitantes inativos.
func (rl *RateLimiter) Cleanup(done <-chan struct{}) {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			rl.mu.Lock()
			now := time.Now()
			for ip, v := range rl.visitors {
				if now.Sub(v.lastReset) > rl.window*2 {
					delete(rl.visitors, ip)
				}
			}
			rl.mu.Unlock()
		}
	}
}
