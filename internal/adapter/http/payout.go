package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"crowdoo/internal/core/domain"
)

type generatePayoutsResponse struct {
	Created []payoutResponse `json:"created"`
	Errors  []string         `json:"errors,omitempty"`
}

// handleGeneratePayouts runs the payout scheduler once. Per-campaign
// failures are server errors; the payouts that were created are still
// listed next to them.
func (h *Handler) handleGeneratePayouts(w http.ResponseWriter, r *http.Request) {
	var req generatePayoutsRequest
	if r.ContentLength > 0 {
		if err := decodeBody(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_input", err.Error())
			return
		}
	}
	var asOf time.Time
	if req.AsOf != nil {
		asOf = *req.AsOf
	}

	created, err := h.svc.Payouts.GenerateDuePayouts(r.Context(), principalFrom(r.Context()), asOf)
	if err != nil && created == nil {
		h.writeDomainError(w, r, "generate payouts", err)
		return
	}
	resp := generatePayoutsResponse{Created: mapSlice(created, toPayout)}
	if err == nil {
		writeJSON(w, http.StatusOK, resp)
		return
	}
	status, _ := mapDomainError(err)
	h.logger.ErrorContext(r.Context(), "payout generation incomplete",
		slog.Int("status", status),
		slog.Int("created", len(created)),
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.Any("error", err))
	resp.Errors = joinedMessages(err)
	writeJSON(w, status, resp)
}

func joinedMessages(err error) []string {
	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) {
		return []string{err.Error()}
	}
	msgs := make([]string, 0, len(joined.Unwrap()))
	for _, e := range joined.Unwrap() {
		msgs = append(msgs, e.Error())
	}
	return msgs
}

func (h *Handler) handleSetPayoutStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeDomainError(w, r, "set payout status", err)
		return
	}
	var req statusRequest
	if err = decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", err.Error())
		return
	}
	p, err := h.svc.Payouts.SetPayoutStatus(r.Context(), principalFrom(r.Context()), id, domain.PayoutStatus(req.Status), req.Note)
	if err != nil {
		h.writeDomainError(w, r, "set payout status", err)
		return
	}
	writeJSON(w, http.StatusOK, toPayout(*p))
}

func (h *Handler) handleListPayouts(w http.ResponseWriter, r *http.Request) {
	page, err := pageFrom(r)
	if err != nil {
		h.writeDomainError(w, r, "list payouts", err)
		return
	}
	payouts, err := h.svc.Payouts.ListPayouts(r.Context(), principalFrom(r.Context()), page)
	if err != nil {
		h.writeDomainError(w, r, "list payouts", err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(payouts, toPayout))
}

func (h *Handler) handleListMyPayouts(w http.ResponseWriter, r *http.Request) {
	payouts, err := h.svc.Payouts.ListMyPayouts(r.Context(), principalFrom(r.Context()))
	if err != nil {
		h.writeDomainError(w, r, "list my payouts", err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(payouts, toPayout))
}

func (h *Handler) handleCampaignPayouts(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeDomainError(w, r, "campaign payouts", err)
		return
	}
	payouts, err := h.svc.Payouts.ListCampaignPayouts(r.Context(), principalFrom(r.Context()), id)
	if err != nil {
		h.writeDomainError(w, r, "campaign payouts", err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(payouts, toPayout))
}
