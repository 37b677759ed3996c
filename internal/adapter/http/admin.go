package httpadapter

import (
	"net/http"
)

func (h *Handler) handleAdminUsers(w http.ResponseWriter, r *http.Request) {
	page, err := pageFrom(r)
	if err != nil {
		h.writeDomainError(w, r, "admin users", err)
		return
	}
	users, err := h.svc.Admin.ListUsers(r.Context(), principalFrom(r.Context()), page)
	if err != nil {
		h.writeDomainError(w, r, "admin users", err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(users, toUser))
}

func (h *Handler) handleAdminCampaigns(w http.ResponseWriter, r *http.Request) {
	page, err := pageFrom(r)
	if err != nil {
		h.writeDomainError(w, r, "admin campaigns", err)
		return
	}
	campaigns, err := h.svc.Admin.ListCampaigns(r.Context(), principalFrom(r.Context()), page)
	if err != nil {
		h.writeDomainError(w, r, "admin campaigns", err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(campaigns, toCampaign))
}

func (h *Handler) handleAdminInvestments(w http.ResponseWriter, r *http.Request) {
	page, err := pageFrom(r)
	if err != nil {
		h.writeDomainError(w, r, "admin investments", err)
		return
	}
	investments, err := h.svc.Admin.ListInvestments(r.Context(), principalFrom(r.Context()), page)
	if err != nil {
		h.writeDomainError(w, r, "admin investments", err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(investments, toInvestment))
}

func (h *Handler) handleAdminTransactions(w http.ResponseWriter, r *http.Request) {
	page, err := pageFrom(r)
	if err != nil {
		h.writeDomainError(w, r, "admin transactions", err)
		return
	}
	txs, err := h.svc.Admin.ListTransactions(r.Context(), principalFrom(r.Context()), page)
	if err != nil {
		h.writeDomainError(w, r, "admin transactions", err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(txs, toInvestorTransaction))
}
