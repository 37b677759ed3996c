package httpadapter

import (
	"net/http"

	"crowdoo/internal/core/domain"
	"crowdoo/internal/core/port"
)

// handleInvest opens a pending investment and returns the gateway payment
// URL the investor must visit. Confirmed funding only changes once the
// gateway notification arrives.
func (h *Handler) handleInvest(w http.ResponseWriter, r *http.Request) {
	var req investRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", err.Error())
		return
	}
	res, err := h.svc.Investments.Invest(r.Context(), principalFrom(r.Context()), port.InvestInput{
		CampaignID: req.CampaignID,
		Amount:     req.Amount,
	})
	if err != nil {
		h.writeDomainError(w, r, "invest", err)
		return
	}
	writeJSON(w, http.StatusCreated, investResponse{
		Investment:  toInvestment(res.Investment),
		Transaction: toTransaction(res.Transaction, res.Investment.ID),
		PaymentURL:  res.PaymentURL,
	})
}

func (h *Handler) handleListMyInvestments(w http.ResponseWriter, r *http.Request) {
	investments, err := h.svc.Investments.ListMyInvestments(r.Context(), principalFrom(r.Context()))
	if err != nil {
		h.writeDomainError(w, r, "list my investments", err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(investments, toInvestment))
}

func (h *Handler) handleCampaignInvestments(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeDomainError(w, r, "campaign investments", err)
		return
	}
	page, err := pageFrom(r)
	if err != nil {
		h.writeDomainError(w, r, "campaign investments", err)
		return
	}
	investments, err := h.svc.Investments.CampaignInvestments(r.Context(), principalFrom(r.Context()), id, page)
	if err != nil {
		h.writeDomainError(w, r, "campaign investments", err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(investments, toInvestment))
}

func (h *Handler) handleInvestmentHistory(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		h.writeDomainError(w, r, "investment history", err)
		return
	}
	items, err := h.svc.Investments.InvestmentHistory(r.Context(), principalFrom(r.Context()), limit)
	if err != nil {
		h.writeDomainError(w, r, "investment history", err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(items, func(it domain.InvestmentHistoryItem) historyResponse {
		return historyResponse{
			investmentResponse: toInvestment(it.Investment),
			CampaignTitle:      it.CampaignTitle,
			CampaignStatus:     string(it.CampaignStatus),
		}
	}))
}

func (h *Handler) handleInvestorStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Investments.MyStats(r.Context(), principalFrom(r.Context()))
	if err != nil {
		h.writeDomainError(w, r, "investor stats", err)
		return
	}
	writeJSON(w, http.StatusOK, investorStatsResponse{Count: stats.Count, TotalAmount: money(stats.TotalAmount)})
}

func (h *Handler) handleGetInvestment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeDomainError(w, r, "get investment", err)
		return
	}
	inv, err := h.svc.Investments.GetInvestment(r.Context(), principalFrom(r.Context()), id)
	if err != nil {
		h.writeDomainError(w, r, "get investment", err)
		return
	}
	writeJSON(w, http.StatusOK, toInvestment(*inv))
}

func toInvestorTransaction(t domain.InvestorTransaction) transactionResponse {
	return toTransaction(t.Transaction, t.InvestmentID)
}

func (h *Handler) handleListMyTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.svc.Investments.ListMyTransactions(r.Context(), principalFrom(r.Context()))
	if err != nil {
		h.writeDomainError(w, r, "list my transactions", err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(txs, toInvestorTransaction))
}

func (h *Handler) handleGetTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeDomainError(w, r, "get transaction", err)
		return
	}
	tx, err := h.svc.Investments.GetTransaction(r.Context(), principalFrom(r.Context()), id)
	if err != nil {
		h.writeDomainError(w, r, "get transaction", err)
		return
	}
	writeJSON(w, http.StatusOK, toInvestorTransaction(*tx))
}
