package httpadapter

import (
	"net/http"
	"strings"

	"crowdoo/internal/core/domain"
	"crowdoo/internal/core/port"
)

// handleListActiveCampaigns is the public feed. It accepts optional
// `category`, `region`, `limit` and `offset` query parameters.
func (h *Handler) handleListActiveCampaigns(w http.ResponseWriter, r *http.Request) {
	page, err := pageFrom(r)
	if err != nil {
		h.writeDomainError(w, r, "list campaigns", err)
		return
	}
	q := r.URL.Query()
	campaigns, err := h.svc.Campaigns.ListActiveCampaigns(r.Context(), port.CampaignQuery{
		Category: strings.TrimSpace(q.Get("category")),
		Region:   strings.TrimSpace(q.Get("region")),
		Page:     page,
	})
	if err != nil {
		h.writeDomainError(w, r, "list campaigns", err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(campaigns, toCampaign))
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeDomainError(w, r, "get campaign", err)
		return
	}
	c, err := h.svc.Campaigns.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeDomainError(w, r, "get campaign", err)
		return
	}
	writeJSON(w, http.StatusOK, toCampaign(*c))
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req campaignRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", err.Error())
		return
	}
	c, err := h.svc.Campaigns.CreateCampaign(r.Context(), principalFrom(r.Context()), req.input())
	if err != nil {
		h.writeDomainError(w, r, "create campaign", err)
		return
	}
	writeJSON(w, http.StatusCreated, toCampaign(*c))
}

func (h *Handler) handleListMyCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.svc.Campaigns.ListMyCampaigns(r.Context(), principalFrom(r.Context()))
	if err != nil {
		h.writeDomainError(w, r, "list my campaigns", err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(campaigns, toCampaign))
}

func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeDomainError(w, r, "update campaign", err)
		return
	}
	var req campaignRequest
	if err = decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", err.Error())
		return
	}
	c, err := h.svc.Campaigns.UpdateCampaign(r.Context(), principalFrom(r.Context()), id, req.input())
	if err != nil {
		h.writeDomainError(w, r, "update campaign", err)
		return
	}
	writeJSON(w, http.StatusOK, toCampaign(*c))
}

func (h *Handler) handleSetCampaignStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeDomainError(w, r, "set campaign status", err)
		return
	}
	var req statusRequest
	if err = decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", err.Error())
		return
	}
	c, err := h.svc.Campaigns.SetCampaignStatus(r.Context(), principalFrom(r.Context()), id, domain.CampaignStatus(req.Status))
	if err != nil {
		h.writeDomainError(w, r, "set campaign status", err)
		return
	}
	writeJSON(w, http.StatusOK, toCampaign(*c))
}

func (h *Handler) handleCloseCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeDomainError(w, r, "close campaign", err)
		return
	}
	c, err := h.svc.Campaigns.CloseCampaign(r.Context(), principalFrom(r.Context()), id)
	if err != nil {
		h.writeDomainError(w, r, "close campaign", err)
		return
	}
	writeJSON(w, http.StatusOK, toCampaign(*c))
}

func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeDomainError(w, r, "delete campaign", err)
		return
	}
	if err = h.svc.Campaigns.DeleteCampaign(r.Context(), principalFrom(r.Context()), id); err != nil {
		h.writeDomainError(w, r, "delete campaign", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleCampaignFunding returns the confirmed funding aggregate.
func (h *Handler) handleCampaignFunding(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeDomainError(w, r, "campaign funding", err)
		return
	}
	f, err := h.svc.Funding.CampaignFunding(r.Context(), principalFrom(r.Context()), id)
	if err != nil {
		h.writeDomainError(w, r, "campaign funding", err)
		return
	}
	writeJSON(w, http.StatusOK, fundingResponse{
		CampaignID:      id,
		ConfirmedTotal:  money(f.ConfirmedTotal),
		InvestorCount:   f.InvestorCount,
		InvestmentCount: f.InvestmentCount,
	})
}

func (h *Handler) handleCampaignInvestors(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeDomainError(w, r, "campaign investors", err)
		return
	}
	investors, err := h.svc.Campaigns.CampaignInvestors(r.Context(), principalFrom(r.Context()), id)
	if err != nil {
		h.writeDomainError(w, r, "campaign investors", err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(investors, func(ci domain.CampaignInvestor) campaignInvestorResponse {
		return campaignInvestorResponse{
			InvestorID:   ci.InvestorID,
			Email:        ci.Email,
			InvestmentID: ci.InvestmentID,
			Amount:       money(ci.Amount),
			Status:       string(ci.Status),
			CreatedAt:    ci.CreatedAt,
		}
	}))
}
