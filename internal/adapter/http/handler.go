package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"crowdoo/internal/core/port"
)

// Services groups the inbound ports served over HTTP.
type Services struct {
	Auth           port.AuthUseCase
	Campaigns      port.CampaignUseCase
	Investments    port.InvestmentUseCase
	Funding        port.FundingUseCase
	Payouts        port.PayoutUseCase
	Reconciliation port.ReconciliationUseCase
	Admin          port.AdminUseCase
}

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP: requests are decoded, the principal is resolved from the bearer
// token and the matching use case is invoked. Routes are registered on a
// chi.Router.
type Handler struct {
	svc    Services
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. The payment
// notification endpoint and the public campaign feed are the only routes
// reachable without a bearer token.
func NewHandler(svc Services, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/payments/notify", h.handlePaymentNotification)

		r.Post("/auth/register", h.handleRegister)
		r.Post("/auth/login", h.handleLogin)

		r.Get("/campaigns", h.handleListActiveCampaigns)
		r.Get("/campaigns/{id}", h.handleGetCampaign)

		r.Group(func(r chi.Router) {
			r.Use(h.requireAuth)

			r.Get("/auth/me", h.handleCurrentUser)

			r.Post("/campaigns", h.handleCreateCampaign)
			r.Get("/campaigns/mine", h.handleListMyCampaigns)
			r.Put("/campaigns/{id}", h.handleUpdateCampaign)
			r.Patch("/campaigns/{id}/status", h.handleSetCampaignStatus)
			r.Post("/campaigns/{id}/close", h.handleCloseCampaign)
			r.Delete("/campaigns/{id}", h.handleDeleteCampaign)
			r.Get("/campaigns/{id}/funding", h.handleCampaignFunding)
			r.Get("/campaigns/{id}/investors", h.handleCampaignInvestors)
			r.Get("/campaigns/{id}/payouts", h.handleCampaignPayouts)

			r.Post("/investments", h.handleInvest)
			r.Get("/investments/mine", h.handleListMyInvestments)
			r.Get("/investments/history", h.handleInvestmentHistory)
			r.Get("/investments/stats", h.handleInvestorStats)
			r.Get("/investments/campaign/{id}", h.handleCampaignInvestments)
			r.Get("/investments/{id}", h.handleGetInvestment)

			r.Get("/transactions/mine", h.handleListMyTransactions)
			r.Get("/transactions/{id}", h.handleGetTransaction)

			r.Get("/payouts", h.handleListPayouts)
			r.Get("/payouts/mine", h.handleListMyPayouts)
			r.Post("/payouts/generate", h.handleGeneratePayouts)
			r.Patch("/payouts/{id}/status", h.handleSetPayoutStatus)

			r.Route("/admin", func(r chi.Router) {
				r.Get("/users", h.handleAdminUsers)
				r.Get("/campaigns", h.handleAdminCampaigns)
				r.Get("/investments", h.handleAdminInvestments)
				r.Get("/transactions", h.handleAdminTransactions)
			})
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
