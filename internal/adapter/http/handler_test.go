package httpadapter_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpadapter "crowdoo/internal/adapter/http"
	"crowdoo/internal/core/domain"
	"crowdoo/internal/core/port"
	"crowdoo/internal/core/port/mocks"
)

func do(h http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func TestRequireAuth(t *testing.T) {
	auth := mocks.NewMockAuthUseCase(t)
	auth.EXPECT().Authenticate(mock.Anything, "expired").Return(domain.Principal{}, domain.ErrUnauthorized)

	h := httpadapter.NewHandler(httpadapter.Services{Auth: auth}, testLogger).Router()

	rec := do(h, http.MethodGet, "/api/v1/investments/mine", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(h, http.MethodGet, "/api/v1/investments/mine", "expired", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "unauthorized", decodeJSON[map[string]string](t, rec)["code"])
}

func TestCampaignFunding_PrincipalAndMoneyFormat(t *testing.T) {
	owner := domain.Principal{UserID: uuid.New(), Role: domain.RoleEntrepreneur}
	campaignID := uuid.New()

	auth := mocks.NewMockAuthUseCase(t)
	auth.EXPECT().Authenticate(mock.Anything, "owner-token").Return(owner, nil)
	funding := mocks.NewMockFundingUseCase(t)
	funding.EXPECT().CampaignFunding(mock.Anything, owner, campaignID).Return(domain.Funding{
		ConfirmedTotal:  decimal.NewFromInt(500),
		InvestorCount:   1,
		InvestmentCount: 2,
	}, nil)

	h := httpadapter.NewHandler(httpadapter.Services{Auth: auth, Funding: funding}, testLogger).Router()
	rec := do(h, http.MethodGet, "/api/v1/campaigns/"+campaignID.String()+"/funding", "owner-token", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeJSON[map[string]any](t, rec)
	assert.Equal(t, "500.00", body["confirmed_total"])
	assert.EqualValues(t, 1, body["investor_count"])
	assert.EqualValues(t, 2, body["investment_count"])
}

func TestInvalidPathID(t *testing.T) {
	auth := mocks.NewMockAuthUseCase(t)
	auth.EXPECT().Authenticate(mock.Anything, "t").Return(domain.Principal{UserID: uuid.New(), Role: domain.RoleAdmin}, nil)

	h := httpadapter.NewHandler(httpadapter.Services{Auth: auth}, testLogger).Router()
	rec := do(h, http.MethodGet, "/api/v1/investments/not-a-uuid", "t", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestErrorMapping(t *testing.T) {
	investor := domain.Principal{UserID: uuid.New(), Role: domain.RoleInvestor}
	campaignID := uuid.New()

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "ineligible", err: fmt.Errorf("campaign: %w", domain.ErrIneligibleState), status: http.StatusUnprocessableEntity, code: "ineligible_state"},
		{name: "invalid", err: domain.ErrInvalidInput, status: http.StatusBadRequest, code: "invalid_input"},
		{name: "forbidden", err: domain.ErrForbidden, status: http.StatusForbidden, code: "forbidden"},
		{name: "missing", err: domain.ErrNotFound, status: http.StatusNotFound, code: "not_found"},
		{name: "gateway", err: errors.Join(domain.ErrGateway, errors.New("timeout")), status: http.StatusBadGateway, code: "gateway_error"},
		{name: "integrity", err: domain.ErrDataIntegrity, status: http.StatusInternalServerError, code: "internal_error"},
		{name: "duplicate payout", err: fmt.Errorf("campaign: %w", domain.ErrDuplicatePayout), status: http.StatusInternalServerError, code: "internal_error"},
		{name: "conflict", err: domain.ErrConflict, status: http.StatusConflict, code: "conflict"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := mocks.NewMockAuthUseCase(t)
			auth.EXPECT().Authenticate(mock.Anything, "t").Return(investor, nil)
			investments := mocks.NewMockInvestmentUseCase(t)
			investments.EXPECT().
				Invest(mock.Anything, investor, port.InvestInput{CampaignID: campaignID, Amount: decimal.RequireFromString("12.50")}).
				Return(nil, tt.err)

			h := httpadapter.NewHandler(httpadapter.Services{Auth: auth, Investments: investments}, testLogger).Router()
			rec := do(h, http.MethodPost, "/api/v1/investments", "t",
				fmt.Sprintf(`{"campaign_id":%q,"amount":"12.50"}`, campaignID))

			require.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, decodeJSON[map[string]string](t, rec)["code"])
		})
	}
}

func TestInvest_Created(t *testing.T) {
	investor := domain.Principal{UserID: uuid.New(), Role: domain.RoleInvestor}
	inv := domain.Investment{ID: uuid.New(), InvestorID: investor.UserID, CampaignID: uuid.New(), Amount: decimal.NewFromInt(100), Status: domain.InvestmentPending}
	tx := domain.Transaction{ID: uuid.New(), Amount: decimal.NewFromInt(100), Fee: decimal.NewFromInt(1), Currency: "PLN", Type: domain.TransactionDeposit, Status: domain.TransactionPending}

	auth := mocks.NewMockAuthUseCase(t)
	auth.EXPECT().Authenticate(mock.Anything, "t").Return(investor, nil)
	investments := mocks.NewMockInvestmentUseCase(t)
	investments.EXPECT().Invest(mock.Anything, investor, mock.Anything).
		Return(&port.InvestResult{Investment: inv, Transaction: tx, PaymentURL: "https://pay.example/1"}, nil)

	h := httpadapter.NewHandler(httpadapter.Services{Auth: auth, Investments: investments}, testLogger).Router()
	rec := do(h, http.MethodPost, "/api/v1/investments", "t", fmt.Sprintf(`{"campaign_id":%q,"amount":100}`, inv.CampaignID))

	require.Equal(t, http.StatusCreated, rec.Code)
	var body struct {
		Investment struct {
			Status string `json:"status"`
			Amount string `json:"amount"`
		} `json:"investment"`
		Transaction struct {
			Fee string `json:"fee"`
		} `json:"transaction"`
		PaymentURL string `json:"payment_url"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "pending", body.Investment.Status)
	assert.Equal(t, "100.00", body.Investment.Amount)
	assert.Equal(t, "1.00", body.Transaction.Fee)
	assert.Equal(t, "https://pay.example/1", body.PaymentURL)
}

func TestLogin_LockedOut(t *testing.T) {
	auth := mocks.NewMockAuthUseCase(t)
	auth.EXPECT().Login(mock.Anything, "ala@example.com", "nope").
		Return(nil, errors.Join(domain.ErrInvalidCredentials, domain.ErrLockedOut))

	h := httpadapter.NewHandler(httpadapter.Services{Auth: auth}, testLogger).Router()
	rec := do(h, http.MethodPost, "/api/v1/auth/login", "", `{"email":"ala@example.com","password":"nope"}`)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestLogin_RejectsUnknownFields(t *testing.T) {
	h := httpadapter.NewHandler(httpadapter.Services{Auth: mocks.NewMockAuthUseCase(t)}, testLogger).Router()
	rec := do(h, http.MethodPost, "/api/v1/auth/login", "", `{"email":"a@example.com","password":"x","admin":true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGeneratePayouts_DuplicateIsServerError(t *testing.T) {
	admin := domain.Principal{UserID: uuid.New(), Role: domain.RoleAdmin}
	asOf := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	created := domain.Payout{
		ID:           uuid.New(),
		CampaignID:   uuid.New(),
		TotalRaised:  decimal.NewFromInt(500),
		PayoutAmount: decimal.NewFromInt(500),
		PayoutDate:   time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		Status:       domain.PayoutPending,
	}

	auth := mocks.NewMockAuthUseCase(t)
	auth.EXPECT().Authenticate(mock.Anything, "t").Return(admin, nil)
	payouts := mocks.NewMockPayoutUseCase(t)
	payouts.EXPECT().GenerateDuePayouts(mock.Anything, admin, mock.MatchedBy(asOf.Equal)).
		Return([]domain.Payout{created}, errors.Join(fmt.Errorf("campaign x: %w", domain.ErrDuplicatePayout)))

	h := httpadapter.NewHandler(httpadapter.Services{Auth: auth, Payouts: payouts}, testLogger).Router()
	rec := do(h, http.MethodPost, "/api/v1/payouts/generate", "t", `{"as_of":"2025-01-15T00:00:00Z"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body struct {
		Created []struct {
			PayoutDate   string `json:"payout_date"`
			PayoutAmount string `json:"payout_amount"`
		} `json:"created"`
		Errors []string `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body.Created, 1)
	assert.Equal(t, "2025-01-10", body.Created[0].PayoutDate)
	assert.Equal(t, "500.00", body.Created[0].PayoutAmount)
	require.Len(t, body.Errors, 1)
	assert.Contains(t, body.Errors[0], "campaign x")
}

func TestGeneratePayouts_Forbidden(t *testing.T) {
	founder := domain.Principal{UserID: uuid.New(), Role: domain.RoleEntrepreneur}
	auth := mocks.NewMockAuthUseCase(t)
	auth.EXPECT().Authenticate(mock.Anything, "t").Return(founder, nil)
	payouts := mocks.NewMockPayoutUseCase(t)
	payouts.EXPECT().GenerateDuePayouts(mock.Anything, founder, time.Time{}).Return(nil, domain.ErrForbidden)

	h := httpadapter.NewHandler(httpadapter.Services{Auth: auth, Payouts: payouts}, testLogger).Router()
	rec := do(h, http.MethodPost, "/api/v1/payouts/generate", "t", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestListActiveCampaigns_Public(t *testing.T) {
	campaigns := mocks.NewMockCampaignUseCase(t)
	campaigns.EXPECT().
		ListActiveCampaigns(mock.Anything, port.CampaignQuery{Category: "tech", Page: port.Page{Limit: 5}}).
		Return(nil, nil)

	h := httpadapter.NewHandler(httpadapter.Services{Campaigns: campaigns}, testLogger).Router()
	rec := do(h, http.MethodGet, "/api/v1/campaigns?category=tech&limit=5", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCurrentUser(t *testing.T) {
	user := domain.User{ID: uuid.New(), Email: "ala@example.com", PasswordHash: "hash", Role: domain.RoleInvestor}
	auth := mocks.NewMockAuthUseCase(t)
	auth.EXPECT().Authenticate(mock.Anything, "t").Return(user.Principal(), nil)
	auth.EXPECT().CurrentUser(mock.Anything, user.Principal()).Return(&user, nil)

	h := httpadapter.NewHandler(httpadapter.Services{Auth: auth}, testLogger).Router()
	rec := do(h, http.MethodGet, "/api/v1/auth/me", "t", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeJSON[map[string]any](t, rec)
	assert.Equal(t, "ala@example.com", body["email"])
	assert.Equal(t, "investor", body["role"])
	assert.NotContains(t, body, "password_hash")
}

func TestCampaignInvestments_IncludesPending(t *testing.T) {
	founder := domain.Principal{UserID: uuid.New(), Role: domain.RoleEntrepreneur}
	campaignID := uuid.New()
	pending := domain.Investment{
		ID:         uuid.New(),
		CampaignID: campaignID,
		Amount:     decimal.RequireFromString("70"),
		Status:     domain.InvestmentPending,
	}

	auth := mocks.NewMockAuthUseCase(t)
	auth.EXPECT().Authenticate(mock.Anything, "t").Return(founder, nil)
	investments := mocks.NewMockInvestmentUseCase(t)
	investments.EXPECT().CampaignInvestments(mock.Anything, founder, campaignID, port.Page{Limit: 20}).
		Return([]domain.Investment{pending}, nil)

	h := httpadapter.NewHandler(httpadapter.Services{Auth: auth, Investments: investments}, testLogger).Router()
	rec := do(h, http.MethodGet, "/api/v1/investments/campaign/"+campaignID.String()+"?limit=20", "t", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeJSON[[]map[string]any](t, rec)
	require.Len(t, body, 1)
	assert.Equal(t, "pending", body[0]["status"])
	assert.Equal(t, "70.00", body[0]["amount"])
}

func TestAdminUsers(t *testing.T) {
	operator := domain.Principal{UserID: uuid.New(), Role: domain.RoleAdmin}
	investor := domain.Principal{UserID: uuid.New(), Role: domain.RoleInvestor}
	listed := domain.User{ID: uuid.New(), Email: "ola@example.com", Role: domain.RoleEntrepreneur}

	auth := mocks.NewMockAuthUseCase(t)
	auth.EXPECT().Authenticate(mock.Anything, "admin").Return(operator, nil)
	auth.EXPECT().Authenticate(mock.Anything, "investor").Return(investor, nil)
	admin := mocks.NewMockAdminUseCase(t)
	admin.EXPECT().ListUsers(mock.Anything, operator, port.Page{Limit: 10, Offset: 10}).Return([]domain.User{listed}, nil)
	admin.EXPECT().ListUsers(mock.Anything, investor, port.Page{}).Return(nil, domain.ErrForbidden)

	h := httpadapter.NewHandler(httpadapter.Services{Auth: auth, Admin: admin}, testLogger).Router()

	rec := do(h, http.MethodGet, "/api/v1/admin/users?limit=10&offset=10", "admin", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeJSON[[]map[string]any](t, rec)
	require.Len(t, body, 1)
	assert.Equal(t, "ola@example.com", body[0]["email"])

	rec = do(h, http.MethodGet, "/api/v1/admin/users", "investor", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
