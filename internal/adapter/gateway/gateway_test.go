package gateway_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdoo/internal/adapter/gateway"
	"crowdoo/internal/config/configs"
	"crowdoo/internal/core/domain"
	"crowdoo/internal/core/port"
)

func signedNotification(v *gateway.Verifier) port.GatewayNotification {
	n := port.GatewayNotification{
		MerchantID:    "1010",
		TransactionID: "TR-BRA-1",
		CRC:           "2b7c0f5e-8a61-4c3e-9d7e-2d5d5b4a9f10",
		Amount:        "500.00",
		Paid:          "500.00",
		Status:        "TRUE",
	}
	n.Signature = v.Sign(n.MerchantID, n.TransactionID, n.Amount, n.CRC)
	return n
}

func TestVerifier_MD5KnownChecksum(t *testing.T) {
	v, err := gateway.NewVerifier("", "demo", gateway.AlgorithmMD5)
	require.NoError(t, err)
	// md5("1TR-11.00abcdemo")
	assert.Equal(t, "b88fa2fd0d39b130def51cb0371566d0", v.Sign("1", "TR-1", "1.00", "abc"))
}

func TestVerifier_AcceptsValidSignature(t *testing.T) {
	for _, alg := range []string{gateway.AlgorithmMD5, gateway.AlgorithmSHA256} {
		t.Run(alg, func(t *testing.T) {
			v, err := gateway.NewVerifier("1010", "secret", alg)
			require.NoError(t, err)
			assert.NoError(t, v.Verify(signedNotification(v)))
		})
	}
}

func TestVerifier_RejectsTampering(t *testing.T) {
	v, err := gateway.NewVerifier("1010", "secret", gateway.AlgorithmMD5)
	require.NoError(t, err)

	n := signedNotification(v)
	n.Amount = "5000.00"
	assert.ErrorIs(t, v.Verify(n), domain.ErrInvalidSignature)

	n = signedNotification(v)
	n.Signature = ""
	assert.ErrorIs(t, v.Verify(n), domain.ErrInvalidSignature)

	n = signedNotification(v)
	n.MerchantID = "2020"
	assert.ErrorIs(t, v.Verify(n), domain.ErrInvalidSignature)
}

func TestNewVerifier_Validation(t *testing.T) {
	_, err := gateway.NewVerifier("1", "", gateway.AlgorithmMD5)
	assert.Error(t, err)
	_, err = gateway.NewVerifier("1", "code", "crc32")
	assert.Error(t, err)
}

func TestClient_CreateSession(t *testing.T) {
	investmentID := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/key/transaction/create", r.URL.Path)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "500.00", r.PostForm.Get("amount"))
		assert.Equal(t, investmentID.String(), r.PostForm.Get("crc"))
		assert.NotEmpty(t, r.PostForm.Get("md5sum"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":1,"title":"TR-XYZ","url":"https://pay.example/TR-XYZ"}`))
	}))
	defer srv.Close()

	cfg := configs.Gateway{MerchantID: "1010", SecurityCode: "secret", APIURL: srv.URL, APIKey: "key"}
	v, err := gateway.NewVerifier(cfg.MerchantID, cfg.SecurityCode, gateway.AlgorithmMD5)
	require.NoError(t, err)
	c := gateway.NewClient(cfg, v, srv.Client())

	sess, err := c.CreateSession(context.Background(), port.PaymentSessionReq{
		InvestmentID: investmentID,
		Amount:       decimal.RequireFromString("500"),
		Currency:     "PLN",
	})
	require.NoError(t, err)
	assert.Equal(t, "TR-XYZ", sess.GatewayTransactionID)
	assert.Equal(t, "https://pay.example/TR-XYZ", sess.PaymentURL)
}

func TestClient_CreateSessionRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result":0,"err":"ERR44"}`))
	}))
	defer srv.Close()

	cfg := configs.Gateway{MerchantID: "1010", SecurityCode: "secret", APIURL: srv.URL, APIKey: "key"}
	v, _ := gateway.NewVerifier(cfg.MerchantID, cfg.SecurityCode, gateway.AlgorithmMD5)
	_, err := gateway.NewClient(cfg, v, srv.Client()).CreateSession(context.Background(), port.PaymentSessionReq{
		InvestmentID: uuid.New(),
		Amount:       decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrGateway)
}
