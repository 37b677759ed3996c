package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"crowdoo/internal/config/configs"
	"crowdoo/internal/core/domain"
	"crowdoo/internal/core/port"
)

// Client opens payment sessions through the TPay transaction API. The
// investment id is sent as crc and comes back in every notification.
type Client struct {
	cfg    configs.Gateway
	http   *http.Client
	signer *Verifier
}

var _ port.PaymentGateway = (*Client)(nil)

// NewClient builds a client. httpClient may be nil.
func NewClient(cfg configs.Gateway, signer *Verifier, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{cfg: cfg, http: httpClient, signer: signer}
}

type createResponse struct {
	Result int    `json:"result"`
	Title  string `json:"title"`
	URL    string `json:"url"`
	Err    string `json:"err"`
}

// CreateSession registers the payment and returns the payer's redirect URL.
func (c *Client) CreateSession(ctx context.Context, req port.PaymentSessionReq) (*port.PaymentSession, error) {
	amount := req.Amount.StringFixed(2)
	crc := req.InvestmentID.String()

	form := url.Values{}
	form.Set("id", c.cfg.MerchantID)
	form.Set("amount", amount)
	form.Set("description", req.Description)
	form.Set("crc", crc)
	form.Set("md5sum", c.signer.Sign(c.cfg.MerchantID, amount, crc))
	form.Set("email", req.PayerEmail)
	form.Set("result_url", c.cfg.ResultURL)
	form.Set("return_url", c.cfg.ReturnURL)
	form.Set("api_password", c.cfg.APIPassword)
	form.Set("json", "1")

	endpoint := strings.TrimRight(c.cfg.APIURL, "/") + "/" + url.PathEscape(c.cfg.APIKey) + "/transaction/create"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGateway, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", domain.ErrGateway, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrGateway, resp.StatusCode)
	}

	var out createResponse
	if err = json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrGateway, err)
	}
	if out.Result != 1 || out.URL == "" {
		return nil, fmt.Errorf("%w: rejected: %s", domain.ErrGateway, out.Err)
	}
	return &port.PaymentSession{GatewayTransactionID: out.Title, PaymentURL: out.URL}, nil
}
