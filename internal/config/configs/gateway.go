package configs

import (
	"time"

	"github.com/shopspring/decimal"
)

// Gateway configures the TPay-style payment gateway. MerchantID and
// SecurityCode take part in every notification signature; the rest is used
// when opening payment sessions.
type Gateway struct {
	MerchantID   string `env:"MERCHANT_ID"`
	SecurityCode string `env:"SECURITY_CODE"`
	// SignatureAlgorithm is "md5" (TPay legacy notifications) or "sha256".
	SignatureAlgorithm string `env:"SIGNATURE_ALGORITHM" envDefault:"md5"`
	APIURL             string `env:"API_URL" envDefault:"https://secure.snd.tpay.com/api/gw"`
	APIKey             string `env:"API_KEY"`
	APIPassword        string `env:"API_PASSWORD"`
	// ResultURL is where the gateway posts notifications.
	ResultURL string `env:"RESULT_URL"`
	// ReturnURL is where the payer is redirected after paying.
	ReturnURL string `env:"RETURN_URL"`
	Currency  string `env:"CURRENCY" envDefault:"PLN"`
	// FeePercent is the platform fee taken from each deposit.
	FeePercent decimal.Decimal `env:"FEE_PERCENT" envDefault:"1"`
	// ConfirmedCodes lists tr_status values that mean the payment is settled.
	ConfirmedCodes []string      `env:"CONFIRMED_CODES" envSeparator:"," envDefault:"TRUE"`
	Timeout        time.Duration `env:"TIMEOUT" envDefault:"10s"`
}
