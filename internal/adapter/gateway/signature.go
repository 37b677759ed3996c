package gateway

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"strings"

	"crowdoo/internal/core/domain"
	"crowdoo/internal/core/port"
)

const (
	AlgorithmMD5    = "md5"
	AlgorithmSHA256 = "sha256"
)

// Verifier checks TPay notification checksums:
// hex(H(id + tr_id + tr_amount + tr_crc + security_code)).
type Verifier struct {
	merchantID   string
	securityCode string
	newHash      func() hash.Hash
}

var _ port.NotificationVerifier = (*Verifier)(nil)

// NewVerifier returns a verifier for the given algorithm. An empty
// merchantID accepts notifications for any merchant.
func NewVerifier(merchantID, securityCode, algorithm string) (*Verifier, error) {
	if securityCode == "" {
		return nil, fmt.Errorf("gateway security code is required")
	}
	newHash, err := hashFor(algorithm)
	if err != nil {
		return nil, err
	}
	return &Verifier{merchantID: merchantID, securityCode: securityCode, newHash: newHash}, nil
}

func hashFor(algorithm string) (func() hash.Hash, error) {
	switch strings.ToLower(algorithm) {
	case AlgorithmMD5, "":
		return md5.New, nil
	case AlgorithmSHA256:
		return sha256.New, nil
	default:
		return nil, fmt.Errorf("unsupported signature algorithm %q", algorithm)
	}
}

// Verify returns domain.ErrInvalidSignature unless the checksum matches.
func (v *Verifier) Verify(n port.GatewayNotification) error {
	if v.merchantID != "" && n.MerchantID != v.merchantID {
		return fmt.Errorf("merchant %q: %w", n.MerchantID, domain.ErrInvalidSignature)
	}
	expected := v.Sign(n.MerchantID, n.TransactionID, n.Amount, n.CRC)
	got := strings.ToLower(strings.TrimSpace(n.Signature))
	if !hmac.Equal([]byte(expected), []byte(got)) {
		return domain.ErrInvalidSignature
	}
	return nil
}

// Sign computes the checksum the gateway is expected to send.
func (v *Verifier) Sign(parts ...string) string {
	h := v.newHash()
	for _, p := range parts {
		h.Write([]byte(p))
	}
	h.Write([]byte(v.securityCode))
	return hex.EncodeToString(h.Sum(nil))
}
