package vnpay

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"net/url"
)

// Protocol field names that never participate in the signature.
const (
	FieldSecureHash     = "vnp_SecureHash"
	FieldSecureHashType = "vnp_SecureHashType"

	HashType = "HmacSHA512"
)

// Signer produces and verifies VNPay request signatures: parameters are
// canonicalized (signature fields excluded, keys sorted byte-wise ascending,
// form-encoded) and HMAC-SHA512 signed with the merchant secret.
type Signer struct {
	secret []byte
}

func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

// Canonicalize returns the exact byte string both sides sign. Empty values
// are skipped, matching the gateway's own canonicalization.
func Canonicalize(params map[string]string) string {
	values := url.Values{}
	for k, v := range params {
		if k == FieldSecureHash || k == FieldSecureHashType {
			continue
		}
		if v == "" {
			continue
		}
		values.Set(k, v)
	}
	// url.Values.Encode sorts keys and form-encodes values (space as '+').
	return values.Encode()
}

// Sign computes the lowercase-hex HMAC-SHA512 of the canonical string.
func (s *Signer) Sign(params map[string]string) string {
	mac := hmac.New(sha512.New, s.secret)
	mac.Write([]byte(Canonicalize(params)))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify recomputes the signature from params and compares it to the supplied
// hash in constant time. A mismatch means the request is unauthenticated.
func (s *Signer) Verify(params map[string]string, gotHash string) bool {
	if gotHash == "" {
		return false
	}
	want := s.Sign(params)
	return hmac.Equal([]byte(want), []byte(gotHash))
}

// BuildPaymentURL assembles the redirect URL: canonical query plus the
// computed signature fields appended last.
func (s *Signer) BuildPaymentURL(baseURL string, params map[string]string) string {
	query := Canonicalize(params)
	hash := s.Sign(params)
	return baseURL + "?" + query +
		"&" + FieldSecureHashType + "=" + HashType +
		"&" + FieldSecureHash + "=" + hash
}
