//go:build unit

package vnpay_test

import (
	"strings"
	"testing"

	"storefront/internal/pkg/vnpay"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleParams() map[string]string {
	return map[string]string{
		"vnp_Version":   "2.1.0",
		"vnp_Command":   "pay",
		"vnp_TmnCode":   "TESTTMN1",
		"vnp_Amount":    "15000000",
		"vnp_CurrCode":  "VND",
		"vnp_TxnRef":    "ORD-2024-0001",
		"vnp_OrderInfo": "Thanh toan don hang ORD-2024-0001",
		"vnp_IpAddr":    "203.0.113.7",
	}
}

func TestCanonicalize(t *testing.T) {
	t.Run("sorts keys byte-wise ascending", func(t *testing.T) {
		got := vnpay.Canonicalize(map[string]string{
			"vnp_TxnRef":  "x",
			"vnp_Amount":  "100",
			"vnp_Command": "pay",
		})
		assert.Equal(t, "vnp_Amount=100&vnp_Command=pay&vnp_TxnRef=x", got)
	})

	t.Run("form-encodes values", func(t *testing.T) {
		got := vnpay.Canonicalize(map[string]string{
			"vnp_OrderInfo": "don hang #1",
		})
		assert.Equal(t, "vnp_OrderInfo=don+hang+%231", got)
	})

	t.Run("excludes signature fields and empty values", func(t *testing.T) {
		got := vnpay.Canonicalize(map[string]string{
			"vnp_Amount":         "100",
			"vnp_BankCode":       "",
			vnpay.FieldSecureHash:     "deadbeef",
			vnpay.FieldSecureHashType: vnpay.HashType,
		})
		assert.Equal(t, "vnp_Amount=100", got)
	})
}

func TestSigner_SignAndVerify(t *testing.T) {
	signer := vnpay.NewSigner("test-hash-secret")

	t.Run("signature is deterministic lowercase hex", func(t *testing.T) {
		first := signer.Sign(sampleParams())
		second := signer.Sign(sampleParams())
		require.Equal(t, first, second)
		assert.Len(t, first, 128) // SHA-512 digest in hex
		assert.Equal(t, strings.ToLower(first), first)
	})

	t.Run("round trip verifies", func(t *testing.T) {
		params := sampleParams()
		hash := signer.Sign(params)
		assert.True(t, signer.Verify(params, hash))
	})

	t.Run("inbound signature fields do not affect verification", func(t *testing.T) {
		params := sampleParams()
		hash := signer.Sign(params)
		params[vnpay.FieldSecureHash] = hash
		params[vnpay.FieldSecureHashType] = vnpay.HashType
		assert.True(t, signer.Verify(params, hash))
	})

	t.Run("tampered hash is rejected", func(t *testing.T) {
		params := sampleParams()
		hash := signer.Sign(params)
		tampered := "0" + hash[1:]
		if tampered == hash {
			tampered = "1" + hash[1:]
		}
		assert.False(t, signer.Verify(params, tampered))
	})

	t.Run("tampered parameter is rejected", func(t *testing.T) {
		params := sampleParams()
		hash := signer.Sign(params)
		params["vnp_Amount"] = "100"
		assert.False(t, signer.Verify(params, hash))
	})

	t.Run("empty hash is rejected", func(t *testing.T) {
		assert.False(t, signer.Verify(sampleParams(), ""))
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		params := sampleParams()
		hash := signer.Sign(params)
		other := vnpay.NewSigner("another-secret")
		assert.False(t, other.Verify(params, hash))
	})
}

func TestSigner_BuildPaymentURL(t *testing.T) {
	signer := vnpay.NewSigner("test-hash-secret")
	params := sampleParams()

	got := signer.BuildPaymentURL("https://sandbox.vnpayment.vn/paymentv2/vpcpay.html", params)

	require.True(t, strings.HasPrefix(got, "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html?"))
	assert.Contains(t, got, "&"+vnpay.FieldSecureHashType+"="+vnpay.HashType)
	assert.Contains(t, got, "&"+vnpay.FieldSecureHash+"="+signer.Sign(params))
	// Signature fields come after the canonical query, never inside it.
	query := got[strings.Index(got, "?")+1:]
	assert.True(t, strings.HasPrefix(query, vnpay.Canonicalize(params)))
}
