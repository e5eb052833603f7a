package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

var ErrInvalidSignature = errors.New("invalid signature")

// Sign returns the hex HMAC-SHA256 of body under secret, the form the
// provider sends in the webhook signature header.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Verify checks signature against the raw body. Every failure mode returns
// the same error.
func (v *Verifier) Verify(body []byte, signature string) error {
	if signature == "" || len(v.secret) == 0 {
		return ErrInvalidSignature
	}
	got, err := hex.DecodeString(signature)
	if err != nil {
		return ErrInvalidSignature
	}

	mac := hmac.New(sha256.New, v.secret)
	mac.Write(body)
	if !hmac.Equal(got, mac.Sum(nil)) {
		return ErrInvalidSignature
	}
	return nil
}

// VerifyCheckoutSignature checks the signature the provider's checkout UI
// hands to the client on success: HMAC-SHA256("<intentID>|<paymentID>").
func VerifyCheckoutSignature(keySecret, intentID, paymentID, signature string) bool {
	if intentID == "" || paymentID == "" || signature == "" {
		return false
	}
	return NewVerifier(keySecret).Verify([]byte(intentID+"|"+paymentID), signature) == nil
}
