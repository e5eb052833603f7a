package payment_test

import (
	"testing"

	"github.com/SergeyBogomolovv/storefront-orders/internal/payment"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEvent(t *testing.T) {
	body := []byte(`{
		"event": "payment.captured",
		"payload": {"payment": {"entity": {
			"id": "pay_1", "order_id": "order_1", "amount": 20000, "currency": "INR",
			"status": "captured", "method": "upi", "fee": 472, "tax": 72,
			"error_code": null, "error_description": null,
			"notes": {"payloadOrderId": "abc", "orderNumber": 10001}
		}}}
	}`)

	ev, err := payment.ParseEvent(body)
	require.NoError(t, err)

	p := ev.Payment()
	assert.Equal(t, payment.EventPaymentCaptured, ev.Event)
	assert.Equal(t, "pay_1", p.ID)
	assert.Equal(t, "order_1", p.OrderID)
	assert.Equal(t, int64(20000), p.Amount)
	assert.Empty(t, p.ErrorCode)
	assert.Equal(t, "abc", p.Notes[payment.NoteOrderID])
	assert.Equal(t, "10001", p.Notes[payment.NoteOrderNumber])
}

func TestParseEvent_EmptyNotesArray(t *testing.T) {
	ev, err := payment.ParseEvent([]byte(`{"event":"payment.failed","payload":{"payment":{"entity":{"id":"pay_1","notes":[]}}}}`))
	require.NoError(t, err)
	assert.Empty(t, ev.Payment().Notes[payment.NoteOrderID])
}

func TestParseEvent_Malformed(t *testing.T) {
	for _, body := range []string{`not json`, `{}`, `{"event":""}`, `{"event":"payment.captured","payload":{"payment":{"entity":{"notes":"x"}}}}`} {
		_, err := payment.ParseEvent([]byte(body))
		assert.ErrorIs(t, err, payment.ErrMalformedEvent, body)
	}
}

func TestEvent_PaymentMissing(t *testing.T) {
	ev, err := payment.ParseEvent([]byte(`{"event":"order.paid","payload":{}}`))
	require.NoError(t, err)
	assert.Equal(t, payment.PaymentEntity{}, ev.Payment())
}

func TestAmountConversion(t *testing.T) {
	assert.True(t, decimal.RequireFromString("200.00").Equal(payment.MinorToMajor(20000)))
	assert.Equal(t, "200.00", payment.MinorToMajor(20000).StringFixed(2))
	assert.Equal(t, int64(20000), payment.MajorToMinor(decimal.NewFromInt(200)))
	assert.Equal(t, int64(1050), payment.MajorToMinor(decimal.RequireFromString("10.499")))
}
