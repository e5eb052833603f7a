package repo

import (
	"database/sql"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayment_ValueScan(t *testing.T) {
	p := Payment{
		IntentID:  "order_1",
		PaymentID: "pay_1",
		State:     string(entities.PaymentStateCaptured),
		Amount:    decimal.RequireFromString("200.00"),
		Currency:  "INR",
		Fee:       decimal.RequireFromString("4.72"),
	}

	v, err := p.Value()
	require.NoError(t, err)

	var got Payment
	require.NoError(t, got.Scan(v))
	assert.Equal(t, p.IntentID, got.IntentID)
	assert.True(t, p.Amount.Equal(got.Amount))
	assert.True(t, p.Fee.Equal(got.Fee))

	require.NoError(t, got.Scan(nil))
	assert.Equal(t, Payment{}, got)

	assert.Error(t, got.Scan(42))
}

func TestOrderToEntity(t *testing.T) {
	now := time.Now()
	row := Order{
		ID:            "7f1b6c1e-8d7a-4a53-9d2c-1f0b7c9f3d11",
		OrderNumber:   "10001",
		GuestName:     sql.NullString{String: "Asha", Valid: true},
		GuestEmail:    sql.NullString{String: "asha@example.com", Valid: true},
		GuestPhone:    sql.NullString{String: "+919800000000", Valid: true},
		TotalAmount:   decimal.NewFromInt(200),
		PaymentMethod: "cod",
		Status:        "pending",
		ShipStreet:    "1 Main St",
		ShipCity:      "Pune",
		ShipState:     "MH",
		ShipZipCode:   "411001",
		ShipCountry:   "India",
		Notes:         pq.StringArray{"leave at door"},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	items := []Item{{OrderID: row.ID, ProductID: "P1", ProductName: "Vase", Quantity: 2, Price: decimal.NewFromInt(100)}}

	got := OrderToEntity(row, items)

	assert.Equal(t, "10001", got.OrderNumber)
	assert.Empty(t, got.CustomerID)
	require.NotNil(t, got.Guest)
	assert.Equal(t, "asha@example.com", got.Guest.Email)
	assert.Equal(t, entities.PaymentCOD, got.PaymentMethod)
	assert.Equal(t, entities.StatusPending, got.Status)
	assert.Equal(t, []string{"leave at door"}, got.Notes)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 2, got.Items[0].Quantity)
	assert.Equal(t, "India", got.ShippingAddress.Country)

	row.GuestEmail = sql.NullString{}
	row.CustomerID = sql.NullString{String: "c-1", Valid: true}
	got = OrderToEntity(row, nil)
	assert.Nil(t, got.Guest)
	assert.Equal(t, "c-1", got.CustomerID)
	assert.Nil(t, got.Items)
}
