package entities

import (
	"bytes"
	"encoding/gob"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Fulfilled reports whether the order has moved past payment into fulfillment.
func (s Status) Fulfilled() bool {
	return s == StatusShipped || s == StatusDelivered
}

type PaymentMethod string

const (
	PaymentCOD     PaymentMethod = "cod"
	PaymentGateway PaymentMethod = "gateway"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentCOD || m == PaymentGateway
}

// PaymentState is the provider-reported sub-status of an order's payment.
type PaymentState string

const (
	PaymentStateNone       PaymentState = ""
	PaymentStateAuthorized PaymentState = "authorized"
	PaymentStateCaptured   PaymentState = "captured"
	PaymentStateFailed     PaymentState = "failed"
)

type Item struct {
	ProductID   string
	ProductName string
	Quantity    int
	Price       decimal.Decimal
}

func (i Item) Total() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Address struct {
	Street  string
	City    string
	State   string
	ZipCode string
	Country string
}

type GuestInfo struct {
	Name  string
	Email string
	Phone string
}

// PaymentDetails is the provider-specific metadata attached to an order.
// It is overwritten as webhook events arrive.
type PaymentDetails struct {
	IntentID         string
	PaymentID        string
	Receipt          string
	State            PaymentState
	Amount           decimal.Decimal
	Currency         string
	Method           string
	Fee              decimal.Decimal
	Tax              decimal.Decimal
	ErrorCode        string
	ErrorDescription string
}

type Order struct {
	ID          string
	OrderNumber string

	// Ровно одно из двух: CustomerID или Guest
	CustomerID string
	Guest      *GuestInfo

	Items           []Item
	TotalAmount     decimal.Decimal
	PaymentMethod   PaymentMethod
	IsPaid          bool
	Status          Status
	ShippingAddress Address
	Payment         PaymentDetails
	Notes           []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (o Order) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range o.Items {
		sum = sum.Add(it.Total())
	}
	return sum
}

// Email returns the address a confirmation should be sent to, if the order knows it.
func (o Order) Email() string {
	if o.Guest != nil {
		return o.Guest.Email
	}
	return ""
}

// OrderUpdate is a partial update. Nil fields are left untouched.
type OrderUpdate struct {
	Status      *Status
	IsPaid      *bool
	Payment     *PaymentDetails
	AppendNotes []string
}

func (u OrderUpdate) Empty() bool {
	return u.Status == nil && u.IsPaid == nil && u.Payment == nil && len(u.AppendNotes) == 0
}

// Apply returns o with the update applied in memory.
func (u OrderUpdate) Apply(o Order) Order {
	if u.Status != nil {
		o.Status = *u.Status
	}
	if u.IsPaid != nil {
		o.IsPaid = *u.IsPaid
	}
	if u.Payment != nil {
		o.Payment = *u.Payment
	}
	if len(u.AppendNotes) > 0 {
		notes := make([]string, 0, len(o.Notes)+len(u.AppendNotes))
		notes = append(notes, o.Notes...)
		o.Notes = append(notes, u.AppendNotes...)
	}
	return o
}

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidOrder      = errors.New("invalid order")
	ErrOrderNumberTaken  = errors.New("order number already taken")
	ErrInvalidTransition = errors.New("invalid order transition")
	ErrIntentMismatch    = errors.New("payment intent does not belong to order")
)

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	if err := dec.Decode(o); err != nil {
		return errors.Join(ErrInvalidOrder, err)
	}
	return nil
}

func init() {
	gob.Register(Order{})
	gob.Register(GuestInfo{})
	gob.Register(PaymentDetails{})
	gob.Register(Item{})
}

func (d PaymentDetails) Equal(other PaymentDetails) bool {
	return d.IntentID == other.IntentID &&
		d.PaymentID == other.PaymentID &&
		d.Receipt == other.Receipt &&
		d.State == other.State &&
		d.Amount.Equal(other.Amount) &&
		d.Currency == other.Currency &&
		d.Method == other.Method &&
		d.Fee.Equal(other.Fee) &&
		d.Tax.Equal(other.Tax) &&
		d.ErrorCode == other.ErrorCode &&
		d.ErrorDescription == other.ErrorDescription
}
