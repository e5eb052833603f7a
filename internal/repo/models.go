package repo

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID            string          `db:"id"`
	OrderNumber   string          `db:"order_number"`
	CustomerID    sql.NullString  `db:"customer_id"`
	GuestName     sql.NullString  `db:"guest_name"`
	GuestEmail    sql.NullString  `db:"guest_email"`
	GuestPhone    sql.NullString  `db:"guest_phone"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	PaymentMethod string          `db:"payment_method"`
	IsPaid        bool            `db:"is_paid"`
	Status        string          `db:"status"`
	ShipStreet    string          `db:"ship_street"`
	ShipCity      string          `db:"ship_city"`
	ShipState     string          `db:"ship_state"`
	ShipZipCode   string          `db:"ship_zip_code"`
	ShipCountry   string          `db:"ship_country"`
	Payment       Payment         `db:"payment"`
	Notes         pq.StringArray  `db:"notes"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

type Item struct {
	OrderID     string          `db:"order_id"`
	Position    int             `db:"position"`
	ProductID   string          `db:"product_id"`
	ProductName string          `db:"product_name"`
	Quantity    int             `db:"quantity"`
	Price       decimal.Decimal `db:"price"`
}

// Payment хранится в jsonb колонке
type Payment struct {
	IntentID         string          `json:"intent_id,omitempty"`
	PaymentID        string          `json:"payment_id,omitempty"`
	Receipt          string          `json:"receipt,omitempty"`
	State            string          `json:"state,omitempty"`
	Amount           decimal.Decimal `json:"amount"`
	Currency         string          `json:"currency,omitempty"`
	Method           string          `json:"method,omitempty"`
	Fee              decimal.Decimal `json:"fee"`
	Tax              decimal.Decimal `json:"tax"`
	ErrorCode        string          `json:"error_code,omitempty"`
	ErrorDescription string          `json:"error_description,omitempty"`
}

func (p Payment) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *Payment) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*p = Payment{}
		return nil
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return errors.New("unsupported payment column type")
	}
}

func PaymentFromEntity(p entities.PaymentDetails) Payment {
	return Payment{
		IntentID:         p.IntentID,
		PaymentID:        p.PaymentID,
		Receipt:          p.Receipt,
		State:            string(p.State),
		Amount:           p.Amount,
		Currency:         p.Currency,
		Method:           p.Method,
		Fee:              p.Fee,
		Tax:              p.Tax,
		ErrorCode:        p.ErrorCode,
		ErrorDescription: p.ErrorDescription,
	}
}

func PaymentToEntity(p Payment) entities.PaymentDetails {
	return entities.PaymentDetails{
		IntentID:         p.IntentID,
		PaymentID:        p.PaymentID,
		Receipt:          p.Receipt,
		State:            entities.PaymentState(p.State),
		Amount:           p.Amount,
		Currency:         p.Currency,
		Method:           p.Method,
		Fee:              p.Fee,
		Tax:              p.Tax,
		ErrorCode:        p.ErrorCode,
		ErrorDescription: p.ErrorDescription,
	}
}

func ItemToEntity(i Item) entities.Item {
	return entities.Item{
		ProductID:   i.ProductID,
		ProductName: i.ProductName,
		Quantity:    i.Quantity,
		Price:       i.Price,
	}
}

func OrderToEntity(o Order, items []Item) entities.Order {
	order := entities.Order{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		CustomerID:    nullStringToString(o.CustomerID),
		TotalAmount:   o.TotalAmount,
		PaymentMethod: entities.PaymentMethod(o.PaymentMethod),
		IsPaid:        o.IsPaid,
		Status:        entities.Status(o.Status),
		ShippingAddress: entities.Address{
			Street:  o.ShipStreet,
			City:    o.ShipCity,
			State:   o.ShipState,
			ZipCode: o.ShipZipCode,
			Country: o.ShipCountry,
		},
		Payment:   PaymentToEntity(o.Payment),
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}

	if o.GuestEmail.Valid {
		order.Guest = &entities.GuestInfo{
			Name:  nullStringToString(o.GuestName),
			Email: o.GuestEmail.String,
			Phone: nullStringToString(o.GuestPhone),
		}
	}

	if len(o.Notes) > 0 {
		order.Notes = []string(o.Notes)
	}

	if len(items) > 0 {
		order.Items = make([]entities.Item, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, ItemToEntity(it))
		}
	}

	return order
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
