package handler

import (
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/SergeyBogomolovv/storefront-orders/internal/service"
	"github.com/shopspring/decimal"
)

// Item позиция заказа, цена и название фиксируются на момент заказа
type Item struct {
	ProductID   string          `json:"productId" validate:"required"`
	ProductName string          `json:"productName" validate:"required"`
	Quantity    int             `json:"quantity" validate:"gte=1"`
	Price       decimal.Decimal `json:"price" validate:"gte=0" swaggertype:"string" example:"199.99"`
}

// Address адрес доставки
type Address struct {
	Street  string `json:"street" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	ZipCode string `json:"zipCode" validate:"required"`
	Country string `json:"country" validate:"required"`
}

// GuestInfo контакты покупателя без аккаунта
type GuestInfo struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}

// PaymentDetails данные платёжного провайдера
type PaymentDetails struct {
	IntentID         string          `json:"intentId,omitempty"`
	PaymentID        string          `json:"paymentId,omitempty"`
	Receipt          string          `json:"receipt,omitempty"`
	State            string          `json:"state,omitempty" validate:"omitempty,oneof=authorized captured failed"`
	Amount           decimal.Decimal `json:"amount" swaggertype:"string" example:"199.99"`
	Currency         string          `json:"currency,omitempty"`
	Method           string          `json:"method,omitempty"`
	Fee              decimal.Decimal `json:"fee" swaggertype:"string" example:"199.99"`
	Tax              decimal.Decimal `json:"tax" swaggertype:"string" example:"199.99"`
	ErrorCode        string          `json:"errorCode,omitempty"`
	ErrorDescription string          `json:"errorDescription,omitempty"`
}

// CreateOrderRequest тело запроса на создание заказа
type CreateOrderRequest struct {
	Items           []Item          `json:"items" validate:"required,min=1,dive"`
	TotalAmount     decimal.Decimal `json:"totalAmount" validate:"gte=0" swaggertype:"string" example:"199.99"`
	PaymentMethod   string          `json:"paymentMethod" validate:"required,oneof=cod gateway"`
	ShippingAddress Address         `json:"shippingAddress" validate:"required"`
	Customer        string          `json:"customer,omitempty"`
	GuestInfo       *GuestInfo      `json:"guestInfo,omitempty"`
}

// UpdateOrderRequest частичное обновление заказа администратором
type UpdateOrderRequest struct {
	Status         *string         `json:"status,omitempty" validate:"omitempty,oneof=pending processing shipped delivered cancelled"`
	IsPaid         *bool           `json:"isPaid,omitempty"`
	PaymentDetails *PaymentDetails `json:"paymentDetails,omitempty"`
	AppendNotes    []string        `json:"appendNotes,omitempty" validate:"omitempty,dive,required"`
}

// Order заказ
type Order struct {
	ID              string          `json:"id"`
	OrderNumber     string          `json:"orderNumber"`
	Customer        string          `json:"customer,omitempty"`
	GuestInfo       *GuestInfo      `json:"guestInfo,omitempty"`
	Items           []Item          `json:"items"`
	TotalAmount     decimal.Decimal `json:"totalAmount" swaggertype:"string" example:"199.99"`
	PaymentMethod   string          `json:"paymentMethod"`
	IsPaid          bool            `json:"isPaid"`
	Status          string          `json:"status"`
	ShippingAddress Address         `json:"shippingAddress"`
	PaymentDetails  *PaymentDetails `json:"paymentDetails,omitempty"`
	Notes           []string        `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// CheckoutRequest тело запроса оформления заказа. Для покупателя с аккаунтом
// contact можно не передавать.
type CheckoutRequest struct {
	Items           []Item     `json:"items" validate:"required,min=1,dive"`
	ShippingAddress Address    `json:"shippingAddress" validate:"required"`
	Contact         *GuestInfo `json:"contact,omitempty"`
}

type QuoteRequest struct {
	Items []Item `json:"items" validate:"required,min=1,dive"`
}

type QuoteResponse struct {
	Subtotal decimal.Decimal `json:"subtotal" swaggertype:"string" example:"199.99"`
	Shipping decimal.Decimal `json:"shipping" swaggertype:"string" example:"199.99"`
	Total    decimal.Decimal `json:"total" swaggertype:"string" example:"199.99"`
}

// Prefill данные для предзаполнения платёжной формы
type Prefill struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Contact string `json:"contact,omitempty"`
}

// GatewayCheckoutResponse всё, что нужно клиенту для открытия платёжной формы
type GatewayCheckoutResponse struct {
	OrderID     string  `json:"orderId"`
	OrderNumber string  `json:"orderNumber"`
	IntentID    string  `json:"intentId"`
	KeyID       string  `json:"keyId"`
	Amount      int64   `json:"amount"`
	Currency    string  `json:"currency"`
	Name        string  `json:"name"`
	Prefill     Prefill `json:"prefill"`
}

// CheckoutFailedResponse возвращается, если заказ создан, но платёж открыть не удалось
type CheckoutFailedResponse struct {
	Message     string `json:"message"`
	OrderID     string `json:"orderId"`
	OrderNumber string `json:"orderNumber"`
}

type CreateIntentRequest struct {
	OrderID string `json:"orderId" validate:"required,uuid"`
}

type PaymentSuccessRequest struct {
	IntentID  string `json:"intentId" validate:"required"`
	PaymentID string `json:"paymentId" validate:"required"`
	Signature string `json:"signature" validate:"required"`
}

type PaymentFailureRequest struct {
	IntentID    string `json:"intentId" validate:"required"`
	PaymentID   string `json:"paymentId,omitempty"`
	Code        string `json:"code,omitempty"`
	Description string `json:"description,omitempty"`
}

// PaymentAckResponse предварительное подтверждение оплаты, окончательный
// статус приходит через вебхук
type PaymentAckResponse struct {
	OrderID     string `json:"orderId"`
	OrderNumber string `json:"orderNumber"`
	Status      string `json:"status"`
	IsPaid      bool   `json:"isPaid"`
	Verified    bool   `json:"verified"`
	Message     string `json:"message"`
}

type WebhookResponse struct {
	Status  string `json:"status"`
	Outcome string `json:"outcome,omitempty"`
}

func ItemJSONToEntity(i Item) entities.Item {
	return entities.Item{
		ProductID:   i.ProductID,
		ProductName: i.ProductName,
		Quantity:    i.Quantity,
		Price:       i.Price,
	}
}

func ItemEntityToJSON(i entities.Item) Item {
	return Item{
		ProductID:   i.ProductID,
		ProductName: i.ProductName,
		Quantity:    i.Quantity,
		Price:       i.Price,
	}
}

func itemsToEntity(items []Item) []entities.Item {
	out := make([]entities.Item, 0, len(items))
	for _, it := range items {
		out = append(out, ItemJSONToEntity(it))
	}
	return out
}

func AddressJSONToEntity(a Address) entities.Address {
	return entities.Address{Street: a.Street, City: a.City, State: a.State, ZipCode: a.ZipCode, Country: a.Country}
}

func AddressEntityToJSON(a entities.Address) Address {
	return Address{Street: a.Street, City: a.City, State: a.State, ZipCode: a.ZipCode, Country: a.Country}
}

func guestToEntity(g *GuestInfo) *entities.GuestInfo {
	if g == nil {
		return nil
	}
	return &entities.GuestInfo{Name: g.Name, Email: g.Email, Phone: g.Phone}
}

func PaymentJSONToEntity(p PaymentDetails) entities.PaymentDetails {
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

func PaymentEntityToJSON(p entities.PaymentDetails) *PaymentDetails {
	if p.Equal(entities.PaymentDetails{}) {
		return nil
	}
	return &PaymentDetails{
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

func CreateOrderJSONToEntity(req CreateOrderRequest) entities.Order {
	return entities.Order{
		Items:           itemsToEntity(req.Items),
		TotalAmount:     req.TotalAmount,
		PaymentMethod:   entities.PaymentMethod(req.PaymentMethod),
		ShippingAddress: AddressJSONToEntity(req.ShippingAddress),
		CustomerID:      req.Customer,
		Guest:           guestToEntity(req.GuestInfo),
	}
}

func UpdateOrderJSONToEntity(req UpdateOrderRequest) entities.OrderUpdate {
	upd := entities.OrderUpdate{IsPaid: req.IsPaid, AppendNotes: req.AppendNotes}
	if req.Status != nil {
		s := entities.Status(*req.Status)
		upd.Status = &s
	}
	if req.PaymentDetails != nil {
		p := PaymentJSONToEntity(*req.PaymentDetails)
		upd.Payment = &p
	}
	return upd
}

// OrderEntityToJSON converts an order for the response. Internal notes are
// only shown to privileged callers.
func OrderEntityToJSON(o entities.Order, withNotes bool) Order {
	items := make([]Item, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, ItemEntityToJSON(it))
	}

	res := Order{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		Customer:        o.CustomerID,
		Items:           items,
		TotalAmount:     o.TotalAmount,
		PaymentMethod:   string(o.PaymentMethod),
		IsPaid:          o.IsPaid,
		Status:          string(o.Status),
		ShippingAddress: AddressEntityToJSON(o.ShippingAddress),
		PaymentDetails:  PaymentEntityToJSON(o.Payment),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
	if o.Guest != nil {
		res.GuestInfo = &GuestInfo{Name: o.Guest.Name, Email: o.Guest.Email, Phone: o.Guest.Phone}
	}
	if withNotes {
		res.Notes = o.Notes
	}
	return res
}

func CheckoutJSONToRequest(req CheckoutRequest, customerID string) service.CheckoutRequest {
	out := service.CheckoutRequest{
		Items:           itemsToEntity(req.Items),
		ShippingAddress: AddressJSONToEntity(req.ShippingAddress),
		CustomerID:      customerID,
	}
	if g := guestToEntity(req.Contact); g != nil {
		out.Contact = *g
	}
	return out
}

func GatewayCheckoutToJSON(c service.GatewayCheckout) GatewayCheckoutResponse {
	return GatewayCheckoutResponse{
		OrderID:     c.Order.ID,
		OrderNumber: c.Order.OrderNumber,
		IntentID:    c.IntentID,
		KeyID:       c.KeyID,
		Amount:      c.Amount,
		Currency:    c.Currency,
		Name:        c.CompanyName,
		Prefill: Prefill{
			Name:    c.Prefill.Name,
			Email:   c.Prefill.Email,
			Contact: c.Prefill.Phone,
		},
	}
}
