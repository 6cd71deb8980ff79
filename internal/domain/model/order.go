package model

import "time"

// OrderType is either table service or delivery.
type OrderType string

const (
	OrderTypeTable    OrderType = "mesa"
	OrderTypeDelivery OrderType = "entrega"
)

// Valid reports whether t is a known order type.
func (t OrderType) Valid() bool {
	return t == OrderTypeTable || t == OrderTypeDelivery
}

// PaymentMethod is how the customer pays on hand-off.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "dinheiro"
	PaymentPix  PaymentMethod = "pix"
	PaymentCard PaymentMethod = "cartao"
)

// Valid reports whether m is a known payment method.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentPix, PaymentCard:
		return true
	}
	return false
}

// CustomerOrderData is the checkout form. Address fields only matter for
// delivery orders and TableNumber only for table orders.
type CustomerOrderData struct {
	Name          string        `json:"name" example:"Maria Silva"`
	Phone         string        `json:"phone" example:"(11) 99999-9999"`
	Email         string        `json:"email,omitempty"`
	PostalCode    string        `json:"postal_code,omitempty" example:"01234-567"`
	Street        string        `json:"street,omitempty"`
	Number        string        `json:"number,omitempty"`
	Complement    string        `json:"complement,omitempty"`
	Neighborhood  string        `json:"neighborhood,omitempty"`
	City          string        `json:"city,omitempty"`
	Reference     string        `json:"reference,omitempty"`
	TableNumber   string        `json:"table_number,omitempty" example:"12"`
	PaymentMethod PaymentMethod `json:"payment_method" example:"dinheiro"`
	ChangeFor     string        `json:"change_for,omitempty" example:"50,00"`
	Notes         string        `json:"notes,omitempty"`
}

// DefaultCustomerOrderData is the blank form.
func DefaultCustomerOrderData() CustomerOrderData {
	return CustomerOrderData{PaymentMethod: PaymentCash}
}

// Order is a submitted order as handed to the messaging service.
type Order struct {
	ID          string            `json:"id"`
	Type        OrderType         `json:"order_type"`
	Customer    CustomerOrderData `json:"customer"`
	Lines       []CartLine        `json:"lines"`
	Subtotal    float64           `json:"subtotal"`
	DeliveryFee float64           `json:"delivery_fee"`
	Total       float64           `json:"total"`
	Summary     string            `json:"summary"`
	Link        string            `json:"link"`
	CreatedAt   time.Time         `json:"created_at"`
}

// ItemCount is the total quantity across all lines.
func (o Order) ItemCount() int {
	n := 0
	for _, l := range o.Lines {
		n += l.Quantity
	}
	return n
}
