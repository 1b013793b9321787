package models

import (
	"errors"
	"strings"
	"time"
)

type OrderStatus string

const (
	StatusOrderPlaced    OrderStatus = "Order placed"
	StatusProcessing     OrderStatus = "Processing"
	StatusShipped        OrderStatus = "Shipped"
	StatusOutForDelivery OrderStatus = "Out for delivery"
	StatusDelivered      OrderStatus = "Delivered"
	StatusCancelled      OrderStatus = "Cancelled"
)

var orderStatuses = []OrderStatus{
	StatusOrderPlaced,
	StatusProcessing,
	StatusShipped,
	StatusOutForDelivery,
	StatusDelivered,
	StatusCancelled,
}

// ParseOrderStatus maps a request string onto a known status.
func ParseOrderStatus(s string) (OrderStatus, error) {
	for _, status := range orderStatuses {
		if strings.EqualFold(s, string(status)) {
			return status, nil
		}
	}
	return "", errors.New("invalid order status")
}

// Address is the shipping address captured with the order.
type Address struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zipcode   string `json:"zipcode"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
}

// OrderItem freezes what the customer was charged for: the unit price is
// captured at order creation and never re-derived from the catalog.
type OrderItem struct {
	ID        string  `gorm:"primaryKey" json:"id"`
	OrderID   string  `gorm:"index" json:"-"`
	ProductID string  `json:"productId"`
	Size      string  `json:"size"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Order is immutable after creation except for Status and Payment, which
// only the admin path may change.
type Order struct {
	ID            string      `gorm:"primaryKey" json:"id"`
	Seq           int64       `gorm:"autoIncrement;uniqueIndex" json:"-"` // stable tie-break for equal timestamps
	UserID        string      `gorm:"index;not null" json:"userId"`
	Items         []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Address       Address     `gorm:"embedded;embeddedPrefix:addr_" json:"address"`
	Amount        float64     `json:"amount"`
	PaymentMethod string      `json:"paymentMethod"`
	Payment       bool        `json:"payment"`
	Status        OrderStatus `gorm:"type:VARCHAR(32)" json:"status"`
	CreatedAt     time.Time   `json:"createdAt"`
}
