package orderControllers

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kajanthann/E-COM-FOREVER/models"
)

// DeliveryFee is the flat shipping charge added to every order.
const DeliveryFee = 10.0

var ErrEmptyCart = errors.New("no items in order")

// InvalidAddressError names every missing shipping field so the client can
// point at the exact inputs.
type InvalidAddressError struct {
	Missing []string
}

func (e *InvalidAddressError) Error() string {
	return "missing address fields: " + strings.Join(e.Missing, ", ")
}

// BuildOrder turns the persisted cart into the immutable financial record.
// Prices are resolved here, at order creation, and frozen on each item;
// later catalog changes never touch a placed order. The amount is computed
// server-side and is authoritative regardless of what the client submitted.
func BuildOrder(userID string, cart models.CartMap, priceOf func(string) (float64, bool), addr models.Address, paymentMethod string) (*models.Order, error) {
	var items []models.OrderItem
	var subtotal float64
	for _, line := range cart.Normalize().Lines() {
		price, ok := priceOf(line.ItemID)
		if !ok {
			// Product left the catalog after it was added to the cart.
			continue
		}
		items = append(items, models.OrderItem{
			ID:        uuid.NewString(),
			ProductID: line.ItemID,
			Size:      line.Size,
			Quantity:  line.Quantity,
			Price:     price,
		})
		subtotal += price * float64(line.Quantity)
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	if missing := missingAddressFields(addr); len(missing) > 0 {
		return nil, &InvalidAddressError{Missing: missing}
	}

	return &models.Order{
		ID:            uuid.NewString(),
		UserID:        userID,
		Items:         items,
		Address:       addr,
		Amount:        subtotal + DeliveryFee,
		PaymentMethod: paymentMethod,
		Payment:       false,
		Status:        models.StatusOrderPlaced,
		CreatedAt:     time.Now(),
	}, nil
}

func missingAddressFields(addr models.Address) []string {
	fields := []struct {
		name  string
		value string
	}{
		{"firstName", addr.FirstName},
		{"lastName", addr.LastName},
		{"email", addr.Email},
		{"street", addr.Street},
		{"city", addr.City},
		{"state", addr.State},
		{"zipcode", addr.Zipcode},
		{"country", addr.Country},
		{"phone", addr.Phone},
	}
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}
