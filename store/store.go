// Package store is the persistence boundary of the cart and order core.
// Handlers depend on these interfaces only; gorm backs them in production
// and the in-memory implementation backs tests and dev mode.
package store

import (
	"errors"

	"github.com/kajanthann/E-COM-FOREVER/models"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")
)

type UserStore interface {
	Create(user *models.User) error
	ByID(id string) (*models.User, error)
	ByEmail(email string) (*models.User, error)
	// SaveCart rewrites the user's whole cart map. There is no partial
	// update at this layer; concurrent writers race and the last one wins.
	SaveCart(userID string, cart models.CartMap) error
	All() ([]models.User, error)
}

type ProductStore interface {
	Create(p *models.Product) error
	ByID(id string) (*models.Product, error)
	All() ([]models.Product, error)
	Delete(id string) error
	// PriceOf resolves the live catalog price. The second return is false
	// when the product no longer exists.
	PriceOf(id string) (float64, bool)
}

type OrderStore interface {
	Insert(o *models.Order) error
	// ByUser and All return orders newest first, ties broken by insertion
	// order.
	ByUser(userID string) ([]models.Order, error)
	All() ([]models.Order, error)
	UpdateStatus(orderID string, status models.OrderStatus) error
}

// Stores bundles the three boundaries for route wiring.
type Stores struct {
	Users    UserStore
	Products ProductStore
	Orders   OrderStore
}
