package store

import (
	"sort"
	"sync"

	"github.com/kajanthann/E-COM-FOREVER/models"
)

// NewMemory returns map-backed stores. The server falls back to them when
// no database is configured, and unit tests run against them. Each method
// is individually atomic; read-modify-write sequences across calls are
// not, matching the semantics of the database-backed stores.
func NewMemory() Stores {
	return Stores{
		Users:    &memoryUsers{users: map[string]*models.User{}},
		Products: &memoryProducts{products: map[string]*models.Product{}},
		Orders:   &memoryOrders{orders: map[string]*models.Order{}},
	}
}

type memoryUsers struct {
	mu    sync.RWMutex
	users map[string]*models.User
}

func copyUser(u *models.User) *models.User {
	cp := *u
	cp.CartData = u.CartData.Clone()
	return &cp
}

func (s *memoryUsers) Create(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.ID]; ok {
		return ErrConflict
	}
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return ErrConflict
		}
	}
	s.users[user.ID] = copyUser(user)
	return nil
}

func (s *memoryUsers) ByID(id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyUser(user), nil
}

func (s *memoryUsers) ByEmail(email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Email == email {
			return copyUser(user), nil
		}
	}
	return nil, ErrNotFound
}

func (s *memoryUsers) SaveCart(userID string, cart models.CartMap) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userID]
	if !ok {
		return ErrNotFound
	}
	user.CartData = cart.Normalize().Clone()
	return nil
}

func (s *memoryUsers) All() ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]models.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, *copyUser(user))
	}
	return users, nil
}

type memoryProducts struct {
	mu       sync.RWMutex
	products map[string]*models.Product
}

func (s *memoryProducts) Create(p *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[p.ID]; ok {
		return ErrConflict
	}
	cp := *p
	s.products[p.ID] = &cp
	return nil
}

func (s *memoryProducts) ByID(id string) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	product, ok := s.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *product
	return &cp, nil
}

func (s *memoryProducts) All() ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	products := make([]models.Product, 0, len(s.products))
	for _, product := range s.products {
		products = append(products, *product)
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
	return products, nil
}

func (s *memoryProducts) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return ErrNotFound
	}
	delete(s.products, id)
	return nil
}

func (s *memoryProducts) PriceOf(id string) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	product, ok := s.products[id]
	if !ok {
		return 0, false
	}
	return product.Price, true
}

type memoryOrders struct {
	mu     sync.Mutex
	orders map[string]*models.Order
	seq    int64
}

func copyOrder(o *models.Order) *models.Order {
	cp := *o
	cp.Items = make([]models.OrderItem, len(o.Items))
	copy(cp.Items, o.Items)
	return &cp
}

func (s *memoryOrders) Insert(o *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[o.ID]; ok {
		return ErrConflict
	}
	s.seq++
	o.Seq = s.seq
	s.orders[o.ID] = copyOrder(o)
	return nil
}

func (s *memoryOrders) ByUser(userID string) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var orders []models.Order
	for _, order := range s.orders {
		if order.UserID == userID {
			orders = append(orders, *copyOrder(order))
		}
	}
	sortNewestFirst(orders)
	return orders, nil
}

func (s *memoryOrders) All() ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders := make([]models.Order, 0, len(s.orders))
	for _, order := range s.orders {
		orders = append(orders, *copyOrder(order))
	}
	sortNewestFirst(orders)
	return orders, nil
}

func (s *memoryOrders) UpdateStatus(orderID string, status models.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[orderID]
	if !ok {
		return ErrNotFound
	}
	order.Status = status
	return nil
}

// Newest first; orders created in the same instant keep insertion order.
func sortNewestFirst(orders []models.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		if orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].Seq > orders[j].Seq
		}
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}
