package store

import (
	"errors"

	"github.com/kajanthann/E-COM-FOREVER/models"
	"gorm.io/gorm"
)

// NewGorm returns the postgres-backed stores. The *gorm.DB must be opened
// with TranslateError so duplicate keys surface as gorm.ErrDuplicatedKey.
func NewGorm(db *gorm.DB) Stores {
	return Stores{
		Users:    &gormUsers{db: db},
		Products: &gormProducts{db: db},
		Orders:   &gormOrders{db: db},
	}
}

type gormUsers struct {
	db *gorm.DB
}

func (s *gormUsers) Create(user *models.User) error {
	if err := s.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrConflict
		}
		return err
	}
	return nil
}

func (s *gormUsers) ByID(id string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *gormUsers) ByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *gormUsers) SaveCart(userID string, cart models.CartMap) error {
	result := s.db.Model(&models.User{}).Where("id = ?", userID).Update("cart_data", cart.Normalize())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormUsers) All() ([]models.User, error) {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

type gormProducts struct {
	db *gorm.DB
}

func (s *gormProducts) Create(p *models.Product) error {
	if err := s.db.Create(p).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrConflict
		}
		return err
	}
	return nil
}

func (s *gormProducts) ByID(id string) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (s *gormProducts) All() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *gormProducts) Delete(id string) error {
	result := s.db.Where("id = ?", id).Delete(&models.Product{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormProducts) PriceOf(id string) (float64, bool) {
	var product models.Product
	if err := s.db.Select("price").First(&product, "id = ?", id).Error; err != nil {
		return 0, false
	}
	return product.Price, true
}

type gormOrders struct {
	db *gorm.DB
}

func (s *gormOrders) Insert(o *models.Order) error {
	if err := s.db.Create(o).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrConflict
		}
		return err
	}
	return nil
}

func (s *gormOrders) ByUser(userID string) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.
		Where("user_id = ?", userID).
		Preload("Items").
		Order("created_at DESC, seq DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *gormOrders) All() ([]models.Order, error) {
	var orders []models.Order
	err := s.db.
		Preload("Items").
		Order("created_at DESC, seq DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *gormOrders) UpdateStatus(orderID string, status models.OrderStatus) error {
	result := s.db.Model(&models.Order{}).Where("id = ?", orderID).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
