package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList stores a slice of strings as a JSONB document.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported list column type %T", value)
	}
}

// Product is a catalog entity. The cart and order core only ever reads it;
// orders capture the price at creation time and never follow the live record.
type Product struct {
	ID          string     `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"not null" json:"name"`
	Description string     `json:"description"`
	Price       float64    `gorm:"not null" json:"price"`
	Images      StringList `gorm:"type:jsonb" json:"image"`
	Category    string     `json:"category"`
	SubCategory string     `json:"subCategory"`
	Sizes       StringList `gorm:"type:jsonb" json:"sizes"`
	Bestseller  bool       `json:"bestseller"`
	CreatedAt   time.Time  `json:"createdAt"`
}
