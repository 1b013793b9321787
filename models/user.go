package models

import "time"

type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	IsAdmin   bool      `json:"isAdmin"`
	CartData  CartMap   `gorm:"type:jsonb" json:"cartData"` // rewritten wholesale on every cart mutation
	CreatedAt time.Time `json:"createdAt"`
}
