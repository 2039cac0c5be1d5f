package model

import "time"

// Bank — верхнеуровневый контейнер: группирует категории пользователя.
type Bank struct {
	ID     string `gorm:"primaryKey;type:uuid" json:"id"`
	UserID int64  `gorm:"not null;index" json:"user"`

	// Связи
	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"default:''" json:"description"`
	Icon        string `gorm:"default:'🔗'" json:"icon"`
	Color       string `gorm:"default:'#6366f1'" json:"color"`
	IsPublic    bool   `gorm:"not null;default:false" json:"isPublic"`

	// Дочерние категории; заполняются выборкой, на уровне хранения порядок не фиксирован
	Categories []Category `gorm:"foreignKey:BankID" json:"categories,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
