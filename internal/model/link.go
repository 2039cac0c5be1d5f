package model

import "time"

// Link — отдельная ссылка внутри категории.
type Link struct {
	ID         string `gorm:"primaryKey;type:uuid" json:"id"`
	CategoryID string `gorm:"not null;index;type:uuid" json:"category"`
	UserID     int64  `gorm:"not null;index" json:"user"`

	// Связи
	Category *Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	User     *User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	Title       string `gorm:"not null" json:"title"`
	URL         string `gorm:"not null" json:"url"`
	Description string `gorm:"default:''" json:"description"`
	Icon        string `gorm:"default:'🔗'" json:"icon"`
	Favicon     string `gorm:"default:''" json:"favicon"`

	ClickCount int64 `gorm:"not null;default:0" json:"clickCount"`
	Order      int64 `gorm:"column:order;not null;default:0" json:"order"`

	// Неактивная ссылка скрыта из публичного просмотра, но видна владельцу.
	// Значение всегда проставляет сервис, поэтому тег default не нужен.
	IsActive bool `gorm:"not null" json:"isActive"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
