package model

import "time"

// Серверная модель пользователя — владелец банков, категорий и ссылок.
type User struct {
	ID int64 `gorm:"primaryKey" json:"id"`

	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"not null;uniqueIndex" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Avatar   string `gorm:"default:''" json:"avatar"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
