package model

import "time"

// Category — упорядоченная группа ссылок внутри банка.
// Slug — публичный идентификатор для режима "поделиться"; глобально уникален.
type Category struct {
	ID     string `gorm:"primaryKey;type:uuid" json:"id"`
	BankID string `gorm:"not null;index;type:uuid" json:"bank"`
	UserID int64  `gorm:"not null;index" json:"user"`

	// Связи
	Bank *Bank `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"default:''" json:"description"`
	Icon        string `gorm:"default:'📁'" json:"icon"`
	Color       string `gorm:"default:'#8b5cf6'" json:"color"`

	// Slug назначается только генератором: при создании и при явной регенерации
	Slug string `gorm:"not null;uniqueIndex" json:"slug"`

	// Дефолт публичности назначает сервис при создании: тег default на bool
	// в gorm затирал бы явный false нулевым значением.
	IsPublic  bool  `gorm:"not null" json:"isPublic"`
	ViewCount int64 `gorm:"not null;default:0" json:"viewCount"`
	Order     int64 `gorm:"column:order;not null;default:0" json:"order"`

	Links []Link `gorm:"foreignKey:CategoryID" json:"links,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
