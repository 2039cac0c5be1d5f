package repo

import (
	"LinkBank/internal/model"
	"context"

	"gorm.io/gorm"
)

// BankRepository определяет контракт доступа к Bank для слоя сервиса.
type BankRepository interface {
	// Create вставляет новый банк.
	Create(ctx context.Context, bank *model.Bank) error

	// GetByID возвращает банк с категориями, отсортированными по order.
	// Если нет — gorm.ErrRecordNotFound.
	GetByID(ctx context.Context, id string) (*model.Bank, error)

	// ListByUser возвращает банки пользователя, новые первыми.
	ListByUser(ctx context.Context, userID int64) ([]model.Bank, error)

	// Update применяет частичное обновление по карте колонок.
	Update(ctx context.Context, id string, updates map[string]any) error

	// DeleteCascade удаляет банк вместе со всеми его категориями и ссылками.
	// Порядок строго снизу вверх: ссылки, категории, затем сам банк.
	DeleteCascade(ctx context.Context, id string) error
}

type bankRepo struct {
	db *gorm.DB
}

// NewBankRepository создаёт реализацию репозитория для Bank.
func NewBankRepository(db *gorm.DB) BankRepository {
	return &bankRepo{db: db}
}

func (r *bankRepo) Create(ctx context.Context, bank *model.Bank) error {
	return r.db.WithContext(ctx).Create(bank).Error
}

func (r *bankRepo) GetByID(ctx context.Context, id string) (*model.Bank, error) {
	var b model.Bank
	err := r.db.WithContext(ctx).
		Preload("Categories", func(db *gorm.DB) *gorm.DB {
			return db.Order(`"order" ASC, created_at ASC`)
		}).
		Where("id = ?", id).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bankRepo) ListByUser(ctx context.Context, userID int64) ([]model.Bank, error) {
	var banks []model.Bank
	err := r.db.WithContext(ctx).
		Preload("Categories", func(db *gorm.DB) *gorm.DB {
			return db.Order(`"order" ASC, created_at ASC`)
		}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&banks).Error
	if err != nil {
		return nil, err
	}
	return banks, nil
}

func (r *bankRepo) Update(ctx context.Context, id string, updates map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&model.Bank{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *bankRepo) DeleteCascade(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sub := tx.Model(&model.Category{}).Select("id").Where("bank_id = ?", id)
		if err := tx.Where("category_id IN (?)", sub).Delete(&model.Link{}).Error; err != nil {
			return err
		}
		if err := tx.Where("bank_id = ?", id).Delete(&model.Category{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Bank{}).Error
	})
}
