package repo

import (
	"LinkBank/internal/model"
	"context"

	"gorm.io/gorm"
)

// CategoryRepository определяет контракт доступа к Category для слоя сервиса.
type CategoryRepository interface {
	// Create вставляет новую категорию.
	Create(ctx context.Context, category *model.Category) error

	// GetByID возвращает категорию со ссылками, отсортированными по order.
	GetByID(ctx context.Context, id string) (*model.Category, error)

	// GetBySlug возвращает категорию по публичному slug: только активные ссылки
	// (по order) и владелец для минимальной публичной карточки.
	GetBySlug(ctx context.Context, slug string) (*model.Category, error)

	// SlugExists сообщает, занят ли slug какой-либо категорией.
	SlugExists(ctx context.Context, slug string) (bool, error)

	// ListByBank возвращает категории банка по возрастанию order, каждая со
	// своими упорядоченными ссылками.
	ListByBank(ctx context.Context, bankID string) ([]model.Category, error)

	// Update применяет частичное обновление по карте колонок.
	Update(ctx context.Context, id string, updates map[string]any) error

	// DeleteCascade удаляет категорию вместе со всеми её ссылками (сначала ссылки).
	DeleteCascade(ctx context.Context, id string) error

	// NextOrder возвращает следующий order среди категорий банка: max+1, либо 0.
	NextOrder(ctx context.Context, bankID string) (int64, error)

	// IncrementViewCount атомарно увеличивает счётчик просмотров на 1.
	IncrementViewCount(ctx context.Context, id string) error
}

type categoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepository создаёт реализацию репозитория для Category.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) Create(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepo) GetByID(ctx context.Context, id string) (*model.Category, error) {
	var c model.Category
	err := r.db.WithContext(ctx).
		Preload("Links", func(db *gorm.DB) *gorm.DB {
			return db.Order(`"order" ASC, created_at ASC`)
		}).
		Where("id = ?", id).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepo) GetBySlug(ctx context.Context, slug string) (*model.Category, error) {
	var c model.Category
	err := r.db.WithContext(ctx).
		Preload("Links", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order(`"order" ASC, created_at ASC`)
		}).
		Preload("User").
		Where("slug = ?", slug).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Category{}).
		Where("slug = ?", slug).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *categoryRepo) ListByBank(ctx context.Context, bankID string) ([]model.Category, error) {
	var categories []model.Category
	err := r.db.WithContext(ctx).
		Preload("Links", func(db *gorm.DB) *gorm.DB {
			return db.Order(`"order" ASC, created_at ASC`)
		}).
		Where("bank_id = ?", bankID).
		Order(`"order" ASC, created_at ASC`).
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepo) Update(ctx context.Context, id string, updates map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&model.Category{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *categoryRepo) DeleteCascade(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&model.Link{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Category{}).Error
	})
}

func (r *categoryRepo) NextOrder(ctx context.Context, bankID string) (int64, error) {
	var max int64
	err := r.db.WithContext(ctx).
		Model(&model.Category{}).
		Where("bank_id = ?", bankID).
		Select(`COALESCE(MAX("order"), -1)`).
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}

func (r *categoryRepo) IncrementViewCount(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&model.Category{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}
