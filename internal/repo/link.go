package repo

import (
	"LinkBank/internal/model"
	"context"

	"gorm.io/gorm"
)

// LinkRepository определяет контракт доступа к Link для слоя сервиса.
type LinkRepository interface {
	// Create вставляет новую ссылку.
	Create(ctx context.Context, link *model.Link) error

	// GetByID возвращает ссылку. Если нет — gorm.ErrRecordNotFound.
	GetByID(ctx context.Context, id string) (*model.Link, error)

	// ListByCategory возвращает ссылки категории по возрастанию order.
	ListByCategory(ctx context.Context, categoryID string) ([]model.Link, error)

	// Update применяет частичное обновление по карте колонок.
	Update(ctx context.Context, id string, updates map[string]any) error

	// Delete удаляет ссылку по id.
	Delete(ctx context.Context, id string) error

	// NextOrder возвращает следующий order среди ссылок категории: max+1, либо 0.
	NextOrder(ctx context.Context, categoryID string) (int64, error)

	// IncrementClickCount атомарно увеличивает счётчик кликов и возвращает
	// новое значение. Если ссылки нет — gorm.ErrRecordNotFound.
	IncrementClickCount(ctx context.Context, id string) (int64, error)

	// UpdateOrderOwned меняет order ссылки, только если она принадлежит userID.
	// Чужая или несуществующая ссылка молча пропускается.
	UpdateOrderOwned(ctx context.Context, id string, userID int64, order int64) error
}

type linkRepo struct {
	db *gorm.DB
}

// NewLinkRepository создаёт реализацию репозитория для Link.
func NewLinkRepository(db *gorm.DB) LinkRepository {
	return &linkRepo{db: db}
}

func (r *linkRepo) Create(ctx context.Context, link *model.Link) error {
	return r.db.WithContext(ctx).Create(link).Error
}

func (r *linkRepo) GetByID(ctx context.Context, id string) (*model.Link, error) {
	var l model.Link
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&l).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *linkRepo) ListByCategory(ctx context.Context, categoryID string) ([]model.Link, error) {
	var links []model.Link
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order(`"order" ASC, created_at ASC`).
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

func (r *linkRepo) Update(ctx context.Context, id string, updates map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&model.Link{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *linkRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Link{}).Error
}

func (r *linkRepo) NextOrder(ctx context.Context, categoryID string) (int64, error) {
	var max int64
	err := r.db.WithContext(ctx).
		Model(&model.Link{}).
		Where("category_id = ?", categoryID).
		Select(`COALESCE(MAX("order"), -1)`).
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}

func (r *linkRepo) IncrementClickCount(ctx context.Context, id string) (int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&model.Link{}).
		Where("id = ?", id).
		UpdateColumn("click_count", gorm.Expr("click_count + 1"))
	if tx.Error != nil {
		return 0, tx.Error
	}
	if tx.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Link{}).
		Where("id = ?", id).
		Select("click_count").
		Scan(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *linkRepo) UpdateOrderOwned(ctx context.Context, id string, userID int64, order int64) error {
	return r.db.WithContext(ctx).
		Model(&model.Link{}).
		Where("id = ? AND user_id = ?", id, userID).
		UpdateColumn("order", order).Error
}
