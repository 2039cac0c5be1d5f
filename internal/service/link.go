package service

import (
	"LinkBank/internal/model"
	"LinkBank/internal/repo"
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// LinkService инкапсулирует бизнес-логику ссылок: нормализацию URL,
// порядок среди соседей, учёт кликов и пакетную пересортировку.
type LinkService struct {
	links      repo.LinkRepository
	categories repo.CategoryRepository
	logger     *zap.SugaredLogger
}

func NewLinkService(links repo.LinkRepository, categories repo.CategoryRepository, logger *zap.SugaredLogger) *LinkService {
	return &LinkService{links: links, categories: categories, logger: logger}
}

// CreateLinkInput — поля создания ссылки.
type CreateLinkInput struct {
	Title       string
	URL         string
	Description string
	Icon        string
	Favicon     string
}

// LinkPatch — частичное обновление; nil-поля не трогаются.
type LinkPatch struct {
	Title       *string
	URL         *string
	Description *string
	Icon        *string
	Favicon     *string
	IsActive    *bool
	Order       *int64
}

// ReorderItem — пара (id, новый order) для пакетной пересортировки.
type ReorderItem struct {
	ID    string `json:"id"`
	Order int64  `json:"order"`
}

// ListByCategory возвращает ссылки категории по порядку; только владельцу.
func (s *LinkService) ListByCategory(ctx context.Context, categoryID string, requesterID int64) ([]model.Link, error) {
	category, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !allowAccess(category.UserID, category.IsPublic, requesterID, AccessWrite) {
		return nil, ErrForbidden
	}
	return s.links.ListByCategory(ctx, categoryID)
}

// Get возвращает ссылку владельцу.
func (s *LinkService) Get(ctx context.Context, id string, requesterID int64) (*model.Link, error) {
	link, err := s.links.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !allowAccess(link.UserID, false, requesterID, AccessWrite) {
		return nil, ErrForbidden
	}
	return link, nil
}

// Create проверяет владение категорией, нормализует URL, назначает order.
func (s *LinkService) Create(ctx context.Context, categoryID string, requesterID int64, in CreateLinkInput) (*model.Link, error) {
	category, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !allowAccess(category.UserID, category.IsPublic, requesterID, AccessWrite) {
		return nil, ErrForbidden
	}

	if err := requireName("title", in.Title, 150); err != nil {
		return nil, err
	}
	if err := validateURL(in.URL); err != nil {
		return nil, err
	}
	if err := limitLen("description", in.Description, 300); err != nil {
		return nil, err
	}

	order, err := s.links.NextOrder(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	link := &model.Link{
		ID:          uuid.NewString(),
		CategoryID:  categoryID,
		UserID:      requesterID,
		Title:       in.Title,
		URL:         normalizeURL(in.URL),
		Description: in.Description,
		Icon:        in.Icon,
		Favicon:     in.Favicon,
		Order:       order,
		IsActive:    true,
	}
	if link.Icon == "" {
		link.Icon = "🔗"
	}

	if err := s.links.Create(ctx, link); err != nil {
		return nil, err
	}
	s.logger.Infow("link created", "link_id", link.ID, "category_id", categoryID)
	return link, nil
}

// Update применяет патч. URL нормализуется заново только если значение
// в патче меняется и не содержит схемы.
func (s *LinkService) Update(ctx context.Context, id string, requesterID int64, patch LinkPatch) (*model.Link, error) {
	link, err := s.links.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !allowAccess(link.UserID, false, requesterID, AccessWrite) {
		return nil, ErrForbidden
	}

	updates := map[string]any{}
	if patch.Title != nil {
		if err := requireName("title", *patch.Title, 150); err != nil {
			return nil, err
		}
		updates["title"] = *patch.Title
	}
	if patch.URL != nil && *patch.URL != link.URL {
		if err := validateURL(*patch.URL); err != nil {
			return nil, err
		}
		updates["url"] = normalizeURL(*patch.URL)
	}
	if patch.Description != nil {
		if err := limitLen("description", *patch.Description, 300); err != nil {
			return nil, err
		}
		updates["description"] = *patch.Description
	}
	if patch.Icon != nil {
		updates["icon"] = *patch.Icon
	}
	if patch.Favicon != nil {
		updates["favicon"] = *patch.Favicon
	}
	if patch.IsActive != nil {
		updates["is_active"] = *patch.IsActive
	}
	if patch.Order != nil {
		updates["order"] = *patch.Order
	}

	if len(updates) > 0 {
		if err := s.links.Update(ctx, id, updates); err != nil {
			return nil, err
		}
	}
	return s.links.GetByID(ctx, id)
}

// Delete удаляет ссылку владельца.
func (s *LinkService) Delete(ctx context.Context, id string, requesterID int64) error {
	link, err := s.links.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !allowAccess(link.UserID, false, requesterID, AccessWrite) {
		return ErrForbidden
	}
	if err := s.links.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Infow("link deleted", "link_id", id, "user_id", requesterID)
	return nil
}

// TrackClick увеличивает счётчик кликов и возвращает новое значение.
// Без аутентификации и без проверки активности: клик по неактивной ссылке
// тоже учитывается, если вызывающий знает id.
func (s *LinkService) TrackClick(ctx context.Context, id string) (int64, error) {
	count, err := s.links.IncrementClickCount(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return count, nil
}

// Reorder применяет новые order к списку ссылок. Каждый элемент обновляется
// независимо и только если принадлежит запрашивающему; чужие молча
// пропускаются. Атомарности по пакету нет: при частичной ошибке часть ссылок
// останется переставленной — вызывающий перечитывает состояние.
func (s *LinkService) Reorder(ctx context.Context, requesterID int64, items []ReorderItem) error {
	for _, item := range items {
		if err := s.links.UpdateOrderOwned(ctx, item.ID, requesterID, item.Order); err != nil {
			s.logger.Warnw("reorder: item update failed", "link_id", item.ID, "error", err)
			return err
		}
	}
	return nil
}
