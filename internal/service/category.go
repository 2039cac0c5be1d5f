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

// CategoryService инкапсулирует бизнес-логику категорий: проверку владения
// через родительский банк, порядок среди соседей, публичные slug и каскад.
type CategoryService struct {
	categories repo.CategoryRepository
	banks      repo.BankRepository
	slugs      SlugGenerator
	logger     *zap.SugaredLogger
}

func NewCategoryService(
	categories repo.CategoryRepository,
	banks repo.BankRepository,
	slugs SlugGenerator,
	logger *zap.SugaredLogger,
) *CategoryService {
	return &CategoryService{categories: categories, banks: banks, slugs: slugs, logger: logger}
}

// CreateCategoryInput — поля создания категории. Slug, владелец и order
// назначаются сервисом и в ввод не входят.
type CreateCategoryInput struct {
	Name        string
	Description string
	Icon        string
	Color       string
	IsPublic    *bool
}

// CategoryPatch — частичное обновление. Slug через этот путь неизменяем,
// поэтому поля для него здесь нет.
type CategoryPatch struct {
	Name        *string
	Description *string
	Icon        *string
	Color       *string
	IsPublic    *bool
	Order       *int64
}

// ListByBank возвращает категории банка по порядку, каждая со своими ссылками.
// Листинг всегда только для владельца банка.
func (s *CategoryService) ListByBank(ctx context.Context, bankID string, requesterID int64) ([]model.Category, error) {
	bank, err := s.banks.GetByID(ctx, bankID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !allowAccess(bank.UserID, bank.IsPublic, requesterID, AccessWrite) {
		return nil, ErrForbidden
	}
	return s.categories.ListByBank(ctx, bankID)
}

// Get возвращает категорию владельцу. Публичный доступ идёт только через slug.
func (s *CategoryService) Get(ctx context.Context, id string, requesterID int64) (*model.Category, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !allowAccess(category.UserID, category.IsPublic, requesterID, AccessWrite) {
		return nil, ErrForbidden
	}
	return category, nil
}

// GetByPublicSlug — единственный неаутентифицированный путь чтения.
// Закрытая категория по slug не видна; успешное чтение увеличивает счётчик
// просмотров на 1 и возвращает только активные ссылки.
func (s *CategoryService) GetByPublicSlug(ctx context.Context, slug string) (*model.Category, error) {
	category, err := s.categories.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !category.IsPublic {
		return nil, ErrForbidden
	}

	if err := s.categories.IncrementViewCount(ctx, category.ID); err != nil {
		return nil, err
	}
	category.ViewCount++
	return category, nil
}

// Create проверяет владение банком, назначает slug и order, вставляет категорию.
func (s *CategoryService) Create(ctx context.Context, bankID string, requesterID int64, in CreateCategoryInput) (*model.Category, error) {
	bank, err := s.banks.GetByID(ctx, bankID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !allowAccess(bank.UserID, bank.IsPublic, requesterID, AccessWrite) {
		return nil, ErrForbidden
	}

	if err := requireName("name", in.Name, 100); err != nil {
		return nil, err
	}
	if err := limitLen("description", in.Description, 300); err != nil {
		return nil, err
	}
	if err := validateColor(in.Color); err != nil {
		return nil, err
	}

	slug, err := s.slugs.Generate(ctx, s.categories.SlugExists)
	if err != nil {
		return nil, err
	}
	order, err := s.categories.NextOrder(ctx, bankID)
	if err != nil {
		return nil, err
	}

	category := &model.Category{
		ID:          uuid.NewString(),
		BankID:      bankID,
		UserID:      requesterID,
		Name:        in.Name,
		Description: in.Description,
		Icon:        in.Icon,
		Color:       in.Color,
		Slug:        slug,
		IsPublic:    true,
		Order:       order,
	}
	if category.Icon == "" {
		category.Icon = "📁"
	}
	if category.Color == "" {
		category.Color = "#8b5cf6"
	}
	if in.IsPublic != nil {
		category.IsPublic = *in.IsPublic
	}

	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	s.logger.Infow("category created", "category_id", category.ID, "bank_id", bankID, "slug", slug)
	return category, nil
}

// Update применяет патч; требуется настоящее владение.
func (s *CategoryService) Update(ctx context.Context, id string, requesterID int64, patch CategoryPatch) (*model.Category, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !allowAccess(category.UserID, category.IsPublic, requesterID, AccessWrite) {
		return nil, ErrForbidden
	}

	updates := map[string]any{}
	if patch.Name != nil {
		if err := requireName("name", *patch.Name, 100); err != nil {
			return nil, err
		}
		updates["name"] = *patch.Name
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
	if patch.Color != nil {
		if err := validateColor(*patch.Color); err != nil {
			return nil, err
		}
		updates["color"] = *patch.Color
	}
	if patch.IsPublic != nil {
		updates["is_public"] = *patch.IsPublic
	}
	if patch.Order != nil {
		updates["order"] = *patch.Order
	}

	if len(updates) > 0 {
		if err := s.categories.Update(ctx, id, updates); err != nil {
			return nil, err
		}
	}
	return s.categories.GetByID(ctx, id)
}

// Delete удаляет категорию каскадом: сначала все её ссылки.
func (s *CategoryService) Delete(ctx context.Context, id string, requesterID int64) error {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !allowAccess(category.UserID, category.IsPublic, requesterID, AccessWrite) {
		return ErrForbidden
	}

	if err := s.categories.DeleteCascade(ctx, id); err != nil {
		return err
	}
	s.logger.Infow("category deleted", "category_id", id, "user_id", requesterID)
	return nil
}

// RegenerateSlug заменяет slug на свежий. Старая публичная ссылка перестаёт
// работать сразу и навсегда, редиректа нет.
func (s *CategoryService) RegenerateSlug(ctx context.Context, id string, requesterID int64) (*model.Category, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !allowAccess(category.UserID, category.IsPublic, requesterID, AccessWrite) {
		return nil, ErrForbidden
	}

	slug, err := s.slugs.Generate(ctx, s.categories.SlugExists)
	if err != nil {
		return nil, err
	}
	if err := s.categories.Update(ctx, id, map[string]any{"slug": slug}); err != nil {
		return nil, err
	}
	s.logger.Infow("category slug regenerated", "category_id", id, "slug", slug)

	category.Slug = slug
	return category, nil
}
