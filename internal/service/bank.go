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

// BankService инкапсулирует бизнес-логику работы с банками ссылок.
// Банк — корень каскада: его удаление сносит все категории и их ссылки.
type BankService struct {
	banks  repo.BankRepository
	logger *zap.SugaredLogger
}

func NewBankService(banks repo.BankRepository, logger *zap.SugaredLogger) *BankService {
	return &BankService{banks: banks, logger: logger}
}

// CreateBankInput — поля создания банка. Владелец проставляется сервисом.
type CreateBankInput struct {
	Name        string
	Description string
	Icon        string
	Color       string
	IsPublic    *bool
}

// BankPatch — частичное обновление; nil-поля не трогаются.
// Владелец неизменяем и в патче отсутствует.
type BankPatch struct {
	Name        *string
	Description *string
	Icon        *string
	Color       *string
	IsPublic    *bool
}

// List возвращает банки пользователя, новые первыми.
func (s *BankService) List(ctx context.Context, userID int64) ([]model.Bank, error) {
	return s.banks.ListByUser(ctx, userID)
}

// Get возвращает банк. Чужой банк доступен только если он публичный.
func (s *BankService) Get(ctx context.Context, id string, requesterID int64) (*model.Bank, error) {
	bank, err := s.banks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !allowAccess(bank.UserID, bank.IsPublic, requesterID, AccessRead) {
		return nil, ErrForbidden
	}
	return bank, nil
}

// Create валидирует поля, проставляет владельца и дефолты, вставляет банк.
func (s *BankService) Create(ctx context.Context, userID int64, in CreateBankInput) (*model.Bank, error) {
	if err := requireName("name", in.Name, 100); err != nil {
		return nil, err
	}
	if err := limitLen("description", in.Description, 500); err != nil {
		return nil, err
	}
	if err := validateColor(in.Color); err != nil {
		return nil, err
	}

	bank := &model.Bank{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        in.Name,
		Description: in.Description,
		Icon:        in.Icon,
		Color:       in.Color,
	}
	if bank.Icon == "" {
		bank.Icon = "🔗"
	}
	if bank.Color == "" {
		bank.Color = "#6366f1"
	}
	if in.IsPublic != nil {
		bank.IsPublic = *in.IsPublic
	}

	if err := s.banks.Create(ctx, bank); err != nil {
		return nil, err
	}
	s.logger.Infow("bank created", "bank_id", bank.ID, "user_id", userID)
	return bank, nil
}

// Update применяет патч. Публичность банка не даёт права на запись.
func (s *BankService) Update(ctx context.Context, id string, requesterID int64, patch BankPatch) (*model.Bank, error) {
	bank, err := s.banks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !allowAccess(bank.UserID, bank.IsPublic, requesterID, AccessWrite) {
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
		if err := limitLen("description", *patch.Description, 500); err != nil {
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

	if len(updates) > 0 {
		if err := s.banks.Update(ctx, id, updates); err != nil {
			return nil, err
		}
	}
	return s.banks.GetByID(ctx, id)
}

// Delete удаляет банк каскадом: сперва ссылки, потом категории, потом сам банк.
func (s *BankService) Delete(ctx context.Context, id string, requesterID int64) error {
	bank, err := s.banks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !allowAccess(bank.UserID, bank.IsPublic, requesterID, AccessWrite) {
		return ErrForbidden
	}

	if err := s.banks.DeleteCascade(ctx, id); err != nil {
		return err
	}
	s.logger.Infow("bank deleted", "bank_id", id, "user_id", requesterID)
	return nil
}
