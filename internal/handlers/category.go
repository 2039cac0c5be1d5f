package handlers

import (
	"LinkBank/internal/model"
	"LinkBank/internal/service"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CategoryHandler обрабатывает CRUD категорий и публичный просмотр по slug.
type CategoryHandler struct {
	CategoryService *service.CategoryService
	Logger          *zap.SugaredLogger
}

// NewCategoryHandler создаёт хендлер категорий.
func NewCategoryHandler(categoryService *service.CategoryService, logger *zap.SugaredLogger) *CategoryHandler {
	return &CategoryHandler{CategoryService: categoryService, Logger: logger}
}

type categoryRequest struct {
	Bank        string  `json:"bank"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	Color       *string `json:"color,omitempty"`
	IsPublic    *bool   `json:"isPublic,omitempty"`
	Order       *int64  `json:"order,omitempty"`
	// Slug принимается и молча игнорируется: менять его можно только
	// через регенерацию.
	Slug *string `json:"slug,omitempty"`
}

// shareOwner — минимальная публичная карточка владельца.
type shareOwner struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type shareCategory struct {
	*model.Category
	Owner *shareOwner `json:"owner,omitempty"`
}

// ListByBank отдаёт категории банка по порядку, каждую со ссылками.
func (h *CategoryHandler) ListByBank(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	categories, err := h.CategoryService.ListByBank(r.Context(), chi.URLParam(r, "bankID"), userID)
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	writeList(w, len(categories), categories)
}

// Get отдаёт категорию владельцу.
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	category, err := h.CategoryService.Get(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	writeData(w, http.StatusOK, category)
}

// GetBySlug — публичный просмотр категории по slug, без аутентификации.
func (h *CategoryHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	category, err := h.CategoryService.GetByPublicSlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}

	resp := shareCategory{Category: category}
	if category.User != nil {
		resp.Owner = &shareOwner{Name: category.User.Name, Avatar: category.User.Avatar}
	}
	writeData(w, http.StatusOK, resp)
}

// Create создаёт категорию в банке текущего пользователя.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	category, err := h.CategoryService.Create(r.Context(), req.Bank, userID, service.CreateCategoryInput{
		Name:        strOrEmpty(req.Name),
		Description: strOrEmpty(req.Description),
		Icon:        strOrEmpty(req.Icon),
		Color:       strOrEmpty(req.Color),
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	writeData(w, http.StatusCreated, category)
}

// Update применяет частичное обновление; slug из тела игнорируется.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	category, err := h.CategoryService.Update(r.Context(), chi.URLParam(r, "id"), userID, service.CategoryPatch{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
		IsPublic:    req.IsPublic,
		Order:       req.Order,
	})
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	writeData(w, http.StatusOK, category)
}

// Delete удаляет категорию каскадом.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	if err := h.CategoryService.Delete(r.Context(), chi.URLParam(r, "id"), userID); err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	writeData(w, http.StatusOK, map[string]any{})
}

// RegenerateSlug выдаёт категории новый slug; старая публичная ссылка
// перестаёт работать.
func (h *CategoryHandler) RegenerateSlug(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	category, err := h.CategoryService.RegenerateSlug(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	writeData(w, http.StatusOK, category)
}
