package handlers

import (
	"LinkBank/internal/service"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BankHandler обрабатывает CRUD банков ссылок.
type BankHandler struct {
	BankService *service.BankService
	Logger      *zap.SugaredLogger
}

// NewBankHandler создаёт хендлер банков.
func NewBankHandler(bankService *service.BankService, logger *zap.SugaredLogger) *BankHandler {
	return &BankHandler{BankService: bankService, Logger: logger}
}

type bankRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	Color       *string `json:"color,omitempty"`
	IsPublic    *bool   `json:"isPublic,omitempty"`
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// List отдаёт банки пользователя, новые первыми.
func (h *BankHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	banks, err := h.BankService.List(r.Context(), userID)
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	writeList(w, len(banks), banks)
}

// Get отдаёт банк: владельцу всегда, остальным — только публичный.
func (h *BankHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	bank, err := h.BankService.Get(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	writeData(w, http.StatusOK, bank)
}

// Create создаёт банк текущего пользователя.
func (h *BankHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req bankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	bank, err := h.BankService.Create(r.Context(), userID, service.CreateBankInput{
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
	writeData(w, http.StatusCreated, bank)
}

// Update применяет частичное обновление банка.
func (h *BankHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req bankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	bank, err := h.BankService.Update(r.Context(), chi.URLParam(r, "id"), userID, service.BankPatch{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	writeData(w, http.StatusOK, bank)
}

// Delete удаляет банк каскадом.
func (h *BankHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	if err := h.BankService.Delete(r.Context(), chi.URLParam(r, "id"), userID); err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	writeData(w, http.StatusOK, map[string]any{})
}
