package handlers

import (
	"LinkBank/internal/service"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// LinkHandler обрабатывает CRUD ссылок, учёт кликов и пересортировку.
type LinkHandler struct {
	LinkService *service.LinkService
	Logger      *zap.SugaredLogger
}

// NewLinkHandler создаёт хендлер ссылок.
func NewLinkHandler(linkService *service.LinkService, logger *zap.SugaredLogger) *LinkHandler {
	return &LinkHandler{LinkService: linkService, Logger: logger}
}

type linkRequest struct {
	Category    string  `json:"category"`
	Title       *string `json:"title,omitempty"`
	URL         *string `json:"url,omitempty"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	Favicon     *string `json:"favicon,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
	Order       *int64  `json:"order,omitempty"`
}

type reorderRequest struct {
	Links []service.ReorderItem `json:"links"`
}

// ListByCategory отдаёт ссылки категории по порядку.
func (h *LinkHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	links, err := h.LinkService.ListByCategory(r.Context(), chi.URLParam(r, "categoryID"), userID)
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	writeList(w, len(links), links)
}

// Get отдаёт ссылку владельцу.
func (h *LinkHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	link, err := h.LinkService.Get(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	writeData(w, http.StatusOK, link)
}

// Create создаёт ссылку в категории текущего пользователя.
func (h *LinkHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req linkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	link, err := h.LinkService.Create(r.Context(), req.Category, userID, service.CreateLinkInput{
		Title:       strOrEmpty(req.Title),
		URL:         strOrEmpty(req.URL),
		Description: strOrEmpty(req.Description),
		Icon:        strOrEmpty(req.Icon),
		Favicon:     strOrEmpty(req.Favicon),
	})
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	writeData(w, http.StatusCreated, link)
}

// Update применяет частичное обновление; позволяет в том числе выключать
// ссылку (isActive) без удаления.
func (h *LinkHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req linkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	link, err := h.LinkService.Update(r.Context(), chi.URLParam(r, "id"), userID, service.LinkPatch{
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
		Icon:        req.Icon,
		Favicon:     req.Favicon,
		IsActive:    req.IsActive,
		Order:       req.Order,
	})
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	writeData(w, http.StatusOK, link)
}

// Delete удаляет ссылку.
func (h *LinkHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	if err := h.LinkService.Delete(r.Context(), chi.URLParam(r, "id"), userID); err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	writeData(w, http.StatusOK, map[string]any{})
}

// TrackClick — публичный учёт клика; отвечает новым значением счётчика.
func (h *LinkHandler) TrackClick(w http.ResponseWriter, r *http.Request) {
	count, err := h.LinkService.TrackClick(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	writeData(w, http.StatusOK, map[string]any{"clickCount": count})
}

// Reorder применяет новые order к пачке ссылок текущего пользователя.
func (h *LinkHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req reorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Links == nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := h.LinkService.Reorder(r.Context(), userID, req.Links); err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	writeData(w, http.StatusOK, map[string]any{})
}
