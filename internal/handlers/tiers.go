package handlers

import (
	"net/http"

	"github.com/RoGogDBD/parcelrate/internal/models"
	"github.com/go-chi/chi/v5"
)

// ListTiers godoc
// @Summary      Список тарифов
// @Tags         tiers
// @Produce      json
// @Success      200  {array}   models.RateTier
// @Failure      500  {object}  ErrorResponse
// @Router       /api/v1/tiers [get]
func (h *Handler) ListTiers(w http.ResponseWriter, r *http.Request) {
	tiers, err := h.svc.ListTiers(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tiers)
}

// GetTier godoc
// @Summary      Тариф по id
// @Tags         tiers
// @Produce      json
// @Param        id   path      string  true  "Tier ID"
// @Success      200  {object}  models.RateTier
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/v1/tiers/{id} [get]
func (h *Handler) GetTier(w http.ResponseWriter, r *http.Request) {
	tier, err := h.svc.GetTier(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tier)
}

// CreateTier godoc
// @Summary      Создать тариф
// @Tags         tiers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        tier  body      models.RateTier  true  "Tier"
// @Success      201   {object}  models.RateTier
// @Failure      400   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse
// @Router       /api/v1/tiers [post]
func (h *Handler) CreateTier(w http.ResponseWriter, r *http.Request) {
	var tier models.RateTier
	if !h.decode(w, r, &tier) {
		return
	}
	created, err := h.svc.CreateTier(r.Context(), tier)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// UpdateTier godoc
// @Summary      Изменить тариф
// @Tags         tiers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      string                true  "Tier ID"
// @Param        patch  body      models.RateTierPatch  true  "Changed fields"
// @Success      200    {object}  models.RateTier
// @Failure      400    {object}  ErrorResponse
// @Failure      404    {object}  ErrorResponse
// @Router       /api/v1/tiers/{id} [patch]
func (h *Handler) UpdateTier(w http.ResponseWriter, r *http.Request) {
	var patch models.RateTierPatch
	if !h.decode(w, r, &patch) {
		return
	}
	updated, err := h.svc.UpdateTier(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteTier godoc
// @Summary      Удалить тариф
// @Tags         tiers
// @Security     BearerAuth
// @Param        id   path  string  true  "Tier ID"
// @Success      204
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /api/v1/tiers/{id} [delete]
func (h *Handler) DeleteTier(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteTier(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
