package handlers

import (
	"net/http"
	"strconv"

	"github.com/RoGogDBD/parcelrate/internal/auth"
	"github.com/RoGogDBD/parcelrate/internal/models"
	"github.com/RoGogDBD/parcelrate/internal/service"
	"github.com/go-chi/chi/v5"
)

// RegisterPackage godoc
// @Summary      Зарегистрировать посылку
// @Tags         packages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        package  body      models.Package  true  "Package"
// @Success      201      {object}  models.Package
// @Failure      400      {object}  ErrorResponse
// @Failure      403      {object}  ErrorResponse
// @Failure      404      {object}  ErrorResponse
// @Router       /api/v1/packages [post]
func (h *Handler) RegisterPackage(w http.ResponseWriter, r *http.Request) {
	var p models.Package
	if !h.decode(w, r, &p) {
		return
	}
	if !h.allowMerchant(w, r, p.MerchantID) {
		return
	}
	created, err := h.svc.RegisterPackage(r.Context(), p, service.SourceHTTP)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// GetPackage godoc
// @Summary      Посылка по id
// @Tags         packages
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Package ID"
// @Success      200  {object}  models.Package
// @Failure      404  {object}  ErrorResponse
// @Router       /api/v1/packages/{id} [get]
func (h *Handler) GetPackage(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetPackage(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	// Чужая посылка для мерчанта выглядит как несуществующая.
	if claims, ok := auth.FromContext(r.Context()); ok && !claims.CanAccessMerchant(p.MerchantID) {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "package not found"})
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// ListPackages godoc
// @Summary      Посылки мерчанта
// @Tags         packages
// @Produce      json
// @Security     BearerAuth
// @Param        merchant_id  path      string  true   "Merchant ID"
// @Param        limit        query     int     false  "Page size (max 100)"
// @Param        offset       query     int     false  "Offset"
// @Success      200          {array}   models.Package
// @Failure      400          {object}  ErrorResponse
// @Failure      403          {object}  ErrorResponse
// @Router       /api/v1/merchants/{merchant_id}/packages [get]
func (h *Handler) ListPackages(w http.ResponseWriter, r *http.Request) {
	merchantID := chi.URLParam(r, "merchant_id")
	if !h.allowMerchant(w, r, merchantID) {
		return
	}
	limit, ok := queryUint(w, r, "limit")
	if !ok {
		return
	}
	offset, ok := queryUint(w, r, "offset")
	if !ok {
		return
	}
	packages, err := h.svc.ListPackages(r.Context(), merchantID, limit, offset)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if packages == nil {
		packages = []models.Package{}
	}
	writeJSON(w, http.StatusOK, packages)
}

// UpdatePackageStatus godoc
// @Summary      Сменить статус посылки
// @Tags         packages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      string               true  "Package ID"
// @Param        status  body      models.StatusUpdate  true  "New status"
// @Success      200     {object}  models.Package
// @Failure      400     {object}  ErrorResponse
// @Failure      404     {object}  ErrorResponse
// @Failure      409     {object}  ErrorResponse
// @Router       /api/v1/packages/{id}/status [patch]
func (h *Handler) UpdatePackageStatus(w http.ResponseWriter, r *http.Request) {
	var req models.StatusUpdate
	if !h.decode(w, r, &req) {
		return
	}
	p, err := h.svc.UpdatePackageStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) allowMerchant(w http.ResponseWriter, r *http.Request, merchantID string) bool {
	claims, ok := auth.FromContext(r.Context())
	if !ok || !claims.CanAccessMerchant(merchantID) {
		writeJSON(w, http.StatusForbidden, ErrorResponse{Error: "forbidden"})
		return false
	}
	return true
}

func queryUint(w http.ResponseWriter, r *http.Request, name string) (uint64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return v, true
}
