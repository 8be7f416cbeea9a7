// Package handlers содержит HTTP-обработчики API.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/RoGogDBD/parcelrate/internal/auth"
	"github.com/RoGogDBD/parcelrate/internal/models"
	"github.com/RoGogDBD/parcelrate/internal/pricing"
	"github.com/RoGogDBD/parcelrate/internal/repository"
	"github.com/RoGogDBD/parcelrate/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Service описывает бизнес-операции, доступные через HTTP.
type Service interface {
	ListTiers(ctx context.Context) ([]models.RateTier, error)
	GetTier(ctx context.Context, id string) (*models.RateTier, error)
	CreateTier(ctx context.Context, tier models.RateTier) (*models.RateTier, error)
	UpdateTier(ctx context.Context, id string, patch models.RateTierPatch) (*models.RateTier, error)
	DeleteTier(ctx context.Context, id string) error
	Quote(ctx context.Context, tierID string, dims models.PackageDimensions) (models.Quote, error)
	QuoteAll(ctx context.Context, dims models.PackageDimensions) ([]models.Quote, error)
	RegisterPackage(ctx context.Context, p models.Package, source service.Source) (*models.Package, error)
	GetPackage(ctx context.Context, id string) (*models.Package, error)
	ListPackages(ctx context.Context, merchantID string, limit, offset uint64) ([]models.Package, error)
	UpdatePackageStatus(ctx context.Context, id string, next models.PackageStatus) (*models.Package, error)
}

type Handler struct {
	svc Service
	log *zap.Logger
}

func NewHandler(svc Service, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{svc: svc, log: log}
}

// ErrorResponse - тело ответа с ошибкой.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Routes регистрирует маршруты API v1.
func (h *Handler) Routes(r chi.Router, verifier auth.Verifier) {
	r.Get("/healthz", h.HealthHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/tiers", h.ListTiers)
		r.Get("/tiers/{id}", h.GetTier)
		r.Post("/quotes", h.CreateQuote)
		r.Post("/quotes/compare", h.CompareQuotes)

		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticator(verifier))

			r.Post("/packages", h.RegisterPackage)
			r.Get("/packages/{id}", h.GetPackage)
			r.Get("/merchants/{merchant_id}/packages", h.ListPackages)

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireRole(auth.RoleStaff))
				r.Post("/tiers", h.CreateTier)
				r.Patch("/tiers/{id}", h.UpdateTier)
				r.Delete("/tiers/{id}", h.DeleteTier)
				r.Patch("/packages/{id}/status", h.UpdatePackageStatus)
			})
		})
	})
}

// HealthHandler возвращает статус 200 OK и тело "OK" для проверки состояния сервера.
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "malformed JSON body: " + err.Error()})
		return false
	}
	return true
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.log.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		writeJSON(w, status, ErrorResponse{Error: "internal error"})
		return
	}
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidPayload),
		errors.Is(err, pricing.ErrInvalidInput),
		errors.Is(err, pricing.ErrInvalidTier):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUnknownTier),
		errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, repository.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
