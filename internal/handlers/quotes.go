package handlers

import (
	"net/http"

	"github.com/RoGogDBD/parcelrate/internal/models"
)

// CreateQuote godoc
// @Summary      Рассчитать стоимость доставки
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        request  body      models.QuoteRequest  true  "Tier and dimensions"
// @Success      200      {object}  models.Quote
// @Failure      400      {object}  ErrorResponse
// @Failure      404      {object}  ErrorResponse
// @Router       /api/v1/quotes [post]
func (h *Handler) CreateQuote(w http.ResponseWriter, r *http.Request) {
	var req models.QuoteRequest
	if !h.decode(w, r, &req) {
		return
	}
	q, err := h.svc.Quote(r.Context(), req.TierID, req.Dimensions)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

// CompareQuotes godoc
// @Summary      Сравнить стоимость по всем тарифам
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        dimensions  body      models.PackageDimensions  true  "Dimensions"
// @Success      200         {array}   models.Quote
// @Failure      400         {object}  ErrorResponse
// @Router       /api/v1/quotes/compare [post]
func (h *Handler) CompareQuotes(w http.ResponseWriter, r *http.Request) {
	var dims models.PackageDimensions
	if !h.decode(w, r, &dims) {
		return
	}
	quotes, err := h.svc.QuoteAll(r.Context(), dims)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, quotes)
}
