// README: Quote handler; prices a delivery before booking.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"courier/internal/modules/pricing"
)

type QuoteHandler struct {
	pricing *pricing.Service
}

func NewQuoteHandler(svc *pricing.Service) *QuoteHandler {
	return &QuoteHandler{pricing: svc}
}

type quoteReq struct {
	PickupAddress  string `json:"pickup_address"`
	DropoffAddress string `json:"dropoff_address"`
	ItemCategoryID string `json:"item_category_id"`
}

func (h *QuoteHandler) Quote(c *gin.Context) {
	var req quoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.PickupAddress == "" || req.DropoffAddress == "" {
		writeError(c, http.StatusBadRequest, "missing fields")
		return
	}
	q, err := h.pricing.Quote(c.Request.Context(), pricing.QuoteRequest{
		PickupAddress:  req.PickupAddress,
		DropoffAddress: req.DropoffAddress,
		ItemCategoryID: req.ItemCategoryID,
	})
	if err != nil {
		writeError(c, http.StatusBadGateway, "quote unavailable")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"price_base":    q.Base,
		"price_addons":  q.Addons,
		"price_total":   q.Total,
		"currency":      q.Currency,
		"distance_km":   q.DistanceKm,
		"duration_mins": q.DurationMins,
	})
}
