// controllers/pricing_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"frontdesk-backend/models"
	"frontdesk-backend/services"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// Boundary limits for price updates. Out-of-range values never reach the
// service.
const (
	maxBasePrice      = 100000
	maxBreakfastPrice = 5000
)

type PricingController struct {
	PricingSvc *services.PricingService
}

func NewPricingController(svc *services.PricingService) *PricingController {
	return &PricingController{PricingSvc: svc}
}

type UpdatePricePayload struct {
	BasePrice          *float64 `json:"basePrice"`
	BreakfastPrice     *float64 `json:"breakfastPrice"`
	SeasonalMultiplier *float64 `json:"seasonalMultiplier"`
	Reason             string   `json:"reason"`
}

func parseRoomType(c *gin.Context) (models.RoomType, bool) {
	rt := models.RoomType(strings.ToUpper(strings.TrimSpace(c.Param("roomType"))))
	if !rt.Valid() {
		utils.JSONError(c, http.StatusBadRequest, "invalid_room_type")
		return "", false
	}
	return rt, true
}

func priceInfoResponse(info *services.PriceInfo) gin.H {
	return gin.H{
		"roomType":           info.RoomType,
		"basePrice":          info.BasePrice.Round(2),
		"breakfastPrice":     info.BreakfastPrice.Round(2),
		"noBreakfast":        info.NoBreakfast.Round(2),
		"withBreakfast":      info.WithBreakfast.Round(2),
		"seasonalMultiplier": info.SeasonalMultiplier,
		"effectiveFrom":      info.EffectiveFrom,
		"effectiveUntil":     info.EffectiveUntil,
	}
}

// GetAllPrices handles GET /api/pricing
func (pc *PricingController) GetAllPrices(c *gin.Context) {
	infos, err := pc.PricingSvc.GetAllCurrentPrices()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to read prices")
		return
	}

	out := make([]gin.H, 0, len(infos))
	for i := range infos {
		out = append(out, priceInfoResponse(&infos[i]))
	}
	utils.JSONSuccess(c, http.StatusOK, out)
}

// GetPrice handles GET /api/pricing/:roomType
func (pc *PricingController) GetPrice(c *gin.Context) {
	rt, ok := parseRoomType(c)
	if !ok {
		return
	}

	info, err := pc.PricingSvc.GetCurrentPrice(rt)
	if err != nil {
		if errors.Is(err, services.ErrPriceNotFound) {
			utils.JSONError(c, http.StatusNotFound, "price_not_found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to read price")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, priceInfoResponse(info))
}

// UpdatePrice handles PUT /api/pricing/:roomType
func (pc *PricingController) UpdatePrice(c *gin.Context) {
	rt, ok := parseRoomType(c)
	if !ok {
		return
	}

	var payload UpdatePricePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	if payload.BasePrice != nil && (*payload.BasePrice < 0 || *payload.BasePrice > maxBasePrice) {
		utils.JSONError(c, http.StatusBadRequest, "basePrice out of range")
		return
	}
	if payload.BreakfastPrice != nil && (*payload.BreakfastPrice < 0 || *payload.BreakfastPrice > maxBreakfastPrice) {
		utils.JSONError(c, http.StatusBadRequest, "breakfastPrice out of range")
		return
	}
	if payload.SeasonalMultiplier != nil && *payload.SeasonalMultiplier <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "seasonalMultiplier must be positive")
		return
	}

	upd := services.PriceUpdate{
		Reason: strings.TrimSpace(payload.Reason),
		// The actor comes from the request context, not the body. Without
		// an auth layer in front, the header is the best available identity.
		ChangedBy: changedByActor(c),
	}
	if payload.BasePrice != nil {
		v := decimal.NewFromFloat(*payload.BasePrice)
		upd.BasePrice = &v
	}
	if payload.BreakfastPrice != nil {
		v := decimal.NewFromFloat(*payload.BreakfastPrice)
		upd.BreakfastPrice = &v
	}
	if payload.SeasonalMultiplier != nil {
		v := decimal.NewFromFloat(*payload.SeasonalMultiplier)
		upd.SeasonalMultiplier = &v
	}

	info, err := pc.PricingSvc.UpdatePrice(rt, upd)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update price")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, priceInfoResponse(info))
}

func changedByActor(c *gin.Context) string {
	if actor := strings.TrimSpace(c.GetHeader("X-Actor")); actor != "" {
		return actor
	}
	return "front-desk"
}

// CalculatePrice handles GET /api/pricing/:roomType/quote?includeBreakfast=&nights=
func (pc *PricingController) CalculatePrice(c *gin.Context) {
	rt, ok := parseRoomType(c)
	if !ok {
		return
	}

	nights, err := strconv.Atoi(c.DefaultQuery("nights", "1"))
	if err != nil || nights < 1 {
		utils.JSONError(c, http.StatusBadRequest, "nights must be a positive integer")
		return
	}
	includeBreakfast := strings.EqualFold(c.DefaultQuery("includeBreakfast", "false"), "true")

	quote, err := pc.PricingSvc.CalculatePrice(rt, includeBreakfast, nights)
	if err != nil {
		if errors.Is(err, services.ErrPriceNotFound) {
			utils.JSONError(c, http.StatusNotFound, "price_not_found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to calculate price")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"roomType":        rt,
		"nights":          nights,
		"baseAmount":      quote.BaseAmount,
		"breakfastAmount": quote.BreakfastAmount,
		"total":           quote.Total,
	})
}

// GetHistory handles GET /api/pricing/:roomType/history?limit=
func (pc *PricingController) GetHistory(c *gin.Context) {
	rt, ok := parseRoomType(c)
	if !ok {
		return
	}

	limit := 10
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			utils.JSONError(c, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = v
	}

	records, err := pc.PricingSvc.GetHistory(rt, limit)
	if err != nil {
		if errors.Is(err, services.ErrRoomTypeNotFound) {
			utils.JSONError(c, http.StatusNotFound, "room_type_not_found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to read history")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, records)
}
