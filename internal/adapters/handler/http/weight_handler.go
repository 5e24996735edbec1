package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/matteoruffino/progress-engine/internal/adapters/handler/http/middleware"
	"github.com/matteoruffino/progress-engine/internal/core/domain"
	"github.com/matteoruffino/progress-engine/internal/core/services"
)

type WeightHandler struct {
	svc *services.WeightService
}

func NewWeightHandler(svc *services.WeightService) *WeightHandler {
	return &WeightHandler{svc: svc}
}

func (h *WeightHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/analytics/weight", h.GetWeightView)
}

func (h *WeightHandler) GetWeightView(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	asOf, ok := parseAsOf(c)
	if !ok {
		return
	}

	view, err := h.svc.ComputeWeightView(c.Request.Context(), userID, asOf)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingAnchor):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error_code": "missing_anchor",
				"error":      "no weight reading recorded yet",
			})
		case errors.Is(err, domain.ErrInsufficientData):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error_code": "insufficient_data",
				"error":      "not enough logged days yet",
			})
		case errors.Is(err, domain.ErrSettingsNotFound), errors.Is(err, domain.ErrInvalidTDEE):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error_code": "invalid_config",
				"error":      "tdee configuration is missing or invalid",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

// parseAsOf reads the optional as_of query parameter, defaulting to the
// current UTC day. Every computation downstream is deterministic for the
// resolved day.
func parseAsOf(c *gin.Context) (time.Time, bool) {
	asOfStr := c.Query("as_of")
	if asOfStr == "" {
		return domain.Midnight(time.Now().UTC()), true
	}

	asOf, err := domain.ParseDay(asOfStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid as_of format, expected YYYY-MM-DD"})
		return time.Time{}, false
	}
	return asOf, true
}
