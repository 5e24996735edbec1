package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/matteoruffino/progress-engine/internal/adapters/handler/http/middleware"
	"github.com/matteoruffino/progress-engine/internal/core/domain"
	"github.com/matteoruffino/progress-engine/internal/core/services"
	"github.com/matteoruffino/progress-engine/internal/core/workers"
)

type HabitHandler struct {
	ledger   *services.LedgerService
	backfill *services.BackfillService
	worker   *workers.BackfillWorker
}

func NewHabitHandler(ledger *services.LedgerService, backfill *services.BackfillService, worker *workers.BackfillWorker) *HabitHandler {
	return &HabitHandler{
		ledger:   ledger,
		backfill: backfill,
		worker:   worker,
	}
}

type recordDayRequest struct {
	Day          string `json:"day" binding:"required"`
	FoodLogged   bool   `json:"food_logged"`
	WeightLogged bool   `json:"weight_logged"`
}

func (h *HabitHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/analytics/habits", h.GetStats)
	r.POST("/analytics/habits/days", h.RecordDay)
	r.POST("/analytics/backfill", h.Backfill)
}

func (h *HabitHandler) GetStats(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	asOf, ok := parseAsOf(c)
	if !ok {
		return
	}

	stats, err := h.ledger.GetStats(c.Request.Context(), userID, asOf)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute habit stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *HabitHandler) RecordDay(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	var req recordDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	day, err := domain.ParseDay(req.Day)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid day format, expected YYYY-MM-DD"})
		return
	}

	row, err := h.ledger.RecordDay(c.Request.Context(), userID, day, req.FoodLogged, req.WeightLogged)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record day"})
		return
	}

	// Rows after the recorded day may hold stale streaks now; the worker
	// converges them without blocking the request.
	if h.worker != nil {
		h.worker.Enqueue(userID, domain.Midnight(time.Now().UTC()))
	}

	c.JSON(http.StatusOK, row)
}

func (h *HabitHandler) Backfill(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	asOf, ok := parseAsOf(c)
	if !ok {
		return
	}

	rows, err := h.backfill.Backfill(c.Request.Context(), userID, asOf)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "backfill failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"days":       rows,
		"total_days": len(rows),
	})
}
