package handler

import (
	"net/http"

	"github.com/0929smj/chun2/internal/model"
	"github.com/0929smj/chun2/internal/service"
	"github.com/0929smj/chun2/internal/store"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	store *store.Store
	sync  *service.SyncService
}

func NewStatsHandler(st *store.Store, sync *service.SyncService) *StatsHandler {
	return &StatsHandler{store: st, sync: sync}
}

// GET /api/stats/weekly
func (h *StatsHandler) Weekly(c *gin.Context) {
	_, records, _, _, _ := h.store.Snapshot()
	c.JSON(http.StatusOK, gin.H{"weekly": service.WeeklyStats(records, h.sync.Sundays())})
}

// GET /api/stats/groups
func (h *StatsHandler) Groups(c *gin.Context) {
	members, records, _, _, _ := h.store.Snapshot()
	stats := service.GroupStats(members, records)
	if stats == nil {
		stats = []model.GroupStats{}
	}
	c.JSON(http.StatusOK, gin.H{"groups": stats})
}

// GET /api/stats/members/:id/monthly?type=예배&month=2026-01
func (h *StatsHandler) MemberMonthly(c *gin.Context) {
	memberID := c.Param("id")
	t := model.AttendanceType(c.Query("type"))
	month := c.Query("month")
	if !t.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown attendance type"})
		return
	}
	if len(month) != 7 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be YYYY-MM"})
		return
	}
	if _, ok := h.store.MemberByID(memberID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown member"})
		return
	}

	_, records, _, statuses, _ := h.store.Snapshot()
	monthDates := service.MonthDates(h.sync.Sundays(), month)
	total := service.MemberMonthlyTotal(records, statuses, memberID, t, monthDates)
	c.JSON(http.StatusOK, gin.H{
		"memberId": memberID,
		"type":     t,
		"month":    month,
		"total":    total,
		"dates":    len(monthDates),
	})
}
