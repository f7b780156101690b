package handler

import (
	"net/http"
	"time"

	"github.com/0929smj/chun2/internal/model"
	"github.com/0929smj/chun2/internal/service"
	"github.com/0929smj/chun2/internal/store"

	"github.com/gin-gonic/gin"
)

type DataHandler struct {
	store *store.Store
	sync  *service.SyncService
}

func NewDataHandler(st *store.Store, sync *service.SyncService) *DataHandler {
	return &DataHandler{store: st, sync: sync}
}

// GET /api/data
func (h *DataHandler) Data(c *gin.Context) {
	members, records, prayers, statuses, meta := h.store.Snapshot()
	c.JSON(http.StatusOK, model.DataResponse{
		Members:       members,
		Attendance:    records,
		Prayers:       prayers,
		MeetingStatus: statuses,
		Meta:          meta,
	})
}

// POST /api/data/reload
func (h *DataHandler) Reload(c *gin.Context) {
	meta := h.sync.Load(c.Request.Context())
	c.JSON(http.StatusOK, meta)
}

// GET /api/groups
func (h *DataHandler) Groups(c *gin.Context) {
	groups := h.store.Groups()
	if groups == nil {
		groups = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

// GET /api/schedule
func (h *DataHandler) Schedule(c *gin.Context) {
	sundays := h.sync.Sundays()
	c.JSON(http.StatusOK, model.ScheduleResponse{
		Year:    h.sync.Year(),
		Sundays: sundays,
		Closest: service.ClosestSunday(time.Now(), sundays),
	})
}

// GET /api/prayers?memberId=&date=
func (h *DataHandler) Prayers(c *gin.Context) {
	memberID := c.Query("memberId")
	date := c.Query("date")

	_, _, prayers, _, _ := h.store.Snapshot()
	out := []model.PrayerRecord{}
	for _, p := range prayers {
		if memberID != "" && p.MemberID != memberID {
			continue
		}
		if date != "" && p.Date != date {
			continue
		}
		out = append(out, p)
	}
	c.JSON(http.StatusOK, gin.H{"prayers": out})
}
