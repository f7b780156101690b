package handler

import (
	"net/http"

	"github.com/0929smj/chun2/internal/logger"
	"github.com/0929smj/chun2/internal/model"
	"github.com/0929smj/chun2/internal/service"
	"github.com/0929smj/chun2/internal/store"

	"github.com/gin-gonic/gin"
)

type AttendanceHandler struct {
	store *store.Store
	sync  *service.SyncService
}

func NewAttendanceHandler(st *store.Store, sync *service.SyncService) *AttendanceHandler {
	return &AttendanceHandler{store: st, sync: sync}
}

// POST /api/attendance/toggle  body: {"memberId":"M1001","date":"2026-01-11","type":"예배"}
func (h *AttendanceHandler) Toggle(c *gin.Context) {
	var req model.ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if !req.Type.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown attendance type"})
		return
	}
	if !h.sync.IsMeetingDate(req.Date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "not a meeting date"})
		return
	}
	if _, ok := h.store.MemberByID(req.MemberID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown member"})
		return
	}

	changed, isAdd, rec := h.store.Toggle(req.MemberID, req.Date, req.Type)
	if changed {
		// Optimistic local state already applied; the remote write rides
		// behind, fire-and-forget.
		h.sync.DispatchToggle(req.MemberID, req.Date, req.Type, isAdd)
		logger.Info("attendance.toggle", "member", req.MemberID, "date", req.Date, "type", req.Type, "is_add", isAdd)
	}
	c.JSON(http.StatusOK, model.ToggleResponse{Changed: changed, IsAdd: isAdd, Record: rec})
}
