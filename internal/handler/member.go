package handler

import (
	"net/http"

	"github.com/0929smj/chun2/internal/logger"
	"github.com/0929smj/chun2/internal/model"
	"github.com/0929smj/chun2/internal/service"
	"github.com/0929smj/chun2/internal/store"

	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	store *store.Store
	sync  *service.SyncService
}

func NewMemberHandler(st *store.Store, sync *service.SyncService) *MemberHandler {
	return &MemberHandler{store: st, sync: sync}
}

// POST /api/members  body: {"name":"...","group":"...","phoneNumber":"..."}
func (h *MemberHandler) Add(c *gin.Context) {
	var req model.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	m := h.store.AddMember(req.Name, req.Group, req.PhoneNumber, req.Role)
	h.sync.DispatchAddMember(m)
	logger.Info("member.added", "id", m.ID, "group", m.Group)
	c.JSON(http.StatusOK, m)
}

// PUT /api/members/:id
//
// Members are edited in place and never hard-deleted; there is no DELETE
// route on purpose.
func (h *MemberHandler) Update(c *gin.Context) {
	var req model.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	m, ok := h.store.UpdateMember(c.Param("id"), req)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown member"})
		return
	}
	logger.Info("member.updated", "id", m.ID)
	c.JSON(http.StatusOK, m)
}
