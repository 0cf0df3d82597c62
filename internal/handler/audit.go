package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/GBronzi/Reporte-de-ventas/internal/store"
	"github.com/GBronzi/Reporte-de-ventas/internal/util"

	"github.com/gin-gonic/gin"
)

// AuditHandler exposes the audit trail to administrators.
type AuditHandler struct {
	Store *store.Store
}

func NewAuditHandler(st *store.Store) *AuditHandler {
	return &AuditHandler{Store: st}
}

type auditResp struct {
	ID        uint      `json:"id"`
	UserID    *uint     `json:"user_id"`
	Action    string    `json:"action"`
	Path      string    `json:"path"`
	Method    string    `json:"method"`
	IP        string    `json:"ip"`
	UserAgent string    `json:"user_agent"`
	CreatedAt time.Time `json:"created_at"`
}

// ListLogs pages through the audit trail with optional date window,
// user and keyword filters.
func (h *AuditHandler) ListLogs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if size <= 0 || size > 100 {
		size = 20
	}

	filter := store.AuditFilter{
		Query:    strings.TrimSpace(c.Query("q")),
		Page:     page,
		PageSize: size,
	}

	if s := c.Query("start"); s != "" {
		t, err := time.Parse(store.DateFormat, s)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid start date")
			return
		}
		filter.Start = &t
	}
	if s := c.Query("end"); s != "" {
		t, err := time.Parse(store.DateFormat, s)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid end date")
			return
		}
		t = t.Add(24 * time.Hour)
		filter.End = &t
	}
	if s := c.Query("user_id"); s != "" {
		id, err := strconv.Atoi(s)
		if err != nil || id <= 0 {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid user_id")
			return
		}
		uid := uint(id)
		filter.UserID = &uid
	}

	logs, total, err := h.Store.ListAuditLogs(filter)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "audit query failed")
		return
	}

	items := make([]auditResp, 0, len(logs))
	for i := range logs {
		l := &logs[i]
		items = append(items, auditResp{
			ID:        l.ID,
			UserID:    l.UserID,
			Action:    l.Action,
			Path:      l.Path,
			Method:    l.Method,
			IP:        l.IP,
			UserAgent: l.UserAgent,
			CreatedAt: l.CreatedAt,
		})
	}

	util.Success(c, util.Response{
		"items": items,
		"total": total,
		"page":  page,
		"size":  size,
	})
}
