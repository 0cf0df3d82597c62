package handler

import (
	"net/http"

	"github.com/GBronzi/Reporte-de-ventas/internal/logger"
	"github.com/GBronzi/Reporte-de-ventas/internal/middleware"
	"github.com/GBronzi/Reporte-de-ventas/internal/store"
	"github.com/GBronzi/Reporte-de-ventas/internal/util"

	"github.com/gin-gonic/gin"
)

type resetReq struct {
	Confirm string `json:"confirm" binding:"required"`
}

// ResetData clears every collection except users. The caller must
// send confirm: "RESET" to rule out accidental calls.
func ResetData(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req resetReq
		if err := c.ShouldBindJSON(&req); err != nil || req.Confirm != "RESET" {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "confirmation required")
			return
		}

		cleared, err := st.ResetAllExceptUsers()
		if err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "reset failed")
			return
		}

		if user, ok := middleware.CurrentUser(c); ok {
			logger.S.Infow("data reset", "user_id", user.ID, "cleared", cleared)
		}

		util.Success(c, util.Response{"cleared": cleared})
	}
}
