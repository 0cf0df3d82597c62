package middleware

import (
	"bytes"
	"io"
	"strings"

	"github.com/GBronzi/Reporte-de-ventas/internal/logger"
	"github.com/GBronzi/Reporte-de-ventas/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Audit records mutating requests of signed-in users in the audit_logs
// collection. Reads are not recorded. Audit writing is best-effort and
// never fails the request itself.
func Audit(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var bodyBytes []byte
		if c.Request.Body != nil && c.Request.Method != "GET" {
			bodyBytes, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		}

		c.Next()

		if c.Request.Method == "GET" {
			return
		}

		user, ok := CurrentUser(c)
		if !ok {
			return
		}

		path := c.Request.URL.Path
		action := c.Request.Method + " " + path
		// never record credential payloads
		if !strings.Contains(path, "password") && !strings.Contains(path, "login") {
			if len(bodyBytes) > 0 && len(bodyBytes) < 2000 {
				action += " " + string(bodyBytes)
			}
		}

		entry := models.AuditLog{
			UserID:    &user.ID,
			Method:    c.Request.Method,
			Path:      path,
			Action:    action,
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		}

		if err := db.Create(&entry).Error; err != nil {
			logger.S.Warnw("audit write failed", "path", path, "err", err)
		}
	}
}
