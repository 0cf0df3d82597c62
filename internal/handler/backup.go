package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/GBronzi/Reporte-de-ventas/internal/middleware"
	"github.com/GBronzi/Reporte-de-ventas/internal/models"
	"github.com/GBronzi/Reporte-de-ventas/internal/store"
	"github.com/GBronzi/Reporte-de-ventas/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BackupHandler writes encrypted snapshots of the data store to disk
// and restores from them. Backups cover everything except users.
type BackupHandler struct {
	Store      *store.Store
	EncryptKey string
	BackupDir  string
}

func NewBackupHandler(st *store.Store, encryptKey, backupDir string) *BackupHandler {
	return &BackupHandler{
		Store:      st,
		EncryptKey: encryptKey,
		BackupDir:  backupDir,
	}
}

type backupData struct {
	CreatedBy uint            `json:"created_by"`
	Created   time.Time       `json:"created"`
	Snapshot  *store.Snapshot `json:"snapshot"`
}

// CreateBackup snapshots the store, encrypts it and writes the file.
func (h *BackupHandler) CreateBackup(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not signed in")
		return
	}

	snap, err := h.Store.TakeSnapshot()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "snapshot failed")
		return
	}

	data := backupData{
		CreatedBy: user.ID,
		Created:   time.Now(),
		Snapshot:  snap,
	}
	raw, err := json.MarshalIndent(&data, "", "  ")
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "serialization failed")
		return
	}

	enc, err := util.EncryptAES(h.EncryptKey, raw)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "encryption failed")
		return
	}

	if err := os.MkdirAll(h.BackupDir, 0o755); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not create backup dir")
		return
	}

	fileName := fmt.Sprintf("backup-%s.bin", uuid.New().String())
	filePath := filepath.Join(h.BackupDir, fileName)

	if err := os.WriteFile(filePath, enc, 0o600); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not write backup file")
		return
	}

	info, _ := os.Stat(filePath)

	backup := models.Backup{
		UserID:   user.ID,
		FileName: fileName,
		FilePath: filePath,
		Size:     info.Size(),
	}
	if err := h.Store.CreateBackup(&backup); err != nil {
		_ = os.Remove(filePath)
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not record backup")
		return
	}

	util.Success(c, util.Response{
		"backup": gin.H{
			"id":         backup.ID,
			"file_name":  backup.FileName,
			"size":       backup.Size,
			"created_at": backup.CreatedAt,
		},
	})
}

func (h *BackupHandler) ListBackups(c *gin.Context) {
	list, err := h.Store.ListBackups()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "backup query failed")
		return
	}

	items := make([]gin.H, 0, len(list))
	for i := range list {
		b := &list[i]
		items = append(items, gin.H{
			"id":         b.ID,
			"file_name":  b.FileName,
			"size":       b.Size,
			"created_at": b.CreatedAt,
		})
	}

	util.Success(c, util.Response{"items": items})
}

func (h *BackupHandler) backupByParam(c *gin.Context) (*models.Backup, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid id")
		return nil, false
	}

	backup, err := h.Store.GetBackup(uint(id))
	if err != nil {
		if store.IsNotFound(err) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "backup not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "backup query failed")
		}
		return nil, false
	}
	return backup, true
}

func (h *BackupHandler) DownloadBackup(c *gin.Context) {
	backup, ok := h.backupByParam(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "application/octet-stream")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", backup.FileName))
	c.File(backup.FilePath)
}

// DeleteBackup removes the file first, then the record.
func (h *BackupHandler) DeleteBackup(c *gin.Context) {
	backup, ok := h.backupByParam(c)
	if !ok {
		return
	}

	_ = os.Remove(backup.FilePath)
	if err := h.Store.DeleteBackup(backup.ID); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not delete backup")
		return
	}

	util.Success(c, util.Response{"deleted": true})
}

// RestoreBackup decrypts the file and replaces every non-user
// collection with its snapshot.
func (h *BackupHandler) RestoreBackup(c *gin.Context) {
	backup, ok := h.backupByParam(c)
	if !ok {
		return
	}

	encData, err := os.ReadFile(backup.FilePath)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not read backup file")
		return
	}

	raw, err := util.DecryptAES(h.EncryptKey, encData)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not decrypt backup file")
		return
	}

	var data backupData
	if err := json.Unmarshal(raw, &data); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not parse backup data")
		return
	}
	if data.Snapshot == nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "backup holds no snapshot")
		return
	}

	if err := h.Store.RestoreSnapshot(data.Snapshot); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "restore failed")
		return
	}

	util.Success(c, util.Response{
		"restored": gin.H{
			"sales_goals":   len(data.Snapshot.SalesGoals),
			"sales_entries": len(data.Snapshot.SalesEntries),
			"unit_goals":    len(data.Snapshot.UnitGoals),
			"unit_entries":  len(data.Snapshot.UnitEntries),
			"credits":       len(data.Snapshot.Credits),
		},
	})
}
