package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/fwahome/dukapos/internal/application/service"
	"github.com/fwahome/dukapos/internal/domain/repository"
	"github.com/fwahome/dukapos/internal/presentation/http/dto/response"
)

// BackupHandler handles backup and restore HTTP requests
type BackupHandler struct {
	backupService *service.BackupService
}

// NewBackupHandler creates a new backup handler
func NewBackupHandler(backupService *service.BackupService) *BackupHandler {
	return &BackupHandler{backupService: backupService}
}

// Export handles downloading a full backup
func (h *BackupHandler) Export(c *gin.Context) {
	data, err := h.backupService.Export(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="dukapos-backup.json"`)
	c.JSON(200, data)
}

// Restore handles replacing the current data with a backup payload
func (h *BackupHandler) Restore(c *gin.Context) {
	var data repository.BackupData
	if err := c.ShouldBindJSON(&data); err != nil {
		response.BadRequest(c, "Invalid backup payload")
		return
	}

	if err := h.backupService.Restore(c.Request.Context(), &data, GetUsername(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Backup restored successfully", gin.H{
		"products":  len(data.Products),
		"suppliers": len(data.Suppliers),
		"sales":     len(data.Sales),
		"settings":  len(data.Settings),
	})
}
